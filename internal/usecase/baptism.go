package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	sacristy "github.com/openparish/sacristy"
	"github.com/openparish/sacristy/internal/domain"
)

// BaptismUsecase records baptisms, the root of the sacrament chain. A
// baptism is either internal (registered here, fully structured) or an
// external placeholder evidenced by an uploaded certificate.
type BaptismUsecase struct {
	registry RegistryRepository
	baptisms BaptismRepository
	blobs    BlobStore
}

func NewBaptismUsecase(registry RegistryRepository, baptisms BaptismRepository, blobs BlobStore) *BaptismUsecase {
	return &BaptismUsecase{registry: registry, baptisms: baptisms, blobs: blobs}
}

func (uc *BaptismUsecase) List(ctx context.Context, parishID int64) ([]domain.BaptismView, error) {
	if _, err := uc.registry.GetParish(ctx, parishID); err != nil {
		return nil, err
	}

	baptisms, err := uc.baptisms.ListBaptisms(ctx, parishID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.BaptismView, 0, len(baptisms))
	for _, b := range baptisms {
		views = append(views, domain.PresentBaptism(b))
	}
	return views, nil
}

func (uc *BaptismUsecase) Get(ctx context.Context, id int64) (domain.BaptismView, error) {
	b, err := uc.baptisms.GetBaptism(ctx, id)
	if err != nil {
		return domain.BaptismView{}, err
	}
	return domain.PresentBaptism(b), nil
}

// Create registers an internal baptism. The date of birth must parse and
// must not lie in the future.
func (uc *BaptismUsecase) Create(ctx context.Context, parishID int64, in sacristy.CreateBaptismRequest) (domain.Baptism, error) {
	ctx, span := tracer.Start(ctx, "Baptism.Usecase.Create")
	defer span.End()

	if _, err := uc.registry.GetParish(ctx, parishID); err != nil {
		span.RecordError(err)
		return domain.Baptism{}, err
	}

	if strings.TrimSpace(in.BaptismName) == "" || strings.TrimSpace(in.Surname) == "" {
		return domain.Baptism{}, domain.Invalid("baptismName and surname are required")
	}
	if err := validatePastDate(in.DateOfBirth, "dateOfBirth"); err != nil {
		span.RecordError(err)
		return domain.Baptism{}, err
	}

	return uc.baptisms.AddBaptism(ctx, domain.Baptism{
		ParishID:          parishID,
		Source:            domain.SourceInternal,
		BaptismName:       in.BaptismName,
		OtherNames:        in.OtherNames,
		Surname:           in.Surname,
		Gender:            in.Gender,
		DateOfBirth:       in.DateOfBirth,
		FathersName:       in.FathersName,
		MothersName:       in.MothersName,
		SponsorNames:      in.SponsorNames,
		OfficiatingPriest: in.OfficiatingPriest,
		Address:           in.Address,
		ParishAddress:     in.ParishAddress,
		ParentAddress:     in.ParentAddress,
		Note:              in.Note,
		CreatedAt:         time.Now().UTC(),
	})
}

// CreateExternal creates an external-baptism placeholder so later sacraments
// can reference a baptism performed at another parish. The certificate is
// stored before the row is written: a failed upload must not leave a
// placeholder without its evidence.
func (uc *BaptismUsecase) CreateExternal(ctx context.Context, parishID int64, in sacristy.CreateBaptismRequest, certificate Upload) (domain.Baptism, error) {
	ctx, span := tracer.Start(ctx, "Baptism.Usecase.CreateExternal")
	defer span.End()

	if _, err := uc.registry.GetParish(ctx, parishID); err != nil {
		span.RecordError(err)
		return domain.Baptism{}, err
	}

	if err := validateUpload(certificate); err != nil {
		span.RecordError(err)
		return domain.Baptism{}, err
	}
	for field, value := range map[string]string{
		"baptismName": in.BaptismName,
		"surname":     in.Surname,
		"fathersName": in.FathersName,
		"mothersName": in.MothersName,
	} {
		if strings.TrimSpace(value) == "" {
			return domain.Baptism{}, domain.Invalid("%s is required for an external baptism", field)
		}
	}
	if in.DateOfBirth != "" {
		if err := validatePastDate(in.DateOfBirth, "dateOfBirth"); err != nil {
			return domain.Baptism{}, err
		}
	}

	key := "baptisms/" + sacristy.CertificateFileName("", "baptism", certificate.FileName, certificate.Data)
	if err := uc.blobs.Put(ctx, key, certificate.ContentType, certificate.Data); err != nil {
		span.RecordError(err)
		return domain.Baptism{}, errors.Wrap(err, "store external baptism certificate")
	}

	return uc.baptisms.AddBaptism(ctx, domain.Baptism{
		ParishID:        parishID,
		Source:          domain.SourceExternal,
		BaptismName:     in.BaptismName,
		OtherNames:      in.OtherNames,
		Surname:         in.Surname,
		Gender:          in.Gender,
		DateOfBirth:     in.DateOfBirth,
		FathersName:     in.FathersName,
		MothersName:     in.MothersName,
		SponsorNames:    in.SponsorNames,
		CertificatePath: key,
		CreatedAt:       time.Now().UTC(),
	})
}

// UpdateNote appends to the note history and returns the updated record.
func (uc *BaptismUsecase) UpdateNote(ctx context.Context, id int64, note string) (domain.BaptismView, error) {
	ctx, span := tracer.Start(ctx, "Baptism.Usecase.UpdateNote")
	defer span.End()

	if strings.TrimSpace(note) == "" {
		return domain.BaptismView{}, domain.Invalid("note is required")
	}

	b, err := uc.baptisms.UpdateBaptismNote(ctx, id, note)
	if err != nil {
		span.RecordError(err)
		return domain.BaptismView{}, err
	}
	return domain.PresentBaptism(b), nil
}

func (uc *BaptismUsecase) Notes(ctx context.Context, id int64) ([]domain.BaptismNote, error) {
	if _, err := uc.baptisms.GetBaptism(ctx, id); err != nil {
		return nil, err
	}
	return uc.baptisms.BaptismNotes(ctx, id)
}

// CertificateData is everything the client needs to render a baptism
// certificate preview. Missing ancestors come back zero-valued, never as an
// error, so the screen stays renderable.
type CertificateData struct {
	Baptism domain.BaptismView `json:"baptism"`
	Parish  domain.Parish      `json:"parish"`
	Diocese domain.Diocese     `json:"diocese"`
}

func (uc *BaptismUsecase) CertificateData(ctx context.Context, id int64) (CertificateData, error) {
	b, err := uc.baptisms.GetBaptism(ctx, id)
	if err != nil {
		return CertificateData{}, err
	}

	data := CertificateData{Baptism: domain.PresentBaptism(b)}
	if parish, err := uc.registry.GetParish(ctx, b.ParishID); err == nil {
		data.Parish = parish
		if diocese, err := uc.registry.GetDiocese(ctx, parish.DioceseID); err == nil {
			data.Diocese = diocese
		}
	}
	return data, nil
}

func validatePastDate(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return domain.Invalid("%s is required", field)
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return domain.Invalid("%s must be a date in the form %s", field, domain.DateLayout)
	}
	if t.After(time.Now()) {
		return domain.Invalid("%s cannot be in the future", field)
	}
	return nil
}

// validateDate accepts future dates; communion and later sacrament dates may
// be scheduled ahead.
func validateDate(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return domain.Invalid("%s is required", field)
	}
	if _, err := time.Parse(domain.DateLayout, value); err != nil {
		return domain.Invalid("%s must be a date in the form %s", field, domain.DateLayout)
	}
	return nil
}
