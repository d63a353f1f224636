package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	sacristy "github.com/openparish/sacristy"
	"github.com/openparish/sacristy/internal/domain"
)

// CommunionUsecase records first communions. Every communion hangs off a
// baptism; when the baptism itself happened elsewhere the caller creates an
// external placeholder in the same request.
type CommunionUsecase struct {
	registry   RegistryRepository
	baptisms   BaptismRepository
	communions CommunionRepository
	blobs      BlobStore
	cache      ViewCache
	baptismUC  *BaptismUsecase
}

func NewCommunionUsecase(
	registry RegistryRepository,
	baptisms BaptismRepository,
	communions CommunionRepository,
	blobs BlobStore,
	cache ViewCache,
	baptismUC *BaptismUsecase,
) *CommunionUsecase {
	return &CommunionUsecase{
		registry:   registry,
		baptisms:   baptisms,
		communions: communions,
		blobs:      blobs,
		cache:      cache,
		baptismUC:  baptismUC,
	}
}

func communionListKey(parishID int64) string {
	return fmt.Sprintf("views:communions:%d", parishID)
}

func (uc *CommunionUsecase) List(ctx context.Context, parishID int64) ([]domain.CommunionView, error) {
	ctx, span := tracer.Start(ctx, "Communion.Usecase.List")
	defer span.End()

	if _, err := uc.registry.GetParish(ctx, parishID); err != nil {
		span.RecordError(err)
		return nil, err
	}

	var cached []domain.CommunionView
	if uc.cache.Get(ctx, communionListKey(parishID), &cached) {
		return cached, nil
	}

	communions, err := uc.communions.ListCommunions(ctx, parishID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.CommunionView, 0, len(communions))
	for _, c := range communions {
		views = append(views, uc.view(ctx, c))
	}

	uc.cache.Set(ctx, communionListKey(parishID), views)
	return views, nil
}

func (uc *CommunionUsecase) Get(ctx context.Context, id int64) (domain.CommunionView, error) {
	c, err := uc.communions.GetCommunion(ctx, id)
	if err != nil {
		return domain.CommunionView{}, err
	}
	return uc.view(ctx, c), nil
}

// view joins the communion with its baptism's display fields. An unresolvable
// baptism leaves the fields empty rather than failing the whole read.
func (uc *CommunionUsecase) view(ctx context.Context, c domain.Communion) domain.CommunionView {
	view := domain.CommunionView{Communion: c}
	b, err := uc.baptisms.GetBaptism(ctx, c.BaptismID)
	if err != nil {
		return view
	}
	presented := domain.PresentBaptism(b)
	view.BaptismName = presented.BaptismName
	view.Surname = presented.Surname
	view.DateOfBirth = presented.DateOfBirth
	view.FathersName = presented.FathersName
	view.MothersName = presented.MothersName
	return view
}

// Create records a communion against an existing baptism. A dangling baptism
// id is a validation failure, not a not-found: the client is submitting a bad
// link, the communion resource itself does not exist yet.
func (uc *CommunionUsecase) Create(ctx context.Context, in sacristy.CreateCommunionRequest) (domain.Communion, error) {
	ctx, span := tracer.Start(ctx, "Communion.Usecase.Create")
	defer span.End()

	if err := validateCommunionFields(in); err != nil {
		span.RecordError(err)
		return domain.Communion{}, err
	}

	b, err := uc.baptisms.GetBaptism(ctx, in.BaptismID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Communion{}, domain.Invalid("baptism %d does not exist", in.BaptismID)
		}
		span.RecordError(err)
		return domain.Communion{}, err
	}

	c := domain.Communion{
		BaptismID:         b.ID,
		Source:            domain.SourceInternal,
		CommunionDate:     in.CommunionDate,
		OfficiatingPriest: in.OfficiatingPriest,
		Parish:            in.Parish,
		CreatedAt:         time.Now().UTC(),
	}
	if b.Source == domain.SourceExternal {
		c.BaptismCertificatePath = b.CertificatePath
	}

	created, err := uc.communions.AddCommunion(ctx, c)
	if err != nil {
		span.RecordError(err)
		return domain.Communion{}, err
	}
	uc.cache.Invalidate(ctx, communionListKey(b.ParishID))
	return created, nil
}

// CreateWithExternalBaptism records a communion whose baptism happened at
// another parish: the baptism placeholder and the communion are created in one
// request. The communion's own certificate upload is optional; when present
// the communion is tagged external too.
func (uc *CommunionUsecase) CreateWithExternalBaptism(
	ctx context.Context,
	parishID int64,
	communion sacristy.CreateCommunionRequest,
	baptism sacristy.CreateBaptismRequest,
	baptismCertificate Upload,
	communionCertificate Upload,
) (domain.Communion, error) {
	ctx, span := tracer.Start(ctx, "Communion.Usecase.CreateWithExternalBaptism")
	defer span.End()

	// validate the communion first so a bad request cannot leave an
	// orphaned baptism placeholder behind
	if err := validateCommunionFields(communion); err != nil {
		span.RecordError(err)
		return domain.Communion{}, err
	}
	if len(communionCertificate.Data) > 0 {
		if err := validateUpload(communionCertificate); err != nil {
			span.RecordError(err)
			return domain.Communion{}, err
		}
	}

	b, err := uc.baptismUC.CreateExternal(ctx, parishID, baptism, baptismCertificate)
	if err != nil {
		span.RecordError(err)
		return domain.Communion{}, err
	}

	c := domain.Communion{
		BaptismID:              b.ID,
		Source:                 domain.SourceInternal,
		CommunionDate:          communion.CommunionDate,
		OfficiatingPriest:      communion.OfficiatingPriest,
		Parish:                 communion.Parish,
		BaptismCertificatePath: b.CertificatePath,
		CreatedAt:              time.Now().UTC(),
	}

	if len(communionCertificate.Data) > 0 {
		key := "communions/" + sacristy.CertificateFileName("", "communion", communionCertificate.FileName, communionCertificate.Data)
		if err := uc.blobs.Put(ctx, key, communionCertificate.ContentType, communionCertificate.Data); err != nil {
			span.RecordError(err)
			return domain.Communion{}, errors.Wrap(err, "store communion certificate")
		}
		c.Source = domain.SourceExternal
		c.CommunionCertificatePath = key
	}

	created, err := uc.communions.AddCommunion(ctx, c)
	if err != nil {
		span.RecordError(err)
		return domain.Communion{}, err
	}
	uc.cache.Invalidate(ctx, communionListKey(parishID))
	return created, nil
}

func validateCommunionFields(in sacristy.CreateCommunionRequest) error {
	if err := validateDate(in.CommunionDate, "communionDate"); err != nil {
		return err
	}
	if strings.TrimSpace(in.OfficiatingPriest) == "" {
		return domain.Invalid("officiatingPriest is required")
	}
	if strings.TrimSpace(in.Parish) == "" {
		return domain.Invalid("parish is required")
	}
	return nil
}
