package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	sacristy "github.com/openparish/sacristy"
	"github.com/openparish/sacristy/internal/domain"
)

// MarriageUsecase records marriages. Two payload shapes are accepted: the
// legacy single-confirmation link and the extended groom/bride/witnesses
// form. Presence of the groom decides which path is taken.
type MarriageUsecase struct {
	registry      RegistryRepository
	baptisms      BaptismRepository
	communions    CommunionRepository
	confirmations ConfirmationRepository
	marriages     MarriageRepository
	blobs         BlobStore
}

func NewMarriageUsecase(
	registry RegistryRepository,
	baptisms BaptismRepository,
	communions CommunionRepository,
	confirmations ConfirmationRepository,
	marriages MarriageRepository,
	blobs BlobStore,
) *MarriageUsecase {
	return &MarriageUsecase{
		registry:      registry,
		baptisms:      baptisms,
		communions:    communions,
		confirmations: confirmations,
		marriages:     marriages,
		blobs:         blobs,
	}
}

func (uc *MarriageUsecase) List(ctx context.Context, parishID int64) ([]domain.MarriageView, error) {
	ctx, span := tracer.Start(ctx, "Marriage.Usecase.List")
	defer span.End()

	if _, err := uc.registry.GetParish(ctx, parishID); err != nil {
		span.RecordError(err)
		return nil, err
	}

	marriages, err := uc.marriages.ListMarriages(ctx, parishID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.MarriageView, 0, len(marriages))
	for _, m := range marriages {
		views = append(views, uc.view(ctx, m))
	}
	return views, nil
}

func (uc *MarriageUsecase) Get(ctx context.Context, id int64) (domain.MarriageView, error) {
	m, err := uc.marriages.GetMarriage(ctx, id)
	if err != nil {
		return domain.MarriageView{}, err
	}
	return uc.view(ctx, m), nil
}

func (uc *MarriageUsecase) view(ctx context.Context, m domain.Marriage) domain.MarriageView {
	view := domain.MarriageView{Marriage: m}
	if parties, err := uc.marriages.MarriageParties(ctx, m.ID); err == nil {
		view.Parties = parties
	}
	if witnesses, err := uc.marriages.MarriageWitnesses(ctx, m.ID); err == nil {
		view.Witnesses = witnesses
	}
	if m.ConfirmationID != nil {
		if confirmation, err := uc.confirmations.GetConfirmation(ctx, *m.ConfirmationID); err == nil {
			view.ConfirmationDate = confirmation.ConfirmationDate
			if b, err := uc.baptisms.GetBaptism(ctx, confirmation.BaptismID); err == nil {
				presented := domain.PresentBaptism(b)
				view.BaptismName = presented.BaptismName
				view.Surname = presented.Surname
			}
		}
	}
	return view
}

// Create records a marriage in whichever payload shape the client sent.
func (uc *MarriageUsecase) Create(ctx context.Context, parishID int64, in sacristy.CreateMarriageRequest) (domain.MarriageView, error) {
	ctx, span := tracer.Start(ctx, "Marriage.Usecase.Create")
	defer span.End()

	if parishID <= 0 {
		return domain.MarriageView{}, domain.Invalid("parishId is required")
	}
	if _, err := uc.registry.GetParish(ctx, parishID); err != nil {
		span.RecordError(err)
		return domain.MarriageView{}, err
	}

	if err := validateDate(in.MarriageDate, "marriageDate"); err != nil {
		span.RecordError(err)
		return domain.MarriageView{}, err
	}
	if strings.TrimSpace(in.OfficiatingPriest) == "" {
		return domain.MarriageView{}, domain.Invalid("officiatingPriest is required")
	}
	if strings.TrimSpace(in.Parish) == "" {
		return domain.MarriageView{}, domain.Invalid("parish is required")
	}

	m := domain.Marriage{
		ParishID:            parishID,
		MarriageDate:        in.MarriageDate,
		MarriageTime:        in.MarriageTime,
		ChurchName:          in.ChurchName,
		MarriageRegister:    in.MarriageRegister,
		Diocese:             in.Diocese,
		CivilRegistryNumber: in.CivilRegistryNumber,
		DispensationGranted: in.DispensationGranted,
		CanonicalNotes:      in.CanonicalNotes,
		OfficiatingPriest:   in.OfficiatingPriest,
		Parish:              in.Parish,
		PartnersName:        in.PartnersName,
		CreatedAt:           time.Now().UTC(),
	}

	var parties []domain.MarriageParty
	var witnesses []domain.MarriageWitness

	if in.Groom != nil {
		var err error
		parties, witnesses, err = uc.extendedForm(ctx, in)
		if err != nil {
			span.RecordError(err)
			return domain.MarriageView{}, err
		}
	} else {
		if in.ConfirmationID == nil {
			return domain.MarriageView{}, domain.Invalid("confirmationId is required")
		}
		confirmation, err := uc.confirmations.GetConfirmation(ctx, *in.ConfirmationID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.MarriageView{}, domain.Invalid("confirmation %d does not exist", *in.ConfirmationID)
			}
			span.RecordError(err)
			return domain.MarriageView{}, err
		}
		if strings.TrimSpace(in.PartnersName) == "" {
			return domain.MarriageView{}, domain.Invalid("partnersName is required")
		}
		m.ConfirmationID = &confirmation.ID
		m.CommunionID = &confirmation.CommunionID
		m.BaptismID = &confirmation.BaptismID
	}

	created, err := uc.marriages.AddMarriage(ctx, m, parties, witnesses)
	if err != nil {
		span.RecordError(err)
		return domain.MarriageView{}, err
	}
	return uc.view(ctx, created), nil
}

// extendedForm validates the groom/bride/witnesses shape and builds the child
// rows. Party sacrament links, when given as ids, must resolve.
func (uc *MarriageUsecase) extendedForm(ctx context.Context, in sacristy.CreateMarriageRequest) ([]domain.MarriageParty, []domain.MarriageWitness, error) {
	if in.Bride == nil {
		return nil, nil, domain.Invalid("bride is required when groom is given")
	}
	if strings.TrimSpace(in.Groom.FullName) == "" {
		return nil, nil, domain.Invalid("groom fullName is required")
	}
	if strings.TrimSpace(in.Bride.FullName) == "" {
		return nil, nil, domain.Invalid("bride fullName is required")
	}

	named := 0
	witnesses := make([]domain.MarriageWitness, 0, len(in.Witnesses))
	for i, w := range in.Witnesses {
		if strings.TrimSpace(w.FullName) == "" {
			continue
		}
		named++
		witnesses = append(witnesses, domain.MarriageWitness{
			FullName:  w.FullName,
			Phone:     w.Phone,
			Address:   w.Address,
			SortOrder: i,
		})
	}
	if named < 2 {
		return nil, nil, domain.Invalid("at least two witnesses are required")
	}

	groom, err := uc.party(ctx, domain.RoleGroom, *in.Groom)
	if err != nil {
		return nil, nil, err
	}
	bride, err := uc.party(ctx, domain.RoleBride, *in.Bride)
	if err != nil {
		return nil, nil, err
	}
	return []domain.MarriageParty{groom, bride}, witnesses, nil
}

func (uc *MarriageUsecase) party(ctx context.Context, role domain.PartyRole, in sacristy.PartyInput) (domain.MarriageParty, error) {
	if in.BaptismID != nil {
		if _, err := uc.baptisms.GetBaptism(ctx, *in.BaptismID); err != nil {
			return domain.MarriageParty{}, domain.Invalid("%s baptism %d does not exist", strings.ToLower(string(role)), *in.BaptismID)
		}
	}
	if in.CommunionID != nil {
		if _, err := uc.communions.GetCommunion(ctx, *in.CommunionID); err != nil {
			return domain.MarriageParty{}, domain.Invalid("%s communion %d does not exist", strings.ToLower(string(role)), *in.CommunionID)
		}
	}
	if in.ConfirmationID != nil {
		if _, err := uc.confirmations.GetConfirmation(ctx, *in.ConfirmationID); err != nil {
			return domain.MarriageParty{}, domain.Invalid("%s confirmation %d does not exist", strings.ToLower(string(role)), *in.ConfirmationID)
		}
	}

	return domain.MarriageParty{
		Role:               role,
		FullName:           in.FullName,
		DateOfBirth:        in.DateOfBirth,
		PlaceOfBirth:       in.PlaceOfBirth,
		Nationality:        in.Nationality,
		ResidentialAddress: in.ResidentialAddress,
		Phone:              in.Phone,
		Email:              in.Email,
		Occupation:         in.Occupation,
		MaritalStatus:      in.MaritalStatus,

		BaptismID:      in.BaptismID,
		CommunionID:    in.CommunionID,
		ConfirmationID: in.ConfirmationID,

		BaptismCertificatePath:      in.BaptismCertificatePath,
		CommunionCertificatePath:    in.CommunionCertificatePath,
		ConfirmationCertificatePath: in.ConfirmationCertificatePath,
		BaptismChurch:               in.BaptismChurch,
		CommunionChurch:             in.CommunionChurch,
		ConfirmationChurch:          in.ConfirmationChurch,
	}, nil
}

// UploadPartyCertificate stores a party's sacrament certificate ahead of the
// marriage create call and returns the path the create request should carry.
func (uc *MarriageUsecase) UploadPartyCertificate(ctx context.Context, parishID int64, role, kind string, certificate Upload) (sacristy.UploadedCertificate, error) {
	ctx, span := tracer.Start(ctx, "Marriage.Usecase.UploadPartyCertificate")
	defer span.End()

	if _, err := uc.registry.GetParish(ctx, parishID); err != nil {
		span.RecordError(err)
		return sacristy.UploadedCertificate{}, err
	}

	role = strings.ToLower(strings.TrimSpace(role))
	if role != "groom" && role != "bride" {
		return sacristy.UploadedCertificate{}, domain.Invalid("role must be groom or bride")
	}
	kind = strings.ToLower(strings.TrimSpace(kind))
	switch kind {
	case "baptism", "communion", "confirmation":
	default:
		return sacristy.UploadedCertificate{}, domain.Invalid("kind must be baptism, communion or confirmation")
	}
	if err := validateUpload(certificate); err != nil {
		span.RecordError(err)
		return sacristy.UploadedCertificate{}, err
	}

	key := "marriages/" + sacristy.CertificateFileName(role, kind, certificate.FileName, certificate.Data)
	if err := uc.blobs.Put(ctx, key, certificate.ContentType, certificate.Data); err != nil {
		span.RecordError(err)
		return sacristy.UploadedCertificate{}, errors.Wrap(err, "store party certificate")
	}
	return sacristy.UploadedCertificate{Path: key, FileName: certificate.FileName}, nil
}
