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

// ConfirmationUsecase records confirmations. A confirmation links to the
// communion it follows; the baptism link is derived, never supplied.
type ConfirmationUsecase struct {
	registry      RegistryRepository
	baptisms      BaptismRepository
	communions    CommunionRepository
	confirmations ConfirmationRepository
	cache         ViewCache
}

func NewConfirmationUsecase(
	registry RegistryRepository,
	baptisms BaptismRepository,
	communions CommunionRepository,
	confirmations ConfirmationRepository,
	cache ViewCache,
) *ConfirmationUsecase {
	return &ConfirmationUsecase{
		registry:      registry,
		baptisms:      baptisms,
		communions:    communions,
		confirmations: confirmations,
		cache:         cache,
	}
}

func confirmationListKey(parishID int64) string {
	return fmt.Sprintf("views:confirmations:%d", parishID)
}

func (uc *ConfirmationUsecase) List(ctx context.Context, parishID int64) ([]domain.ConfirmationView, error) {
	ctx, span := tracer.Start(ctx, "Confirmation.Usecase.List")
	defer span.End()

	if _, err := uc.registry.GetParish(ctx, parishID); err != nil {
		span.RecordError(err)
		return nil, err
	}

	var cached []domain.ConfirmationView
	if uc.cache.Get(ctx, confirmationListKey(parishID), &cached) {
		return cached, nil
	}

	confirmations, err := uc.confirmations.ListConfirmations(ctx, parishID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.ConfirmationView, 0, len(confirmations))
	for _, c := range confirmations {
		views = append(views, uc.view(ctx, c))
	}

	uc.cache.Set(ctx, confirmationListKey(parishID), views)
	return views, nil
}

func (uc *ConfirmationUsecase) Get(ctx context.Context, id int64) (domain.ConfirmationView, error) {
	c, err := uc.confirmations.GetConfirmation(ctx, id)
	if err != nil {
		return domain.ConfirmationView{}, err
	}
	return uc.view(ctx, c), nil
}

func (uc *ConfirmationUsecase) view(ctx context.Context, c domain.Confirmation) domain.ConfirmationView {
	view := domain.ConfirmationView{Confirmation: c}
	if communion, err := uc.communions.GetCommunion(ctx, c.CommunionID); err == nil {
		view.CommunionDate = communion.CommunionDate
	}
	if b, err := uc.baptisms.GetBaptism(ctx, c.BaptismID); err == nil {
		presented := domain.PresentBaptism(b)
		view.BaptismName = presented.BaptismName
		view.Surname = presented.Surname
		view.DateOfBirth = presented.DateOfBirth
	}
	return view
}

// Create records a confirmation against an existing communion. The baptism id
// is copied from the communion so the chain stays consistent regardless of
// what the client sends.
func (uc *ConfirmationUsecase) Create(ctx context.Context, in sacristy.CreateConfirmationRequest) (domain.Confirmation, error) {
	ctx, span := tracer.Start(ctx, "Confirmation.Usecase.Create")
	defer span.End()

	if err := validateDate(in.ConfirmationDate, "confirmationDate"); err != nil {
		span.RecordError(err)
		return domain.Confirmation{}, err
	}
	if strings.TrimSpace(in.OfficiatingBishop) == "" {
		return domain.Confirmation{}, domain.Invalid("officiatingBishop is required")
	}

	communion, err := uc.communions.GetCommunion(ctx, in.CommunionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Confirmation{}, domain.Invalid("communion %d does not exist", in.CommunionID)
		}
		span.RecordError(err)
		return domain.Confirmation{}, err
	}

	created, err := uc.confirmations.AddConfirmation(ctx, domain.Confirmation{
		BaptismID:         communion.BaptismID,
		CommunionID:       communion.ID,
		ConfirmationDate:  in.ConfirmationDate,
		OfficiatingBishop: in.OfficiatingBishop,
		Parish:            in.Parish,
		CreatedAt:         time.Now().UTC(),
	})
	if err != nil {
		span.RecordError(err)
		return domain.Confirmation{}, err
	}

	if b, err := uc.baptisms.GetBaptism(ctx, communion.BaptismID); err == nil {
		uc.cache.Invalidate(ctx, confirmationListKey(b.ParishID))
	}
	return created, nil
}
