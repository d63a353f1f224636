package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/openparish/sacristy/internal/domain"
)

var tracer = otel.Tracer("usecase")

// RegistryUsecase manages the diocese/parish hierarchy that scopes every
// sacrament record.
type RegistryUsecase struct {
	repo RegistryRepository
}

func NewRegistryUsecase(repo RegistryRepository) *RegistryUsecase {
	return &RegistryUsecase{repo: repo}
}

func (uc *RegistryUsecase) ListDioceses(ctx context.Context) ([]domain.Diocese, error) {
	return uc.repo.ListDioceses(ctx)
}

func (uc *RegistryUsecase) CreateDiocese(ctx context.Context, name string) (domain.Diocese, error) {
	ctx, span := tracer.Start(ctx, "Registry.Usecase.CreateDiocese")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Diocese{}, domain.Invalid("diocese name is required")
	}
	return uc.repo.AddDiocese(ctx, domain.Diocese{Name: name})
}

func (uc *RegistryUsecase) ListParishes(ctx context.Context, dioceseID int64) ([]domain.Parish, error) {
	if _, err := uc.repo.GetDiocese(ctx, dioceseID); err != nil {
		return nil, err
	}
	return uc.repo.ListParishes(ctx, dioceseID)
}

// CreateParish enforces the referential invariant: the parent diocese must
// exist.
func (uc *RegistryUsecase) CreateParish(ctx context.Context, dioceseID int64, parishName, description string) (domain.Parish, error) {
	ctx, span := tracer.Start(ctx, "Registry.Usecase.CreateParish")
	defer span.End()

	parishName = strings.TrimSpace(parishName)
	if parishName == "" {
		return domain.Parish{}, domain.Invalid("parish name is required")
	}

	if _, err := uc.repo.GetDiocese(ctx, dioceseID); err != nil {
		span.RecordError(err)
		return domain.Parish{}, err
	}

	return uc.repo.AddParish(ctx, domain.Parish{
		ParishName:  parishName,
		DioceseID:   dioceseID,
		Description: description,
	})
}

func (uc *RegistryUsecase) GetParish(ctx context.Context, id int64) (domain.Parish, error) {
	return uc.repo.GetParish(ctx, id)
}
