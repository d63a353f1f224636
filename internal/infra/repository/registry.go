package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/openparish/sacristy/internal/domain"
	"github.com/openparish/sacristy/internal/infra/database/models"
)

// RegistryRepository persists dioceses and parishes. Both are create-only,
// so get-by-id results can be cached without ever serving stale data; the
// denormalization path hits these lookups on every list row.
type RegistryRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewRegistryRepository(db *gorm.DB) *RegistryRepository {
	return &RegistryRepository{
		db:    db,
		cache: cache.New(10*time.Minute, 15*time.Minute),
	}
}

func (r *RegistryRepository) ListDioceses(ctx context.Context) ([]domain.Diocese, error) {
	var rows []models.Diocese
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Diocese, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Domain())
	}
	return out, nil
}

func (r *RegistryRepository) GetDiocese(ctx context.Context, id int64) (domain.Diocese, error) {
	key := fmt.Sprintf("diocese:%d", id)
	if cached, found := r.cache.Get(key); found {
		return cached.(domain.Diocese), nil
	}

	var row models.Diocese
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return domain.Diocese{}, domain.NotFoundError{Resource: "diocese"}
	}
	if err != nil {
		return domain.Diocese{}, err
	}

	d := row.Domain()
	r.cache.Set(key, d, cache.DefaultExpiration)
	return d, nil
}

func (r *RegistryRepository) AddDiocese(ctx context.Context, d domain.Diocese) (domain.Diocese, error) {
	row := models.DioceseRow(d)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Diocese{}, err
	}
	return row.Domain(), nil
}

func (r *RegistryRepository) ListParishes(ctx context.Context, dioceseID int64) ([]domain.Parish, error) {
	var rows []models.Parish
	err := r.db.WithContext(ctx).Where("diocese_id = ?", dioceseID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Parish, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Domain())
	}
	return out, nil
}

func (r *RegistryRepository) GetParish(ctx context.Context, id int64) (domain.Parish, error) {
	key := fmt.Sprintf("parish:%d", id)
	if cached, found := r.cache.Get(key); found {
		return cached.(domain.Parish), nil
	}

	var row models.Parish
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return domain.Parish{}, domain.NotFoundError{Resource: "parish"}
	}
	if err != nil {
		return domain.Parish{}, err
	}

	p := row.Domain()
	r.cache.Set(key, p, cache.DefaultExpiration)
	return p, nil
}

func (r *RegistryRepository) AddParish(ctx context.Context, p domain.Parish) (domain.Parish, error) {
	row := models.ParishRow(p)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Parish{}, err
	}
	return row.Domain(), nil
}
