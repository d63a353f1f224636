package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/openparish/sacristy/internal/domain"
	"github.com/openparish/sacristy/internal/infra/database/models"
)

// Communions and confirmations reach parish scope through the baptism they
// reference, so the per-parish listings join on baptisms.

type CommunionRepository struct {
	db *gorm.DB
}

func NewCommunionRepository(db *gorm.DB) *CommunionRepository {
	return &CommunionRepository{db: db}
}

func (r *CommunionRepository) ListCommunions(ctx context.Context, parishID int64) ([]domain.Communion, error) {
	var rows []models.Communion
	err := r.db.WithContext(ctx).
		Model(&models.Communion{}).
		Joins("JOIN baptisms ON baptisms.id = communions.baptism_id").
		Where("baptisms.parish_id = ?", parishID).
		Order("communions.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Communion, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Domain())
	}
	return out, nil
}

func (r *CommunionRepository) GetCommunion(ctx context.Context, id int64) (domain.Communion, error) {
	var row models.Communion
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return domain.Communion{}, domain.NotFoundError{Resource: "communion"}
	}
	if err != nil {
		return domain.Communion{}, err
	}
	return row.Domain(), nil
}

func (r *CommunionRepository) AddCommunion(ctx context.Context, c domain.Communion) (domain.Communion, error) {
	row := models.CommunionRow(c)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Communion{}, err
	}
	return row.Domain(), nil
}

type ConfirmationRepository struct {
	db *gorm.DB
}

func NewConfirmationRepository(db *gorm.DB) *ConfirmationRepository {
	return &ConfirmationRepository{db: db}
}

func (r *ConfirmationRepository) ListConfirmations(ctx context.Context, parishID int64) ([]domain.Confirmation, error) {
	var rows []models.Confirmation
	err := r.db.WithContext(ctx).
		Model(&models.Confirmation{}).
		Joins("JOIN baptisms ON baptisms.id = confirmations.baptism_id").
		Where("baptisms.parish_id = ?", parishID).
		Order("confirmations.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Confirmation, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Domain())
	}
	return out, nil
}

func (r *ConfirmationRepository) GetConfirmation(ctx context.Context, id int64) (domain.Confirmation, error) {
	var row models.Confirmation
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return domain.Confirmation{}, domain.NotFoundError{Resource: "confirmation"}
	}
	if err != nil {
		return domain.Confirmation{}, err
	}
	return row.Domain(), nil
}

func (r *ConfirmationRepository) AddConfirmation(ctx context.Context, c domain.Confirmation) (domain.Confirmation, error) {
	row := models.ConfirmationRow(c)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Confirmation{}, err
	}
	return row.Domain(), nil
}

type MarriageRepository struct {
	db *gorm.DB
}

func NewMarriageRepository(db *gorm.DB) *MarriageRepository {
	return &MarriageRepository{db: db}
}

func (r *MarriageRepository) ListMarriages(ctx context.Context, parishID int64) ([]domain.Marriage, error) {
	var rows []models.Marriage
	err := r.db.WithContext(ctx).Where("parish_id = ?", parishID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Marriage, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Domain())
	}
	return out, nil
}

func (r *MarriageRepository) GetMarriage(ctx context.Context, id int64) (domain.Marriage, error) {
	var row models.Marriage
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return domain.Marriage{}, domain.NotFoundError{Resource: "marriage"}
	}
	if err != nil {
		return domain.Marriage{}, err
	}
	return row.Domain(), nil
}

// AddMarriage inserts the marriage with its parties and witnesses in one
// transaction.
func (r *MarriageRepository) AddMarriage(ctx context.Context, m domain.Marriage, parties []domain.MarriageParty, witnesses []domain.MarriageWitness) (domain.Marriage, error) {
	row := models.MarriageRow(m)
	row.ID = 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		for _, p := range parties {
			party := models.PartyRow(p)
			party.ID = 0
			party.MarriageID = row.ID
			if err := tx.Create(&party).Error; err != nil {
				return err
			}
		}

		for _, w := range witnesses {
			witness := models.WitnessRow(w)
			witness.ID = 0
			witness.MarriageID = row.ID
			if err := tx.Create(&witness).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return domain.Marriage{}, err
	}
	return row.Domain(), nil
}

func (r *MarriageRepository) MarriageParties(ctx context.Context, marriageID int64) ([]domain.MarriageParty, error) {
	var rows []models.MarriageParty
	err := r.db.WithContext(ctx).Where("marriage_id = ?", marriageID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.MarriageParty, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Domain())
	}
	return out, nil
}

func (r *MarriageRepository) MarriageWitnesses(ctx context.Context, marriageID int64) ([]domain.MarriageWitness, error) {
	var rows []models.MarriageWitness
	err := r.db.WithContext(ctx).Where("marriage_id = ?", marriageID).Order("sort_order, id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.MarriageWitness, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Domain())
	}
	return out, nil
}

type HolyOrderRepository struct {
	db *gorm.DB
}

func NewHolyOrderRepository(db *gorm.DB) *HolyOrderRepository {
	return &HolyOrderRepository{db: db}
}

func (r *HolyOrderRepository) ListHolyOrders(ctx context.Context) ([]domain.HolyOrder, error) {
	var rows []models.HolyOrder
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.HolyOrder, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Domain())
	}
	return out, nil
}

func (r *HolyOrderRepository) GetHolyOrder(ctx context.Context, id int64) (domain.HolyOrder, error) {
	var row models.HolyOrder
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return domain.HolyOrder{}, domain.NotFoundError{Resource: "holy order"}
	}
	if err != nil {
		return domain.HolyOrder{}, err
	}
	return row.Domain(), nil
}

func (r *HolyOrderRepository) AddHolyOrder(ctx context.Context, h domain.HolyOrder) (domain.HolyOrder, error) {
	row := models.HolyOrderRow(h)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.HolyOrder{}, err
	}
	return row.Domain(), nil
}
