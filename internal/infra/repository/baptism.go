package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/openparish/sacristy/internal/domain"
	"github.com/openparish/sacristy/internal/infra/database/models"
)

type BaptismRepository struct {
	db *gorm.DB
}

func NewBaptismRepository(db *gorm.DB) *BaptismRepository {
	return &BaptismRepository{db: db}
}

func (r *BaptismRepository) ListBaptisms(ctx context.Context, parishID int64) ([]domain.Baptism, error) {
	var rows []models.Baptism
	err := r.db.WithContext(ctx).Where("parish_id = ?", parishID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Baptism, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Domain())
	}
	return out, nil
}

func (r *BaptismRepository) GetBaptism(ctx context.Context, id int64) (domain.Baptism, error) {
	var row models.Baptism
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return domain.Baptism{}, domain.NotFoundError{Resource: "baptism"}
	}
	if err != nil {
		return domain.Baptism{}, err
	}
	return row.Domain(), nil
}

func (r *BaptismRepository) AddBaptism(ctx context.Context, b domain.Baptism) (domain.Baptism, error) {
	row := models.BaptismRow(b)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Baptism{}, err
	}
	return row.Domain(), nil
}

// UpdateBaptismNote updates the current note and appends the history row in
// one transaction.
func (r *BaptismRepository) UpdateBaptismNote(ctx context.Context, id int64, note string) (domain.Baptism, error) {
	var row models.Baptism

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Take(&row).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Baptism{}).Where("id = ?", id).Update("note", note).Error; err != nil {
			return err
		}
		row.Note = note

		return tx.Create(&models.BaptismNote{
			BaptismID: id,
			Content:   note,
		}).Error
	})
	if err == gorm.ErrRecordNotFound {
		return domain.Baptism{}, domain.NotFoundError{Resource: "baptism"}
	}
	if err != nil {
		return domain.Baptism{}, err
	}
	return row.Domain(), nil
}

func (r *BaptismRepository) BaptismNotes(ctx context.Context, baptismID int64) ([]domain.BaptismNote, error) {
	var rows []models.BaptismNote
	err := r.db.WithContext(ctx).Where("baptism_id = ?", baptismID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.BaptismNote, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Domain())
	}
	return out, nil
}
