package draftrepo

import (
	"context"

	"orderdesk/internal/core/domain/model/draft"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDraftOrderRepository implements ports.DraftOrderRepository using GORM.
type GormDraftOrderRepository struct {
	db *gorm.DB
}

func NewGormDraftOrderRepository(db *gorm.DB) *GormDraftOrderRepository {
	return &GormDraftOrderRepository{db: db}
}

func (r *GormDraftOrderRepository) Add(ctx context.Context, d *draft.DraftOrder) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAll returns drafts in generation order. Numbers of one batch share a day
// and grow with every draft, so they break ties on createdAt.
func (r *GormDraftOrderRepository) GetAll(ctx context.Context) ([]*draft.DraftOrder, error) {
	var dtos []DraftOrderDTO
	if err := r.db.WithContext(ctx).Order("generated_on, created_at, order_number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	drafts := make([]*draft.DraftOrder, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

func (r *GormDraftOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DraftOrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("draft order", id.String())
	}
	return nil
}
