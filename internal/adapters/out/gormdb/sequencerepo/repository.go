package sequencerepo

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/adapters/out/gormdb/dberr"
	"orderdesk/internal/core/domain/model/sequence"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCounterRepository implements ports.SequenceCounterRepository using GORM.
type GormCounterRepository struct {
	db *gorm.DB
}

func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

func (r *GormCounterRepository) Get(ctx context.Context, prefix string) (*sequence.Counter, error) {
	var dto CounterDTO
	if err := r.db.WithContext(ctx).First(&dto, "prefix = ?", prefix).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sequence counter", prefix)
		}
		return nil, err
	}
	return toDomain(dto)
}

// Save inserts a new counter or advances an existing one when its stored
// version still equals counter.Version(). The stored version is bumped by one.
func (r *GormCounterRepository) Save(ctx context.Context, counter *sequence.Counter) error {
	if err := counter.Validate(); err != nil {
		return err
	}
	if counter.LastNumber() < 1 {
		return errs.NewValueIsOutOfRangeError("lastNumber", counter.LastNumber(), 1, "unbounded")
	}

	db := r.db.WithContext(ctx)
	if counter.IsNew() {
		dto := CounterDTO{
			Prefix:     counter.Prefix(),
			LastDate:   counter.LastDate().String(),
			LastNumber: counter.LastNumber(),
			Version:    1,
		}
		if err := db.Create(&dto).Error; err != nil {
			if dberr.IsUniqueViolation(err) {
				return fmt.Errorf("insert counter %s: %w", counter.Prefix(), errs.ErrConcurrentUpdate)
			}
			return err
		}
		return nil
	}

	result := db.Model(&CounterDTO{}).
		Where("prefix = ? AND version = ?", counter.Prefix(), counter.Version()).
		Updates(map[string]any{
			"last_date":   counter.LastDate().String(),
			"last_number": counter.LastNumber(),
			"version":     counter.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update counter %s at version %d: %w",
			counter.Prefix(), counter.Version(), errs.ErrConcurrentUpdate)
	}
	return nil
}
