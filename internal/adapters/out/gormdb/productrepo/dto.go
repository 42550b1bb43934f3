// Package productrepo persists products with GORM.
package productrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	OrderCount int             `gorm:"type:int;not null;default:0"`
	CreatedAt  time.Time       `gorm:"not null;index"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:         p.ID().Bytes(),
		Name:       p.Name(),
		Price:      p.Price().Amount(),
		OrderCount: p.OrderCount(),
		CreatedAt:  p.CreatedAt(),
		UpdatedAt:  p.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(id, dto.Name, price, dto.OrderCount, dto.CreatedAt, dto.UpdatedAt)
}
