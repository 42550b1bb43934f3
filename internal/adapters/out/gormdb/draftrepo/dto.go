// Package draftrepo persists the draft order index with GORM.
package draftrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/draft"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DraftOrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderNumber     string          `gorm:"type:varchar(64);not null"`
	ClientID        uuid.UUID       `gorm:"type:uuid;not null"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName     string          `gorm:"type:varchar(255);not null"`
	Quantity        int             `gorm:"type:int;not null"`
	Price           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DeliveryAddress string          `gorm:"type:varchar(512);not null;default:''"`
	GeneratedOn     string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt       time.Time       `gorm:"not null"`
}

func (DraftOrderDTO) TableName() string {
	return "draft_orders"
}

func fromDomain(d *draft.DraftOrder) DraftOrderDTO {
	return DraftOrderDTO{
		ID:              d.ID().Bytes(),
		OrderID:         d.OrderID().Bytes(),
		OrderNumber:     d.OrderNumber(),
		ClientID:        d.ClientID().Bytes(),
		ProductID:       d.ProductID().Bytes(),
		ProductName:     d.ProductName(),
		Quantity:        d.Quantity(),
		Price:           d.Price().Amount(),
		DeliveryAddress: d.DeliveryAddress(),
		GeneratedOn:     d.GeneratedOn().String(),
		CreatedAt:       d.CreatedAt(),
	}
}

func toDomain(dto DraftOrderDTO) (*draft.DraftOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	generatedOn, err := kernel.ParseDate(dto.GeneratedOn)
	if err != nil {
		return nil, err
	}

	return draft.RestoreDraftOrder(id, orderID, dto.OrderNumber, clientID, productID, dto.ProductName,
		dto.Quantity, price, dto.DeliveryAddress, generatedOn, dto.CreatedAt)
}
