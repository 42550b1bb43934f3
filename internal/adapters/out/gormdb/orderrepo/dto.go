// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored in the orders table; its lines live in order_lines, keyed by
// order id and 1-based position.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Number          string              `gorm:"type:varchar(64);not null;uniqueIndex"`
	ClientID        uuid.UUID           `gorm:"type:uuid;not null;index"`
	DeliveryAddress string              `gorm:"type:varchar(512);not null;default:''"`
	Status          string              `gorm:"type:varchar(16);not null;index"`
	PaymentMethod   *string             `gorm:"type:varchar(64)"`
	AmountPaid      decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	CreatedAt       time.Time           `gorm:"not null;index"`
	UpdatedAt       time.Time           `gorm:"not null"`
	Lines           []OrderLineDTO      `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one snapshot line of an order.
type OrderLineDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"type:int;not null"`
	Price     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   orderID,
			Position:  i + 1,
			ProductID: l.ProductID().Bytes(),
			Name:      l.Name(),
			Quantity:  l.Quantity(),
			Price:     l.Price().Amount(),
		})
	}

	var amountPaid decimal.NullDecimal
	if paid := o.AmountPaid(); paid != nil {
		amountPaid = decimal.NewNullDecimal(paid.Amount())
	}

	return OrderDTO{
		ID:              orderID,
		Number:          o.Number(),
		ClientID:        o.ClientID().Bytes(),
		DeliveryAddress: o.DeliveryAddress(),
		Status:          o.Status().String(),
		PaymentMethod:   o.PaymentMethod(),
		AmountPaid:      amountPaid,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		Lines:           lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		l, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, l)
	}

	var amountPaid *kernel.Money
	if dto.AmountPaid.Valid {
		paid, moneyErr := kernel.NewMoney(dto.AmountPaid.Decimal)
		if moneyErr != nil {
			return nil, moneyErr
		}
		amountPaid = &paid
	}

	return order.RestoreOrder(id, dto.Number, clientID, dto.DeliveryAddress, lines, status,
		dto.PaymentMethod, amountPaid, dto.CreatedAt, dto.UpdatedAt)
}

func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Line{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return order.Line{}, err
	}
	return order.NewLine(productID, dto.Name, dto.Quantity, price)
}
