// Package clientrepo persists clients with GORM, mapping the domain aggregate
// to the clients table and back.
package clientrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientDTO is the row of the clients table.
type ClientDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Address     string          `gorm:"type:varchar(512);not null;default:''"`
	Phone       string          `gorm:"type:varchar(64);not null;default:''"`
	TotalOrders int             `gorm:"type:int;not null;default:0"`
	TotalSpent  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		Address:     c.Address(),
		Phone:       c.Phone(),
		TotalOrders: c.TotalOrders(),
		TotalSpent:  c.TotalSpent().Amount(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	spent, err := kernel.NewMoney(dto.TotalSpent)
	if err != nil {
		return nil, err
	}
	return client.RestoreClient(id, dto.Name, dto.Address, dto.Phone, dto.TotalOrders, spent, dto.CreatedAt, dto.UpdatedAt)
}
