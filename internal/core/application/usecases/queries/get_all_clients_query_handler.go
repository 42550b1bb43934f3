package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllClientsQueryHandler reads the clients table, oldest first.
type GetAllClientsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllClientsQueryHandler(db *gorm.DB) GetAllClientsQueryHandler {
	return GetAllClientsQueryHandler{db: db}
}

func (h GetAllClientsQueryHandler) Handle(ctx context.Context, query GetAllClientsQuery) ([]ClientView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	clients := make([]ClientView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			phone,
			total_orders,
			total_spent,
			created_at
		FROM clients
		ORDER BY created_at, name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view  ClientView
			id    uuid.UUID
			spent decimal.Decimal
		)
		if err = rows.Scan(
			&id,
			&view.Name,
			&view.Address,
			&view.Phone,
			&view.TotalOrders,
			&spent,
			&view.CreatedAt,
		); err != nil {
			return nil, err
		}

		if view.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if view.TotalSpent, err = toMoney(spent); err != nil {
			return nil, err
		}
		clients = append(clients, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
