package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

func (h GetAllProductsQueryHandler) Handle(ctx context.Context, query GetAllProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			order_count,
			created_at
		FROM products
		ORDER BY created_at, name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view  ProductView
			id    uuid.UUID
			price decimal.Decimal
		)
		if err = rows.Scan(&id, &view.Name, &price, &view.OrderCount, &view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if view.Price, err = toMoney(price); err != nil {
			return nil, err
		}
		products = append(products, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
