package queries

import (
	"context"

	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fails with errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}
	db := h.db.WithContext(ctx)
	id := query.OrderID().Bytes()

	summary, found, err := h.summary(db, id)
	if err != nil {
		return OrderDetails{}, err
	}
	if !found {
		return OrderDetails{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	lines, err := h.lines(db, id)
	if err != nil {
		return OrderDetails{}, err
	}
	return OrderDetails{OrderSummary: summary, Lines: lines}, nil
}

func (h GetOrderQueryHandler) summary(db *gorm.DB, id uuid.UUID) (OrderSummary, bool, error) {
	rows, err := db.Raw(orderSummarySelect+" WHERE o.id = ?"+orderSummaryGroupBy, id).Rows()
	if err != nil {
		return OrderSummary{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return OrderSummary{}, false, rows.Err()
	}
	summary, err := scanOrderSummary(rows)
	if err != nil {
		return OrderSummary{}, false, err
	}
	return summary, true, nil
}

func (h GetOrderQueryHandler) lines(db *gorm.DB, id uuid.UUID) ([]OrderLineView, error) {
	rows, err := db.Raw(`
		SELECT product_id, name, quantity, price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, id).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineView, 0)
	for rows.Next() {
		var (
			view      OrderLineView
			productID uuid.UUID
			price     decimal.Decimal
		)
		if err = rows.Scan(&productID, &view.Name, &view.Quantity, &price); err != nil {
			return nil, err
		}
		if view.ProductID, err = toUUID(productID); err != nil {
			return nil, err
		}
		if view.Price, err = toMoney(price); err != nil {
			return nil, err
		}
		if view.Total, err = view.Price.Mul(view.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
