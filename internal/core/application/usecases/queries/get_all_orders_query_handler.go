package queries

import (
	"context"
	"database/sql"

	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderSummarySelect = `
	SELECT
		o.id,
		o.number,
		o.client_id,
		COALESCE(c.name, '') AS client_name,
		o.delivery_address,
		o.status,
		o.payment_method,
		o.amount_paid,
		COALESCE(SUM(l.quantity), 0) AS items,
		COALESCE(SUM(l.quantity * l.price), 0) AS total,
		o.created_at,
		o.updated_at
	FROM orders o
	LEFT JOIN clients c ON c.id = o.client_id
	LEFT JOIN order_lines l ON l.order_id = o.id
`

const orderSummaryGroupBy = `
	GROUP BY o.id, o.number, o.client_id, c.name, o.delivery_address, o.status,
		o.payment_method, o.amount_paid, o.created_at, o.updated_at
`

type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns the orders newest first; orders created in the same instant
// are ordered by number, highest first.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := orderSummarySelect
	args := make([]any, 0, 1)
	if status := query.Status(); status != nil {
		stmt += " WHERE o.status = ?"
		args = append(args, status.String())
	}
	stmt += orderSummaryGroupBy + " ORDER BY o.created_at DESC, o.number DESC"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderSummary(rows *sql.Rows) (OrderSummary, error) {
	var (
		summary      OrderSummary
		id, clientID uuid.UUID
		status       string
		method       sql.NullString
		amountPaid   decimal.NullDecimal
		total        decimal.Decimal
	)
	if err := rows.Scan(
		&id,
		&summary.Number,
		&clientID,
		&summary.ClientName,
		&summary.DeliveryAddress,
		&status,
		&method,
		&amountPaid,
		&summary.Items,
		&total,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	); err != nil {
		return OrderSummary{}, err
	}

	var err error
	if summary.ID, err = toUUID(id); err != nil {
		return OrderSummary{}, err
	}
	if summary.ClientID, err = toUUID(clientID); err != nil {
		return OrderSummary{}, err
	}
	if summary.Status, err = order.ParseStatus(status); err != nil {
		return OrderSummary{}, err
	}
	if method.Valid {
		summary.PaymentMethod = &method.String
	}
	if summary.AmountPaid, err = toOptionalMoney(amountPaid); err != nil {
		return OrderSummary{}, err
	}
	if summary.Total, err = toMoney(total); err != nil {
		return OrderSummary{}, err
	}
	return summary, nil
}
