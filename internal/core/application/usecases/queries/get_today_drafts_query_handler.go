package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetDraftsQueryHandler struct {
	db *gorm.DB
}

func NewGetDraftsQueryHandler(db *gorm.DB) GetDraftsQueryHandler {
	return GetDraftsQueryHandler{db: db}
}

func (h GetDraftsQueryHandler) Handle(ctx context.Context, query GetDraftsQuery) ([]DraftView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.order_number,
			COALESCE(o.status, '') AS order_status,
			d.client_id,
			d.product_id,
			d.product_name,
			d.quantity,
			d.price,
			d.delivery_address,
			d.generated_on
		FROM draft_orders d
		LEFT JOIN orders o ON o.id = d.order_id
		WHERE d.generated_on = ?
		ORDER BY d.created_at, d.order_number
	`, query.Day().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drafts := make([]DraftView, 0)
	for rows.Next() {
		var (
			view                          DraftView
			id, orderID, clientID, prodID uuid.UUID
			status, generatedOn           string
			price                         decimal.Decimal
		)
		if err = rows.Scan(
			&id,
			&orderID,
			&view.OrderNumber,
			&status,
			&clientID,
			&prodID,
			&view.ProductName,
			&view.Quantity,
			&price,
			&view.DeliveryAddress,
			&generatedOn,
		); err != nil {
			return nil, err
		}

		if view.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if view.OrderID, err = toUUID(orderID); err != nil {
			return nil, err
		}
		if view.ClientID, err = toUUID(clientID); err != nil {
			return nil, err
		}
		if view.ProductID, err = toUUID(prodID); err != nil {
			return nil, err
		}
		if status != "" {
			if view.OrderStatus, err = order.ParseStatus(status); err != nil {
				return nil, err
			}
		}
		if view.Price, err = toMoney(price); err != nil {
			return nil, err
		}
		if view.GeneratedOn, err = kernel.ParseDate(generatedOn); err != nil {
			return nil, err
		}
		drafts = append(drafts, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drafts, nil
}
