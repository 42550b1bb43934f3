package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

// GetAllProductsQuery lists the product catalog with current prices.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// ProductView is the read model of a product. OrderCount is the number of
// units sold in paid orders.
type ProductView struct {
	ID         kernel.UUID
	Name       string
	Price      kernel.Money
	OrderCount int
	CreatedAt  time.Time
}
