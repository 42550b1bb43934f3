package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrGetAllClientsQueryIsNotConstructed = errors.New(
	"GetAllClientsQuery must be created via NewGetAllClientsQuery constructor",
)

// GetAllClientsQuery lists every client with its order statistics.
//
// Example:
//
//	query := NewGetAllClientsQuery()
//	clients, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list clients: %w", err)
//	}
type GetAllClientsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllClientsQuery() GetAllClientsQuery {
	return GetAllClientsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllClientsQueryIsNotConstructed)
}

// ClientView is the read model of a client.
type ClientView struct {
	ID          kernel.UUID
	Name        string
	Address     string
	Phone       string
	TotalOrders int
	TotalSpent  kernel.Money
	CreatedAt   time.Time
}
