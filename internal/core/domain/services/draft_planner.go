package services

import (
	"time"

	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/draft"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/product"
)

// DraftAction is what the generator does with the stored draft batch.
type DraftAction int

const (
	// DraftActionGenerate: no drafts are stored.
	DraftActionGenerate DraftAction = iota
	// DraftActionKeep: every stored draft was generated today.
	DraftActionKeep
	// DraftActionRegenerate: at least one stored draft is from an earlier day.
	DraftActionRegenerate
)

func (a DraftAction) String() string {
	switch a {
	case DraftActionGenerate:
		return "generate"
	case DraftActionKeep:
		return "keep"
	case DraftActionRegenerate:
		return "regenerate"
	default:
		return "unknown"
	}
}

// DraftPair is one client/product combination of the daily batch.
type DraftPair struct {
	Client  *client.Client
	Product *product.Product
}

// DraftPlanner holds the rules of the daily draft batch.
type DraftPlanner struct{}

func NewDraftPlanner() DraftPlanner {
	return DraftPlanner{}
}

func (p DraftPlanner) Decide(existing []*draft.DraftOrder, today kernel.Date) DraftAction {
	switch {
	case len(existing) == 0:
		return DraftActionGenerate
	case draft.IsCurrentBatch(existing, today):
		return DraftActionKeep
	default:
		return DraftActionRegenerate
	}
}

// Pairs returns the cross product of clients and products, clients outermost,
// both in the order given.
func (p DraftPlanner) Pairs(clients []*client.Client, products []*product.Product) ([]DraftPair, error) {
	for _, c := range clients {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	for _, pr := range products {
		if err := pr.Validate(); err != nil {
			return nil, err
		}
	}

	pairs := make([]DraftPair, 0, len(clients)*len(products))
	for _, c := range clients {
		for _, pr := range products {
			pairs = append(pairs, DraftPair{Client: c, Product: pr})
		}
	}
	return pairs, nil
}

// Build creates the pending order for pair, one unit at the current product price
// shipped to the client address, and the draft row indexing it.
func (p DraftPlanner) Build(pair DraftPair, number string, today kernel.Date, now time.Time) (*order.Order, *draft.DraftOrder, error) {
	line, err := order.NewLine(pair.Product.ID(), pair.Product.Name(), 1, pair.Product.Price())
	if err != nil {
		return nil, nil, err
	}
	o, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		pair.Client.ID(),
		pair.Client.Address(),
		[]order.Line{line},
		order.Pending,
		now,
	)
	if err != nil {
		return nil, nil, err
	}
	d, err := draft.NewDraftOrder(kernel.NewUUID(), o, today, now)
	if err != nil {
		return nil, nil, err
	}
	return o, d, nil
}

// DiscardsOrder reports whether a stale draft takes its paired order with it.
// Orders an operator already moved past pending are kept.
func (p DraftPlanner) DiscardsOrder(o *order.Order) bool {
	return o.Status() == order.Pending
}
