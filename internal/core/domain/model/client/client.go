package client

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient constructor")

// Client is the aggregate root for a customer.
type Client struct {
	id      kernel.UUID
	name    string
	address string
	phone   string

	totalOrders int
	totalSpent  kernel.Money

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewClient registers a new client with zeroed aggregates. Name and address are trimmed;
// the name must not be blank.
func NewClient(id kernel.UUID, name, address, phone string, now time.Time) (*Client, error) {
	c := &Client{
		totalSpent:    kernel.ZeroMoney(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}
	c.address = strings.TrimSpace(address)
	c.phone = strings.TrimSpace(phone)

	return c, nil
}

// RestoreClient rebuilds a client from storage, aggregates included.
func RestoreClient(
	id kernel.UUID,
	name, address, phone string,
	totalOrders int,
	totalSpent kernel.Money,
	createdAt, updatedAt time.Time,
) (*Client, error) {
	c, err := NewClient(id, name, address, phone, createdAt)
	if err != nil {
		return nil, err
	}
	if totalOrders < 0 {
		return nil, errs.NewValueIsOutOfRangeError("totalOrders", totalOrders, 0, "unbounded")
	}
	if err = totalSpent.Validate(); err != nil {
		return nil, err
	}
	c.totalOrders = totalOrders
	c.totalSpent = totalSpent
	c.updatedAt = updatedAt
	return c, nil
}

func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

func (c *Client) ID() kernel.UUID {
	return c.id
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) Address() string {
	return c.address
}

func (c *Client) Phone() string {
	return c.phone
}

func (c *Client) TotalOrders() int {
	return c.totalOrders
}

func (c *Client) TotalSpent() kernel.Money {
	return c.totalSpent
}

func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Client) UpdatedAt() time.Time {
	return c.updatedAt
}

// UpdateDetails changes the contact data. Aggregates and createdAt are kept.
func (c *Client) UpdateDetails(name, address, phone string, now time.Time) error {
	if err := c.setName(name); err != nil {
		return err
	}
	c.address = strings.TrimSpace(address)
	c.phone = strings.TrimSpace(phone)
	c.updatedAt = now
	return nil
}

// RecordPayment counts one more paid order worth amount.
func (c *Client) RecordPayment(amount kernel.Money, now time.Time) error {
	spent, err := c.totalSpent.Add(amount)
	if err != nil {
		return fmt.Errorf("record payment for client %s: %w", c.id, err)
	}
	c.totalOrders++
	c.totalSpent = spent
	c.updatedAt = now
	return nil
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
