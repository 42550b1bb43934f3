package http

import (
	"time"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewClient is the body of POST /clients and PUT /clients/:id. On POST a
// missing id is generated.
type NewClient struct {
	ID      *uuid.UUID `json:"id,omitempty"`
	Name    string     `json:"name"              validate:"required,max=255"`
	Address string     `json:"address,omitempty" validate:"max=512"`
	Phone   string     `json:"phone,omitempty"   validate:"max=64"`
}

type Client struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	TotalOrders int       `json:"totalOrders"`
	TotalSpent  string    `json:"totalSpent"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewProduct is the body of POST /products and PUT /products/:id. A missing
// price means zero.
type NewProduct struct {
	ID    *uuid.UUID       `json:"id,omitempty"`
	Name  string           `json:"name" validate:"required,max=255"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

type Product struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Price      string    `json:"price"`
	OrderCount int       `json:"orderCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

type NewOrderLine struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity"  validate:"required,gt=0"`
}

// NewOrder is the body of POST /orders. Status is pending or confirmed,
// confirmed when empty; an empty delivery address means the client's.
type NewOrder struct {
	ID              *uuid.UUID     `json:"id,omitempty"`
	ClientID        uuid.UUID      `json:"clientId"                  validate:"required"`
	DeliveryAddress string         `json:"deliveryAddress,omitempty" validate:"max=512"`
	Status          string         `json:"status,omitempty"          validate:"omitempty,oneof=pending confirmed"`
	Lines           []NewOrderLine `json:"lines"                     validate:"required,min=1,dive"`
}

// StatusChange is the body of POST /orders/:id/status.
type StatusChange struct {
	Status        string           `json:"status"                  validate:"required"`
	PaymentMethod *string          `json:"paymentMethod,omitempty" validate:"omitempty,max=64"`
	AmountPaid    *decimal.Decimal `json:"amountPaid,omitempty"`
}

type OrderLine struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     string    `json:"price"`
	Total     string    `json:"total"`
}

type Order struct {
	ID              uuid.UUID   `json:"id"`
	Number          string      `json:"number"`
	ClientID        uuid.UUID   `json:"clientId"`
	ClientName      string      `json:"clientName"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Status          string      `json:"status"`
	PaymentMethod   *string     `json:"paymentMethod,omitempty"`
	AmountPaid      *string     `json:"amountPaid,omitempty"`
	Items           int         `json:"items"`
	Total           string      `json:"total"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	Lines           []OrderLine `json:"lines,omitempty"`
}

type Draft struct {
	ID              uuid.UUID `json:"id"`
	OrderID         uuid.UUID `json:"orderId"`
	OrderNumber     string    `json:"orderNumber"`
	OrderStatus     string    `json:"orderStatus,omitempty"`
	ClientID        uuid.UUID `json:"clientId"`
	ProductID       uuid.UUID `json:"productId"`
	ProductName     string    `json:"productName"`
	Quantity        int       `json:"quantity"`
	Price           string    `json:"price"`
	DeliveryAddress string    `json:"deliveryAddress"`
	GeneratedOn     string    `json:"generatedOn"`
}

type OrderNumber struct {
	Number string `json:"number"`
}

func clientFromView(v queries.ClientView) Client {
	return Client{
		ID:          v.ID.Bytes(),
		Name:        v.Name,
		Address:     v.Address,
		Phone:       v.Phone,
		TotalOrders: v.TotalOrders,
		TotalSpent:  v.TotalSpent.String(),
		CreatedAt:   v.CreatedAt,
	}
}

func clientFromDomain(c *client.Client) Client {
	return Client{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		Address:     c.Address(),
		Phone:       c.Phone(),
		TotalOrders: c.TotalOrders(),
		TotalSpent:  c.TotalSpent().String(),
		CreatedAt:   c.CreatedAt(),
	}
}

func productFromView(v queries.ProductView) Product {
	return Product{
		ID:         v.ID.Bytes(),
		Name:       v.Name,
		Price:      v.Price.String(),
		OrderCount: v.OrderCount,
		CreatedAt:  v.CreatedAt,
	}
}

func productFromDomain(p *product.Product) Product {
	return Product{
		ID:         p.ID().Bytes(),
		Name:       p.Name(),
		Price:      p.Price().String(),
		OrderCount: p.OrderCount(),
		CreatedAt:  p.CreatedAt(),
	}
}

func orderFromSummary(v queries.OrderSummary) Order {
	o := Order{
		ID:              v.ID.Bytes(),
		Number:          v.Number,
		ClientID:        v.ClientID.Bytes(),
		ClientName:      v.ClientName,
		DeliveryAddress: v.DeliveryAddress,
		Status:          v.Status.String(),
		PaymentMethod:   v.PaymentMethod,
		Items:           v.Items,
		Total:           v.Total.String(),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
	if v.AmountPaid != nil {
		amount := v.AmountPaid.String()
		o.AmountPaid = &amount
	}
	return o
}

func orderFromDetails(v queries.OrderDetails) Order {
	o := orderFromSummary(v.OrderSummary)
	o.Lines = make([]OrderLine, len(v.Lines))
	for i, l := range v.Lines {
		o.Lines[i] = OrderLine{
			ProductID: l.ProductID.Bytes(),
			Name:      l.Name,
			Quantity:  l.Quantity,
			Price:     l.Price.String(),
			Total:     l.Total.String(),
		}
	}
	return o
}

func draftFromView(v queries.DraftView) Draft {
	d := Draft{
		ID:              v.ID.Bytes(),
		OrderID:         v.OrderID.Bytes(),
		OrderNumber:     v.OrderNumber,
		ClientID:        v.ClientID.Bytes(),
		ProductID:       v.ProductID.Bytes(),
		ProductName:     v.ProductName,
		Quantity:        v.Quantity,
		Price:           v.Price.String(),
		DeliveryAddress: v.DeliveryAddress,
		GeneratedOn:     v.GeneratedOn.String(),
	}
	if v.OrderStatus != order.Unknown {
		d.OrderStatus = v.OrderStatus.String()
	}
	return d
}
