// Package http exposes the order desk over a JSON API built on echo.
package http

import (
	"context"
	"errors"
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/rs/zerolog"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	NextOrderNumber   commands.NextOrderNumberCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	GenerateDrafts    commands.GenerateDailyDraftsCommandHandler
	SaveClient        commands.SaveClientCommandHandler
	DeleteClient      commands.DeleteClientCommandHandler
	SaveProduct       commands.SaveProductCommandHandler
	DeleteProduct     commands.DeleteProductCommandHandler

	GetAllClients  queries.GetAllClientsQueryHandler
	GetAllProducts queries.GetAllProductsQueryHandler
	GetAllOrders   queries.GetAllOrdersQueryHandler
	GetOrder       queries.GetOrderQueryHandler
	GetDrafts      queries.GetDraftsQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h     Handlers
	clock kernel.Clock
	log   zerolog.Logger
}

func NewServer(handlers Handlers, clock kernel.Clock, log zerolog.Logger) *Server {
	return &Server{h: handlers, clock: clock, log: log}
}

// GetClients handles GET /clients.
func (s *Server) GetClients(ctx echo.Context) error {
	clients, err := s.h.GetAllClients.Handle(ctx.Request().Context(), queries.NewGetAllClientsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Client, len(clients))
	for i, c := range clients {
		response[i] = clientFromView(c)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateClient handles POST /clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var body NewClient
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	return s.saveClient(ctx, idOrNew(body.ID), body, http.StatusCreated)
}

// UpdateClient handles PUT /clients/:id.
func (s *Server) UpdateClient(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body NewClient
	if err = s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	return s.saveClient(ctx, id, body, http.StatusOK)
}

func (s *Server) saveClient(ctx echo.Context, id kernel.UUID, body NewClient, status int) error {
	cmd, err := commands.NewSaveClientCommand(id, body.Name, body.Address, body.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}
	c, err := s.h.SaveClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, clientFromDomain(c))
}

// DeleteClient handles DELETE /clients/:id.
func (s *Server) DeleteClient(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteClientCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.DeleteClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /products.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.h.GetAllProducts.Handle(ctx.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = productFromView(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	return s.saveProduct(ctx, idOrNew(body.ID), body, http.StatusCreated)
}

// UpdateProduct handles PUT /products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body NewProduct
	if err = s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	return s.saveProduct(ctx, id, body, http.StatusOK)
}

func (s *Server) saveProduct(ctx echo.Context, id kernel.UUID, body NewProduct, status int) error {
	var price *string
	if body.Price != nil {
		p := body.Price.String()
		price = &p
	}
	cmd, err := commands.NewSaveProductCommand(id, body.Name, price)
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := s.h.SaveProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, productFromDomain(p))
}

// DeleteProduct handles DELETE /products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /orders, optionally filtered with ?status=.
func (s *Server) GetOrders(ctx echo.Context) error {
	var status *string
	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &status)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("status", err))
	}
	var filter string
	if status != nil {
		filter = *status
	}
	query, err := queries.NewGetAllOrdersQuery(filter)
	if err != nil {
		return s.fail(ctx, err)
	}
	orders, err := s.h.GetAllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromSummary(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, id, http.StatusOK)
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	lines := make([]commands.OrderLineInput, len(body.Lines))
	for i, l := range body.Lines {
		productID, err := kernel.UUIDFromBytes(l.ProductID[:])
		if err != nil {
			return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("productId", err))
		}
		lines[i] = commands.OrderLineInput{ProductID: productID, Quantity: l.Quantity}
	}
	clientID, err := kernel.UUIDFromBytes(body.ClientID[:])
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("clientId", err))
	}

	cmd, err := commands.NewCreateOrderCommand(idOrNew(body.ID), clientID, body.DeliveryAddress, lines, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	created, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, created.ID(), http.StatusCreated)
}

// ChangeOrderStatus handles POST /orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body StatusChange
	if err = s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	var amount *string
	if body.AmountPaid != nil {
		a := body.AmountPaid.String()
		amount = &a
	}
	cmd, err := commands.NewUpdateOrderStatusCommand(id, body.Status, body.PaymentMethod, amount)
	if err != nil {
		return s.fail(ctx, err)
	}
	if _, err = s.h.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, id, http.StatusOK)
}

// CancelOrder handles POST /orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if _, err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, id, http.StatusOK)
}

// GetDrafts handles GET /drafts: today's batch as stored, nothing is generated.
func (s *Server) GetDrafts(ctx echo.Context) error {
	query, err := queries.NewGetTodayDraftsQuery(s.clock)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondDrafts(ctx, query, http.StatusOK)
}

// GenerateDrafts handles POST /drafts/generate for the stored catalogs.
func (s *Server) GenerateDrafts(ctx echo.Context) error {
	batch, err := s.h.GenerateDrafts.Handle(ctx.Request().Context(), commands.NewGenerateDailyDraftsFromStoreCommand())
	if err != nil {
		return s.fail(ctx, err)
	}

	day := kernel.Today(s.clock)
	if len(batch) > 0 {
		day = batch[0].GeneratedOn()
	}
	query, err := queries.NewGetDraftsQuery(day)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondDrafts(ctx, query, http.StatusOK)
}

// NextOrderNumber handles POST /sequences/:prefix/next.
func (s *Server) NextOrderNumber(ctx echo.Context) error {
	cmd, err := commands.NewNextOrderNumberCommand(ctx.Param("prefix"))
	if err != nil {
		return s.fail(ctx, err)
	}
	number, err := s.h.NextOrderNumber.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, OrderNumber{Number: number})
}

func (s *Server) respondOrder(ctx echo.Context, id kernel.UUID, status int) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	details, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, orderFromDetails(details))
}

func (s *Server) respondDrafts(ctx echo.Context, query queries.GetDraftsQuery, status int) error {
	drafts, err := s.h.GetDrafts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Draft, len(drafts))
	for i, d := range drafts {
		response[i] = draftFromView(d)
	}
	return ctx.JSON(status, response)
}

func (s *Server) bind(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return ctx.Validate(body)
}

// fail writes err as an Error body: 404 for unknown entities, 409 for refused
// transitions, 400 for malformed input and 500 for everything else.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).
			Str("method", ctx.Request().Method).
			Str("path", ctx.Path()).
			Msg("request failed")
		message = http.StatusText(status)
	}
	return ctx.JSON(status, Error{Code: status, Message: message})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func idOrNew(id *uuid.UUID) kernel.UUID {
	if id != nil {
		if parsed, err := kernel.UUIDFromBytes(id[:]); err == nil {
			return parsed
		}
	}
	return kernel.NewUUID()
}
