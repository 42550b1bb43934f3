package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// EchoRouter is the subset of *echo.Echo and *echo.Group used to register routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every endpoint of s on router.
func RegisterHandlers(router EchoRouter, s *Server) {
	router.GET("/health", Health)

	router.GET("/clients", s.GetClients)
	router.POST("/clients", s.CreateClient)
	router.PUT("/clients/:id", s.UpdateClient)
	router.DELETE("/clients/:id", s.DeleteClient)

	router.GET("/products", s.GetProducts)
	router.POST("/products", s.CreateProduct)
	router.PUT("/products/:id", s.UpdateProduct)
	router.DELETE("/products/:id", s.DeleteProduct)

	router.GET("/orders", s.GetOrders)
	router.POST("/orders", s.CreateOrder)
	router.GET("/orders/:id", s.GetOrder)
	router.POST("/orders/:id/status", s.ChangeOrderStatus)
	router.POST("/orders/:id/cancel", s.CancelOrder)

	router.GET("/drafts", s.GetDrafts)
	router.POST("/drafts/generate", s.GenerateDrafts)

	router.POST("/sequences/:prefix/next", s.NextOrderNumber)
}

// Health handles GET /health.
func Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
