package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderdesk/internal/adapters/out/gormdb"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "1"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", errs.NewObjectNotFoundError("client", "1")), http.StatusNotFound},
		{"transition", errs.NewInvalidTransitionError("order", "paid", "cancelled"), http.StatusConflict},
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 10), http.StatusBadRequest},
		{"cancelled", context.Canceled, http.StatusServiceUnavailable},
		{"other", errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusOf(tc.err))
		})
	}
}

func TestRequestValidator(t *testing.T) {
	v := NewRequestValidator()

	t.Run("valid order", func(t *testing.T) {
		body := NewOrder{
			ClientID: [16]byte{1},
			Status:   "pending",
			Lines:    []NewOrderLine{{ProductID: [16]byte{2}, Quantity: 3}},
		}
		require.NoError(t, v.Validate(&body))
	})

	t.Run("reports json field paths", func(t *testing.T) {
		body := NewOrder{
			ClientID: [16]byte{1},
			Status:   "paid",
			Lines:    []NewOrderLine{{ProductID: [16]byte{2}, Quantity: 0}},
		}

		err := v.Validate(&body)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "status must be one of [pending confirmed]")
		assert.Contains(t, err.Error(), "lines[0].quantity is required")
	})
}

func TestGetOrders_StatusFilter(t *testing.T) {
	db, err := gormdb.Open(gormdb.Options{Driver: gormdb.DriverSQLite, DSN: gormdb.InMemoryDSN(), Logger: zerolog.Nop()})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})
	server := NewServer(Handlers{GetAllOrders: queries.NewGetAllOrdersQueryHandler(db)}, nil, zerolog.Nop())

	testCases := []struct {
		name   string
		target string
		want   int
	}{
		{"no filter", "/orders", http.StatusOK},
		{"empty filter", "/orders?status=", http.StatusOK},
		{"known status", "/orders?status=paid", http.StatusOK},
		{"unknown status", "/orders?status=lost", http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, tc.target, nil), rec)

			require.NotPanics(t, func() { require.NoError(t, server.GetOrders(ctx)) })
			assert.Equal(t, tc.want, rec.Code)
			if tc.want == http.StatusOK {
				assert.JSONEq(t, `[]`, rec.Body.String())
			}
		})
	}
}
