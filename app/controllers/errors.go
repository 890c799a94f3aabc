package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/vanij/app/services"
	"github.com/shashiranjanraj/vanij/pkg/logger"
	"github.com/shashiranjanraj/vanij/pkg/response"
)

// respondError maps service errors to transport status codes. Anything not
// matched is logged and surfaced as a 500 without leaking internals.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrInventoryNotFound),
		errors.Is(err, services.ErrSaleNotFound),
		errors.Is(err, services.ErrNoSalesData):
		response.NotFound(w, err.Error())
	case errors.Is(err, services.ErrDuplicateInventory):
		response.BadRequest(w, err.Error())
	case errors.Is(err, services.ErrProductInUse):
		response.Conflict(w, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
		response.Internal(w)
	}
}
