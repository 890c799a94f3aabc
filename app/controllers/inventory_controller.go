package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vanij/app/services"
	"github.com/shashiranjanraj/vanij/pkg/bind"
	"github.com/shashiranjanraj/vanij/pkg/response"
)

// InventoryController exposes stock tracking and stock reports over HTTP.
type InventoryController struct {
	service *services.InventoryService
}

func NewInventoryController() *InventoryController {
	return &InventoryController{service: services.NewInventoryService()}
}

// List handles GET /api/inventory.
func (c *InventoryController) List(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryLimit(r, defaultPageSize)
	productID := queryUint(r, "product_id")

	items, err := c.service.List(skip, limit, productID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, items)
}

// Show handles GET /api/inventory/{id}.
func (c *InventoryController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	item, err := c.service.Get(id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, item)
}

// Create handles POST /api/inventory.
func (c *InventoryController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.InventoryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	item, err := c.service.Create(in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, item)
}

// Update handles PUT /api/inventory/{id}.
func (c *InventoryController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	var in services.InventoryUpdateInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	item, err := c.service.Update(id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, item)
}

// Delete handles DELETE /api/inventory/{id}.
func (c *InventoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := c.service.Delete(id); err != nil {
		respondError(w, r, err)
		return
	}
	response.Message(w, "Inventory deleted")
}

// Status handles GET /api/inventory/status.
func (c *InventoryController) Status(w http.ResponseWriter, r *http.Request) {
	report, err := c.service.Status(queryBool(r, "low_stock_only"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, report)
}

// Alerts handles GET /api/inventory/alerts.
func (c *InventoryController) Alerts(w http.ResponseWriter, r *http.Request) {
	threshold, err := queryIntPtr(r, "threshold")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	alerts, err := c.service.Alerts(threshold)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, alerts)
}

// History handles GET /api/inventory/history and
// GET /api/inventory/history/{id}.
func (c *InventoryController) History(w http.ResponseWriter, r *http.Request) {
	inventoryID, err := pathIDOptional(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	start, err := queryTime(r, "start_date")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	end, err := queryTime(r, "end_date")
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	history, err := c.service.History(inventoryID, queryUint(r, "product_id"), start, end)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, history)
}
