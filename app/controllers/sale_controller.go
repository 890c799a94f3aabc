package controllers

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/vanij/app/repositories"
	"github.com/shashiranjanraj/vanij/app/services"
	"github.com/shashiranjanraj/vanij/pkg/bind"
	"github.com/shashiranjanraj/vanij/pkg/response"
)

// SaleController exposes sale records and the revenue reports over HTTP.
type SaleController struct {
	service *services.SaleService
}

func NewSaleController(service *services.SaleService) *SaleController {
	return &SaleController{service: service}
}

// List handles GET /api/sales.
func (c *SaleController) List(w http.ResponseWriter, r *http.Request) {
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

	sales, err := c.service.List(repositories.SaleFilter{
		Skip:      queryInt(r, "skip", 0),
		Limit:     queryLimit(r, defaultPageSize),
		StartDate: start,
		EndDate:   end,
		ProductID: queryUint(r, "product_id"),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, sales)
}

// Show handles GET /api/sales/{id}.
func (c *SaleController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	sale, err := c.service.Get(id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, sale)
}

// Create handles POST /api/sales.
func (c *SaleController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.SaleInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	sale, err := c.service.Create(in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, sale)
}

// Update handles PUT /api/sales/{id}.
func (c *SaleController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	var in services.SaleUpdateInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	sale, err := c.service.Update(id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, sale)
}

// Delete handles DELETE /api/sales/{id}.
func (c *SaleController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := c.service.Delete(id); err != nil {
		respondError(w, r, err)
		return
	}
	response.Message(w, "Sale deleted")
}

// ProductRevenue handles GET /api/sales/revenue/product/{id}.
func (c *SaleController) ProductRevenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	start, end, ok := c.window(w, r)
	if !ok {
		return
	}

	analytics, err := c.service.ProductRevenue(id, start, end)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, analytics)
}

// Revenue builds the handler for one bucketed revenue report, shared by the
// daily, weekly, monthly and annual routes.
func (c *SaleController) Revenue(mode services.BucketMode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, end, ok := c.window(w, r)
		if !ok {
			return
		}

		report, err := c.service.RevenueReport(mode, start, end)
		if err != nil {
			respondError(w, r, err)
			return
		}
		response.Success(w, report)
	}
}

// Compare handles GET /api/sales/revenue/compare. All four period bounds are
// required.
func (c *SaleController) Compare(w http.ResponseWriter, r *http.Request) {
	bounds := [4]string{"period1_start", "period1_end", "period2_start", "period2_end"}
	parsed := [4]time.Time{}
	missing := map[string]string{}

	for i, name := range bounds {
		t, err := queryTime(r, name)
		if err != nil {
			response.BadRequest(w, err.Error())
			return
		}
		if t == nil {
			missing[name] = "required"
			continue
		}
		parsed[i] = *t
	}
	if len(missing) > 0 {
		response.ValidationError(w, missing)
		return
	}

	comparison, err := c.service.Compare(parsed[0], parsed[1], parsed[2], parsed[3])
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, comparison)
}

// Export handles POST /api/sales/revenue/export.
func (c *SaleController) Export(w http.ResponseWriter, r *http.Request) {
	mode := services.BucketMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = services.BucketDaily
	}
	if !services.ValidBucketMode(mode) {
		response.BadRequest(w, "invalid mode, want daily, weekly, monthly or annual")
		return
	}

	start, end, ok := c.window(w, r)
	if !ok {
		return
	}

	export, err := c.service.Export(mode, start, end)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, export)
}

func (c *SaleController) window(w http.ResponseWriter, r *http.Request) (start, end *time.Time, ok bool) {
	start, err := queryTime(r, "start_date")
	if err != nil {
		response.BadRequest(w, err.Error())
		return nil, nil, false
	}
	end, err = queryTime(r, "end_date")
	if err != nil {
		response.BadRequest(w, err.Error())
		return nil, nil, false
	}
	return start, end, true
}
