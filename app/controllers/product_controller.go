package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vanij/app/services"
	"github.com/shashiranjanraj/vanij/pkg/bind"
	"github.com/shashiranjanraj/vanij/pkg/response"
)

// ProductController exposes the product catalogue over HTTP.
type ProductController struct {
	service *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{service: services.NewProductService()}
}

// List handles GET /api/products.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryLimit(r, defaultPageSize)
	search := r.URL.Query().Get("search")

	products, err := c.service.List(skip, limit, search)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, products)
}

// Show handles GET /api/products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	product, err := c.service.Get(id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, product)
}

// Create handles POST /api/products.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Create(in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, product)
}

// Update handles PUT /api/products/{id}.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	var in services.ProductUpdateInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Update(id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, product)
}

// Delete handles DELETE /api/products/{id}.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := c.service.Delete(id); err != nil {
		respondError(w, r, err)
		return
	}
	response.Message(w, "Product deleted")
}
