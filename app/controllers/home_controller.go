package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vanij/pkg/response"
)

// HomeController serves the API landing route.
type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

// Welcome handles GET /.
func (c *HomeController) Welcome(w http.ResponseWriter, r *http.Request) {
	response.Message(w, "Welcome to the E-commerce Admin API")
}
