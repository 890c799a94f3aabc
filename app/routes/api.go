// Package routes wires the HTTP surface to the controllers.
package routes

import (
	"github.com/shashiranjanraj/vanij/app/controllers"
	"github.com/shashiranjanraj/vanij/app/services"
	"github.com/shashiranjanraj/vanij/config"
	"github.com/shashiranjanraj/vanij/pkg/metrics"
	"github.com/shashiranjanraj/vanij/pkg/router"
)

// RegisterAPI mounts every route of the admin API.
func RegisterAPI(r *router.Router, cfg *config.Config) {
	home := controllers.NewHomeController()
	products := controllers.NewProductController()
	inventory := controllers.NewInventoryController()
	sales := controllers.NewSaleController(services.NewSaleService(cfg))

	r.Get("/", "home", home.Welcome)
	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")

	p := api.Group("/products")
	p.Get("/", "products.index", products.List)
	p.Post("/", "products.store", products.Create)
	p.Get("/{id}", "products.show", products.Show)
	p.Put("/{id}", "products.update", products.Update)
	p.Delete("/{id}", "products.destroy", products.Delete)

	inv := api.Group("/inventory")
	inv.Get("/", "inventory.index", inventory.List)
	inv.Post("/", "inventory.store", inventory.Create)
	inv.Get("/status", "inventory.status", inventory.Status)
	inv.Get("/alerts", "inventory.alerts", inventory.Alerts)
	inv.Get("/history", "inventory.history", inventory.History)
	inv.Get("/history/{id}", "inventory.history.show", inventory.History)
	inv.Get("/{id}", "inventory.show", inventory.Show)
	inv.Put("/{id}", "inventory.update", inventory.Update)
	inv.Delete("/{id}", "inventory.destroy", inventory.Delete)

	s := api.Group("/sales")
	s.Get("/", "sales.index", sales.List)
	s.Post("/", "sales.store", sales.Create)
	s.Get("/revenue/daily", "sales.revenue.daily", sales.Revenue(services.BucketDaily))
	s.Get("/revenue/weekly", "sales.revenue.weekly", sales.Revenue(services.BucketWeekly))
	s.Get("/revenue/monthly", "sales.revenue.monthly", sales.Revenue(services.BucketMonthly))
	s.Get("/revenue/annual", "sales.revenue.annual", sales.Revenue(services.BucketAnnual))
	s.Get("/revenue/compare", "sales.revenue.compare", sales.Compare)
	s.Get("/revenue/product/{id}", "sales.revenue.product", sales.ProductRevenue)
	s.Post("/revenue/export", "sales.revenue.export", sales.Export)
	s.Get("/{id}", "sales.show", sales.Show)
	s.Put("/{id}", "sales.update", sales.Update)
	s.Delete("/{id}", "sales.destroy", sales.Delete)
}
