package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRouteURL(t *testing.T) {
	r := New()
	r.Get("/products/{id}", "products.show", okHandler)

	url, err := r.URL("products.show", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/products/7", url)

	_, err = r.URL("products.show", nil)
	assert.Error(t, err, "unresolved params fail")

	_, err = r.URL("missing", nil)
	assert.Error(t, err)
}

func TestGroupPrefixes(t *testing.T) {
	r := New()
	api := r.Group("/api")
	sales := api.Group("/sales")
	sales.Get("/revenue/daily", "sales.revenue.daily", okHandler)

	path, ok := r.Path("sales.revenue.daily")
	require.True(t, ok)
	assert.Equal(t, "/api/sales/revenue/daily", path)

	req := httptest.NewRequest(http.MethodGet, "/api/sales/revenue/daily", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutesSorted(t *testing.T) {
	r := New()
	r.Get("/b", "b", okHandler)
	r.Get("/a", "a", okHandler)
	r.Post("/a", "a.store", okHandler)

	infos := r.Routes()
	require.Len(t, infos, 3)
	assert.Equal(t, RouteInfo{Method: http.MethodGet, Path: "/a", Name: "a"}, infos[0])
	assert.Equal(t, RouteInfo{Method: http.MethodPost, Path: "/a", Name: "a.store"}, infos[1])
	assert.Equal(t, RouteInfo{Method: http.MethodGet, Path: "/b", Name: "b"}, infos[2])
}

func TestGroupMiddlewareApplies(t *testing.T) {
	r := New()
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Group", "yes")
			next.ServeHTTP(w, req)
		})
	}

	g := r.Group("/admin", mw)
	g.Get("/ping", "admin.ping", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "yes", rec.Header().Get("X-Group"))
}
