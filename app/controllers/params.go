package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// defaultPageSize bounds listings when the caller sends no limit.
const defaultPageSize = 100

// pathID reads the {id} route parameter as a positive integer.
func pathID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// pathIDOptional reads the {id} route parameter when the route carries one;
// routes without it yield zero.
func pathIDOptional(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, nil
	}
	return pathID(r)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent, unparsable, or negative.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// queryLimit reads the limit parameter; non-positive values fall back to def
// so a crafted limit can never lift the page bound.
func queryLimit(r *http.Request, def int) int {
	n := queryInt(r, "limit", def)
	if n <= 0 {
		return def
	}
	return n
}

// queryUint reads an unsigned integer query parameter, zero when absent.
func queryUint(r *http.Request, name string) uint {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}

// queryIntPtr reads an optional integer query parameter; absent means nil.
func queryIntPtr(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &n, nil
}

// queryBool reads a boolean query parameter. Only "true" and "1" are truthy.
func queryBool(r *http.Request, name string) bool {
	raw := r.URL.Query().Get(name)
	return raw == "true" || raw == "1"
}

// queryTime reads an optional timestamp query parameter. RFC 3339 and plain
// dates are both accepted; absent means nil.
func queryTime(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q, want RFC 3339 or YYYY-MM-DD", name, raw)
	}
	return &t, nil
}
