// Package collection provides generic, functional-style helpers for slices:
// Map, Filter, First, GroupBy, SortBy, Reduce, Contains.
//
// Usage:
//
//	names := collection.Map(products, func(p models.Product) string { return p.Name })
//	low := collection.Filter(items, func(i Item) bool { return i.Quantity <= i.Threshold })
//	byDay := collection.GroupBy(sales, func(s models.Sale) string { return s.SaleDate.Format("2006-01-02") })
package collection

import "sort"

// Map transforms each element of slice s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// First returns the first element matching fn, or (zero, false).
func First[T any](s []T, fn func(T) bool) (T, bool) {
	for _, v := range s {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// GroupBy partitions s into a map keyed by fn.
func GroupBy[T any, K comparable](s []T, fn func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, v := range s {
		k := fn(v)
		out[k] = append(out[k], v)
	}
	return out
}

// SortBy returns a copy of s sorted ascending by the key fn produces.
func SortBy[T any, K int | int64 | float64 | string](s []T, fn func(T) K) []T {
	out := append([]T(nil), s...)
	sort.SliceStable(out, func(i, j int) bool { return fn(out[i]) < fn(out[j]) })
	return out
}

// Reduce folds s into a single value starting from init.
func Reduce[T, R any](s []T, init R, fn func(R, T) R) R {
	acc := init
	for _, v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// Contains reports whether s contains v.
func Contains[T comparable](s []T, v T) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}
