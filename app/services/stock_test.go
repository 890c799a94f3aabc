package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		threshold int
		want      StockStatus
	}{
		{"above threshold", 50, 10, StatusInStock},
		{"just above threshold", 11, 10, StatusInStock},
		{"at threshold", 10, 10, StatusLowStock},
		{"below threshold", 3, 10, StatusLowStock},
		{"zero quantity zero threshold", 0, 0, StatusLowStock},
		{"zero quantity positive threshold", 0, 10, StatusLowStock},
		{"zero quantity negative threshold", 0, -1, StatusOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStock(tt.quantity, tt.threshold))
		})
	}
}
