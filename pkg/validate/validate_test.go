package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestRequired(t *testing.T) {
	type payload struct {
		Name  string  `json:"name" validate:"required"`
		Price float64 `json:"price" validate:"required"`
	}

	errs := Struct(&payload{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "price")

	errs = Struct(&payload{Name: "Desk Lamp", Price: 29.99})
	assert.Empty(t, errs)
}

func TestRequiredTime(t *testing.T) {
	type payload struct {
		SaleDate time.Time `json:"sale_date" validate:"required"`
	}

	errs := Struct(&payload{})
	assert.Contains(t, errs, "sale_date")

	errs = Struct(&payload{SaleDate: time.Now()})
	assert.Empty(t, errs)
}

func TestNumericBounds(t *testing.T) {
	type payload struct {
		Quantity int     `json:"quantity" validate:"gte=0"`
		Price    float64 `json:"price" validate:"gt=0"`
	}

	errs := Struct(&payload{Quantity: -1, Price: 0})
	assert.Contains(t, errs, "quantity")
	assert.Contains(t, errs, "price")

	errs = Struct(&payload{Quantity: 0, Price: 0.01})
	assert.Empty(t, errs)
}

func TestNullablePointerSkipsWhenNil(t *testing.T) {
	type payload struct {
		Price *float64 `json:"price" validate:"nullable,gt=0"`
	}

	assert.Empty(t, Struct(&payload{}))

	errs := Struct(&payload{Price: ptr(0.0)})
	assert.Contains(t, errs, "price")

	assert.Empty(t, Struct(&payload{Price: ptr(10.0)}))
}

func TestStringLength(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required,max=5"`
	}

	errs := Struct(&payload{Name: "too long for this"})
	assert.Contains(t, errs, "name")

	assert.Empty(t, Struct(&payload{Name: "ok"}))
}

func TestInKeepsMultiValueParams(t *testing.T) {
	type payload struct {
		Mode string `json:"mode" validate:"required,in=daily,weekly,monthly,annual"`
	}

	assert.Empty(t, Struct(&payload{Mode: "weekly"}))

	errs := Struct(&payload{Mode: "hourly"})
	assert.Contains(t, errs, "mode")
}

func TestBetween(t *testing.T) {
	type payload struct {
		Rating int `json:"rating" validate:"between=1,5"`
	}

	assert.Empty(t, Struct(&payload{Rating: 3}))

	errs := Struct(&payload{Rating: 9})
	assert.Contains(t, errs, "rating")
}

func TestFirstFailingRuleWins(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required,min=3"`
	}

	errs := Struct(&payload{})
	assert.Equal(t, "The name field is required.", errs["name"])
}
