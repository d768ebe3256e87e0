package services

import (
	"testing"

	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/stretchr/testify/assert"
)

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderItemRequest
		want  float64
	}{
		{"empty", nil, 0},
		{"single", []models.OrderItemRequest{{Quantity: 2, Price: ptr(500.0)}}, 1000},
		{"mixed", []models.OrderItemRequest{
			{Quantity: 2, Price: ptr(250.0)},
			{Quantity: 1, Price: ptr(500.0)},
		}, 1000},
		{"cents do not drift", []models.OrderItemRequest{
			{Quantity: 3, Price: ptr(0.1)},
			{Quantity: 1, Price: ptr(0.2)},
		}, 0.5},
		{"free item", []models.OrderItemRequest{{Quantity: 4, Price: ptr(0.0)}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderTotal(tt.items))
		})
	}
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 600.0, Remaining(1000, 400))
	assert.Equal(t, 0.0, Remaining(1000, 1000))
	assert.Equal(t, -200.0, Remaining(1000, 1200))
	assert.Equal(t, 0.1, Remaining(0.3, 0.2))
}
