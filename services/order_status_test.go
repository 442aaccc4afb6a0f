package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DanielaMVG19/sloteats/models"
)

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(models.OrderStatusReceived))
	assert.True(t, ValidOrderStatus(models.OrderStatusPreparing))
	assert.True(t, ValidOrderStatus(models.OrderStatusEnRoute))
	assert.True(t, ValidOrderStatus(models.OrderStatusDelivered))

	assert.False(t, ValidOrderStatus("cancelled"))
	assert.False(t, ValidOrderStatus("burnt"))
	assert.False(t, ValidOrderStatus(""))
}

func TestCheckStatusTarget(t *testing.T) {
	assert.NoError(t, CheckStatusTarget(models.OrderStatusPreparing))

	err := CheckStatusTarget("shipped")
	assert.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
