package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, IsValidStatus(status), status)
	}

	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("pending"))
	assert.False(t, IsValidStatus("Completed"))
}
