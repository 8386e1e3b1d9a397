package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsShortOrderId(t *testing.T) {
	assert.True(t, IsShortOrderId("12345"))
	assert.True(t, IsShortOrderId("123456"))
	assert.True(t, IsShortOrderId("1234567"))

	assert.False(t, IsShortOrderId("1234"))
	assert.False(t, IsShortOrderId("12345678"))
	assert.False(t, IsShortOrderId("12a45"))
	assert.False(t, IsShortOrderId(""))
	assert.False(t, IsShortOrderId("64f1c0ffee"))
}

// A collision on the first draw must produce a second, distinct id.
func TestGenerateOrderIdRetriesOnCollision(t *testing.T) {
	draws := []string{"11111", "11111", "22222"}
	draw := func() string {
		id := draws[0]
		draws = draws[1:]
		return id
	}
	exists := func(id string) (bool, error) {
		return id == "11111", nil
	}

	id, err := GenerateOrderId(draw, exists)
	require.NoError(t, err)
	assert.Equal(t, "22222", id)
}

func TestGenerateOrderIdFirstDrawUnique(t *testing.T) {
	checked := 0
	id, err := GenerateOrderId(
		func() string { return "54321" },
		func(id string) (bool, error) { checked++; return false, nil },
	)
	require.NoError(t, err)
	assert.Equal(t, "54321", id)
	assert.Equal(t, 1, checked)
}

func TestGenerateOrderIdPropagatesCheckError(t *testing.T) {
	boom := errors.New("db down")
	_, err := GenerateOrderId(
		func() string { return "54321" },
		func(id string) (bool, error) { return false, boom },
	)
	assert.ErrorIs(t, err, boom)
}

func TestRandomOrderIdFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := RandomOrderId()
		assert.True(t, IsShortOrderId(id), "draw %q is not a 5-7 digit id", id)
	}
}

func TestRandomProductIdIsSixDigits(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := RandomProductId()
		require.Len(t, id, 6)
	}
}
