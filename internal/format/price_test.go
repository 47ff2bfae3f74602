package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserPrice(t *testing.T) {
	assert.Equal(t, "₩0", UserPrice(0))
	assert.Equal(t, "₩999", UserPrice(999))
	assert.Equal(t, "₩10,000", UserPrice(10000))
	assert.Equal(t, "₩1,234,567", UserPrice(1234567))
}

func TestAdminPrice(t *testing.T) {
	assert.Equal(t, "10,000원", AdminPrice(10000))
	assert.Equal(t, "500원", AdminPrice(500))
}

func TestProductPrice(t *testing.T) {
	assert.Equal(t, SoldOut, ProductPrice(10000, 0, false))
	assert.Equal(t, SoldOut, ProductPrice(10000, -1, true))
	assert.Equal(t, "₩10,000", ProductPrice(10000, 3, false))
	assert.Equal(t, "10,000원", ProductPrice(10000, 3, true))
}
