package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Corn", Truncate("Corn", 10))
	assert.Equal(t, "Brown Pl…", Truncate("Brown Plant Hopper", 9))
	assert.Equal(t, "", Truncate("Corn", 0))
	assert.Equal(t, 9, Width(Truncate("Brown Plant Hopper", 9)))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "Rice  ", Fit("Rice", 6))
	assert.Equal(t, "  Rice", FitLeft("Rice", 6))
	assert.Equal(t, "Soyb…", Fit("Soybeans", 5))
	assert.Equal(t, 8, Width(Fit("°C", 8)))
}

func TestMaxWidth(t *testing.T) {
	assert.Equal(t, 8, MaxWidth([]string{"Corn", "Soybeans", "Rice"}))
	assert.Equal(t, 0, MaxWidth(nil))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "9.8", Number(9.8))
	assert.Equal(t, "12", Number(12))
	assert.Equal(t, "0", Number(0))
}
