package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestion-productos/internal/domain/entity"
)

func TestValidTaxRate(t *testing.T) {
	for in, want := range map[string]bool{"0": true, "21": true, "100": true, "100.01": false, "-0.5": false} {
		assert.Equal(t, want, entity.ValidTaxRate(decimal.RequireFromString(in)), "IVA %s", in)
	}
}

func TestValidUnitPrice(t *testing.T) {
	assert.True(t, entity.ValidUnitPrice(decimal.Zero))
	assert.True(t, entity.ValidUnitPrice(decimal.RequireFromString("0.01")))
	assert.False(t, entity.ValidUnitPrice(decimal.RequireFromString("-0.01")))
}
