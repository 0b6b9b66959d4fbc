package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "0,00", formatQuantity(decimal.Zero))
	assert.Equal(t, "65,00", formatQuantity(decimal.NewFromInt(65)))
	assert.Equal(t, "1.234,50", formatQuantity(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "-1.000.000,25", formatQuantity(decimal.RequireFromString("-1000000.25")))
}

func TestReferenceLabel(t *testing.T) {
	assert.Equal(t, "Pedido #4", referenceLabel(entity.OrderRef(4)))
	assert.Equal(t, "Compra #9", referenceLabel(entity.ProcurementRef(9)))
	assert.Equal(t, "-", referenceLabel(entity.MovementReference{}))
}
