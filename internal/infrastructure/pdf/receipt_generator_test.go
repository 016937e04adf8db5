package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaosShot/zapateria-pos/internal/domain/entity"
	"github.com/HaosShot/zapateria-pos/internal/infrastructure/pdf"
)

func sampleSale() *entity.Sale {
	return &entity.Sale{
		ID:           "5f0c2c6e-0000-0000-0000-000000000001",
		ProductName:  "SneakerX",
		Brand:        "Nike",
		Size:         "42",
		Quantity:     3,
		UnitPrice:    decimal.RequireFromString("59.99"),
		TotalPrice:   decimal.RequireFromString("179.97"),
		SoldBy:       "worker-1",
		CustomerName: "María",
		SaleDate:     time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC),
	}
}

func TestGenerateReceipt_ProduceUnPDF(t *testing.T) {
	g := pdf.NewReceiptGenerator("Zapatería El Paso")

	data, err := g.GenerateReceipt(context.Background(), sampleSale())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// Magic number del formato PDF
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateReceipt_SinClienteTambienGenera(t *testing.T) {
	g := pdf.NewReceiptGenerator("Zapatería El Paso")
	sale := sampleSale()
	sale.CustomerName = ""

	data, err := g.GenerateReceipt(context.Background(), sale)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
