package services_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func address(t *testing.T, country, postal string) shipment.Address {
	t.Helper()
	a, err := shipment.NewAddress(country, "", postal)
	require.NoError(t, err)
	return a
}

func newShipment(t *testing.T, weight float64, mode kernel.TransportMode, items ...shipment.Item) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), address(t, "KZ", ""), address(t, "KZ", ""), weight, items)
	require.NoError(t, err)
	if mode != "" {
		require.NoError(t, s.RequestTransportMode(mode))
	}
	return s
}

func item(t *testing.T, l, w, h float64, qty int) shipment.Item {
	t.Helper()
	i, err := shipment.NewItem(l, w, h, qty)
	require.NoError(t, err)
	return i
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func floatPtr(f float64) *float64 {
	return &f
}

func uuidPtr(id kernel.UUID) *kernel.UUID {
	return &id
}
