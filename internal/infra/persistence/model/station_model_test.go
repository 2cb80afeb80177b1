package model

import (
	"testing"

	"fuelradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceColumns_CoverCatalog(t *testing.T) {
	columns := PriceColumns()
	require.Len(t, columns, len(entity.FuelTypes()))

	seen := make(map[string]entity.FuelType)
	for _, info := range entity.FuelTypes() {
		column, ok := PriceColumn(info.Key)
		require.True(t, ok, "fuel %s has no column", info.Key)

		other, dup := seen[column]
		assert.False(t, dup, "column %s used by %s and %s", column, other, info.Key)
		seen[column] = info.Key
	}
}

func TestStationModel_SetPrice(t *testing.T) {
	m := &StationModel{}

	for _, info := range entity.FuelTypes() {
		require.True(t, m.SetPrice(info.Key, float64(info.Priority)))
	}
	prices := m.Prices()
	require.Len(t, prices, 23)
	assert.InDelta(t, 5.0, prices[entity.FuelGLP], 1e-9)
	require.NotNil(t, m.PrecioGLP)

	assert.True(t, m.SetPrice(entity.FuelGLP, 0))
	assert.Nil(t, m.PrecioGLP)
	assert.NotContains(t, m.Prices(), entity.FuelGLP)

	assert.False(t, m.SetPrice(entity.FuelType("UNKNOWN"), 1.2))
}

func TestStationModel_PricesIgnoresNonPositive(t *testing.T) {
	negative := -1.0
	m := &StationModel{PrecioGasoleoA: &negative}

	assert.Empty(t, m.Prices())
}
