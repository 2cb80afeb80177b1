package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuelTypes_PriorityOrder(t *testing.T) {
	fuels := FuelTypes()
	require.Len(t, fuels, 23)

	assert.Equal(t, PrimaryFuel, fuels[0].Key)
	for i, info := range fuels {
		assert.Equal(t, i+1, info.Priority, "fuel %s", info.Key)
		assert.NotEmpty(t, info.FeedField)
		assert.True(t, info.Key.Valid())
	}
}

func TestFuelTypes_ReturnsCopy(t *testing.T) {
	fuels := FuelTypes()
	fuels[0].DisplayName = "changed"

	assert.Equal(t, "Gasolina 95 E5", FuelTypes()[0].DisplayName)
}

func TestLookupFuelType(t *testing.T) {
	info, ok := LookupFuelType("GLP")
	require.True(t, ok)
	assert.Equal(t, "Precio Gases licuados del petróleo", info.FeedField)

	_, ok = LookupFuelType("KEROSENO")
	assert.False(t, ok)
	assert.Equal(t, "KEROSENO", FuelType("KEROSENO").DisplayName())
	assert.Equal(t, "Gasóleo A", FuelGasoleoA.DisplayName())
}

func TestMunicipalityCatalog(t *testing.T) {
	all := Municipalities()
	require.Len(t, all, 31)

	seen := make(map[int]bool)
	for _, m := range all {
		assert.False(t, seen[m.ID], "duplicate id %d", m.ID)
		seen[m.ID] = true
	}

	m, ok := LookupMunicipality("ADEJE")
	require.True(t, ok)
	assert.Equal(t, 5691, m.ID)

	m, ok = MunicipalityByDisplayName("Santa Cruz de Tenerife")
	require.True(t, ok)
	assert.Equal(t, "SANTA_CRUZ", m.Key)

	m, ok = MunicipalityByID(5710)
	require.True(t, ok)
	assert.Equal(t, "Güímar", m.DisplayName)

	_, ok = MunicipalityByDisplayName("adeje")
	assert.False(t, ok)
}

func TestResolveMunicipality(t *testing.T) {
	byKey, ok := ResolveMunicipality("LA_LAGUNA")
	require.True(t, ok)
	byName, ok := ResolveMunicipality("San Cristóbal de La Laguna")
	require.True(t, ok)
	assert.Equal(t, byKey, byName)

	_, ok = ResolveMunicipality("Madrid")
	assert.False(t, ok)
}

func TestSearchMunicipalities(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{term: "guimar", want: []string{"GUIMAR"}},
		{term: "SANTA", want: []string{"SANTA_CRUZ", "SANTA_URSULA"}},
		{term: "acentejo", want: []string{"LA_MATANZA", "LA_VICTORIA"}},
		{term: "  ", want: nil},
		{term: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			var got []string
			for _, m := range SearchMunicipalities(tt.term) {
				got = append(got, m.Key)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStationPrice(t *testing.T) {
	s := &Station{Prices: map[FuelType]float64{
		FuelGasolina95E5: 1.459,
		FuelGasoleoA:     0,
		FuelGLP:          -1,
	}}

	price, ok := s.Price(FuelGasolina95E5)
	assert.True(t, ok)
	assert.InDelta(t, 1.459, price, 1e-9)

	_, ok = s.Price(FuelGasoleoA)
	assert.False(t, ok)
	_, ok = s.Price(FuelGLP)
	assert.False(t, ok)
	_, ok = s.Price(FuelMetanol)
	assert.False(t, ok)

	var nilStation *Station
	_, ok = nilStation.Price(FuelGasolina95E5)
	assert.False(t, ok)
}
