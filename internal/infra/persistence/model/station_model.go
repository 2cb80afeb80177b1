package model

import (
	"time"

	"fuelradar/internal/domain/entity"
)

// StationModel is the GORM-specific struct for the 'stations' table.
// Each fuel has its own nullable price column; NULL or non-positive means not sold.
type StationModel struct {
	ID               string   `gorm:"type:varchar(20);primaryKey"`
	MunicipalityID   int      `gorm:"not null;index"`
	MunicipalityName string   `gorm:"type:varchar(100)"`
	Locality         string   `gorm:"type:varchar(100)"`
	Name             string   `gorm:"type:varchar(255)"`
	Address          string   `gorm:"type:varchar(255)"`
	PostalCode       string   `gorm:"type:varchar(10)"`
	OpeningHours     string   `gorm:"type:varchar(255)"`
	Latitude         *float64 `gorm:"index:idx_stations_location,priority:1"`
	Longitude        *float64 `gorm:"index:idx_stations_location,priority:2"`

	PrecioGasolina95E5            *float64 `gorm:"column:precio_gasolina95_e5"`
	PrecioGasoleoA                *float64 `gorm:"column:precio_gasoleo_a"`
	PrecioGasolina98E5            *float64 `gorm:"column:precio_gasolina98_e5"`
	PrecioGasoleoPremium          *float64 `gorm:"column:precio_gasoleo_premium"`
	PrecioGLP                     *float64 `gorm:"column:precio_gases_licuados_del_petroleo"`
	PrecioGasoleoB                *float64 `gorm:"column:precio_gasoleo_b"`
	PrecioAdblue                  *float64 `gorm:"column:precio_adblue"`
	PrecioGasNaturalLicuado       *float64 `gorm:"column:precio_gas_natural_licuado"`
	PrecioGasNaturalComprimido    *float64 `gorm:"column:precio_gas_natural_comprimido"`
	PrecioGasolina95E10           *float64 `gorm:"column:precio_gasolina95_e10"`
	PrecioGasolina95E25           *float64 `gorm:"column:precio_gasolina95_e25"`
	PrecioGasolina95E85           *float64 `gorm:"column:precio_gasolina95_e85"`
	PrecioGasolina98E10           *float64 `gorm:"column:precio_gasolina98_e10"`
	PrecioGasolina95E5Premium     *float64 `gorm:"column:precio_gasolina95_e5_premium"`
	PrecioHidrogeno               *float64 `gorm:"column:precio_hidrogeno"`
	PrecioBiodiesel               *float64 `gorm:"column:precio_biodiesel"`
	PrecioBioetanol               *float64 `gorm:"column:precio_bioetanol"`
	PrecioGasolinaRenovable       *float64 `gorm:"column:precio_gasolina_renovable"`
	PrecioDieselRenovable         *float64 `gorm:"column:precio_diesel_renovable"`
	PrecioBiogasNaturalComprimido *float64 `gorm:"column:precio_biogas_natural_comprimido"`
	PrecioBiogasNaturalLicuado    *float64 `gorm:"column:precio_biogas_natural_licuado"`
	PrecioAmoniaco                *float64 `gorm:"column:precio_amoniaco"`
	PrecioMetanol                 *float64 `gorm:"column:precio_metanol"`

	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StationModel) TableName() string {
	return "stations"
}

type priceField struct {
	column string
	field  func(m *StationModel) **float64
}

// priceFields maps every catalog fuel to its column and struct field.
var priceFields = map[entity.FuelType]priceField{
	entity.FuelGasolina95E5:            {"precio_gasolina95_e5", func(m *StationModel) **float64 { return &m.PrecioGasolina95E5 }},
	entity.FuelGasoleoA:                {"precio_gasoleo_a", func(m *StationModel) **float64 { return &m.PrecioGasoleoA }},
	entity.FuelGasolina98E5:            {"precio_gasolina98_e5", func(m *StationModel) **float64 { return &m.PrecioGasolina98E5 }},
	entity.FuelGasoleoPremium:          {"precio_gasoleo_premium", func(m *StationModel) **float64 { return &m.PrecioGasoleoPremium }},
	entity.FuelGLP:                     {"precio_gases_licuados_del_petroleo", func(m *StationModel) **float64 { return &m.PrecioGLP }},
	entity.FuelGasoleoB:                {"precio_gasoleo_b", func(m *StationModel) **float64 { return &m.PrecioGasoleoB }},
	entity.FuelAdBlue:                  {"precio_adblue", func(m *StationModel) **float64 { return &m.PrecioAdblue }},
	entity.FuelGasNaturalLicuado:       {"precio_gas_natural_licuado", func(m *StationModel) **float64 { return &m.PrecioGasNaturalLicuado }},
	entity.FuelGasNaturalComprimido:    {"precio_gas_natural_comprimido", func(m *StationModel) **float64 { return &m.PrecioGasNaturalComprimido }},
	entity.FuelGasolina95E10:           {"precio_gasolina95_e10", func(m *StationModel) **float64 { return &m.PrecioGasolina95E10 }},
	entity.FuelGasolina95E25:           {"precio_gasolina95_e25", func(m *StationModel) **float64 { return &m.PrecioGasolina95E25 }},
	entity.FuelGasolina95E85:           {"precio_gasolina95_e85", func(m *StationModel) **float64 { return &m.PrecioGasolina95E85 }},
	entity.FuelGasolina98E10:           {"precio_gasolina98_e10", func(m *StationModel) **float64 { return &m.PrecioGasolina98E10 }},
	entity.FuelGasolina95E5Premium:     {"precio_gasolina95_e5_premium", func(m *StationModel) **float64 { return &m.PrecioGasolina95E5Premium }},
	entity.FuelHidrogeno:               {"precio_hidrogeno", func(m *StationModel) **float64 { return &m.PrecioHidrogeno }},
	entity.FuelBiodiesel:               {"precio_biodiesel", func(m *StationModel) **float64 { return &m.PrecioBiodiesel }},
	entity.FuelBioetanol:               {"precio_bioetanol", func(m *StationModel) **float64 { return &m.PrecioBioetanol }},
	entity.FuelGasolinaRenovable:       {"precio_gasolina_renovable", func(m *StationModel) **float64 { return &m.PrecioGasolinaRenovable }},
	entity.FuelDieselRenovable:         {"precio_diesel_renovable", func(m *StationModel) **float64 { return &m.PrecioDieselRenovable }},
	entity.FuelBiogasNaturalComprimido: {"precio_biogas_natural_comprimido", func(m *StationModel) **float64 { return &m.PrecioBiogasNaturalComprimido }},
	entity.FuelBiogasNaturalLicuado:    {"precio_biogas_natural_licuado", func(m *StationModel) **float64 { return &m.PrecioBiogasNaturalLicuado }},
	entity.FuelAmoniaco:                {"precio_amoniaco", func(m *StationModel) **float64 { return &m.PrecioAmoniaco }},
	entity.FuelMetanol:                 {"precio_metanol", func(m *StationModel) **float64 { return &m.PrecioMetanol }},
}

// PriceColumn returns the column holding fuel prices.
func PriceColumn(fuel entity.FuelType) (string, bool) {
	pf, ok := priceFields[fuel]

	return pf.column, ok
}

// PriceColumns returns the price column of every mapped fuel.
func PriceColumns() map[entity.FuelType]string {
	columns := make(map[entity.FuelType]string, len(priceFields))
	for fuel, pf := range priceFields {
		columns[fuel] = pf.column
	}

	return columns
}

// Prices returns the strictly positive prices of the row.
func (m *StationModel) Prices() map[entity.FuelType]float64 {
	prices := make(map[entity.FuelType]float64)
	for fuel, pf := range priceFields {
		if p := *pf.field(m); p != nil && *p > 0 {
			prices[fuel] = *p
		}
	}

	return prices
}

// SetPrice stores a price; non-positive prices are stored as NULL.
func (m *StationModel) SetPrice(fuel entity.FuelType, price float64) bool {
	pf, ok := priceFields[fuel]
	if !ok {
		return false
	}
	if price <= 0 {
		*pf.field(m) = nil

		return true
	}
	p := price
	*pf.field(m) = &p

	return true
}
