// Package entity contains the core business objects of the project.
package entity

// FuelType is the stable key of a fuel product, e.g. "GASOLINA_95_E5".
type FuelType string

// Fuel types reported by the ministry price feed, in menu priority order.
const (
	FuelGasolina95E5            FuelType = "GASOLINA_95_E5"
	FuelGasoleoA                FuelType = "GASOLEO_A"
	FuelGasolina98E5            FuelType = "GASOLINA_98_E5"
	FuelGasoleoPremium          FuelType = "GASOLEO_PREMIUM"
	FuelGLP                     FuelType = "GLP"
	FuelGasoleoB                FuelType = "GASOLEO_B"
	FuelAdBlue                  FuelType = "ADBLUE"
	FuelGasNaturalLicuado       FuelType = "GAS_NATURAL_LICUADO"
	FuelGasNaturalComprimido    FuelType = "GAS_NATURAL_COMPRIMIDO"
	FuelGasolina95E10           FuelType = "GASOLINA_95_E10"
	FuelGasolina95E25           FuelType = "GASOLINA_95_E25"
	FuelGasolina95E85           FuelType = "GASOLINA_95_E85"
	FuelGasolina98E10           FuelType = "GASOLINA_98_E10"
	FuelGasolina95E5Premium     FuelType = "GASOLINA_95_E5_PREMIUM"
	FuelHidrogeno               FuelType = "HIDROGENO"
	FuelBiodiesel               FuelType = "BIODIESEL"
	FuelBioetanol               FuelType = "BIOETANOL"
	FuelGasolinaRenovable       FuelType = "GASOLINA_RENOVABLE"
	FuelDieselRenovable         FuelType = "DIESEL_RENOVABLE"
	FuelBiogasNaturalComprimido FuelType = "BIOGAS_NATURAL_COMPRIMIDO"
	FuelBiogasNaturalLicuado    FuelType = "BIOGAS_NATURAL_LICUADO"
	FuelAmoniaco                FuelType = "AMONIACO"
	FuelMetanol                 FuelType = "METANOL"
)

// PrimaryFuel is the fuel used to rank stations when no fuel is requested.
const PrimaryFuel = FuelGasolina95E5

// FuelTypeInfo describes a catalog entry.
type FuelTypeInfo struct {
	Key         FuelType `json:"key"`
	DisplayName string   `json:"display_name"`
	FeedField   string   `json:"-"` // Price field name in the ministry JSON feed.
	Priority    int      `json:"priority"`
}

var fuelCatalog = []FuelTypeInfo{
	{Key: FuelGasolina95E5, DisplayName: "Gasolina 95 E5", FeedField: "Precio Gasolina 95 E5", Priority: 1},
	{Key: FuelGasoleoA, DisplayName: "Gasóleo A", FeedField: "Precio Gasoleo A", Priority: 2},
	{Key: FuelGasolina98E5, DisplayName: "Gasolina 98 E5", FeedField: "Precio Gasolina 98 E5", Priority: 3},
	{Key: FuelGasoleoPremium, DisplayName: "Gasóleo Premium", FeedField: "Precio Gasoleo Premium", Priority: 4},
	{Key: FuelGLP, DisplayName: "GLP", FeedField: "Precio Gases licuados del petróleo", Priority: 5},
	{Key: FuelGasoleoB, DisplayName: "Gasóleo B", FeedField: "Precio Gasoleo B", Priority: 6},
	{Key: FuelAdBlue, DisplayName: "AdBlue", FeedField: "Precio Adblue", Priority: 7},
	{Key: FuelGasNaturalLicuado, DisplayName: "Gas Natural Licuado", FeedField: "Precio Gas Natural Licuado", Priority: 8},
	{Key: FuelGasNaturalComprimido, DisplayName: "Gas Natural Comprimido", FeedField: "Precio Gas Natural Comprimido", Priority: 9},
	{Key: FuelGasolina95E10, DisplayName: "Gasolina 95 E10", FeedField: "Precio Gasolina 95 E10", Priority: 10},
	{Key: FuelGasolina95E25, DisplayName: "Gasolina 95 E25", FeedField: "Precio Gasolina 95 E25", Priority: 11},
	{Key: FuelGasolina95E85, DisplayName: "Gasolina 95 E85", FeedField: "Precio Gasolina 95 E85", Priority: 12},
	{Key: FuelGasolina98E10, DisplayName: "Gasolina 98 E10", FeedField: "Precio Gasolina 98 E10", Priority: 13},
	{Key: FuelGasolina95E5Premium, DisplayName: "Gasolina 95 E5 Premium", FeedField: "Precio Gasolina 95 E5 Premium", Priority: 14},
	{Key: FuelHidrogeno, DisplayName: "Hidrógeno", FeedField: "Precio Hidrogeno", Priority: 15},
	{Key: FuelBiodiesel, DisplayName: "Biodiésel", FeedField: "Precio Biodiesel", Priority: 16},
	{Key: FuelBioetanol, DisplayName: "Bioetanol", FeedField: "Precio Bioetanol", Priority: 17},
	{Key: FuelGasolinaRenovable, DisplayName: "Gasolina Renovable", FeedField: "Precio Gasolina Renovable", Priority: 18},
	{Key: FuelDieselRenovable, DisplayName: "Diésel Renovable", FeedField: "Precio Diésel Renovable", Priority: 19},
	{Key: FuelBiogasNaturalComprimido, DisplayName: "Biogás Natural Comprimido", FeedField: "Precio Biogas Natural Comprimido", Priority: 20},
	{Key: FuelBiogasNaturalLicuado, DisplayName: "Biogás Natural Licuado", FeedField: "Precio Biogas Natural Licuado", Priority: 21},
	{Key: FuelAmoniaco, DisplayName: "Amoníaco", FeedField: "Precio Amoniaco", Priority: 22},
	{Key: FuelMetanol, DisplayName: "Metanol", FeedField: "Precio Metanol", Priority: 23},
}

var fuelIndex = func() map[FuelType]FuelTypeInfo {
	index := make(map[FuelType]FuelTypeInfo, len(fuelCatalog))
	for _, info := range fuelCatalog {
		index[info.Key] = info
	}

	return index
}()

// FuelTypes returns the whole catalog ordered by priority.
func FuelTypes() []FuelTypeInfo {
	out := make([]FuelTypeInfo, len(fuelCatalog))
	copy(out, fuelCatalog)

	return out
}

// LookupFuelType resolves a fuel key.
func LookupFuelType(key string) (FuelTypeInfo, bool) {
	info, ok := fuelIndex[FuelType(key)]

	return info, ok
}

// Valid reports whether f is a catalog fuel.
func (f FuelType) Valid() bool {
	_, ok := fuelIndex[f]

	return ok
}

// DisplayName returns the human readable name, or the raw key for unknown fuels.
func (f FuelType) DisplayName() string {
	if info, ok := fuelIndex[f]; ok {
		return info.DisplayName
	}

	return string(f)
}
