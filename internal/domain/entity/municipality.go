package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Municipality is a Tenerife municipality as identified by the ministry feed.
type Municipality struct {
	Key         string `json:"key"`          // Stable key, e.g. "ADEJE".
	DisplayName string `json:"display_name"` // Name shown to users, e.g. "Adeje".
	ID          int    `json:"id"`           // Ministry IDMunicipio.
}

// Alphabetical by display name.
var municipalityCatalog = []Municipality{
	{Key: "ADEJE", DisplayName: "Adeje", ID: 5691},
	{Key: "ARAFO", DisplayName: "Arafo", ID: 5694},
	{Key: "ARICO", DisplayName: "Arico", ID: 5695},
	{Key: "ARONA", DisplayName: "Arona", ID: 5696},
	{Key: "BUENAVISTA", DisplayName: "Buenavista del Norte", ID: 5700},
	{Key: "CANDELARIA", DisplayName: "Candelaria", ID: 5701},
	{Key: "EL_ROSARIO", DisplayName: "El Rosario", ID: 5721},
	{Key: "EL_SAUZAL", DisplayName: "El Sauzal", ID: 5731},
	{Key: "EL_TANQUE", DisplayName: "El Tanque", ID: 5734},
	{Key: "FASNIA", DisplayName: "Fasnia", ID: 5702},
	{Key: "GARACHICO", DisplayName: "Garachico", ID: 5705},
	{Key: "GRANADILLA", DisplayName: "Granadilla de Abona", ID: 5707},
	{Key: "GUIA_ISORA", DisplayName: "Guía de Isora", ID: 5709},
	{Key: "GUIMAR", DisplayName: "Güímar", ID: 5710},
	{Key: "ICOD_VINOS", DisplayName: "Icod de los Vinos", ID: 5712},
	{Key: "LA_GUANCHA", DisplayName: "La Guancha", ID: 5708},
	{Key: "LA_MATANZA", DisplayName: "La Matanza de Acentejo", ID: 5714},
	{Key: "LA_OROTAVA", DisplayName: "La Orotava", ID: 5715},
	{Key: "LA_VICTORIA", DisplayName: "La Victoria de Acentejo", ID: 5741},
	{Key: "LOS_REALEJOS", DisplayName: "Los Realejos", ID: 5720},
	{Key: "LOS_SILOS", DisplayName: "Los Silos", ID: 5732},
	{Key: "PUERTO_CRUZ", DisplayName: "Puerto de la Cruz", ID: 5717},
	{Key: "LA_LAGUNA", DisplayName: "San Cristóbal de La Laguna", ID: 5723},
	{Key: "SAN_JUAN_RAMBLA", DisplayName: "San Juan de la Rambla", ID: 5724},
	{Key: "SAN_MIGUEL", DisplayName: "San Miguel de Abona", ID: 5725},
	{Key: "SANTA_CRUZ", DisplayName: "Santa Cruz de Tenerife", ID: 5728},
	{Key: "SANTA_URSULA", DisplayName: "Santa Úrsula", ID: 5729},
	{Key: "SANTIAGO_TEIDE", DisplayName: "Santiago del Teide", ID: 5730},
	{Key: "TACORONTE", DisplayName: "Tacoronte", ID: 5733},
	{Key: "TEGUESTE", DisplayName: "Tegueste", ID: 5736},
	{Key: "VILAFLOR", DisplayName: "Vilaflor de Chasna", ID: 5742},
}

var (
	municipalityByKey  = make(map[string]Municipality, len(municipalityCatalog))
	municipalityByName = make(map[string]Municipality, len(municipalityCatalog))
	municipalityByID   = make(map[int]Municipality, len(municipalityCatalog))
)

func init() {
	for _, m := range municipalityCatalog {
		municipalityByKey[m.Key] = m
		municipalityByName[m.DisplayName] = m
		municipalityByID[m.ID] = m
	}
}

// Municipalities returns the full catalog.
func Municipalities() []Municipality {
	out := make([]Municipality, len(municipalityCatalog))
	copy(out, municipalityCatalog)

	return out
}

// LookupMunicipality resolves a municipality by key.
func LookupMunicipality(key string) (Municipality, bool) {
	m, ok := municipalityByKey[key]

	return m, ok
}

// MunicipalityByDisplayName resolves a municipality by its exact display name.
func MunicipalityByDisplayName(name string) (Municipality, bool) {
	m, ok := municipalityByName[name]

	return m, ok
}

// MunicipalityByID resolves a municipality by ministry ID.
func MunicipalityByID(id int) (Municipality, bool) {
	m, ok := municipalityByID[id]

	return m, ok
}

// ResolveMunicipality accepts either a key or a display name.
func ResolveMunicipality(keyOrName string) (Municipality, bool) {
	if m, ok := municipalityByKey[keyOrName]; ok {
		return m, true
	}

	return MunicipalityByDisplayName(keyOrName)
}

// SearchMunicipalities returns catalog entries whose display name contains term,
// ignoring case and accents. An empty term matches nothing.
func SearchMunicipalities(term string) []Municipality {
	needle := FoldText(term)
	if needle == "" {
		return nil
	}

	var results []Municipality
	for _, m := range municipalityCatalog {
		if strings.Contains(FoldText(m.DisplayName), needle) {
			results = append(results, m)
		}
	}

	return results
}

// FoldText lower-cases s and strips diacritics ("Güímar" -> "guimar").
func FoldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.ToLower(strings.TrimSpace(folded))
}
