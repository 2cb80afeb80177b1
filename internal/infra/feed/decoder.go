// Package feed loads station prices from the Spanish ministry "ListaEESSPrecio" listing.
package feed

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"fuelradar/internal/domain/entity"

	"github.com/pkg/errors"
)

// Ministry listing field names.
const (
	fieldID             = "IDEESS"
	fieldPostalCode     = "C.P."
	fieldAddress        = "Dirección"
	fieldOpeningHours   = "Horario"
	fieldLatitude       = "Latitud"
	fieldLongitude      = "Longitud (WGS84)"
	fieldLocality       = "Localidad"
	fieldMunicipality   = "Municipio"
	fieldMunicipalityID = "IDMunicipio"
	fieldBrand          = "Rótulo"

	feedDateLayout = "02/01/2006 15:04:05"
)

// listing is the top-level ministry document.
type listing struct {
	Date     string           `json:"Fecha"`
	Stations []map[string]any `json:"ListaEESSPrecio"`
	Result   string           `json:"ResultadoConsulta"`
}

// Decoder turns ministry JSON documents into stations.
type Decoder struct {
	location *time.Location
}

// NewDecoder creates a decoder that interprets feed dates in loc.
func NewDecoder(loc *time.Location) *Decoder {
	if loc == nil {
		loc = time.UTC
	}

	return &Decoder{location: loc}
}

// Decode parses one document. Rows without an IDEESS are dropped.
func (d *Decoder) Decode(data []byte) ([]*entity.Station, error) {
	var doc listing
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse ministry listing")
	}
	if doc.Stations == nil {
		return nil, errors.New("document has no ListaEESSPrecio")
	}

	updatedAt, err := time.ParseInLocation(feedDateLayout, doc.Date, d.location)
	if err != nil {
		updatedAt = time.Time{}
	}

	stations := make([]*entity.Station, 0, len(doc.Stations))
	for _, row := range doc.Stations {
		station := d.decodeRow(row)
		if station == nil {
			continue
		}
		station.UpdatedAt = updatedAt
		stations = append(stations, station)
	}

	return stations, nil
}

func (d *Decoder) decodeRow(row map[string]any) *entity.Station {
	id := text(row[fieldID])
	if id == "" {
		return nil
	}

	station := &entity.Station{
		ID:               id,
		MunicipalityName: text(row[fieldMunicipality]),
		Locality:         text(row[fieldLocality]),
		Name:             text(row[fieldBrand]),
		Address:          text(row[fieldAddress]),
		PostalCode:       text(row[fieldPostalCode]),
		OpeningHours:     text(row[fieldOpeningHours]),
		Prices:           make(map[entity.FuelType]float64),
	}

	if muniID, err := strconv.Atoi(text(row[fieldMunicipalityID])); err == nil {
		station.MunicipalityID = muniID
	}

	lat, latOK := ParseDecimal(text(row[fieldLatitude]))
	lon, lonOK := ParseDecimal(text(row[fieldLongitude]))
	if latOK && lonOK && lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180 {
		station.Location = &entity.Coordinate{Latitude: lat, Longitude: lon}
	}

	for _, info := range entity.FuelTypes() {
		price, ok := ParseDecimal(text(row[info.FeedField]))
		if ok && price > 0 {
			station.Prices[info.Key] = price
		}
	}

	return station
}

// ParseDecimal parses a comma-decimal number such as "1,459". Empty or invalid input is absent.
func ParseDecimal(raw string) (float64, bool) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}

// Merge concatenates decoded batches; a repeated IDEESS keeps the last row.
func Merge(batches ...[]*entity.Station) []*entity.Station {
	index := make(map[string]int)
	var merged []*entity.Station
	for _, batch := range batches {
		for _, station := range batch {
			if pos, ok := index[station.ID]; ok {
				merged[pos] = station

				continue
			}
			index[station.ID] = len(merged)
			merged = append(merged, station)
		}
	}

	return merged
}

func text(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
