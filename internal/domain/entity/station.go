package entity

import "time"

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Station is a fuel station with its current prices.
type Station struct {
	ID               string               `json:"id"`                // Ministry IDEESS, unique per station.
	MunicipalityID   int                  `json:"municipality_id"`   // Ministry IDMunicipio.
	MunicipalityName string               `json:"municipality_name"` // Municipality name as reported by the feed.
	Locality         string               `json:"locality"`
	Name             string               `json:"name"` // Brand (Rótulo).
	Address          string               `json:"address"`
	PostalCode       string               `json:"postal_code"`
	OpeningHours     string               `json:"opening_hours"`
	Location         *Coordinate          `json:"location,omitempty"` // Nil when the feed has no usable coordinates.
	Prices           map[FuelType]float64 `json:"prices"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// Price returns the price for fuel. Missing, zero and negative prices are absent.
func (s *Station) Price(fuel FuelType) (float64, bool) {
	if s == nil || s.Prices == nil {
		return 0, false
	}
	price, ok := s.Prices[fuel]
	if !ok || price <= 0 {
		return 0, false
	}

	return price, true
}

// CheapestStation is the minimum positive price for a fuel in one municipality.
type CheapestStation struct {
	Fuel           FuelType `json:"fuel"`
	MunicipalityID int      `json:"municipality_id"`
	Price          float64  `json:"price"`
	StationID      string   `json:"station_id"`
	StationName    string   `json:"station_name"`
	StationAddress string   `json:"station_address"`
}

// RankedStation is a station returned by a proximity search.
type RankedStation struct {
	Station    *Station `json:"station"`
	DistanceKm float64  `json:"distance_km"`
}

// FuelAvailability is the number of stations currently reporting a fuel.
type FuelAvailability struct {
	FuelTypeInfo
	StationCount int64 `json:"station_count"`
}

// FeedImport records one successful station refresh.
type FeedImport struct {
	ID           int64     `json:"id"`
	Source       string    `json:"source"`
	StationCount int       `json:"station_count"`
	Checksum     string    `json:"checksum"`
	ImportedAt   time.Time `json:"imported_at"`
}
