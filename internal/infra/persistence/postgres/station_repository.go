package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/domain/repository"
	"fuelradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const stationInsertBatchSize = 200

// stationRepository implements the repository.StationRepository interface.
type stationRepository struct {
	db *gorm.DB
}

// NewStationRepository is the constructor for stationRepository.
func NewStationRepository(db *gorm.DB) repository.StationRepository {
	return &stationRepository{
		db: db,
	}
}

// FindByFuelAscending returns stations with a price for fuel, cheapest first.
func (repo *stationRepository) FindByFuelAscending(ctx context.Context, fuel entity.FuelType, limit int) ([]*entity.Station, error) {
	return repo.findByFuel(ctx, fuel, limit, false)
}

// FindByFuelDescending returns stations with a price for fuel, most expensive first.
func (repo *stationRepository) FindByFuelDescending(ctx context.Context, fuel entity.FuelType, limit int) ([]*entity.Station, error) {
	return repo.findByFuel(ctx, fuel, limit, true)
}

func (repo *stationRepository) findByFuel(ctx context.Context, fuel entity.FuelType, limit int, desc bool) ([]*entity.Station, error) {
	column, ok := model.PriceColumn(fuel)
	if !ok {
		return nil, domainerrors.ErrUnknownFuel
	}

	query := repo.db.WithContext(ctx).
		Where(clause.Gt{Column: clause.Column{Name: column}, Value: 0}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var stationModels []*model.StationModel
	if err := query.Find(&stationModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to find stations by fuel %s", fuel)
	}

	return toStationDomains(stationModels), nil
}

// FindByMunicipality returns a page of stations in a municipality ordered by name.
func (repo *stationRepository) FindByMunicipality(ctx context.Context, municipalityID, offset, limit int) ([]*entity.Station, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.StationModel{}).
		Where("municipality_id = ?", municipalityID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count stations by municipality")
	}

	query := repo.db.WithContext(ctx).
		Where("municipality_id = ?", municipalityID).
		Order("name ASC").
		Order("id ASC").
		Offset(max(offset, 0))
	if limit > 0 {
		query = query.Limit(limit)
	}

	var stationModels []*model.StationModel
	if err := query.Find(&stationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find stations by municipality")
	}

	return toStationDomains(stationModels), total, nil
}

// FindCheapestInMunicipality returns the minimum positive price for fuel in a municipality.
func (repo *stationRepository) FindCheapestInMunicipality(ctx context.Context, fuel entity.FuelType, municipalityID int) (*entity.CheapestStation, error) {
	column, ok := model.PriceColumn(fuel)
	if !ok {
		return nil, domainerrors.ErrUnknownFuel
	}

	var stationM model.StationModel
	if err := repo.db.WithContext(ctx).
		Where("municipality_id = ?", municipalityID).
		Where(clause.Gt{Column: clause.Column{Name: column}, Value: 0}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}}).
		Order("id ASC").
		First(&stationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoPriceData
		}

		return nil, errors.Wrap(err, "failed to find cheapest station")
	}

	price := stationM.Prices()[fuel]

	return &entity.CheapestStation{
		Fuel:           fuel,
		MunicipalityID: municipalityID,
		Price:          price,
		StationID:      stationM.ID,
		StationName:    stationM.Name,
		StationAddress: stationM.Address,
	}, nil
}

// FindWithCoordinates returns every station that has a coordinate pair.
func (repo *stationRepository) FindWithCoordinates(ctx context.Context) ([]*entity.Station, error) {
	var stationModels []*model.StationModel

	if err := repo.db.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("id ASC").
		Find(&stationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stations with coordinates")
	}

	return toStationDomains(stationModels), nil
}

// CountByFuel returns how many stations report a positive price for each fuel, in one scan.
func (repo *stationRepository) CountByFuel(ctx context.Context) (map[entity.FuelType]int64, error) {
	columns := model.PriceColumns()
	aliases := make(map[string]entity.FuelType, len(columns))
	selects := make([]string, 0, len(columns))
	for fuel, column := range columns {
		alias := "n_" + column
		aliases[alias] = fuel
		selects = append(selects, "COUNT(CASE WHEN "+column+" > 0 THEN 1 END) AS "+alias)
	}

	row := map[string]any{}
	if err := repo.db.WithContext(ctx).
		Model(&model.StationModel{}).
		Select(strings.Join(selects, ", ")).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count stations by fuel")
	}

	counts := make(map[entity.FuelType]int64, len(columns))
	for alias, fuel := range aliases {
		n, err := toInt64(row[alias])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read count for %s", fuel)
		}
		counts[fuel] = n
	}

	return counts, nil
}

// ReplaceAll swaps the station set and records the import in one transaction.
func (repo *stationRepository) ReplaceAll(ctx context.Context, stations []*entity.Station, feedImport *entity.FeedImport) error {
	stationModels := make([]*model.StationModel, 0, len(stations))
	for _, station := range stations {
		if station == nil {
			continue
		}
		stationModels = append(stationModels, fromStationDomain(station))
	}

	if feedImport == nil {
		feedImport = &entity.FeedImport{}
	}
	if feedImport.ImportedAt.IsZero() {
		feedImport.ImportedAt = time.Now()
	}
	feedImport.StationCount = len(stationModels)
	importM := fromFeedImportDomain(feedImport)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.StationModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear stations")
		}
		if len(stationModels) > 0 {
			if err := tx.CreateInBatches(stationModels, stationInsertBatchSize).Error; err != nil {
				if isUniqueConstraintViolation(err) {
					return domainerrors.ErrValidationFailed.WrapMessage("duplicate station ID in feed")
				}

				return errors.Wrap(err, "failed to insert stations")
			}
		}
		if err := tx.Create(importM).Error; err != nil {
			return errors.Wrap(err, "failed to record feed import")
		}

		return nil
	})
	if err != nil {
		return err
	}

	feedImport.ID = importM.ID

	return nil
}

// LastImport returns the most recent feed import.
func (repo *stationRepository) LastImport(ctx context.Context) (*entity.FeedImport, error) {
	var importM model.FeedImportModel

	if err := repo.db.WithContext(ctx).
		Order("imported_at DESC").
		Order("id DESC").
		First(&importM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoFeedImport
		}

		return nil, errors.Wrap(err, "failed to find last feed import")
	}

	return toFeedImportDomain(&importM), nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case []byte:
		return strconv.ParseInt(string(n), 10, 64)
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, errors.Errorf("unexpected count type %T", v)
	}
}

// --- Mapper Functions ---

// toStationDomain converts a GORM StationModel to a domain Station entity.
func toStationDomain(data *model.StationModel) *entity.Station {
	if data == nil {
		return nil
	}

	station := &entity.Station{
		ID:               data.ID,
		MunicipalityID:   data.MunicipalityID,
		MunicipalityName: data.MunicipalityName,
		Locality:         data.Locality,
		Name:             data.Name,
		Address:          data.Address,
		PostalCode:       data.PostalCode,
		OpeningHours:     data.OpeningHours,
		Prices:           data.Prices(),
		UpdatedAt:        data.UpdatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		station.Location = &entity.Coordinate{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	return station
}

func toStationDomains(models []*model.StationModel) []*entity.Station {
	stations := make([]*entity.Station, 0, len(models))
	for _, stationM := range models {
		stations = append(stations, toStationDomain(stationM))
	}

	return stations
}

// fromStationDomain converts a domain Station entity to a GORM StationModel.
func fromStationDomain(data *entity.Station) *model.StationModel {
	if data == nil {
		return nil
	}

	stationM := &model.StationModel{
		ID:               data.ID,
		MunicipalityID:   data.MunicipalityID,
		MunicipalityName: data.MunicipalityName,
		Locality:         data.Locality,
		Name:             data.Name,
		Address:          data.Address,
		PostalCode:       data.PostalCode,
		OpeningHours:     data.OpeningHours,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.Location != nil {
		lat, lon := data.Location.Latitude, data.Location.Longitude
		stationM.Latitude = &lat
		stationM.Longitude = &lon
	}
	for fuel, price := range data.Prices {
		stationM.SetPrice(fuel, price)
	}

	return stationM
}

func toFeedImportDomain(data *model.FeedImportModel) *entity.FeedImport {
	return &entity.FeedImport{
		ID:           data.ID,
		Source:       data.Source,
		StationCount: data.StationCount,
		Checksum:     data.Checksum,
		ImportedAt:   data.ImportedAt,
	}
}

func fromFeedImportDomain(data *entity.FeedImport) *model.FeedImportModel {
	return &model.FeedImportModel{
		ID:           data.ID,
		Source:       data.Source,
		StationCount: data.StationCount,
		Checksum:     data.Checksum,
		ImportedAt:   data.ImportedAt,
	}
}
