package main

import (
	"flag"

	"fuelradar/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory for generated query code")
	flag.Parse()

	models := []any{
		model.StationModel{},
		model.PriceAlertModel{},
		model.FeedImportModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: *outPath,
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
