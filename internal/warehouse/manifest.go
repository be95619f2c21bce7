package warehouse

import (
	"encoding/json"
	"os"
	"path/filepath"

	"airline-warehouse/internal/generator"
	"airline-warehouse/internal/shared/config"
	"airline-warehouse/internal/shared/errors"
)

const ManifestFile = "manifest.json"

type ManifestConfig struct {
	Flights           int    `json:"flights"`
	Passengers        int    `json:"passengers"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	Routes            int    `json:"routes"`
	BookingsPerFlight int    `json:"bookings_per_flight"`
}

type ManifestTable struct {
	Name string `json:"name"`
	File string `json:"file"`
	Rows int    `json:"rows"`
}

// Manifest describes one exported run. It carries no wall-clock time so a
// seeded run reproduces it byte for byte.
type Manifest struct {
	RunID  string          `json:"run_id"`
	Seed   int64           `json:"seed"`
	Format string          `json:"format"`
	Config ManifestConfig  `json:"config"`
	Tables []ManifestTable `json:"tables"`
}

func newManifest(ds *generator.Dataset, format string, tables []Table, ext string) Manifest {
	m := Manifest{
		RunID:  ds.RunID.String(),
		Seed:   ds.Seed,
		Format: format,
		Config: ManifestConfig{
			Flights:           ds.Config.Flights,
			Passengers:        ds.Config.Customers,
			StartDate:         ds.Config.StartDate.Format(config.DateLayout),
			EndDate:           ds.Config.EndDate.Format(config.DateLayout),
			Routes:            ds.Config.Routes,
			BookingsPerFlight: ds.Config.BookingsPerFlight,
		},
	}
	for _, t := range tables {
		m.Tables = append(m.Tables, ManifestTable{Name: t.Name, File: t.Name + ext, Rows: len(t.Rows)})
	}
	return m
}

func writeManifest(dir string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.WrapInternal("failed to encode manifest", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644); err != nil {
		return errors.WrapExternal("failed to write manifest", err)
	}
	return nil
}

// ReadManifest loads the manifest from an export directory.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, errors.WrapExternal("failed to read manifest", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapValidation("manifest is not valid JSON", err)
	}
	return &m, nil
}
