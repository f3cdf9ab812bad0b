// Package storage persists generated dataset snapshots to disk so a run
// can be reproduced or inspected later. Each snapshot is a directory
// holding metadata.json and samples.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lokwai/hkaqi/internal/dataset"
)

// SnapshotMetadata describes a saved dataset snapshot.
type SnapshotMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	FirstYear int       `json:"first_year"`
	LastYear  int       `json:"last_year"`
	Districts int       `json:"districts"`
}

// Store manages snapshot directories under a base directory.
type Store struct {
	baseDir string
}

// New creates a store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init ensures the base directory exists.
func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Save writes a snapshot of the generated dataset and returns its ID.
// The CSV holds one row per series and year: the city-wide series is
// named "overall", district series carry the district name.
func (s *Store) Save(seed int64, yearly map[int]dataset.YearlySample, byDistrict map[string]map[int]dataset.YearlySample) (string, error) {
	id := fmt.Sprintf("aqi_%d", time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating snapshot dir: %w", err)
	}

	meta := SnapshotMetadata{
		ID:        id,
		Timestamp: time.Now(),
		Seed:      seed,
		FirstYear: dataset.FirstYear,
		LastYear:  dataset.LastYear,
		Districts: len(byDistrict),
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", fmt.Errorf("creating metadata file: %w", err)
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("encoding metadata: %w", err)
	}

	csvFile, err := os.Create(filepath.Join(dir, "samples.csv"))
	if err != nil {
		return "", fmt.Errorf("creating samples file: %w", err)
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	header := []string{"series", "year"}
	for m := 1; m <= dataset.MonthsPerYear; m++ {
		header = append(header, fmt.Sprintf("m%02d", m))
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("writing header: %w", err)
	}

	writeSeries := func(name string, samples map[int]dataset.YearlySample) error {
		for year := dataset.FirstYear; year <= dataset.LastYear; year++ {
			sample, ok := samples[year]
			if !ok {
				continue
			}
			row := []string{name, strconv.Itoa(year)}
			for _, v := range sample {
				row = append(row, strconv.FormatFloat(v, 'f', 2, 64))
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeSeries("overall", yearly); err != nil {
		return "", fmt.Errorf("writing samples: %w", err)
	}
	for _, name := range dataset.Districts {
		samples, ok := byDistrict[name]
		if !ok {
			continue
		}
		if err := writeSeries(name, samples); err != nil {
			return "", fmt.Errorf("writing samples: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing samples: %w", err)
	}
	return id, nil
}

// List returns metadata for every snapshot under the base directory.
// Entries with unreadable metadata are skipped.
func (s *Store) List() ([]SnapshotMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SnapshotMetadata{}, nil
		}
		return nil, fmt.Errorf("reading store dir: %w", err)
	}

	var snaps []SnapshotMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta SnapshotMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		snaps = append(snaps, meta)
	}
	return snaps, nil
}

// Load reads the metadata for a single snapshot by ID.
func (s *Store) Load(id string) (*SnapshotMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("reading metadata: %w", err)
	}
	var meta SnapshotMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}
	return &meta, nil
}

// LoadSamples reads the sample rows of a snapshot back into per-series
// yearly maps. The "overall" series is returned separately.
func (s *Store) LoadSamples(id string) (map[int]dataset.YearlySample, map[string]map[int]dataset.YearlySample, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, "samples.csv"))
	if err != nil {
		return nil, nil, fmt.Errorf("opening samples: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading samples: %w", err)
	}

	yearly := make(map[int]dataset.YearlySample)
	byDistrict := make(map[string]map[int]dataset.YearlySample)
	for i, row := range rows {
		if i == 0 || len(row) < 2+dataset.MonthsPerYear {
			continue
		}
		year, err := strconv.Atoi(row[1])
		if err != nil {
			continue
		}
		var sample dataset.YearlySample
		for m := 0; m < dataset.MonthsPerYear; m++ {
			v, err := strconv.ParseFloat(row[2+m], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d: parsing value: %w", i, err)
			}
			sample[m] = v
		}
		if row[0] == "overall" {
			yearly[year] = sample
			continue
		}
		if byDistrict[row[0]] == nil {
			byDistrict[row[0]] = make(map[int]dataset.YearlySample)
		}
		byDistrict[row[0]][year] = sample
	}
	return yearly, byDistrict, nil
}
