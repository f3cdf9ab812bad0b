// Package export renders the generated dataset to portable formats:
// CSV and JSON for downstream analysis, SVG for a static timeline plot.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/lokwai/hkaqi/internal/dataset"
)

// WriteCSV writes every series as long-form rows: one row per series,
// year and month with the sampled AQI value.
func WriteCSV(w io.Writer, yearly map[int]dataset.YearlySample, byDistrict map[string]map[int]dataset.YearlySample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"series", "year", "month", "aqi"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	writeSeries := func(name string, samples map[int]dataset.YearlySample) error {
		for year := dataset.FirstYear; year <= dataset.LastYear; year++ {
			sample, ok := samples[year]
			if !ok {
				continue
			}
			for m, v := range sample {
				row := []string{
					name,
					strconv.Itoa(year),
					strconv.Itoa(m + 1),
					strconv.FormatFloat(v, 'f', 2, 64),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := writeSeries("overall", yearly); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	for _, name := range dataset.Districts {
		samples, ok := byDistrict[name]
		if !ok {
			continue
		}
		if err := writeSeries(name, samples); err != nil {
			return fmt.Errorf("writing rows: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

type jsonYear struct {
	Year    int       `json:"year"`
	Monthly []float64 `json:"monthly"`
	Mean    float64   `json:"mean"`
}

type jsonDocument struct {
	Seed      int64                 `json:"seed"`
	FirstYear int                   `json:"first_year"`
	LastYear  int                   `json:"last_year"`
	Overall   []jsonYear            `json:"overall"`
	Districts map[string][]jsonYear `json:"districts"`
}

// WriteJSON writes the dataset as a single indented JSON document.
func WriteJSON(w io.Writer, seed int64, yearly map[int]dataset.YearlySample, byDistrict map[string]map[int]dataset.YearlySample) error {
	doc := jsonDocument{
		Seed:      seed,
		FirstYear: dataset.FirstYear,
		LastYear:  dataset.LastYear,
		Overall:   seriesToJSON(yearly),
		Districts: make(map[string][]jsonYear, len(byDistrict)),
	}
	for _, name := range dataset.Districts {
		if samples, ok := byDistrict[name]; ok {
			doc.Districts[name] = seriesToJSON(samples)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func seriesToJSON(samples map[int]dataset.YearlySample) []jsonYear {
	years := make([]jsonYear, 0, len(samples))
	for year := dataset.FirstYear; year <= dataset.LastYear; year++ {
		sample, ok := samples[year]
		if !ok {
			continue
		}
		monthly := make([]float64, len(sample))
		copy(monthly, sample[:])
		years = append(years, jsonYear{Year: year, Monthly: monthly, Mean: sample.Mean()})
	}
	return years
}
