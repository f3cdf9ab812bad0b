package dataset

import (
	"math/rand"
	"time"
)

const (
	FirstYear = 1993
	LastYear  = 2023

	MonthsPerYear = 12

	// AQI values are kept inside the display range of the visualization.
	MinAQI = 0
	MaxAQI = 150

	noiseStdDev    = 5.0
	districtStdDev = 10.0
)

// Districts are the nine monitored Hong Kong districts, in grid order.
var Districts = []string{
	"Central & Western", "Eastern", "Southern",
	"Wan Chai", "Kowloon City", "Kwun Tong",
	"Sham Shui Po", "Wong Tai Sin", "Yau Tsim Mong",
}

// YearlySample holds one AQI reading per month for a single year.
type YearlySample [MonthsPerYear]float64

func (s YearlySample) Mean() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum / MonthsPerYear
}

// Generator produces the synthetic 1993-2023 AQI dataset. The random source
// is injected so snapshots and tests can be reproduced from a seed.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded with the given seed. A seed <= 0 selects a
// time-based seed.
func New(seed int64) *Generator {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// basePatterns are the monthly AQI baselines per historical period, from the
// heavy-pollution 1990s through the post-2020 improvements.
var basePatterns = [5]YearlySample{
	{85, 95, 80, 75, 70, 65, 90, 100, 85, 80, 75, 70},
	{70, 75, 65, 60, 55, 50, 80, 85, 70, 65, 60, 55},
	{55, 60, 50, 45, 40, 35, 65, 70, 55, 50, 45, 40},
	{40, 45, 35, 30, 25, 20, 50, 55, 40, 35, 30, 25},
	{35, 40, 30, 25, 20, 15, 45, 50, 35, 30, 25, 20},
}

func basePattern(year int) YearlySample {
	switch {
	case year <= 2000:
		return basePatterns[0]
	case year <= 2010:
		return basePatterns[1]
	case year <= 2015:
		return basePatterns[2]
	case year <= 2020:
		return basePatterns[3]
	default:
		return basePatterns[4]
	}
}

func clampAQI(v float64) float64 {
	if v < MinAQI {
		return MinAQI
	}
	if v > MaxAQI {
		return MaxAQI
	}
	return v
}

// Yearly generates the aggregate per-year samples: the period baseline plus
// per-month Gaussian noise, clamped to [0,150].
func (g *Generator) Yearly() map[int]YearlySample {
	data := make(map[int]YearlySample, LastYear-FirstYear+1)
	for year := FirstYear; year <= LastYear; year++ {
		s := basePattern(year)
		for m := range s {
			s[m] = clampAQI(s[m] + g.rng.NormFloat64()*noiseStdDev)
		}
		data[year] = s
	}
	return data
}

// ByDistrict generates per-district samples: a fresh baseline run shifted by
// one Gaussian offset per (district, year) pair, clamped independently.
func (g *Generator) ByDistrict() map[string]map[int]YearlySample {
	base := g.Yearly()
	data := make(map[string]map[int]YearlySample, len(Districts))
	for _, district := range Districts {
		data[district] = make(map[int]YearlySample, len(base))
		for year := FirstYear; year <= LastYear; year++ {
			offset := g.rng.NormFloat64() * districtStdDev
			s := base[year]
			for m := range s {
				s[m] = clampAQI(s[m] + offset)
			}
			data[district][year] = s
		}
	}
	return data
}
