package dataset

import (
	"testing"
)

func TestYearlyCoversAllYears(t *testing.T) {
	data := New(42).Yearly()

	if len(data) != LastYear-FirstYear+1 {
		t.Fatalf("expected %d years, got %d", LastYear-FirstYear+1, len(data))
	}
	for year := FirstYear; year <= LastYear; year++ {
		if _, ok := data[year]; !ok {
			t.Errorf("missing year %d", year)
		}
	}
}

func TestYearlyClamped(t *testing.T) {
	data := New(7).Yearly()

	for year, sample := range data {
		for m, v := range sample {
			if v < MinAQI || v > MaxAQI {
				t.Errorf("year %d month %d: value %f out of range", year, m, v)
			}
		}
	}
}

func TestByDistrictClamped(t *testing.T) {
	data := New(7).ByDistrict()

	if len(data) != len(Districts) {
		t.Fatalf("expected %d districts, got %d", len(Districts), len(data))
	}
	for district, years := range data {
		if len(years) != LastYear-FirstYear+1 {
			t.Errorf("district %s: expected %d years, got %d", district, LastYear-FirstYear+1, len(years))
		}
		for year, sample := range years {
			for m, v := range sample {
				if v < MinAQI || v > MaxAQI {
					t.Errorf("%s %d month %d: value %f out of range", district, year, m, v)
				}
			}
		}
	}
}

func TestSameSeedReproduces(t *testing.T) {
	a := New(123).Yearly()
	b := New(123).Yearly()

	for year := FirstYear; year <= LastYear; year++ {
		if a[year] != b[year] {
			t.Fatalf("year %d differs between identically seeded generators", year)
		}
	}
}

func TestBasePatternPeriods(t *testing.T) {
	tests := []struct {
		year int
		want YearlySample
	}{
		{1993, basePatterns[0]},
		{2000, basePatterns[0]},
		{2001, basePatterns[1]},
		{2010, basePatterns[1]},
		{2011, basePatterns[2]},
		{2015, basePatterns[2]},
		{2016, basePatterns[3]},
		{2020, basePatterns[3]},
		{2021, basePatterns[4]},
		{2023, basePatterns[4]},
	}

	for _, tt := range tests {
		if got := basePattern(tt.year); got != tt.want {
			t.Errorf("year %d: wrong base pattern", tt.year)
		}
	}
}

func TestMean(t *testing.T) {
	s := YearlySample{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120}
	if got := s.Mean(); got != 65 {
		t.Errorf("expected mean 65, got %f", got)
	}
}

func TestEventsWithinRange(t *testing.T) {
	for year := range Events {
		if year < FirstYear || year > LastYear {
			t.Errorf("event year %d outside dataset range", year)
		}
	}
}
