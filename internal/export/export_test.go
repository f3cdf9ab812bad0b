package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lokwai/hkaqi/internal/dataset"
)

func TestWriteCSV(t *testing.T) {
	gen := dataset.New(1)
	yearly := gen.Yearly()
	byDistrict := gen.ByDistrict()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, yearly, byDistrict); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}

	years := dataset.LastYear - dataset.FirstYear + 1
	want := 1 + years*dataset.MonthsPerYear*(1+len(dataset.Districts))
	if len(rows) != want {
		t.Errorf("got %d rows, want %d", len(rows), want)
	}
	if rows[0][0] != "series" || rows[0][3] != "aqi" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "overall" || rows[1][1] != "1993" || rows[1][2] != "1" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
}

func TestWriteJSON(t *testing.T) {
	gen := dataset.New(1)
	yearly := gen.Yearly()
	byDistrict := gen.ByDistrict()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, 1, yearly, byDistrict); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var doc struct {
		Seed      int64 `json:"seed"`
		FirstYear int   `json:"first_year"`
		Overall   []struct {
			Year    int       `json:"year"`
			Monthly []float64 `json:"monthly"`
			Mean    float64   `json:"mean"`
		} `json:"overall"`
		Districts map[string][]json.RawMessage `json:"districts"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("parsing output: %v", err)
	}

	if doc.Seed != 1 {
		t.Errorf("seed = %d, want 1", doc.Seed)
	}
	if doc.FirstYear != dataset.FirstYear {
		t.Errorf("first_year = %d, want %d", doc.FirstYear, dataset.FirstYear)
	}
	if len(doc.Overall) != dataset.LastYear-dataset.FirstYear+1 {
		t.Errorf("got %d overall years, want %d", len(doc.Overall), dataset.LastYear-dataset.FirstYear+1)
	}
	if len(doc.Overall[0].Monthly) != dataset.MonthsPerYear {
		t.Errorf("got %d monthly values, want %d", len(doc.Overall[0].Monthly), dataset.MonthsPerYear)
	}
	if len(doc.Districts) != len(dataset.Districts) {
		t.Errorf("got %d districts, want %d", len(doc.Districts), len(dataset.Districts))
	}
}

func TestTimelineSVG(t *testing.T) {
	gen := dataset.New(1)
	svg := TimelineSVG(gen.Yearly(), 900, 300)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, "<polyline") {
		t.Error("missing polyline")
	}
	if !strings.Contains(svg, ">1995<") || !strings.Contains(svg, ">2020<") {
		t.Error("missing 5-year axis labels")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("missing closing tag")
	}
}

func TestTimelineSVGEmpty(t *testing.T) {
	if got := TimelineSVG(nil, 900, 300); got != "" {
		t.Errorf("TimelineSVG(nil) = %q, want empty", got)
	}
	gen := dataset.New(1)
	if got := TimelineSVG(gen.Yearly(), 0, 300); got != "" {
		t.Errorf("TimelineSVG with zero width = %q, want empty", got)
	}
}
