package providers

import (
	"testing"
	"time"
)

const arrivalsPage = `
<table>
<tr><td>BA 123</td><td>Amsterdam</td><td>10:00</td><td>Landed 10:12</td><td>Carousel 7</td></tr>
<tr><td>LH900</td><td>Frankfurt</td><td>11:30</td><td>Expected</td></tr>
<tr><td>AF111</td><td>Paris</td><td>Cancelled</td></tr>
</table>`

func TestFindFlightRowToleratesSpacing(t *testing.T) {
	if _, ok := findFlightRow(arrivalsPage, "BA123"); !ok {
		t.Error("Compact flight number should match the spaced page row")
	}
	if _, ok := findFlightRow(arrivalsPage, "LH 900"); !ok {
		t.Error("Spaced flight number should match the compact page row")
	}
	if _, ok := findFlightRow(arrivalsPage, "XX999"); ok {
		t.Error("Unlisted flight should not match")
	}
}

func TestParseRowTimeTakesLastClockTime(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	row, _ := findFlightRow(arrivalsPage, "BA123")

	got, ok := parseRowTime(row, day)
	if !ok {
		t.Fatal("Expected a clock time in the row")
	}
	want := time.Date(2026, 3, 14, 10, 12, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v (last time in row), got %v", want, got)
	}
}

func TestParseRowTimeNoTime(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	row, _ := findFlightRow(arrivalsPage, "AF111")

	if _, ok := parseRowTime(row, day); ok {
		t.Error("Row without a clock time should not parse")
	}
}

func TestCarouselExtraction(t *testing.T) {
	row, _ := findFlightRow(arrivalsPage, "BA123")
	m := carouselRe.FindStringSubmatch(row)
	if m == nil || m[1] != "7" {
		t.Errorf("Expected carousel 7, got %v", m)
	}
}
