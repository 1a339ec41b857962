package clean

import (
	"reflect"
	"testing"
)

func TestKeywordHeaderLocatorFindsKeywordRow(t *testing.T) {
	rows := [][]string{
		{"KIIT University Export", "v2"},
		{"generated", "2024-03-01"},
		{"Date", "Temp (°F)", "Humidity", "Notes"},
		{"2024-03-01", "70", "74", "ok"},
	}
	locate := KeywordHeaderLocator(DefaultHeaderKeywords(), 10, 5)
	header, start := locate(rows)
	if !reflect.DeepEqual(header, rows[2]) {
		t.Fatalf("header=%v, want row 2", header)
	}
	if start != 3 {
		t.Fatalf("data start=%d, want 3", start)
	}
}

func TestKeywordHeaderLocatorFallsBackToWidestRow(t *testing.T) {
	rows := [][]string{
		{"a", "b"},
		{"a", "b", "c", "d"},
		{"a"},
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
	}
	locate := KeywordHeaderLocator([]string{"temp"}, 10, 5)
	header, start := locate(rows)
	if !reflect.DeepEqual(header, rows[1]) {
		t.Fatalf("header=%v, want the widest leading row", header)
	}
	if start != 5 {
		t.Fatalf("data start=%d, want the default 5", start)
	}
}

func TestKeywordHeaderLocatorClampsDefaultStart(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"1", "2"}}
	locate := KeywordHeaderLocator([]string{"temp"}, 10, 5)
	_, start := locate(rows)
	if start != 2 {
		t.Fatalf("data start=%d, want clamped to table length", start)
	}
}

func TestKeywordHeaderLocatorMatchesCaseFolded(t *testing.T) {
	rows := [][]string{
		{"TEMPERATURE", "HUMIDITY"},
		{"1", "2"},
	}
	locate := KeywordHeaderLocator([]string{"temp"}, 10, 5)
	_, start := locate(rows)
	if start != 1 {
		t.Fatalf("data start=%d, want 1 (case-folded substring match)", start)
	}
}
