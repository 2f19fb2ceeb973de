package domain

import (
	"errors"
	"testing"
)

func TestRankByValue(t *testing.T) {
	cases := []struct {
		value int
		name  string
	}{
		{0, "private"},
		{1, "corporal"},
		{2, "sergeant"},
		{3, "lieutenant"},
		{4, "captain"},
		{5, "major"},
		{6, "colonel"},
	}

	for _, tc := range cases {
		rank, err := RankByValue(tc.value)
		if err != nil {
			t.Fatalf("RankByValue(%d): unexpected error %v", tc.value, err)
		}
		if rank.Name != tc.name || rank.Value != tc.value {
			t.Errorf("RankByValue(%d) = %+v, want {%s %d}", tc.value, rank, tc.name, tc.value)
		}
	}
}

func TestRankByValueOutOfRange(t *testing.T) {
	for _, value := range []int{-1, 7, 100} {
		if _, err := RankByValue(value); !errors.Is(err, ErrUnknownRankValue) {
			t.Errorf("RankByValue(%d): expected ErrUnknownRankValue, got %v", value, err)
		}
	}
}

func TestRankByNameCaseInsensitive(t *testing.T) {
	for _, name := range []string{"major", "Major", "MAJOR", "  major "} {
		rank, err := RankByName(name)
		if err != nil {
			t.Fatalf("RankByName(%q): unexpected error %v", name, err)
		}
		if rank.Name != "major" || rank.Value != 5 {
			t.Errorf("RankByName(%q) = %+v, want {major 5}", name, rank)
		}
	}
}

func TestRankByNameUnknown(t *testing.T) {
	for _, name := range []string{"", "general", "majors"} {
		if _, err := RankByName(name); !errors.Is(err, ErrUnknownRankName) {
			t.Errorf("RankByName(%q): expected ErrUnknownRankName, got %v", name, err)
		}
	}
}

func TestRankRoundTrip(t *testing.T) {
	for value := 0; value <= 6; value++ {
		byValue, err := RankByValue(value)
		if err != nil {
			t.Fatal(err)
		}
		byName, err := RankByName(byValue.Name)
		if err != nil {
			t.Fatal(err)
		}
		if byName != byValue {
			t.Errorf("round trip mismatch: %+v vs %+v", byValue, byName)
		}
	}
}
