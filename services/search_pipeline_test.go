package services

import (
	"math/rand"
	"reflect"
	"testing"

	"unistay/dto"
	"unistay/models"
)

func fixtureCatalog() []models.Property {
	return []models.Property{
		{
			ID: "0-0", City: "London", UniversityNearby: []string{"Imperial College London", "UCL"},
			PricePerWeek: 300, Rating: 4.5, ReviewCount: 120, DistanceToUniversity: 1.2,
			Amenities: []string{"WiFi", "Gym", "Laundry"},
			RoomTypes: []models.RoomType{{ID: "0-0-0", Type: "Studio", Price: 350, Available: 2, Total: 10}},
		},
		{
			ID: "1-0", City: "Oslo", UniversityNearby: []string{"University of Oslo"},
			PricePerWeek: 150, Rating: 4.5, ReviewCount: 80, DistanceToUniversity: 0.4,
			Amenities: []string{"WiFi"},
			RoomTypes: []models.RoomType{{ID: "1-0-0", Type: "Standard Single", Price: 200, Available: 0, Total: 5}},
		},
		{
			ID: "2-0", City: "Manchester", UniversityNearby: []string{"University of Manchester"},
			PricePerWeek: 500, Rating: 3.9, ReviewCount: 300, DistanceToUniversity: 2.9,
			Amenities: []string{"WiFi", "Gym"},
			RoomTypes: []models.RoomType{{ID: "2-0-0", Type: "Studio", Price: 330, Available: 1, Total: 6}},
		},
		{
			ID: "3-0", City: "New York", UniversityNearby: []string{"Columbia University", "NYU"},
			PricePerWeek: 420, Rating: 4.8, ReviewCount: 120, DistanceToUniversity: 0.4,
			Amenities: []string{"wifi", "Gym"},
			RoomTypes: []models.RoomType{{ID: "3-0-0", Type: "Penthouse Suite", Price: 520, Available: 3, Total: 8}},
		},
	}
}

func ids(props []models.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}

func TestApplyFiltersEmptyIsIdentity(t *testing.T) {
	catalog := fixtureCatalog()
	got := ApplyFilters(catalog, dto.SearchFilters{})
	if !reflect.DeepEqual(got, catalog) {
		t.Fatalf("expected catalog unchanged, got %v", ids(got))
	}
	if &got[0] == &catalog[0] {
		t.Fatalf("expected a new slice")
	}
}

func TestApplyFiltersCitySubstringCaseInsensitive(t *testing.T) {
	got := ApplyFilters(fixtureCatalog(), dto.SearchFilters{City: "lon"})
	if !reflect.DeepEqual(ids(got), []string{"0-0"}) {
		t.Fatalf("expected only London, got %v", ids(got))
	}
	// "Oslo" does not contain "lon"
	got = ApplyFilters(fixtureCatalog(), dto.SearchFilters{City: "Lon"})
	if !reflect.DeepEqual(ids(got), []string{"0-0"}) {
		t.Fatalf("expected only London, got %v", ids(got))
	}
}

func TestApplyFiltersUniversityMatchesAnyNearby(t *testing.T) {
	got := ApplyFilters(fixtureCatalog(), dto.SearchFilters{University: "university of"})
	if !reflect.DeepEqual(ids(got), []string{"1-0", "2-0"}) {
		t.Fatalf("got %v", ids(got))
	}
	got = ApplyFilters(fixtureCatalog(), dto.SearchFilters{University: "nyu"})
	if !reflect.DeepEqual(ids(got), []string{"3-0"}) {
		t.Fatalf("got %v", ids(got))
	}
}

func TestApplyFiltersPriceRangeInclusive(t *testing.T) {
	got := ApplyFilters(fixtureCatalog(), dto.SearchFilters{PriceMin: dto.IntPtr(150), PriceMax: dto.IntPtr(300)})
	if !reflect.DeepEqual(ids(got), []string{"0-0", "1-0"}) {
		t.Fatalf("got %v", ids(got))
	}
	got = ApplyFilters(fixtureCatalog(), dto.SearchFilters{PriceMin: dto.IntPtr(500), PriceMax: dto.IntPtr(500)})
	if !reflect.DeepEqual(ids(got), []string{"2-0"}) {
		t.Fatalf("got %v", ids(got))
	}
}

func TestApplyFiltersMalformedPriceRangeIgnored(t *testing.T) {
	catalog := fixtureCatalog()
	for _, f := range []dto.SearchFilters{
		{PriceMin: dto.IntPtr(400), PriceMax: dto.IntPtr(200)},
		{PriceMin: dto.IntPtr(-1), PriceMax: dto.IntPtr(200)},
		{PriceMin: dto.IntPtr(200)},
		{PriceMax: dto.IntPtr(200)},
	} {
		if got := ApplyFilters(catalog, f); len(got) != len(catalog) {
			t.Fatalf("expected range %+v to be ignored, got %v", f, ids(got))
		}
	}
}

func TestApplyFiltersAmenitiesRequireAllExactCase(t *testing.T) {
	got := ApplyFilters(fixtureCatalog(), dto.SearchFilters{Amenities: []string{"WiFi", "Gym"}})
	if !reflect.DeepEqual(ids(got), []string{"0-0", "2-0"}) {
		t.Fatalf("got %v", ids(got))
	}
	got = ApplyFilters(fixtureCatalog(), dto.SearchFilters{Amenities: []string{"Pool"}})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", got)
	}
}

func TestApplyFiltersRoomType(t *testing.T) {
	got := ApplyFilters(fixtureCatalog(), dto.SearchFilters{RoomType: "Studio"})
	if !reflect.DeepEqual(ids(got), []string{"0-0", "2-0"}) {
		t.Fatalf("got %v", ids(got))
	}
}

func TestApplyFiltersSortKeys(t *testing.T) {
	cases := map[string][]string{
		dto.SortByPrice:      {"1-0", "0-0", "3-0", "2-0"},
		dto.SortByRating:     {"3-0", "0-0", "1-0", "2-0"},
		dto.SortByDistance:   {"1-0", "3-0", "0-0", "2-0"},
		dto.SortByPopularity: {"2-0", "0-0", "3-0", "1-0"},
		"bogus":              {"2-0", "0-0", "3-0", "1-0"},
	}
	for key, want := range cases {
		got := ApplyFilters(fixtureCatalog(), dto.SearchFilters{SortBy: key})
		if !reflect.DeepEqual(ids(got), want) {
			t.Fatalf("sort %s: expected %v, got %v", key, want, ids(got))
		}
	}
}

func TestApplyFiltersDoesNotMutateCatalog(t *testing.T) {
	catalog := fixtureCatalog()
	before := fixtureCatalog()
	ApplyFilters(catalog, dto.SearchFilters{City: "o", SortBy: dto.SortByPrice, Amenities: []string{"WiFi"}})
	if !reflect.DeepEqual(catalog, before) {
		t.Fatalf("catalog was mutated")
	}
}

func TestApplyFiltersIsIdempotentAndSubset(t *testing.T) {
	catalog := generateWithSeed(t, 11).Generate()
	rnd := rand.New(rand.NewSource(5))
	filters := []dto.SearchFilters{
		{City: "an", SortBy: dto.SortByRating},
		{University: "university", PriceMin: dto.IntPtr(200), PriceMax: dto.IntPtr(350)},
		{Amenities: []string{"WiFi", "Gym"}, SortBy: dto.SortByDistance},
		{RoomType: "Studio", SortBy: dto.SortByPrice},
	}
	for _, f := range filters {
		once := ApplyFilters(catalog, f)
		twice := ApplyFilters(once, f)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("filters %+v are not idempotent", f)
		}
		if len(once) > len(catalog) {
			t.Fatalf("result larger than catalog")
		}
		if len(once) > 0 {
			p := once[rnd.Intn(len(once))]
			found := false
			for _, c := range catalog {
				if c.ID == p.ID {
					found = reflect.DeepEqual(c, p)
				}
			}
			if !found {
				t.Fatalf("result %s not taken from catalog", p.ID)
			}
		}
	}
}

func TestApplyFiltersSortIsStable(t *testing.T) {
	catalog := generateWithSeed(t, 17).Generate()
	got := ApplyFilters(catalog, dto.SearchFilters{SortBy: dto.SortByRating})

	position := make(map[string]int, len(catalog))
	for i, p := range catalog {
		position[p.ID] = i
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Rating < got[i].Rating {
			t.Fatalf("not sorted by rating at %d", i)
		}
		if got[i-1].Rating == got[i].Rating && position[got[i-1].ID] > position[got[i].ID] {
			t.Fatalf("ties reordered at %d", i)
		}
	}
}
