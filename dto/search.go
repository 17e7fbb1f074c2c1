package dto

// Sort keys accepted by the search pipeline
const (
	SortByPrice      = "price"
	SortByRating     = "rating"
	SortByDistance   = "distance"
	SortByPopularity = "popularity"
)

// Price slider bounds of the filter panel
const (
	PriceSliderMin = 150
	PriceSliderMax = 500
)

// SortKeys lists the documented sort keys in panel order
var SortKeys = []string{SortByPopularity, SortByPrice, SortByRating, SortByDistance}

// SearchFilters is the filter specification applied to the catalog.
// Empty strings, nil pointers and empty slices mean "no constraint".
type SearchFilters struct {
	City       string   `json:"city,omitempty"`
	University string   `json:"university,omitempty"`
	PriceMin   *int     `json:"priceMin,omitempty"`
	PriceMax   *int     `json:"priceMax,omitempty"`
	Amenities  []string `json:"amenities,omitempty"`
	RoomType   string   `json:"roomType,omitempty"`
	SortBy     string   `json:"sortBy,omitempty"`
}

// PriceRange returns the inclusive weekly price range when both bounds are set and sane
func (f *SearchFilters) PriceRange() (min, max int, ok bool) {
	if f.PriceMin == nil || f.PriceMax == nil {
		return 0, 0, false
	}
	min, max = *f.PriceMin, *f.PriceMax
	if min < 0 || max < min {
		return 0, 0, false
	}
	return min, max, true
}

// IsEmpty is true when no field, not even a single price bound, is set
func (f *SearchFilters) IsEmpty() bool {
	return f.City == "" && f.University == "" && f.PriceMin == nil && f.PriceMax == nil &&
		len(f.Amenities) == 0 && f.RoomType == "" && f.SortBy == ""
}

// WithSliderEdges completes a lone price bound with the opposite slider edge,
// the way the filter panel always sends a full range
func (f SearchFilters) WithSliderEdges() SearchFilters {
	if f.PriceMin != nil && f.PriceMax == nil {
		f.PriceMax = IntPtr(PriceSliderMax)
	}
	if f.PriceMax != nil && f.PriceMin == nil {
		f.PriceMin = IntPtr(PriceSliderMin)
	}
	return f
}

// IntPtr is a helper for optional int fields
func IntPtr(v int) *int {
	return &v
}

// Suggestion is one autocomplete entry
type Suggestion struct {
	Type string `json:"type"` // city | university
	Name string `json:"name"`
}

const (
	SuggestionCity       = "city"
	SuggestionUniversity = "university"
)

type SuggestResponse struct {
	Query       string       `json:"query"`
	Suggestions []Suggestion `json:"suggestions"`
	DidYouMean  *Suggestion  `json:"didYouMean,omitempty"`
}

// FilterOptions feeds the filter panel controls
type FilterOptions struct {
	Cities       []string `json:"cities"`
	Universities []string `json:"universities"`
	Amenities    []string `json:"amenities"`
	RoomTypes    []string `json:"roomTypes"`
	SortKeys     []string `json:"sortKeys"`
	PriceMin     int      `json:"priceMin"`
	PriceMax     int      `json:"priceMax"`
}
