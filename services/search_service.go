package services

import (
	"sort"

	"unistay/data"
	"unistay/dto"
	"unistay/errors"
	"unistay/models"
	"unistay/services/logger"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
	defaultFeatured  = 3
)

// SearchService serves the in-memory catalog
type SearchService struct {
	catalog   []models.Property
	byID      map[string]int
	seed      *data.Seed
	suggester *Suggester
	logger    logger.Logger
}

type SearchServiceOptions struct {
	Seed   *data.Seed
	Logger logger.Logger
}

func NewSearchService(catalog []models.Property, opts SearchServiceOptions) *SearchService {
	if opts.Seed == nil {
		opts.Seed = data.MustLoad()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNopLogger()
	}
	s := &SearchService{
		catalog: catalog,
		byID:    make(map[string]int, len(catalog)),
		seed:    opts.Seed,
		logger:  opts.Logger,
	}
	for i, p := range catalog {
		s.byID[p.ID] = i
	}
	s.suggester = NewSuggester(opts.Seed.Cities, opts.Seed.Institutions)
	return s
}

// Search runs the pipeline and returns one page plus the total match count.
// page is 0 based; limit <= 0 falls back to 10.
func (s *SearchService) Search(f dto.SearchFilters, page, limit int) ([]models.Property, int) {
	page, limit = NormalizePage(page, limit)
	results := ApplyFilters(s.catalog, f)
	total := len(results)

	// checked before page*limit, which overflows for huge pages
	if page >= (total+limit-1)/limit {
		return []models.Property{}, total
	}
	start := page * limit
	end := start + limit
	if end > total {
		end = total
	}

	s.logger.Debug("search %+v matched %d listings", f, total)
	return results[start:end], total
}

// NormalizePage clamps paging input the way list endpoints expect it
func NormalizePage(page, limit int) (int, int) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// FindByID returns a copy of the listing
func (s *SearchService) FindByID(id string) (*models.Property, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, errors.ErrPropertyNotFound
	}
	p := s.catalog[i]
	return &p, nil
}

// Featured returns the first n listings of the catalog
func (s *SearchService) Featured(n int) []models.Property {
	if n <= 0 {
		n = defaultFeatured
	}
	if n > len(s.catalog) {
		n = len(s.catalog)
	}
	out := make([]models.Property, n)
	copy(out, s.catalog[:n])
	return out
}

func (s *SearchService) Suggest(query string) dto.SuggestResponse {
	return s.suggester.Suggest(query)
}

// FilterOptions lists the values the filter panel offers
func (s *SearchService) FilterOptions() dto.FilterOptions {
	roomTypes := make([]string, 0, len(s.seed.RoomTypes))
	for _, rt := range s.seed.RoomTypes {
		roomTypes = append(roomTypes, rt.Type)
	}
	return dto.FilterOptions{
		Cities:       append([]string(nil), s.seed.Cities...),
		Universities: s.universities(),
		Amenities:    append([]string(nil), s.seed.FilterAmenities...),
		RoomTypes:    roomTypes,
		SortKeys:     append([]string(nil), dto.SortKeys...),
		PriceMin:     dto.PriceSliderMin,
		PriceMax:     dto.PriceSliderMax,
	}
}

// universities returns the sorted distinct institutions used by the catalog
func (s *SearchService) universities() []string {
	seen := make(map[string]bool)
	out := make([]string, 0, 64)
	for _, p := range s.catalog {
		for _, u := range p.UniversityNearby {
			if !seen[u] {
				seen[u] = true
				out = append(out, u)
			}
		}
	}
	sort.Strings(out)
	return out
}
