package services

import (
	"sort"
	"strings"

	"unistay/dto"
	"unistay/models"
)

// ApplyFilters narrows and orders the catalog. It never mutates catalog and always
// returns a new slice, empty rather than nil when nothing matches.
func ApplyFilters(catalog []models.Property, f dto.SearchFilters) []models.Property {
	filtered := make([]models.Property, 0, len(catalog))
	filtered = append(filtered, catalog...)

	if f.City != "" {
		city := strings.ToLower(f.City)
		filtered = retain(filtered, func(p *models.Property) bool {
			return strings.Contains(strings.ToLower(p.City), city)
		})
	}

	if f.University != "" {
		university := strings.ToLower(f.University)
		filtered = retain(filtered, func(p *models.Property) bool {
			for _, uni := range p.UniversityNearby {
				if strings.Contains(strings.ToLower(uni), university) {
					return true
				}
			}
			return false
		})
	}

	if min, max, ok := f.PriceRange(); ok {
		filtered = retain(filtered, func(p *models.Property) bool {
			return p.PricePerWeek >= min && p.PricePerWeek <= max
		})
	}

	if len(f.Amenities) > 0 {
		filtered = retain(filtered, func(p *models.Property) bool {
			for _, amenity := range f.Amenities {
				if !p.HasAmenity(amenity) {
					return false
				}
			}
			return true
		})
	}

	if f.RoomType != "" {
		filtered = retain(filtered, func(p *models.Property) bool {
			_, ok := p.FindRoom(f.RoomType)
			return ok
		})
	}

	if f.SortBy != "" {
		sortProperties(filtered, f.SortBy)
	}

	return filtered
}

// retain filters in place; props must be owned by the caller
func retain(props []models.Property, keep func(p *models.Property) bool) []models.Property {
	out := props[:0]
	for i := range props {
		if keep(&props[i]) {
			out = append(out, props[i])
		}
	}
	return out
}

// sortProperties is stable; unknown keys sort by popularity like the explicit key
func sortProperties(props []models.Property, sortBy string) {
	var less func(a, b *models.Property) bool
	switch sortBy {
	case dto.SortByPrice:
		less = func(a, b *models.Property) bool { return a.PricePerWeek < b.PricePerWeek }
	case dto.SortByRating:
		less = func(a, b *models.Property) bool { return a.Rating > b.Rating }
	case dto.SortByDistance:
		less = func(a, b *models.Property) bool { return a.DistanceToUniversity < b.DistanceToUniversity }
	default:
		less = func(a, b *models.Property) bool { return a.ReviewCount > b.ReviewCount }
	}
	sort.SliceStable(props, func(i, j int) bool {
		return less(&props[i], &props[j])
	})
}
