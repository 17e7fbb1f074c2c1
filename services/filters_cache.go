package services

import (
	"context"
	"time"

	"unistay/dto"

	"github.com/redis/go-redis/v9"
)

const (
	lastFiltersPrefix = "last_filters:"
	lastFiltersTTL    = 30 * time.Minute
)

func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.SearchFilters) error {
	return SetToRedis(ctx, rdb, lastFiltersPrefix+key, filters, lastFiltersTTL)
}

// GetLastFilters returns nil without error when nothing is remembered for key
func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.SearchFilters, error) {
	var filters dto.SearchFilters
	found, err := GetFromRedis(ctx, rdb, lastFiltersPrefix+key, &filters)
	if err != nil || !found {
		return nil, err
	}
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return DeleteFromRedis(ctx, rdb, lastFiltersPrefix+key)
}

// MergeFilters layers a new request over the remembered one. A non-nil amenity
// list replaces the remembered list, so an empty list clears it.
func MergeFilters(old *dto.SearchFilters, new *dto.SearchFilters) *dto.SearchFilters {
	if old == nil {
		return new
	}
	new.City = orString(new.City, old.City)
	new.University = orString(new.University, old.University)
	new.RoomType = orString(new.RoomType, old.RoomType)
	new.SortBy = orString(new.SortBy, old.SortBy)

	if new.Amenities == nil {
		new.Amenities = append([]string(nil), old.Amenities...)
	} else {
		new.Amenities = uniqueStrings(new.Amenities)
	}

	// a new bound that contradicts the remembered opposite bound drops it
	if new.PriceMin != nil && old.PriceMax != nil && *new.PriceMin > *old.PriceMax {
		new.PriceMax = orIntPointer(new.PriceMax, nil)
	} else {
		new.PriceMax = orIntPointer(new.PriceMax, old.PriceMax)
	}

	if new.PriceMax != nil && old.PriceMin != nil && *new.PriceMax < *old.PriceMin {
		new.PriceMin = orIntPointer(new.PriceMin, nil)
	} else {
		new.PriceMin = orIntPointer(new.PriceMin, old.PriceMin)
	}
	return new
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	result := make([]string, 0, len(values))
	for _, val := range values {
		if !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	return result
}
