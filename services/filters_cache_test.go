package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"unistay/dto"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestLastFiltersRoundTrip(t *testing.T) {
	mr, rdb := newTestRedis(t)
	ctx := context.Background()

	got, err := GetLastFilters(ctx, rdb, "user:1")
	if err != nil || got != nil {
		t.Fatalf("expected miss, got %+v, %v", got, err)
	}

	saved := &dto.SearchFilters{City: "London", PriceMin: dto.IntPtr(200), PriceMax: dto.IntPtr(300), Amenities: []string{"WiFi"}}
	if err := SaveLastFilters(ctx, rdb, "user:1", saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	if ttl := mr.TTL("last_filters:user:1"); ttl != 30*time.Minute {
		t.Fatalf("expected 30m ttl, got %v", ttl)
	}

	got, err = GetLastFilters(ctx, rdb, "user:1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got, saved) {
		t.Fatalf("expected %+v, got %+v", saved, got)
	}

	if err := ClearLastFilters(ctx, rdb, "user:1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got, _ := GetLastFilters(ctx, rdb, "user:1"); got != nil {
		t.Fatalf("expected cleared filters, got %+v", got)
	}
}

func TestLastFiltersExpire(t *testing.T) {
	mr, rdb := newTestRedis(t)
	ctx := context.Background()
	if err := SaveLastFilters(ctx, rdb, "ip:127.0.0.1", &dto.SearchFilters{City: "Paris"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	mr.FastForward(31 * time.Minute)
	if got, _ := GetLastFilters(ctx, rdb, "ip:127.0.0.1"); got != nil {
		t.Fatalf("expected expired filters, got %+v", got)
	}
}

func TestGetFromRedisRejectsBadJSON(t *testing.T) {
	mr, rdb := newTestRedis(t)
	if err := mr.Set("last_filters:broken", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := GetLastFilters(context.Background(), rdb, "broken"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestMergeFilters(t *testing.T) {
	old := &dto.SearchFilters{
		City:      "London",
		PriceMin:  dto.IntPtr(200),
		PriceMax:  dto.IntPtr(300),
		Amenities: []string{"WiFi", "Gym"},
		SortBy:    dto.SortByPrice,
	}
	merged := MergeFilters(old, &dto.SearchFilters{
		University: "UCL",
		Amenities:  []string{"Gym", "Laundry"},
		SortBy:     dto.SortByRating,
	})

	if merged.City != "London" || merged.University != "UCL" || merged.SortBy != dto.SortByRating {
		t.Fatalf("unexpected scalar merge %+v", merged)
	}
	if !reflect.DeepEqual(merged.Amenities, []string{"Gym", "Laundry"}) {
		t.Fatalf("expected requested amenities to replace remembered ones, got %v", merged.Amenities)
	}
	if *merged.PriceMin != 200 || *merged.PriceMax != 300 {
		t.Fatalf("expected remembered range, got %d-%d", *merged.PriceMin, *merged.PriceMax)
	}
}

func TestMergeFiltersAmenities(t *testing.T) {
	old := &dto.SearchFilters{Amenities: []string{"WiFi", "Gym"}}

	merged := MergeFilters(old, &dto.SearchFilters{City: "Paris"})
	if !reflect.DeepEqual(merged.Amenities, []string{"WiFi", "Gym"}) {
		t.Fatalf("expected remembered amenities kept, got %v", merged.Amenities)
	}

	merged = MergeFilters(old, &dto.SearchFilters{Amenities: []string{"WiFi", "WiFi"}})
	if !reflect.DeepEqual(merged.Amenities, []string{"WiFi"}) {
		t.Fatalf("expected de-selected amenity dropped, got %v", merged.Amenities)
	}

	merged = MergeFilters(old, &dto.SearchFilters{Amenities: []string{}})
	if len(merged.Amenities) != 0 {
		t.Fatalf("expected empty list to clear amenities, got %v", merged.Amenities)
	}
}

func TestMergeFiltersKeepsRememberedOppositeBound(t *testing.T) {
	old := &dto.SearchFilters{PriceMin: dto.IntPtr(200), PriceMax: dto.IntPtr(300)}
	merged := MergeFilters(old, &dto.SearchFilters{PriceMin: dto.IntPtr(250)})
	if *merged.PriceMin != 250 || merged.PriceMax == nil || *merged.PriceMax != 300 {
		t.Fatalf("expected 250-300, got %+v", merged)
	}
}

func TestMergeFiltersDropsContradictingBound(t *testing.T) {
	old := &dto.SearchFilters{PriceMin: dto.IntPtr(200), PriceMax: dto.IntPtr(300)}
	merged := MergeFilters(old, &dto.SearchFilters{PriceMin: dto.IntPtr(400)})
	if merged.PriceMax != nil || *merged.PriceMin != 400 {
		t.Fatalf("expected old max dropped, got %+v", merged)
	}

	old = &dto.SearchFilters{PriceMin: dto.IntPtr(200), PriceMax: dto.IntPtr(300)}
	merged = MergeFilters(old, &dto.SearchFilters{PriceMax: dto.IntPtr(150)})
	if merged.PriceMin != nil || *merged.PriceMax != 150 {
		t.Fatalf("expected old min dropped, got %+v", merged)
	}
}

func TestMergeFiltersWithoutMemory(t *testing.T) {
	f := &dto.SearchFilters{City: "Rome"}
	if got := MergeFilters(nil, f); got != f {
		t.Fatalf("expected request filters unchanged")
	}
}
