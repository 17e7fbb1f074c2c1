package models

import "fmt"

// WeeksPerMonth converts weekly rent into monthly rent
const WeeksPerMonth = 4.33

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RoomType is one bookable room variant of a listing
type RoomType struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Price     int    `json:"price"` // weekly
	Available int    `json:"available"`
	Total     int    `json:"total"`
}

// Property is one listing of the catalog
type Property struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	City                 string     `json:"city"`
	UniversityNearby     []string   `json:"universityNearby"`
	Address              string     `json:"address"`
	PricePerWeek         int        `json:"pricePerWeek"`
	PricePerMonth        int        `json:"pricePerMonth"`
	Description          string     `json:"description"`
	Images               []string   `json:"images"`
	VideoTour            string     `json:"videoTour,omitempty"`
	FloorPlan            string     `json:"floorPlan,omitempty"`
	Amenities            []string   `json:"amenities"`
	Verified             bool       `json:"verified"`
	Rating               float64    `json:"rating"`
	ReviewCount          int        `json:"reviewCount"`
	Location             Location   `json:"location"`
	RoomTypes            []RoomType `json:"roomTypes"`
	AvailableFrom        string     `json:"availableFrom"`
	DistanceToUniversity float64    `json:"distanceToUniversity"`
}

// MonthlyFromWeekly is floor(week * 4.33) in integer arithmetic
func MonthlyFromWeekly(pricePerWeek int) int {
	return pricePerWeek * 433 / 100
}

// HasAmenity reports an exact, case-sensitive amenity match
func (p *Property) HasAmenity(amenity string) bool {
	for _, a := range p.Amenities {
		if a == amenity {
			return true
		}
	}
	return false
}

// FindRoom returns the room variant with the given type label
func (p *Property) FindRoom(roomType string) (*RoomType, bool) {
	for i := range p.RoomTypes {
		if p.RoomTypes[i].Type == roomType {
			return &p.RoomTypes[i], true
		}
	}
	return nil, false
}

// Bookable is true when at least one room variant has a free unit
func (p *Property) Bookable() bool {
	for _, room := range p.RoomTypes {
		if room.Available > 0 {
			return true
		}
	}
	return false
}

func (r *RoomType) Validate() error {
	if r.Available < 0 || r.Total < 0 {
		return fmt.Errorf("room %s: negative inventory", r.ID)
	}
	if r.Available > r.Total {
		return fmt.Errorf("room %s: available %d exceeds total %d", r.ID, r.Available, r.Total)
	}
	return nil
}
