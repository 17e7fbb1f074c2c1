package dto

import "unistay/models"

// PropertyCardResponse is the search result card
type PropertyCardResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	City                 string   `json:"city"`
	Address              string   `json:"address"`
	UniversityNearby     []string `json:"universityNearby"`
	PricePerWeek         int      `json:"pricePerWeek"`
	PricePerMonth        int      `json:"pricePerMonth"`
	Image                string   `json:"image"`
	Images               []string `json:"images"`
	Amenities            []string `json:"amenities"`
	Verified             bool     `json:"verified"`
	Rating               float64  `json:"rating"`
	ReviewCount          int      `json:"reviewCount"`
	DistanceToUniversity float64  `json:"distanceToUniversity"`
	AvailableFrom        string   `json:"availableFrom"`
	HasVideoTour         bool     `json:"hasVideoTour"`
	Bookable             bool     `json:"bookable"`
}

// PropertyDetailResponse is the detail page payload
type PropertyDetailResponse struct {
	models.Property
	Bookable bool          `json:"bookable"`
	Quote    *BookingQuote `json:"quote,omitempty"`
}

// NewPropertyCard maps a listing to its card
func NewPropertyCard(p models.Property) PropertyCardResponse {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return PropertyCardResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		City:                 p.City,
		Address:              p.Address,
		UniversityNearby:     p.UniversityNearby,
		PricePerWeek:         p.PricePerWeek,
		PricePerMonth:        p.PricePerMonth,
		Image:                image,
		Images:               p.Images,
		Amenities:            p.Amenities,
		Verified:             p.Verified,
		Rating:               p.Rating,
		ReviewCount:          p.ReviewCount,
		DistanceToUniversity: p.DistanceToUniversity,
		AvailableFrom:        p.AvailableFrom,
		HasVideoTour:         p.VideoTour != "",
		Bookable:             p.Bookable(),
	}
}

// NewPropertyCards maps a result page
func NewPropertyCards(props []models.Property) []PropertyCardResponse {
	cards := make([]PropertyCardResponse, 0, len(props))
	for _, p := range props {
		cards = append(cards, NewPropertyCard(p))
	}
	return cards
}
