package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// RoomTypeSeed is one row of the room type -> base weekly price table
type RoomTypeSeed struct {
	Type      string `yaml:"type"`
	BasePrice int    `yaml:"basePrice"`
}

// Seed holds the fixed source lists the catalog generator draws from
type Seed struct {
	Cities                  []string       `yaml:"cities"`
	Institutions            []string       `yaml:"institutions"`
	PropertyTypes           []string       `yaml:"propertyTypes"`
	Amenities               []string       `yaml:"amenities"`
	Images                  []string       `yaml:"images"`
	RoomTypes               []RoomTypeSeed `yaml:"roomTypes"`
	Streets                 []string       `yaml:"streets"`
	FloorPlan               string         `yaml:"floorPlan"`
	VideoTour               string         `yaml:"videoTour"`
	PlaceholderInstitutions []string       `yaml:"placeholderInstitutions"`
	FilterAmenities         []string       `yaml:"filterAmenities"`
}

// Load decodes the embedded seed document
func Load() (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(seedYAML, &seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// MustLoad is Load for package init paths; the embed is compiled in, so a failure is a build defect
func MustLoad() *Seed {
	seed, err := Load()
	if err != nil {
		panic(err)
	}
	return seed
}

// Validate checks the minimum sizes the generator relies on
func (s *Seed) Validate() error {
	lists := map[string][]string{
		"cities":                  s.Cities,
		"institutions":            s.Institutions,
		"propertyTypes":           s.PropertyTypes,
		"streets":                 s.Streets,
		"placeholderInstitutions": s.PlaceholderInstitutions,
		"filterAmenities":         s.FilterAmenities,
	}
	for name, list := range lists {
		if len(list) == 0 {
			return fmt.Errorf("seed list %s is empty", name)
		}
	}
	// 5-12 amenities, 2-4 room variants and 3-5 images are sliced from these pools
	if len(s.Amenities) < 12 {
		return fmt.Errorf("seed needs at least 12 amenities, got %d", len(s.Amenities))
	}
	if len(s.RoomTypes) < 4 {
		return fmt.Errorf("seed needs at least 4 room types, got %d", len(s.RoomTypes))
	}
	if len(s.Images) < 5 {
		return fmt.Errorf("seed needs at least 5 images, got %d", len(s.Images))
	}
	return nil
}

// Clone returns a deep copy so callers can shuffle lists without touching the shared seed
func (s *Seed) Clone() *Seed {
	c := *s
	c.Cities = append([]string(nil), s.Cities...)
	c.Institutions = append([]string(nil), s.Institutions...)
	c.PropertyTypes = append([]string(nil), s.PropertyTypes...)
	c.Amenities = append([]string(nil), s.Amenities...)
	c.Images = append([]string(nil), s.Images...)
	c.RoomTypes = append([]RoomTypeSeed(nil), s.RoomTypes...)
	c.Streets = append([]string(nil), s.Streets...)
	c.PlaceholderInstitutions = append([]string(nil), s.PlaceholderInstitutions...)
	c.FilterAmenities = append([]string(nil), s.FilterAmenities...)
	return &c
}
