package services

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"unistay/data"
	"unistay/models"
	"unistay/services/logger"
)

const descriptionTemplate = "Modern student accommodation in the heart of %s with excellent transport links to major universities. " +
	"Features contemporary design, premium amenities, and a vibrant community atmosphere perfect for international students."

// CatalogGenerator builds the synthetic listing catalog
type CatalogGenerator struct {
	seed   *data.Seed
	rnd    *rand.Rand
	logger logger.Logger
}

type CatalogGeneratorOptions struct {
	Seed   *data.Seed
	Rand   *rand.Rand
	Logger logger.Logger
}

// NewCatalogGenerator fills missing options with the embedded seed, a time seeded source and a silent logger
func NewCatalogGenerator(opts CatalogGeneratorOptions) *CatalogGenerator {
	if opts.Seed == nil {
		opts.Seed = data.MustLoad()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNopLogger()
	}
	return &CatalogGenerator{
		seed:   opts.Seed,
		rnd:    opts.Rand,
		logger: opts.Logger,
	}
}

// Generate produces 3-6 listings per city, in city order
func (g *CatalogGenerator) Generate() []models.Property {
	properties := make([]models.Property, 0, len(g.seed.Cities)*6)

	for cityIndex, city := range g.seed.Cities {
		institutions := g.pickInstitutions()
		perCity := 3 + g.rnd.Intn(4)

		for i := 0; i < perCity; i++ {
			properties = append(properties, g.generateProperty(cityIndex, i, city, institutions))
		}
	}

	g.logger.Info("Generated catalog with %d listings across %d cities", len(properties), len(g.seed.Cities))
	return properties
}

// pickInstitutions keeps each institution with p=0.3, then truncates to 3-5 entries
func (g *CatalogGenerator) pickInstitutions() []string {
	picked := make([]string, 0, 8)
	for _, inst := range g.seed.Institutions {
		if g.rnd.Float64() > 0.7 {
			picked = append(picked, inst)
		}
	}
	if limit := 3 + g.rnd.Intn(3); len(picked) > limit {
		picked = picked[:limit]
	}
	if len(picked) == 0 {
		picked = append(picked, g.seed.PlaceholderInstitutions...)
	}
	return picked
}

func (g *CatalogGenerator) generateProperty(cityIndex, i int, city string, institutions []string) models.Property {
	propertyType := g.seed.PropertyTypes[g.rnd.Intn(len(g.seed.PropertyTypes))]
	basePrice := 150 + g.rnd.Intn(350)
	rating := round1(3.5 + g.rnd.Float64()*1.5)
	reviewCount := 20 + g.rnd.Intn(300)

	amenities := g.sample(g.seed.Amenities, 5+g.rnd.Intn(8))
	rooms := g.generateRooms(cityIndex, i)
	images := g.sample(g.seed.Images, 3+g.rnd.Intn(3))

	address := fmt.Sprintf("%d %s, %s",
		100+g.rnd.Intn(900),
		g.seed.Streets[g.rnd.Intn(len(g.seed.Streets))],
		city)

	p := models.Property{
		ID:               fmt.Sprintf("%d-%d", cityIndex, i),
		Name:             fmt.Sprintf("%s %s", propertyType, city),
		City:             city,
		UniversityNearby: append([]string(nil), institutions...),
		Address:          address,
		PricePerWeek:     basePrice,
		PricePerMonth:    models.MonthlyFromWeekly(basePrice),
		Description:      fmt.Sprintf(descriptionTemplate, city),
		Images:           images,
		Amenities:        amenities,
		Rating:           rating,
		ReviewCount:      reviewCount,
		RoomTypes:        rooms,
	}

	if g.rnd.Float64() > 0.7 {
		p.VideoTour = g.seed.VideoTour
	}
	if g.rnd.Float64() > 0.5 {
		p.FloorPlan = g.seed.FloorPlan
	}
	p.Verified = g.rnd.Float64() > 0.2
	p.Location = models.Location{
		Lat: 40 + g.rnd.Float64()*20,
		Lng: -120 + g.rnd.Float64()*140,
	}
	p.AvailableFrom = time.Date(2024, time.Month(1+g.rnd.Intn(12)), 1+g.rnd.Intn(28), 0, 0, 0, 0, time.UTC).
		Format("2006-01-02")
	p.DistanceToUniversity = round1(0.2 + g.rnd.Float64()*3)

	return p
}

// generateRooms picks 2-4 room types from the shuffled table
func (g *CatalogGenerator) generateRooms(cityIndex, i int) []models.RoomType {
	table := append([]data.RoomTypeSeed(nil), g.seed.RoomTypes...)
	g.rnd.Shuffle(len(table), func(a, b int) { table[a], table[b] = table[b], table[a] })
	table = table[:2+g.rnd.Intn(3)]

	rooms := make([]models.RoomType, 0, len(table))
	for idx, seed := range table {
		available := g.rnd.Intn(8)
		total := 5 + g.rnd.Intn(15)
		// inventory never reports more free units than exist
		if available > total {
			available = total
		}
		rooms = append(rooms, models.RoomType{
			ID:        fmt.Sprintf("%d-%d-%d", cityIndex, i, idx),
			Type:      seed.Type,
			Price:     seed.BasePrice + g.rnd.Intn(100) - 50,
			Available: available,
			Total:     total,
		})
	}
	return rooms
}

// sample shuffles a copy of pool and returns its first n elements
func (g *CatalogGenerator) sample(pool []string, n int) []string {
	shuffled := append([]string(nil), pool...)
	g.rnd.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n:n]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
