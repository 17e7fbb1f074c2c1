package controllers

import (
	"strconv"
	"strings"

	"unistay/dto"
	"unistay/errors"
	"unistay/middleware"
	"unistay/response"
	"unistay/services"
	"unistay/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type PropertyController struct {
	search   *services.SearchService
	bookings *services.BookingService
	rdb      *redis.Client
	logger   logger.Logger
}

// NewPropertyController wires the catalog endpoints; rdb may be nil to disable filter memory
func NewPropertyController(search *services.SearchService, bookings *services.BookingService, rdb *redis.Client, log logger.Logger) *PropertyController {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &PropertyController{search: search, bookings: bookings, rdb: rdb, logger: log}
}

// parseSearchFilters reads the filter panel query string. A present but empty
// amenities parameter yields an empty, non-nil list.
func parseSearchFilters(c *gin.Context) (dto.SearchFilters, error) {
	f := dto.SearchFilters{
		City:       strings.TrimSpace(c.Query("city")),
		University: strings.TrimSpace(c.Query("university")),
		RoomType:   strings.TrimSpace(c.Query("roomType")),
		SortBy:     strings.TrimSpace(c.Query("sortBy")),
	}

	if raws, ok := c.GetQueryArray("amenities"); ok {
		f.Amenities = []string{}
		for _, raw := range raws {
			for _, a := range strings.Split(raw, ",") {
				if a = strings.TrimSpace(a); a != "" {
					f.Amenities = append(f.Amenities, a)
				}
			}
		}
	}

	var err error
	if f.PriceMin, err = queryIntPointer(c, "priceMin"); err != nil {
		return f, err
	}
	if f.PriceMax, err = queryIntPointer(c, "priceMax"); err != nil {
		return f, err
	}
	return f, nil
}

func queryIntPointer(c *gin.Context, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.NewValidationError("Invalid query parameter", []errors.FieldError{{Field: key, Message: "must be an integer"}})
	}
	return &v, nil
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

// GetProperties godoc
// @Summary Search listings
// @Tags properties
// @Produce json
// @Param city query string false "City substring"
// @Param university query string false "Institution substring"
// @Param priceMin query int false "Minimum weekly price"
// @Param priceMax query int false "Maximum weekly price"
// @Param amenities query []string false "Required amenities" collectionFormat(multi)
// @Param roomType query string false "Room type label"
// @Param sortBy query string false "price, rating, distance or popularity"
// @Param page query int false "0 based page"
// @Param limit query int false "Page size"
// @Param merge query bool false "Merge with remembered filters"
// @Success 200 {object} response.Response
// @Router /properties [get]
func (pc *PropertyController) GetProperties(c *gin.Context) {
	filters, err := parseSearchFilters(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	if pc.rdb != nil {
		key := middleware.SessionKey(c)
		if c.Query("merge") == "true" {
			remembered, err := services.GetLastFilters(c.Request.Context(), pc.rdb, key)
			if err != nil {
				pc.logger.Warn("Failed to load remembered filters for %s: %v", key, err)
			}
			filters = *services.MergeFilters(remembered, &filters)
		}
		pc.rememberFilters(c, key, &filters)
	}

	page, limit := services.NormalizePage(queryInt(c, "page", 0), queryInt(c, "limit", 0))
	items, total := pc.search.Search(filters.WithSliderEdges(), page, limit)
	response.SuccessWithPagination(c, dto.NewPropertyCards(items), page, limit, total)
}

// rememberFilters stores the filters as requested, before slider completion;
// an empty filter set forgets the session instead
func (pc *PropertyController) rememberFilters(c *gin.Context, key string, filters *dto.SearchFilters) {
	var err error
	if filters.IsEmpty() {
		err = services.ClearLastFilters(c.Request.Context(), pc.rdb, key)
	} else {
		err = services.SaveLastFilters(c.Request.Context(), pc.rdb, key, filters)
	}
	if err != nil {
		pc.logger.Warn("Failed to remember filters for %s: %v", key, err)
	}
}

// GetFeatured godoc
// @Summary Featured listings for the home page
// @Tags properties
// @Param n query int false "Number of listings" default(3)
// @Success 200 {object} response.Response
// @Router /properties/featured [get]
func (pc *PropertyController) GetFeatured(c *gin.Context) {
	response.Success(c, dto.NewPropertyCards(pc.search.Featured(queryInt(c, "n", 3))))
}

// GetPropertyDetail godoc
// @Summary Listing detail with the quote of its first room
// @Tags properties
// @Param id path string true "Listing id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /properties/{id} [get]
func (pc *PropertyController) GetPropertyDetail(c *gin.Context) {
	property, err := pc.search.FindByID(c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}
	detail := dto.PropertyDetailResponse{Property: *property, Bookable: property.Bookable()}
	if quote, ok := services.QuoteFor(property, ""); ok {
		detail.Quote = &quote
	}
	response.Success(c, detail)
}

// GetQuote godoc
// @Summary Booking summary for a room type
// @Tags properties
// @Param id path string true "Listing id"
// @Param roomType query string false "Room type label"
// @Success 200 {object} response.Response
// @Router /properties/{id}/quote [get]
func (pc *PropertyController) GetQuote(c *gin.Context) {
	quote, err := pc.bookings.Quote(c.Param("id"), c.Query("roomType"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, quote)
}

// GetFilterOptions godoc
// @Summary Values offered by the filter panel
// @Tags filters
// @Success 200 {object} response.Response
// @Router /filters/options [get]
func (pc *PropertyController) GetFilterOptions(c *gin.Context) {
	response.Success(c, pc.search.FilterOptions())
}

// ClearFilters godoc
// @Summary Forget the remembered filters of the session
// @Tags filters
// @Success 200 {object} response.Response
// @Router /filters [delete]
func (pc *PropertyController) ClearFilters(c *gin.Context) {
	if pc.rdb != nil {
		if err := services.ClearLastFilters(c.Request.Context(), pc.rdb, middleware.SessionKey(c)); err != nil {
			response.Fail(c, err)
			return
		}
	}
	response.Success(c, nil)
}

// Suggest godoc
// @Summary Autocomplete cities and universities
// @Tags filters
// @Param q query string true "Query"
// @Success 200 {object} response.Response
// @Router /suggest [get]
func (pc *PropertyController) Suggest(c *gin.Context) {
	response.Success(c, pc.search.Suggest(c.Query("q")))
}
