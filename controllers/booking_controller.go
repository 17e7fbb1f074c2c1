package controllers

import (
	"unistay/dto"
	"unistay/middleware"
	"unistay/response"
	"unistay/services"
	"unistay/services/notification"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// ValidateStep godoc
// @Summary Validate one page of the booking form
// @Tags bookings
// @Accept json
// @Param body body dto.ValidateStepRequest true "Step and form"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /bookings/validate [post]
func (bc *BookingController) ValidateStep(c *gin.Context) {
	var req dto.ValidateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, bindError(err))
		return
	}
	title, err := bc.bookings.ValidateStep(c.Request.Context(), req.PropertyID, req.Step, &req.Form)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, dto.StepResult{Step: req.Step, Title: title, Valid: true})
}

// CreateBooking godoc
// @Summary Book a room and pay
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Param body body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} response.Response
// @Failure 402 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings [post]
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	booking, err := bc.bookings.Create(c.Request.Context(), userID, req)
	if err != nil {
		if booking != nil {
			response.FailWithData(c, err, dto.BookingResponse{Booking: *booking})
			return
		}
		response.Fail(c, err)
		return
	}
	response.Created(c, dto.BookingResponse{Booking: *booking, Message: notification.BookingCompletedText})
}

// GetBookings godoc
// @Summary Bookings of the current user
// @Tags bookings
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /bookings [get]
func (bc *BookingController) GetBookings(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	bookings, err := bc.bookings.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, bookings)
}

// GetBooking godoc
// @Summary One booking of the current user
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking id"
// @Success 200 {object} response.Response
// @Router /bookings/{id} [get]
func (bc *BookingController) GetBooking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	booking, err := bc.bookings.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, booking)
}

// CancelBooking godoc
// @Summary Cancel a booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking id"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/cancel [put]
func (bc *BookingController) CancelBooking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	booking, err := bc.bookings.Cancel(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, booking)
}
