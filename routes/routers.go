package routes

import (
	"net/http"

	"unistay/controllers"
	"unistay/middleware"
	"unistay/services/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "unistay/docs"
)

// Deps groups what the router needs from main
type Deps struct {
	Properties *controllers.PropertyController
	Auth       *controllers.AuthController
	Users      *controllers.UserController
	Bookings   *controllers.BookingController
	Tokens     middleware.TokenParser
	Logger     logger.Logger
}

func SetupRoutes(router *gin.Engine, d Deps) {
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.ErrorHandler(d.Logger), middleware.SessionMiddleware(), middleware.OptionalAuth(d.Tokens))

	v1.GET("/properties", d.Properties.GetProperties)
	v1.GET("/properties/featured", d.Properties.GetFeatured)
	v1.GET("/properties/:id", d.Properties.GetPropertyDetail)
	v1.GET("/properties/:id/quote", d.Properties.GetQuote)
	v1.GET("/filters/options", d.Properties.GetFilterOptions)
	v1.DELETE("/filters", d.Properties.ClearFilters)
	v1.GET("/suggest", d.Properties.Suggest)

	v1.POST("/auth/register", d.Auth.Register)
	v1.POST("/auth/login", d.Auth.Login)
	v1.DELETE("/auth/logout", d.Auth.Logout)

	auth := middleware.AuthMiddleware(d.Tokens)
	v1.GET("/profile", auth, d.Users.GetProfile)
	v1.GET("/saved", auth, d.Users.GetSaved)
	v1.PUT("/saved/:id", auth, d.Users.ToggleSaved)

	v1.POST("/bookings/validate", d.Bookings.ValidateStep)
	v1.POST("/bookings", auth, d.Bookings.CreateBooking)
	v1.GET("/bookings", auth, d.Bookings.GetBookings)
	v1.GET("/bookings/:id", auth, d.Bookings.GetBooking)
	v1.PUT("/bookings/:id/cancel", auth, d.Bookings.CancelBooking)
}
