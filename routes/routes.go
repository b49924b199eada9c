package routes

import (
	"net/http"

	"github.com/MAyankprine20001/Penta-Cabs/controllers"
	"github.com/gin-gonic/gin"
)

// Controllers bundles every handler group the server exposes.
type Controllers struct {
	Airport    *controllers.AirportController
	Local      *controllers.LocalController
	Outstation *controllers.OutstationController
	Booking    *controllers.BookingController
	Blog       *controllers.BlogController
	SEO        *controllers.SEOController
	Payment    *controllers.PaymentController
	Meta       *controllers.MetaController
}

// Register wires the public API. Paths mirror what the Next.js frontend and
// admin dashboard already call, so they are flat rather than grouped by
// resource.
func Register(router *gin.Engine, c Controllers) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Static lookups
	router.GET("/api/airports", c.Meta.ListAirports)
	router.GET("/api/cities", c.Meta.ListCities)

	// Admin catalog writes
	router.POST("/add-service", c.Airport.AddService)
	router.POST("/add-outstation", c.Outstation.AddRoute)
	router.POST("/add-local-bulk", c.Local.AddBulk)

	// Airport services
	router.GET("/api/airport-services", c.Airport.ListServices)
	router.GET("/api/airport-services/:id", c.Airport.GetService)
	router.PUT("/api/airport-services/:id", c.Airport.UpdateService)
	router.DELETE("/api/airport-services/:id", c.Airport.DeleteService)
	router.POST("/api/search-cabs-forairport", c.Airport.SearchCabs)
	router.GET("/api/available-airports", c.Airport.AvailableAirports)

	// Local rides
	router.GET("/api/local-services", c.Local.ListServices)
	router.GET("/api/local-services/:id", c.Local.GetService)
	router.PUT("/api/local-services/:id", c.Local.UpdateService)
	router.DELETE("/api/local-services/:id", c.Local.DeleteService)
	router.POST("/api/local-ride/search", c.Local.SearchRides)
	router.GET("/api/available-cities", c.Local.AvailableCities)

	// Outstation routes
	router.GET("/api/outstation-routes", c.Outstation.ListRoutes)
	router.GET("/api/outstation-routes/:id", c.Outstation.GetRoute)
	router.PUT("/api/outstation-routes/:id", c.Outstation.UpdateRoute)
	router.DELETE("/api/outstation-routes/:id", c.Outstation.DeleteRoute)
	router.POST("/api/intercity/search", c.Outstation.SearchIntercity)
	router.GET("/api/available-outstation-cities", c.Outstation.AvailableCities)

	// Emails
	router.POST("/send-airport-email", c.Airport.SendLaunchEmail)
	router.POST("/api/send-airport-email", c.Airport.SendBookingEmail)
	router.POST("/send-local-email", c.Local.SendBookingEmail)
	router.POST("/send-route-email", c.Outstation.SendLaunchEmail)
	router.POST("/send-intercity-email", c.Outstation.SendBookingEmail)
	router.POST("/api/send-decline-email", c.Booking.SendDeclineEmail)

	// Booking requests
	router.POST("/api/create-booking-request", c.Booking.CreateBooking)
	router.GET("/api/booking-requests", c.Booking.ListBookings)
	router.PUT("/api/booking-requests/:id/status", c.Booking.UpdateStatus)
	router.PUT("/api/booking-requests/:id/driver-details", c.Booking.SetDriverDetails)

	// Payments
	router.POST("/api/payment/create-order", c.Payment.CreateOrder)
	router.POST("/api/payment/verify", c.Payment.VerifyPayment)

	// Blog
	router.GET("/blogs", c.Blog.ListBlogs)
	router.GET("/blogs/:id", c.Blog.GetBlog)
	router.POST("/blogs", c.Blog.CreateBlog)
	router.PUT("/blogs/:id", c.Blog.UpdateBlog)
	router.DELETE("/blogs/:id", c.Blog.DeleteBlog)
	router.PATCH("/blogs/:id/status", c.Blog.ToggleStatus)

	// SEO metadata
	router.GET("/api/seo", c.SEO.ListEntries)
	router.GET("/api/seo/:page", c.SEO.GetEntry)
	router.PUT("/api/seo/:page", c.SEO.UpsertEntry)
	router.DELETE("/api/seo/:page", c.SEO.DeleteEntry)
}
