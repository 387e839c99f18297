package routes

import (
	"net/http"
	"time"

	"vishalaksha/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers registered on the router.
type HandlerBundle struct {
	Pages   *handlers.PagesHandler
	Booking *handlers.BookingHandler
	Yogdaan *handlers.YogdaanHandler
}

// RegisterPageRoutes maps the site's URL paths to page handlers, with the
// not-found page as catch-all.
func RegisterPageRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/", hb.Pages.Home)
	r.GET("/about", hb.Pages.About)
	r.GET("/residential", hb.Pages.Residential)
	r.GET("/commercial", hb.Pages.Commercial)
	r.GET("/industrial", hb.Pages.Industrial)
	r.GET("/yogdaan", hb.Pages.Yogdaan)
	r.GET("/consultation", hb.Pages.Consultation)
	r.GET("/process", hb.Pages.Process)
	r.NoRoute(hb.Pages.NotFound)
}

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookingGroup := r.Group("/api/consultation")
	{
		bookingGroup.POST("/session", hb.Booking.StartSessionHandler)
		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.ConfirmPaymentHandler)
		bookingGroup.POST("/session/:sessionID/dismiss", hb.Booking.DismissPaymentHandler)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.ResetSessionHandler)
	}
}

// RegisterYogdaanRoutes sets up the endpoint for the intake flow.
func RegisterYogdaanRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/yogdaan", hb.Yogdaan.SubmitHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Vishalaksha"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*.tmpl")

	RegisterPageRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterYogdaanRoutes(r, hb)
	RegisterHealthRoute(r)
}
