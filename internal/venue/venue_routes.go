package venue

import (
	"github.com/gin-gonic/gin"
	mw "github.com/ringsidehq/ringside/internal/middleware"
	"github.com/ringsidehq/ringside/pkg/rmiddleware"
	"gorm.io/gorm"
)

// VenueRoutes sets up all venue-related routes.
func VenueRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	controller := NewVenueController(NewVenueRepository(db))

	// Public venue views
	router.GET("/venues", controller.GetAllVenues)
	router.GET("/venues/:venue_id", controller.GetVenueByID)

	// Admin venue management
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/venues", controller.CreateVenue)
		adminRoutes.PUT("/venues/:venue_id", controller.UpdateVenue)
		adminRoutes.DELETE("/venues/:venue_id", controller.DeleteVenue)
	}
}
