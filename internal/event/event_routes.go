package event

import (
	"github.com/gin-gonic/gin"
	mw "github.com/ringsidehq/ringside/internal/middleware"
	"github.com/ringsidehq/ringside/internal/venue"
	"github.com/ringsidehq/ringside/pkg/rmiddleware"
	"gorm.io/gorm"
)

// EventRoutes sets up all event-related routes.
func EventRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	controller := NewEventController(NewEventRepository(db), venue.NewVenueRepository(db))

	// Public event views
	router.GET("/events", controller.GetAllEvents)
	router.GET("/events/:event_id", controller.GetEventByID)

	// Admin event management
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/events", controller.CreateEvent)
		adminRoutes.PUT("/events/:event_id", controller.UpdateEvent)
		adminRoutes.DELETE("/events/:event_id", controller.DeleteEvent)
	}
}
