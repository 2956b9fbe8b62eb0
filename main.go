package main

import (
	"log"

	"github.com/ringsidehq/ringside/config"
	_ "github.com/ringsidehq/ringside/docs"
	"github.com/ringsidehq/ringside/internal/championship"
	"github.com/ringsidehq/ringside/internal/event"
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/manager"
	"github.com/ringsidehq/ringside/internal/match"
	"github.com/ringsidehq/ringside/internal/membership"
	"github.com/ringsidehq/ringside/internal/referee"
	"github.com/ringsidehq/ringside/internal/stable"
	"github.com/ringsidehq/ringside/internal/tagteam"
	"github.com/ringsidehq/ringside/internal/title"
	"github.com/ringsidehq/ringside/internal/user"
	"github.com/ringsidehq/ringside/internal/venue"
	"github.com/ringsidehq/ringside/internal/wrestler"
	"github.com/ringsidehq/ringside/routes"
)

// @title Ringside REST API
// @version 1.0
// @description Roster and event booking backend for a wrestling promotion.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &user.Role{}, &user.RefreshToken{},
		&lifecycle.Period{}, &membership.Membership{}, &championship.Championship{},
		&wrestler.Wrestler{}, &tagteam.TagTeam{}, &manager.Manager{}, &referee.Referee{},
		&title.Title{}, &stable.Stable{},
		&venue.Venue{}, &event.Event{},
		&match.MatchType{}, &match.EventMatch{}, &match.MatchCompetitor{},
		&match.MatchReferee{}, &match.MatchTitle{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
