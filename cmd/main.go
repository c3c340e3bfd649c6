// Package main is the entry point for the catering-service application.
//
// @title           Catering Service API
// @version         1.0.0
// @description     Ordering API for a catering storefront: menu browsing,
//
//	guest-driven quantity suggestions, session carts, delivery distance
//	resolution, and order submission with WhatsApp handoff.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/catering-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Admin bearer token. Format: "Bearer {token}".
//
// @tag.name        Menu
// @tag.description Storefront catalog
//
// @tag.name        Suggestions
// @tag.description Guest-driven quantity suggestions
//
// @tag.name        Cart
// @tag.description Session cart operations
//
// @tag.name        Delivery
// @tag.description Address and distance resolution
//
// @tag.name        Checkout
// @tag.description Eligibility and order submission
//
// @tag.name        Admin
// @tag.description Back-office management endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/catering-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)

	// Background workers drain after the listener: an in-flight address
	// resolution or buffered log write still has somewhere to land.
	server := app.NewServer(router, cfg.Server.Port, cleanup)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
