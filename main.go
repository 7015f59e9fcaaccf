package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"shippingquote/cli"
	"shippingquote/collections"
	"shippingquote/config"
	"shippingquote/handlers"
	"shippingquote/services"
)

func main() {
	cfg := config.Load()
	app := pocketbase.New()

	opts := handlers.QuoteOptions{
		IDs:    services.NewQuoteIDSource(cfg.QuoteIDMode),
		Policy: cfg.ChargePolicy,
		Title:  cfg.QuoteTitle,
	}

	app.RootCmd.AddCommand(cli.NewQuoteCommand(app, cfg))

	// Create rate collections and seed defaults on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Rates are read per request so admin edits apply immediately
		se.Router.BindFunc(handlers.RateTableMiddleware(app))

		// ── Calculator ───────────────────────────────────────────
		se.Router.GET("/", handlers.HandleQuotePage(app, opts))
		se.Router.POST("/quote/calculate", handlers.HandleQuoteCalculate(app, opts))
		se.Router.POST("/quote/form", handlers.HandleQuoteForm(app, opts))

		// ── Quote export ─────────────────────────────────────────
		se.Router.POST("/quote/export/pdf", handlers.HandleQuoteExport(app, opts, services.FormatPDF))
		se.Router.POST("/quote/export/excel", handlers.HandleQuoteExport(app, opts, services.FormatExcel))

		// ── JSON API ─────────────────────────────────────────────
		se.Router.GET("/api/destinations", handlers.HandleDestinations(app))
		se.Router.POST("/api/quote", handlers.HandleQuoteAPI(app, opts))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
