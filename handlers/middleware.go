package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"shippingquote/services"
)

type contextKey string

const RateTableKey contextKey = "rateTable"

// GetRateTable extracts the rate table stored by RateTableMiddleware.
func GetRateTable(r *http.Request) (services.RateTable, bool) {
	table, ok := r.Context().Value(RateTableKey).(services.RateTable)
	return table, ok
}

// rateTable returns the request's rate table, loading it from the database
// when the middleware did not run.
func rateTable(app *pocketbase.PocketBase, r *http.Request) services.RateTable {
	if table, ok := GetRateTable(r); ok {
		return table
	}
	return loadRateTable(app)
}

func loadRateTable(app *pocketbase.PocketBase) services.RateTable {
	table, err := services.LoadRateTable(app)
	if err != nil {
		log.Printf("middleware: could not load rate table, using defaults: %v", err)
		return services.DefaultRateTable()
	}
	return table
}

// RateTableMiddleware loads the current rate configuration for every request
// so edits in the admin UI apply without a restart.
func RateTableMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		table := loadRateTable(app)
		ctx := context.WithValue(e.Request.Context(), RateTableKey, table)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}
