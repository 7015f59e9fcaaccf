package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the destinations, rate_bands,
// vehicle_classes and quote_settings collections exist.
func Setup(app *pocketbase.PocketBase) {
	destinations := ensureCollection(app, "destinations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "key", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
		c.AddIndex("idx_destinations_key", true, "key", "")
	})

	ensureCollection(app, "rate_bands", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "destination",
			Required:      true,
			CollectionId:  destinations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
		c.Fields.Add(&core.NumberField{Name: "min_weight", Required: false})
		c.Fields.Add(&core.NumberField{Name: "max_weight", Required: true})
		c.Fields.Add(&core.NumberField{Name: "rate", Required: true})
	})

	ensureCollection(app, "vehicle_classes", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "key", Required: true})
		c.Fields.Add(&core.TextField{Name: "label", Required: true})
		c.Fields.Add(&core.NumberField{Name: "charge", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
		c.AddIndex("idx_vehicle_classes_key", true, "key", "")
	})

	ensureCollection(app, "quote_settings", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "clearance_charge", Required: false})
		c.Fields.Add(&core.TextField{Name: "clearance_label", Required: false})
		c.Fields.Add(&core.TextField{Name: "currency_symbol", Required: false})
		c.Fields.Add(&core.NumberField{Name: "validity_days", Required: false, OnlyInt: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
