package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"shippingquote/services"
)

// quoteAPIRequest is the JSON body of POST /api/quote. Omitted fields keep
// the calculator defaults.
type quoteAPIRequest struct {
	services.ShipmentRequest
	Company services.CompanyInfo `json:"company"`
}

type quoteAPIResponse struct {
	Request services.ShipmentRequest `json:"request"`
	Result  services.QuoteResult     `json:"result"`
}

// HandleDestinations returns the active rate table as JSON.
func HandleDestinations(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, rateTable(app, e.Request))
	}
}

// sessionFromRequest replays a decoded request through the session setters,
// so negative sizes and weights clamp to 0 and invalid vehicles are dropped.
// Delivery rates and clearance always come from the rate table.
func sessionFromRequest(table services.RateTable, in services.ShipmentRequest) *services.Session {
	s := services.NewSession(table)
	s.SetLength(in.Dimensions.Length)
	s.SetWidth(in.Dimensions.Width)
	s.SetHeight(in.Dimensions.Height)
	s.SetPalletCount(in.PalletCount)
	s.SetActualWeight(in.ActualWeight)
	s.SetDestination(in.Destination)
	s.SetDeliveryRequired(in.Delivery.Required)
	if in.Delivery.Required {
		s.SetVehicle(in.Delivery.Vehicle)
	}
	for _, c := range in.AdditionalCharges {
		i := s.AddCharge()
		s.SetChargeName(i, c.Name)
		s.SetChargeAmount(i, c.Amount)
	}
	return s
}

// HandleQuoteAPI prices a JSON shipment request.
func HandleQuoteAPI(app *pocketbase.PocketBase, opts QuoteOptions) func(*core.RequestEvent) error {
	opts = opts.withDefaults()
	return func(e *core.RequestEvent) error {
		table := rateTable(app, e.Request)

		body := quoteAPIRequest{ShipmentRequest: services.NewSession(table).Snapshot()}
		if err := e.BindBody(&body); err != nil {
			log.Printf("api_quote: invalid body: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		req := sessionFromRequest(table, body.ShipmentRequest).Snapshot()

		result, err := services.NewCalculator(table, opts.Policy).Quote(req)
		switch {
		case errors.Is(err, services.ErrUnknownDestination):
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, services.ErrNegativeCharge):
			return e.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		case err != nil:
			log.Printf("api_quote: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to calculate quote"})
		}

		return e.JSON(http.StatusOK, quoteAPIResponse{Request: req, Result: result})
	}
}
