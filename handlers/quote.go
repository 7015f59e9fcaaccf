package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"shippingquote/services"
	"shippingquote/templates"
)

// QuoteOptions carries the injectable parts of quote rendering.
type QuoteOptions struct {
	IDs    services.QuoteIDSource
	Now    func() time.Time
	Policy services.ChargePolicy
	Title  string
}

func (o QuoteOptions) withDefaults() QuoteOptions {
	if o.IDs == nil {
		o.IDs = services.RandomQuoteIDs{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Title == "" {
		o.Title = services.DefaultQuoteTitle
	}
	return o
}

// parseQuoteForm replays the submitted form onto a fresh session, one setter
// per field. Fields missing from the form keep their defaults; present but
// non-numeric values become 0.
func parseQuoteForm(r *http.Request, table services.RateTable) *services.Session {
	s := services.NewSession(table)
	form := r.Form

	s.SetCompanyName(strings.TrimSpace(form.Get("company_name")))
	s.SetContactPerson(strings.TrimSpace(form.Get("contact_person")))
	s.SetContactNo(strings.TrimSpace(form.Get("contact_no")))

	if dest := strings.TrimSpace(form.Get("destination")); dest != "" {
		s.SetDestination(dest)
	}
	if form.Has("length") {
		s.SetLength(services.ParseNumber(form.Get("length")))
	}
	if form.Has("width") {
		s.SetWidth(services.ParseNumber(form.Get("width")))
	}
	if form.Has("height") {
		s.SetHeight(services.ParseNumber(form.Get("height")))
	}
	if form.Has("actual_weight") {
		s.SetActualWeight(services.ParseNumber(form.Get("actual_weight")))
	}
	if form.Has("pallet_count") {
		s.SetPalletCount(services.ParseCount(form.Get("pallet_count")))
	}

	required := form.Get("delivery_required")
	s.SetDeliveryRequired(required == "true" || required == "on")
	s.SetVehicle(services.VehicleClass(form.Get("vehicle")))

	names := form["charge_name"]
	amounts := form["charge_amount"]
	n := max(len(names), len(amounts))
	for i := 0; i < n; i++ {
		idx := s.AddCharge()
		if i < len(names) {
			s.SetChargeName(idx, strings.TrimSpace(names[i]))
		}
		if i < len(amounts) {
			s.SetChargeAmount(idx, services.ParseNumber(amounts[i]))
		}
	}

	s.SetShowReport(form.Get("show_report") == "true")
	return s
}

// buildCalculatorData computes the quote for the session and, when the
// report is shown, builds its document. The quote number and timestamp
// already on screen are kept; fresh ones are issued when r has none.
func buildCalculatorData(s *services.Session, opts QuoteOptions, r *http.Request) templates.CalculatorData {
	req := s.Snapshot()
	table := s.Table()

	data := templates.CalculatorData{
		Title:      opts.Title,
		Company:    s.Company(),
		Request:    req,
		Table:      table,
		ShowReport: s.ShowReport(),
	}

	result, err := services.NewCalculator(table, opts.Policy).Quote(req)
	if err != nil {
		log.Printf("quote: calculation rejected: %v", err)
		data.Error = err.Error()
		return data
	}
	data.Result = result

	if data.ShowReport {
		quoteNo, generatedAt := reportIdentity(r, opts)
		doc := services.BuildQuoteDocument(req, result, table, s.Company(), quoteNo, generatedAt)
		doc.Title = opts.Title
		data.Report = &doc
	}
	return data
}

// HandleQuotePage renders the calculator with default inputs.
func HandleQuotePage(app *pocketbase.PocketBase, opts QuoteOptions) func(*core.RequestEvent) error {
	opts = opts.withDefaults()
	return func(e *core.RequestEvent) error {
		table := rateTable(app, e.Request)
		data := buildCalculatorData(services.NewSession(table), opts, e.Request)
		return templates.CalculatorPage(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteCalculate recomputes the quote from the posted form and returns
// the summary fragment. While the report is open it is re-rendered as an
// out-of-band swap under the same quote number.
func HandleQuoteCalculate(app *pocketbase.PocketBase, opts QuoteOptions) func(*core.RequestEvent) error {
	opts = opts.withDefaults()
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		s := parseQuoteForm(e.Request, rateTable(app, e.Request))
		data := buildCalculatorData(s, opts, e.Request)
		if err := templates.QuoteSummary(data).Render(e.Request.Context(), e.Response); err != nil {
			return err
		}
		if !data.ShowReport {
			return nil
		}
		return templates.ReportSlot(data, true).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteForm applies a structural edit (add/remove charge, delivery or
// report toggle) and re-renders the whole calculator.
func HandleQuoteForm(app *pocketbase.PocketBase, opts QuoteOptions) func(*core.RequestEvent) error {
	opts = opts.withDefaults()
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		s := parseQuoteForm(e.Request, rateTable(app, e.Request))

		switch action := e.Request.URL.Query().Get("action"); action {
		case "add_charge":
			s.AddCharge()
		case "remove_charge":
			idx, err := strconv.Atoi(e.Request.URL.Query().Get("index"))
			if err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Invalid charge index")
			}
			s.RemoveCharge(idx)
		case "toggle_delivery":
			// Toggling always starts over with no vehicle selected.
			s.SetDeliveryRequired(s.Snapshot().Delivery.Required)
		case "toggle_report":
			s.SetShowReport(!s.ShowReport())
		case "":
		default:
			log.Printf("quote_form: unknown action %q", action)
			return ErrorToast(e, http.StatusBadRequest, "Unknown action")
		}

		data := buildCalculatorData(s, opts, e.Request)

		var component templ.Component
		if isHTMX(e.Request) {
			component = templates.CalculatorContent(data)
		} else {
			component = templates.CalculatorPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
