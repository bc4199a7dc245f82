package model

import (
	"errors"
	"strings"
	"time"

	"viasol/shared/constant"
)

// Step identifies one screen of the package creation wizard.
type Step int

const (
	StepGeneral Step = iota
	StepHotel
	StepFlight

	StepFirst = StepGeneral
	StepLast  = StepFlight
)

var stepNames = map[Step]string{
	StepGeneral: "general",
	StepHotel:   "hotel",
	StepFlight:  "flight",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}

	return "unknown"
}

var (
	ErrSubmitInProgress = errors.New("a submit is already in progress")
	ErrSkipNotAllowed   = errors.New("this step cannot be skipped")
	ErrNotLastStep      = errors.New("submit is only allowed from the last step")
)

// FormData is the flat form state the admin edits across the three steps.
// Dates travel as yyyy-mm-dd strings; empty means unset.
type FormData struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	MediaURLs   []string `json:"media_urls"`

	Destination   string `json:"destination"`
	Country       string `json:"country"`
	DepartureCity string `json:"departure_city"`
	Nights        int    `json:"nights"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`

	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	PriceNote   string  `json:"price_note"`
	Disclaimer  string  `json:"disclaimer"`
	PaymentLink string  `json:"payment_link"`

	IncludesFlight   bool `json:"includes_flight"`
	IncludesHotel    bool `json:"includes_hotel"`
	IncludesTransfer bool `json:"includes_transfer"`

	AccommodationType string `json:"accommodation_type"`
	HotelName         string `json:"hotel_name"`
	RoomType          string `json:"room_type"`
	MealPlan          string `json:"meal_plan"`

	Airline               string `json:"airline"`
	DepartureAirport      string `json:"departure_airport"`
	ArrivalAirport        string `json:"arrival_airport"`
	OutboundDepartureTime string `json:"outbound_departure_time"`
	OutboundArrivalTime   string `json:"outbound_arrival_time"`
	ReturnDepartureTime   string `json:"return_departure_time"`
	ReturnArrivalTime     string `json:"return_arrival_time"`
}

// DefaultFormData is the state a fresh wizard starts from. The commercial
// defaults match what the agency publishes most often.
func DefaultFormData() FormData {
	return FormData{
		Nights:            7,
		Currency:          constant.CurrencyUSD,
		PriceNote:         "TARIFA POR PERSONA, BASE DBL",
		IncludesFlight:    true,
		IncludesHotel:     true,
		IncludesTransfer:  true,
		AccommodationType: "hotel",
		RoomType:          "standard",
		MealPlan:          "breakfast",
	}
}

// ValidateStep checks only the fields that belong to the given step, and
// hotel/flight fields only when their inclusion flag is up. The messages are
// shown to the admin as-is.
func ValidateStep(step Step, form FormData) map[string]string {
	errs := map[string]string{}

	switch step {
	case StepGeneral:
		if strings.TrimSpace(form.Title) == "" {
			errs["title"] = "El título es requerido"
		}

		if strings.TrimSpace(form.Destination) == "" {
			errs["destination"] = "El destino es requerido"
		}

		if strings.TrimSpace(form.Country) == "" {
			errs["country"] = "El país es requerido"
		}

		if strings.TrimSpace(form.DepartureCity) == "" {
			errs["departure_city"] = "La ciudad de origen es requerida"
		}

		if form.Price <= 0 {
			errs["price"] = "El precio debe ser mayor a 0"
		}

		if form.Nights < 1 {
			errs["nights"] = "Mínimo 1 noche"
		}
	case StepHotel:
		if !form.IncludesHotel {
			break
		}

		if strings.TrimSpace(form.HotelName) == "" {
			errs["hotel_name"] = "El nombre del alojamiento es requerido"
		}
	case StepFlight:
		if !form.IncludesFlight {
			break
		}

		if strings.TrimSpace(form.Airline) == "" {
			errs["airline"] = "La aerolínea es requerida"
		}

		if strings.TrimSpace(form.DepartureAirport) == "" {
			errs["departure_airport"] = "El aeropuerto de salida es requerido"
		}

		if strings.TrimSpace(form.ArrivalAirport) == "" {
			errs["arrival_airport"] = "El aeropuerto de llegada es requerido"
		}
	}

	return errs
}

// Wizard is the per-session state machine behind the multi-step form.
type Wizard struct {
	Step       Step     `json:"step"`
	Form       FormData `json:"form"`
	Submitting bool     `json:"submitting"`
}

func New() Wizard {
	return Wizard{
		Step: StepFirst,
		Form: DefaultFormData(),
	}
}

// Apply replaces the form state and re-derives the nights count. It is
// rejected while a submit is still in flight.
func (w *Wizard) Apply(form FormData) error {
	if w.Submitting {
		return ErrSubmitInProgress
	}

	w.Form = form
	w.deriveNights()

	return nil
}

// Next validates the current step. On validation errors the wizard stays put
// and returns them; otherwise it advances, clamped to the last step.
func (w *Wizard) Next() (map[string]string, error) {
	if w.Submitting {
		return nil, ErrSubmitInProgress
	}

	if errs := ValidateStep(w.Step, w.Form); len(errs) > 0 {
		return errs, nil
	}

	if w.Step < StepLast {
		w.Step++
	}

	return nil, nil
}

// Back never validates, clamped to the first step.
func (w *Wizard) Back() error {
	if w.Submitting {
		return ErrSubmitInProgress
	}

	if w.Step > StepFirst {
		w.Step--
	}

	return nil
}

// Skip advances without validating, but only past a step whose governing
// inclusion flag is off. The general step has no flag and is never skippable.
func (w *Wizard) Skip() error {
	if w.Submitting {
		return ErrSubmitInProgress
	}

	switch {
	case w.Step == StepHotel && !w.Form.IncludesHotel:
	case w.Step == StepFlight && !w.Form.IncludesFlight:
	default:
		return ErrSkipNotAllowed
	}

	if w.Step < StepLast {
		w.Step++
	}

	return nil
}

// BeginSubmit re-validates every step and flips the Submitting flag. The
// caller owns the actual create call and must end with FinishSubmit or Reset.
func (w *Wizard) BeginSubmit() (map[string]string, error) {
	if w.Submitting {
		return nil, ErrSubmitInProgress
	}

	if w.Step != StepLast {
		return nil, ErrNotLastStep
	}

	for step := StepFirst; step <= StepLast; step++ {
		if errs := ValidateStep(step, w.Form); len(errs) > 0 {
			return errs, nil
		}
	}

	w.Submitting = true

	return nil, nil
}

// FinishSubmit returns the wizard to its last interactive step with the form
// intact, for the create-failed path.
func (w *Wizard) FinishSubmit() {
	w.Submitting = false
}

// Reset returns the wizard to a fresh default state, for the create-succeeded
// path.
func (w *Wizard) Reset() {
	*w = New()
}

// deriveNights keeps nights in sync with the date range. Derivation is one
// way only: dates drive nights, never the reverse.
func (w *Wizard) deriveNights() {
	start, err := time.Parse(constant.DateOnlyFormat, w.Form.StartDate)
	if err != nil {
		return
	}

	end, err := time.Parse(constant.DateOnlyFormat, w.Form.EndDate)
	if err != nil {
		return
	}

	diff := int(end.Sub(start).Hours() / constant.HoursPerDay)
	if diff > 0 && diff != w.Form.Nights {
		w.Form.Nights = diff
	}
}
