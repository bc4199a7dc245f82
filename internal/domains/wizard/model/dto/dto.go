package dto

import (
	"time"

	pkgDto "viasol/internal/domains/packages/model/dto"
	"viasol/internal/domains/wizard/model"
	"viasol/shared/constant"
)

// ApplyFormRequest carries the full form snapshot from the admin UI.
type ApplyFormRequest struct {
	Form model.FormData `json:"form"`
}

// WizardStateResponse mirrors one session after any wizard action. Errors is
// populated only when the action was blocked by validation.
type WizardStateResponse struct {
	SessionID  string            `json:"session_id"`
	Step       int               `json:"step"`
	StepName   string            `json:"step_name"`
	Submitting bool              `json:"submitting"`
	Form       model.FormData    `json:"form"`
	Errors     map[string]string `json:"errors,omitempty"`
}

func (r *WizardStateResponse) FromWizard(sessionID string, wizard model.Wizard, errs map[string]string) {
	r.SessionID = sessionID
	r.Step = int(wizard.Step)
	r.StepName = wizard.Step.String()
	r.Submitting = wizard.Submitting
	r.Form = wizard.Form
	r.Errors = errs
}

// SubmitResponse is returned on a successful submit: the created package plus
// the reset wizard state.
type SubmitResponse struct {
	Package pkgDto.CreatePackageResponse `json:"package"`
	Wizard  WizardStateResponse          `json:"wizard"`
}

// ComposeCreateRequest maps the flat form into the package create request.
// Hotel and flight sub-records are attached only when their inclusion flag is
// up, so fields left over from a toggled-off section never reach the store.
func ComposeCreateRequest(form model.FormData) pkgDto.CreatePackageRequest {
	req := pkgDto.CreatePackageRequest{
		Title:            form.Title,
		Description:      form.Description,
		ImageURL:         form.ImageURL,
		MediaURLs:        form.MediaURLs,
		Destination:      form.Destination,
		Country:          form.Country,
		DepartureCity:    form.DepartureCity,
		Nights:           form.Nights,
		StartDate:        parseDate(form.StartDate),
		EndDate:          parseDate(form.EndDate),
		Price:            form.Price,
		Currency:         form.Currency,
		PriceNote:        form.PriceNote,
		Disclaimer:       form.Disclaimer,
		PaymentLink:      form.PaymentLink,
		IncludesFlight:   form.IncludesFlight,
		IncludesHotel:    form.IncludesHotel,
		IncludesTransfer: form.IncludesTransfer,
	}

	if form.IncludesHotel {
		req.Hotel = &pkgDto.HotelDetails{
			AccommodationType: form.AccommodationType,
			HotelName:         form.HotelName,
			RoomType:          form.RoomType,
			MealPlan:          form.MealPlan,
		}
	}

	if form.IncludesFlight {
		req.Flight = &pkgDto.FlightDetails{
			Airline:               form.Airline,
			DepartureAirport:      form.DepartureAirport,
			ArrivalAirport:        form.ArrivalAirport,
			OutboundDepartureTime: form.OutboundDepartureTime,
			OutboundArrivalTime:   form.OutboundArrivalTime,
			ReturnDepartureTime:   form.ReturnDepartureTime,
			ReturnArrivalTime:     form.ReturnArrivalTime,
		}
	}

	return req
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	parsed, err := time.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return nil
	}

	return &parsed
}
