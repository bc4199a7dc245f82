package model

import "time"

const (
	EntityName = "inquiry"

	// Date preference values accepted from the landing form.
	DatePreferenceExact = "fecha"
	DatePreferenceMonth = "mes"
	DatePreferenceNone  = "sin_preferencia"
)

// Inquiry is a one-shot trip request from the public landing page. It is
// never persisted here; it rides the WhatsApp deep link and the back-office
// event stream.
type Inquiry struct {
	ID             string    `json:"id"`
	Phone          string    `json:"phone"`
	Adults         int       `json:"adults"`
	Minors         int       `json:"minors"`
	DatePreference string    `json:"date_preference"`
	DateValue      string    `json:"date_value"`
	Destination    string    `json:"destination"`
	ReceivedAt     time.Time `json:"received_at"`
}
