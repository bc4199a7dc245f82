package dto

import (
	"github.com/google/uuid"

	"viasol/internal/domains/inquiry/model"
	"viasol/shared/timezone"
)

type CreateInquiryRequest struct {
	Phone          string `json:"phone"           validate:"required,min=8,max=20"`
	Adults         int    `json:"adults"          validate:"required,min=1,max=20"`
	Minors         int    `json:"minors"          validate:"min=0,max=20"`
	DatePreference string `json:"date_preference" validate:"required,oneof=fecha mes sin_preferencia"`
	DateValue      string `json:"date_value"      validate:"required_unless=DatePreference sin_preferencia"`
	Destination    string `json:"destination"     validate:"required"`
}

func (c *CreateInquiryRequest) ToModel() model.Inquiry {
	return model.Inquiry{
		ID:             uuid.NewString(),
		Phone:          c.Phone,
		Adults:         c.Adults,
		Minors:         c.Minors,
		DatePreference: c.DatePreference,
		DateValue:      c.DateValue,
		Destination:    c.Destination,
		ReceivedAt:     timezone.Now(),
	}
}

// CreateInquiryResponse hands the caller the prefilled WhatsApp deep link.
type CreateInquiryResponse struct {
	ID          string `json:"id"`
	WhatsAppURL string `json:"whatsapp_url"`
}
