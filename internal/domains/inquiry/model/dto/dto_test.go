package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"viasol/internal/domains/inquiry/model/dto"
	"viasol/shared/validator"
)

func validRequest() dto.CreateInquiryRequest {
	return dto.CreateInquiryRequest{
		Phone:          "3511234567",
		Adults:         2,
		Minors:         1,
		DatePreference: "fecha",
		DateValue:      "2026-01-10 al 2026-01-17",
		Destination:    "Buzios",
	}
}

func TestCreateInquiryRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateInquiryRequest)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(r *dto.CreateInquiryRequest) {},
			wantErr: false,
		},
		{
			name:    "phone too short",
			mutate:  func(r *dto.CreateInquiryRequest) { r.Phone = "1234567" },
			wantErr: true,
		},
		{
			name:    "phone too long",
			mutate:  func(r *dto.CreateInquiryRequest) { r.Phone = "123456789012345678901" },
			wantErr: true,
		},
		{
			name:    "zero adults",
			mutate:  func(r *dto.CreateInquiryRequest) { r.Adults = 0 },
			wantErr: true,
		},
		{
			name:    "negative minors",
			mutate:  func(r *dto.CreateInquiryRequest) { r.Minors = -1 },
			wantErr: true,
		},
		{
			name:    "zero minors allowed",
			mutate:  func(r *dto.CreateInquiryRequest) { r.Minors = 0 },
			wantErr: false,
		},
		{
			name:    "unknown date preference",
			mutate:  func(r *dto.CreateInquiryRequest) { r.DatePreference = "maybe" },
			wantErr: true,
		},
		{
			name: "date value required with exact preference",
			mutate: func(r *dto.CreateInquiryRequest) {
				r.DatePreference = "fecha"
				r.DateValue = ""
			},
			wantErr: true,
		},
		{
			name: "date value optional with no preference",
			mutate: func(r *dto.CreateInquiryRequest) {
				r.DatePreference = "sin_preferencia"
				r.DateValue = ""
			},
			wantErr: false,
		},
		{
			name:    "missing destination",
			mutate:  func(r *dto.CreateInquiryRequest) { r.Destination = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateInquiryRequest_ToModel(t *testing.T) {
	req := validRequest()

	inquiry := req.ToModel()

	assert.NotEmpty(t, inquiry.ID)
	assert.Equal(t, req.Phone, inquiry.Phone)
	assert.Equal(t, req.Adults, inquiry.Adults)
	assert.Equal(t, req.Destination, inquiry.Destination)
	assert.False(t, inquiry.ReceivedAt.IsZero())
}
