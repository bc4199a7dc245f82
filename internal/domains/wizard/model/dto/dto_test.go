package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"viasol/internal/domains/wizard/model"
	"viasol/internal/domains/wizard/model/dto"
)

func TestComposeCreateRequest(t *testing.T) {
	baseForm := func() model.FormData {
		form := model.DefaultFormData()
		form.Title = "Buzios 7 noches"
		form.Destination = "Buzios"
		form.Country = "Brasil"
		form.DepartureCity = "Córdoba"
		form.Price = 1200
		form.HotelName = "Latitud Buzios"
		form.Airline = "Aerolineas Argentinas"
		form.DepartureAirport = "COR"
		form.ArrivalAirport = "GIG"

		return form
	}

	t.Run("sub-records attached when included", func(t *testing.T) {
		req := dto.ComposeCreateRequest(baseForm())

		assert.NotNil(t, req.Hotel)
		assert.Equal(t, "Latitud Buzios", req.Hotel.HotelName)
		assert.NotNil(t, req.Flight)
		assert.Equal(t, "Aerolineas Argentinas", req.Flight.Airline)
	})

	t.Run("stale sub-record fields structurally dropped", func(t *testing.T) {
		form := baseForm()
		form.IncludesHotel = false
		form.IncludesFlight = false

		req := dto.ComposeCreateRequest(form)

		assert.Nil(t, req.Hotel)
		assert.Nil(t, req.Flight)
		assert.False(t, req.IncludesHotel)
		assert.False(t, req.IncludesFlight)
	})

	t.Run("dates parsed to time values", func(t *testing.T) {
		form := baseForm()
		form.StartDate = "2026-01-10"
		form.EndDate = "2026-01-17"

		req := dto.ComposeCreateRequest(form)

		assert.NotNil(t, req.StartDate)
		assert.NotNil(t, req.EndDate)
		assert.Equal(t, 10, req.StartDate.Day())
	})

	t.Run("unset or malformed dates stay nil", func(t *testing.T) {
		form := baseForm()
		form.StartDate = ""
		form.EndDate = "not-a-date"

		req := dto.ComposeCreateRequest(form)

		assert.Nil(t, req.StartDate)
		assert.Nil(t, req.EndDate)
	})
}
