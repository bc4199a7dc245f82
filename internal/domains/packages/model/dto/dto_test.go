package dto_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"viasol/internal/domains/packages/model"
	"viasol/internal/domains/packages/model/dto"
	"viasol/shared/timezone"
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()

	raw, err := json.Marshal(v)
	assert.NoError(t, err)

	return string(raw)
}

func baseCreateRequest() dto.CreatePackageRequest {
	return dto.CreatePackageRequest{
		Title:         "Escapada a Buzios",
		Destination:   "Buzios",
		Country:       "Brasil",
		DepartureCity: "Buenos Aires",
		Nights:        7,
		Price:         1250,
		Currency:      "USD",
	}
}

func TestCreatePackageRequest_ToModel(t *testing.T) {
	t.Run("assigns id, slug and expiry", func(t *testing.T) {
		req := baseCreateRequest()

		pkg := req.ToModel("admin-id", 60)

		assert.NotEmpty(t, pkg.ID)
		assert.True(t, strings.HasPrefix(pkg.Slug, "escapada-a-buzios-"))
		assert.Equal(t, "admin-id", pkg.CreatedBy)

		days := pkg.ExpiresAt.Sub(timezone.Now()).Hours() / 24
		assert.InDelta(t, 60, days, 0.01)
	})

	t.Run("hotel columns populated when included", func(t *testing.T) {
		req := baseCreateRequest()
		req.IncludesHotel = true
		req.Hotel = &dto.HotelDetails{
			AccommodationType: model.AccommodationHotel,
			HotelName:         "Latitud Buzios",
			RoomType:          model.RoomStandard,
			MealPlan:          model.MealBreakfast,
		}

		pkg := req.ToModel("admin-id", 60)

		assert.NotNil(t, pkg.HotelName)
		assert.Equal(t, "Latitud Buzios", *pkg.HotelName)
		assert.Equal(t, model.MealBreakfast, *pkg.MealPlan)
	})

	t.Run("stale hotel details dropped when flag is off", func(t *testing.T) {
		req := baseCreateRequest()
		req.IncludesHotel = false
		req.Hotel = &dto.HotelDetails{
			HotelName: "Latitud Buzios",
		}

		pkg := req.ToModel("admin-id", 60)

		assert.Nil(t, pkg.HotelName)
		assert.Nil(t, pkg.AccommodationType)
	})

	t.Run("stale flight details dropped when flag is off", func(t *testing.T) {
		req := baseCreateRequest()
		req.IncludesFlight = false
		req.Flight = &dto.FlightDetails{
			Airline:          "Aerolineas Argentinas",
			DepartureAirport: "EZE",
			ArrivalAirport:   "GIG",
		}

		pkg := req.ToModel("admin-id", 60)

		assert.Nil(t, pkg.Airline)
		assert.Nil(t, pkg.DepartureAirport)
	})

	t.Run("empty optional strings stored as null", func(t *testing.T) {
		req := baseCreateRequest()

		pkg := req.ToModel("admin-id", 60)

		assert.Nil(t, pkg.Description)
		assert.Nil(t, pkg.PriceNote)
		assert.Nil(t, pkg.PaymentLink)
	})
}

func TestPublicPackageResponse_FromModel(t *testing.T) {
	hotelName := "Latitud Buzios"
	pkg := model.Package{
		ID:            "internal-id",
		Slug:          "escapada-a-buzios-a1b2c3",
		Title:         "Escapada a Buzios",
		Destination:   "Buzios",
		Country:       "Brasil",
		DepartureCity: "Buenos Aires",
		Nights:        7,
		Price:         1250,
		Currency:      "USD",
		IncludesHotel: true,
		HotelName:     &hotelName,
		ExpiresAt:     timezone.Now().AddDate(0, 0, 60),
	}
	pkg.CreatedBy = "admin-user-id"
	pkg.ModifiedBy = "admin-user-id"

	res := dto.PublicPackageResponse{}
	res.FromModel(pkg)

	assert.Equal(t, "escapada-a-buzios-a1b2c3", res.Slug)
	assert.NotNil(t, res.Hotel)
	assert.Equal(t, hotelName, res.Hotel.HotelName)

	// The public payload must never leak who created the record.
	assert.NotContains(t, mustJSON(t, res), "admin-user-id")
	assert.NotContains(t, mustJSON(t, res), "internal-id")
}

func TestPackageResponse_FromModel_FlightHiddenWhenNotIncluded(t *testing.T) {
	airline := "Aerolineas Argentinas"
	pkg := model.Package{
		ID:             "test-id",
		Slug:           "escapada-a-buzios-a1b2c3",
		Title:          "Escapada a Buzios",
		IncludesFlight: false,
		Airline:        &airline,
		ExpiresAt:      timezone.Now(),
	}

	res := dto.PackageResponse{}
	res.FromModel(pkg)

	assert.Nil(t, res.Flight)
}
