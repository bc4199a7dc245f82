package model

import (
	"time"

	"github.com/lib/pq"

	"viasol/shared/model"
)

const (
	TableName  = "packages"
	EntityName = "package"

	FieldID            = "id"
	FieldSlug          = "slug"
	FieldTitle         = "title"
	FieldDestination   = "destination"
	FieldCountry       = "country"
	FieldDepartureCity = "departure_city"
	FieldExpiresAt     = "expires_at"
	FieldMediaURLs     = "media_urls"
)

const (
	AccommodationHotel = "hotel"
	AccommodationCabin = "cabin"
	AccommodationHouse = "house"

	RoomStandard = "standard"
	RoomDeluxe   = "deluxe"
	RoomSuite    = "suite"
	RoomFamily   = "family"

	MealNone         = "none"
	MealBreakfast    = "breakfast"
	MealHalfBoard    = "half_board"
	MealFullBoard    = "full_board"
	MealAllInclusive = "all_inclusive"
)

// Package is a publishable travel offer. Hotel and flight columns are null
// whenever the corresponding inclusion flag is false; the service layer never
// writes one without the other.
type Package struct {
	ID          string         `db:"id"`
	Slug        string         `db:"slug"`
	Title       string         `db:"title"`
	Description *string        `db:"description"`
	ImageURL    *string        `db:"image_url"`
	MediaURLs   pq.StringArray `db:"media_urls"`

	Destination   string     `db:"destination"`
	Country       string     `db:"country"`
	DepartureCity string     `db:"departure_city"`
	Nights        int        `db:"nights"`
	StartDate     *time.Time `db:"start_date"`
	EndDate       *time.Time `db:"end_date"`

	Price       float64 `db:"price"`
	Currency    string  `db:"currency"`
	PriceNote   *string `db:"price_note"`
	Disclaimer  *string `db:"disclaimer"`
	PaymentLink *string `db:"payment_link"`

	IncludesFlight   bool `db:"includes_flight"`
	IncludesHotel    bool `db:"includes_hotel"`
	IncludesTransfer bool `db:"includes_transfer"`

	AccommodationType *string `db:"accommodation_type"`
	HotelName         *string `db:"hotel_name"`
	RoomType          *string `db:"room_type"`
	MealPlan          *string `db:"meal_plan"`

	Airline               *string `db:"airline"`
	DepartureAirport      *string `db:"departure_airport"`
	ArrivalAirport        *string `db:"arrival_airport"`
	OutboundDepartureTime *string `db:"outbound_departure_time"`
	OutboundArrivalTime   *string `db:"outbound_arrival_time"`
	ReturnDepartureTime   *string `db:"return_departure_time"`
	ReturnArrivalTime     *string `db:"return_arrival_time"`

	ExpiresAt time.Time `db:"expires_at"`
	model.Metadata
}
