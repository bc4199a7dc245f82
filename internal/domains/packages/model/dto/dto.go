package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"viasol/internal/domains/packages/model"
	"viasol/shared"
	"viasol/shared/constant"
	gDto "viasol/shared/dto"
	gModel "viasol/shared/model"
	"viasol/shared/slug"
	"viasol/shared/timezone"
)

// HotelDetails travels with a create request only when the package bundles
// accommodation; a nil pointer means the hotel columns stay null.
type HotelDetails struct {
	AccommodationType string `json:"accommodation_type" validate:"omitempty,oneof=hotel cabin house"`
	HotelName         string `json:"hotel_name"         validate:"required"`
	RoomType          string `json:"room_type"          validate:"omitempty,oneof=standard deluxe suite family"`
	MealPlan          string `json:"meal_plan"          validate:"omitempty,oneof=none breakfast half_board full_board all_inclusive"`
}

// FlightDetails is the flight counterpart of HotelDetails.
type FlightDetails struct {
	Airline               string `json:"airline"                 validate:"required"`
	DepartureAirport      string `json:"departure_airport"       validate:"required"`
	ArrivalAirport        string `json:"arrival_airport"         validate:"required"`
	OutboundDepartureTime string `json:"outbound_departure_time"`
	OutboundArrivalTime   string `json:"outbound_arrival_time"`
	ReturnDepartureTime   string `json:"return_departure_time"`
	ReturnArrivalTime     string `json:"return_arrival_time"`
}

type CreatePackageRequest struct {
	Title       string   `json:"title"        validate:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"    validate:"omitempty,url"`
	MediaURLs   []string `json:"media_urls"   validate:"omitempty,dive,url"`

	Destination   string     `json:"destination"    validate:"required"`
	Country       string     `json:"country"        validate:"required"`
	DepartureCity string     `json:"departure_city" validate:"required"`
	Nights        int        `json:"nights"         validate:"required,min=1"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`

	Price       float64 `json:"price"        validate:"required,gt=0"`
	Currency    string  `json:"currency"     validate:"required,oneof=USD ARS EUR"`
	PriceNote   string  `json:"price_note"`
	Disclaimer  string  `json:"disclaimer"`
	PaymentLink string  `json:"payment_link" validate:"omitempty,url"`

	IncludesFlight   bool `json:"includes_flight"`
	IncludesHotel    bool `json:"includes_hotel"`
	IncludesTransfer bool `json:"includes_transfer"`

	Hotel  *HotelDetails  `json:"hotel"  validate:"omitempty"`
	Flight *FlightDetails `json:"flight" validate:"omitempty"`
}

// ToModel composes the row to insert. The slug is assigned here and is
// immutable afterwards; expiry is now + ttlDays. Hotel and flight columns are
// populated only when the matching inclusion flag is up AND the sub-record is
// present, so stale sub-records from a toggled-off flag never reach the table.
func (c *CreatePackageRequest) ToModel(user string, ttlDays int) model.Package {
	now := timezone.Now()

	pkg := model.Package{
		ID:               uuid.NewString(),
		Slug:             slug.Make(c.Title),
		Title:            c.Title,
		Description:      shared.NilIfEmpty(c.Description),
		ImageURL:         shared.NilIfEmpty(c.ImageURL),
		MediaURLs:        pq.StringArray(c.MediaURLs),
		Destination:      c.Destination,
		Country:          c.Country,
		DepartureCity:    c.DepartureCity,
		Nights:           c.Nights,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		Price:            c.Price,
		Currency:         c.Currency,
		PriceNote:        shared.NilIfEmpty(c.PriceNote),
		Disclaimer:       shared.NilIfEmpty(c.Disclaimer),
		PaymentLink:      shared.NilIfEmpty(c.PaymentLink),
		IncludesFlight:   c.IncludesFlight,
		IncludesHotel:    c.IncludesHotel,
		IncludesTransfer: c.IncludesTransfer,
		ExpiresAt:        now.AddDate(0, 0, ttlDays),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if c.IncludesHotel && c.Hotel != nil {
		pkg.AccommodationType = shared.NilIfEmpty(c.Hotel.AccommodationType)
		pkg.HotelName = shared.NilIfEmpty(c.Hotel.HotelName)
		pkg.RoomType = shared.NilIfEmpty(c.Hotel.RoomType)
		pkg.MealPlan = shared.NilIfEmpty(c.Hotel.MealPlan)
	}

	if c.IncludesFlight && c.Flight != nil {
		pkg.Airline = shared.NilIfEmpty(c.Flight.Airline)
		pkg.DepartureAirport = shared.NilIfEmpty(c.Flight.DepartureAirport)
		pkg.ArrivalAirport = shared.NilIfEmpty(c.Flight.ArrivalAirport)
		pkg.OutboundDepartureTime = shared.NilIfEmpty(c.Flight.OutboundDepartureTime)
		pkg.OutboundArrivalTime = shared.NilIfEmpty(c.Flight.OutboundArrivalTime)
		pkg.ReturnDepartureTime = shared.NilIfEmpty(c.Flight.ReturnDepartureTime)
		pkg.ReturnArrivalTime = shared.NilIfEmpty(c.Flight.ReturnArrivalTime)
	}

	return pkg
}

type UpdatePackageRequest struct {
	Title       string   `db:"title"        json:"title"        validate:"omitempty"`
	Description string   `db:"description"  json:"description"  validate:"omitempty"`
	ImageURL    string   `db:"image_url"    json:"image_url"    validate:"omitempty,url"`
	MediaURLs   []string `db:"media_urls"   json:"media_urls"   validate:"omitempty,dive,url"`

	Destination   string  `db:"destination"    json:"destination"    validate:"omitempty"`
	Country       string  `db:"country"        json:"country"        validate:"omitempty"`
	DepartureCity string  `db:"departure_city" json:"departure_city" validate:"omitempty"`
	Nights        int     `db:"nights"         json:"nights"         validate:"omitempty,min=1"`
	Price         float64 `db:"price"          json:"price"          validate:"omitempty,gt=0"`
	Currency      string  `db:"currency"       json:"currency"       validate:"omitempty,oneof=USD ARS EUR"`
	PriceNote     string  `db:"price_note"     json:"price_note"     validate:"omitempty"`
	Disclaimer    string  `db:"disclaimer"     json:"disclaimer"     validate:"omitempty"`
	PaymentLink   string  `db:"payment_link"   json:"payment_link"   validate:"omitempty,url"`
}

// CreatePackageResponse is what the admin UI needs to show the share link.
type CreatePackageResponse struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	ShareLink string `json:"share_link"`
}

// PackageResponse is the admin-facing view, creator metadata included.
type PackageResponse struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	MediaURLs   []string `json:"media_urls"`

	Destination   string  `json:"destination"`
	Country       string  `json:"country"`
	DepartureCity string  `json:"departure_city"`
	Nights        int     `json:"nights"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`

	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	PriceNote   *string `json:"price_note,omitempty"`
	Disclaimer  *string `json:"disclaimer,omitempty"`
	PaymentLink *string `json:"payment_link,omitempty"`

	IncludesFlight   bool `json:"includes_flight"`
	IncludesHotel    bool `json:"includes_hotel"`
	IncludesTransfer bool `json:"includes_transfer"`

	Hotel  *HotelDetails  `json:"hotel,omitempty"`
	Flight *FlightDetails `json:"flight,omitempty"`

	ExpiresAt string `json:"expires_at"`
	gDto.Metadata
}

func (r *PackageResponse) FromModel(pkg model.Package) {
	r.ID = pkg.ID
	r.Slug = pkg.Slug
	r.Title = pkg.Title
	r.Description = pkg.Description
	r.ImageURL = pkg.ImageURL
	r.MediaURLs = pkg.MediaURLs
	r.Destination = pkg.Destination
	r.Country = pkg.Country
	r.DepartureCity = pkg.DepartureCity
	r.Nights = pkg.Nights
	r.StartDate = formatDate(pkg.StartDate)
	r.EndDate = formatDate(pkg.EndDate)
	r.Price = pkg.Price
	r.Currency = pkg.Currency
	r.PriceNote = pkg.PriceNote
	r.Disclaimer = pkg.Disclaimer
	r.PaymentLink = pkg.PaymentLink
	r.IncludesFlight = pkg.IncludesFlight
	r.IncludesHotel = pkg.IncludesHotel
	r.IncludesTransfer = pkg.IncludesTransfer
	r.Hotel = hotelFromModel(pkg)
	r.Flight = flightFromModel(pkg)
	r.ExpiresAt = timezone.Format(pkg.ExpiresAt, constant.DateFormat)
	r.Metadata.FromModel(pkg.Metadata)
}

type GetPackagesResponse struct {
	Packages  []PackageResponse `json:"packages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPackagesResponse) FromModels(models []model.Package, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Packages = make([]PackageResponse, len(models))
	for i, m := range models {
		r.Packages[i].FromModel(m)
	}
}

// PublicPackageResponse is the unauthenticated view served on the share page.
// It deliberately carries no creator or modifier identity.
type PublicPackageResponse struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	MediaURLs   []string `json:"media_urls"`

	Destination   string  `json:"destination"`
	Country       string  `json:"country"`
	DepartureCity string  `json:"departure_city"`
	Nights        int     `json:"nights"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`

	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	PriceNote   *string `json:"price_note,omitempty"`
	Disclaimer  *string `json:"disclaimer,omitempty"`
	PaymentLink *string `json:"payment_link,omitempty"`

	IncludesFlight   bool `json:"includes_flight"`
	IncludesHotel    bool `json:"includes_hotel"`
	IncludesTransfer bool `json:"includes_transfer"`

	Hotel  *HotelDetails  `json:"hotel,omitempty"`
	Flight *FlightDetails `json:"flight,omitempty"`

	ExpiresAt string `json:"expires_at"`
}

func (r *PublicPackageResponse) FromModel(pkg model.Package) {
	r.Slug = pkg.Slug
	r.Title = pkg.Title
	r.Description = pkg.Description
	r.ImageURL = pkg.ImageURL
	r.MediaURLs = pkg.MediaURLs
	r.Destination = pkg.Destination
	r.Country = pkg.Country
	r.DepartureCity = pkg.DepartureCity
	r.Nights = pkg.Nights
	r.StartDate = formatDate(pkg.StartDate)
	r.EndDate = formatDate(pkg.EndDate)
	r.Price = pkg.Price
	r.Currency = pkg.Currency
	r.PriceNote = pkg.PriceNote
	r.Disclaimer = pkg.Disclaimer
	r.PaymentLink = pkg.PaymentLink
	r.IncludesFlight = pkg.IncludesFlight
	r.IncludesHotel = pkg.IncludesHotel
	r.IncludesTransfer = pkg.IncludesTransfer
	r.Hotel = hotelFromModel(pkg)
	r.Flight = flightFromModel(pkg)
	r.ExpiresAt = timezone.Format(pkg.ExpiresAt, constant.DateFormat)
}

func hotelFromModel(pkg model.Package) *HotelDetails {
	if !pkg.IncludesHotel || pkg.HotelName == nil {
		return nil
	}

	return &HotelDetails{
		AccommodationType: shared.Deref(pkg.AccommodationType),
		HotelName:         shared.Deref(pkg.HotelName),
		RoomType:          shared.Deref(pkg.RoomType),
		MealPlan:          shared.Deref(pkg.MealPlan),
	}
}

func flightFromModel(pkg model.Package) *FlightDetails {
	if !pkg.IncludesFlight || pkg.Airline == nil {
		return nil
	}

	return &FlightDetails{
		Airline:               shared.Deref(pkg.Airline),
		DepartureAirport:      shared.Deref(pkg.DepartureAirport),
		ArrivalAirport:        shared.Deref(pkg.ArrivalAirport),
		OutboundDepartureTime: shared.Deref(pkg.OutboundDepartureTime),
		OutboundArrivalTime:   shared.Deref(pkg.OutboundArrivalTime),
		ReturnDepartureTime:   shared.Deref(pkg.ReturnDepartureTime),
		ReturnArrivalTime:     shared.Deref(pkg.ReturnArrivalTime),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateOnlyFormat)

	return &formatted
}
