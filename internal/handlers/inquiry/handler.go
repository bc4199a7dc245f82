package inquiry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"viasol/infras/otel"
	"viasol/internal/domains/inquiry/model/dto"
	"viasol/internal/domains/inquiry/service"
	"viasol/shared/constant"
	"viasol/shared/validator"
	"viasol/transport/http/response"
)

type Handler struct {
	service service.Inquiry
	otel    otel.Otel
}

func New(service service.Inquiry, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inquiries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateInquiry)
	})
}

// CreateInquiry accepts a trip request from the public landing form.
// @Summary Submit a trip inquiry
// @Description Validate the inquiry and return a prefilled WhatsApp link. The inquiry is forwarded to the back office, not stored.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Create Inquiry Request"
// @Success 201 {object} dto.CreateInquiryResponse "Inquiry accepted"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [post]
func (handler *Handler) CreateInquiry(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInquiry")
	defer scope.End()

	req := dto.CreateInquiryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inquiry")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Inquiry accepted")

	response.WithJSON(writer, http.StatusCreated, res)
}
