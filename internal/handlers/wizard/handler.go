package wizard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"viasol/infras/otel"
	"viasol/internal/domains/wizard/model/dto"
	"viasol/internal/domains/wizard/service"
	"viasol/shared/constant"
	"viasol/shared/validator"
	"viasol/transport/http/response"
)

type Handler struct {
	service service.Wizard
	otel    otel.Otel
}

func New(service service.Wizard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/wizard/sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.StartSession)
		routerGroup.Get("/{id}", handler.GetSession)
		routerGroup.Put("/{id}/form", handler.ApplyForm)
		routerGroup.Post("/{id}/next", handler.Next)
		routerGroup.Post("/{id}/back", handler.Back)
		routerGroup.Post("/{id}/skip", handler.Skip)
		routerGroup.Post("/{id}/submit", handler.Submit)
	})
}

// StartSession opens a fresh wizard session with default form values.
// @Summary Start a wizard session
// @Description Create a new package creation wizard session with default form values.
// @Tags Wizard
// @Accept json
// @Produce json
// @Success 201 {object} dto.WizardStateResponse "Session created"
// @Failure 500 {object} response.Error
// @Router /v1/wizard/sessions [post]
// @Security BearerAuth
func (handler *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartSession")
	defer scope.End()

	res, err := handler.service.Start(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start wizard session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wizard session started")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetSession returns the current state of a wizard session.
// @Summary Get a wizard session
// @Description Retrieve the current step and form state of a wizard session.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.WizardStateResponse "Session state"
// @Failure 404 {object} response.Error
// @Router /v1/wizard/sessions/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get wizard session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ApplyForm replaces the session's form state with the submitted snapshot.
// @Summary Apply form values to a wizard session
// @Description Replace the form state of the session. Nights are re-derived from the date range.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.ApplyFormRequest true "Form snapshot"
// @Success 200 {object} dto.WizardStateResponse "Updated session state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/wizard/sessions/{id}/form [put]
// @Security BearerAuth
func (handler *Handler) ApplyForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApplyForm")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ApplyFormRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Apply(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to apply wizard form")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Next advances the wizard one step after validating the current one.
// @Summary Advance the wizard
// @Description Validate the current step and advance. Validation errors are returned per field and the step does not change.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.WizardStateResponse "Session state after the action"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/wizard/sessions/{id}/next [post]
// @Security BearerAuth
func (handler *Handler) Next(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Next")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Next(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to advance wizard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Back moves the wizard one step back without validating.
// @Summary Move the wizard back
// @Description Move one step back. No validation runs.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.WizardStateResponse "Session state after the action"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/wizard/sessions/{id}/back [post]
// @Security BearerAuth
func (handler *Handler) Back(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Back")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Back(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to move wizard back")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Skip advances past a step whose inclusion flag is off.
// @Summary Skip the current wizard step
// @Description Advance without validating. Only allowed when the current step's inclusion flag is off.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.WizardStateResponse "Session state after the action"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/wizard/sessions/{id}/skip [post]
// @Security BearerAuth
func (handler *Handler) Skip(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Skip")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Skip(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to skip wizard step")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Submit creates the package from the wizard form.
// @Summary Submit the wizard
// @Description Re-validate every step, create the package, and reset the session. On failure the session keeps its form.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} dto.SubmitResponse "Created package and reset session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizard/sessions/{id}/submit [post]
// @Security BearerAuth
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Submit(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit wizard")

		response.WithError(w, err)

		return
	}

	if len(res.Wizard.Errors) > 0 {
		response.WithJSON(w, http.StatusUnprocessableEntity, res.Wizard)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Package created from wizard by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}
