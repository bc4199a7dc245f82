package packages

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"viasol/infras/otel"
	"viasol/internal/domains/packages/model"
	"viasol/internal/domains/packages/model/dto"
	"viasol/internal/domains/packages/service"
	"viasol/shared/constant"
	gDto "viasol/shared/dto"
	"viasol/shared/validator"
	"viasol/transport/http/response"
)

type Handler struct {
	service service.Packages
	otel    otel.Otel
}

func New(service service.Packages, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/packages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePackage)
		routerGroup.Get("/", handler.GetPackages)
		routerGroup.Get("/{id}", handler.GetPackageByID)
		routerGroup.Patch("/{id}", handler.UpdatePackage)
		routerGroup.Delete("/{id}", handler.DeletePackage)
	})

	router.Route("/public/packages", func(routerGroup chi.Router) {
		routerGroup.Get("/{slug}", handler.GetPublicPackage)
	})
}

// CreatePackage handles the creation of a new travel package.
// @Summary Create a new travel package
// @Description Create a travel package and return its slug and share link.
// @Tags Package
// @Accept json
// @Produce json
// @Param request body dto.CreatePackageRequest true "Create Package Request"
// @Success 201 {object} dto.CreatePackageResponse "Package created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages [post]
// @Security BearerAuth
func (handler *Handler) CreatePackage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePackage")
	defer scope.End()

	req := dto.CreatePackageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create package")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Package created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetPackages retrieves all travel packages based on query parameters.
// @Summary Get all travel packages
// @Description Retrieve all packages with optional filtering and pagination, newest first.
// @Tags Package
// @Accept json
// @Produce json
// @Param title query string false "Filter by title"
// @Param destination query string false "Filter by destination"
// @Param country query string false "Filter by country"
// @Success 200 {object} dto.GetPackagesResponse "List of packages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages [get]
// @Security BearerAuth
func (handler *Handler) GetPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	likeFilters := map[string]string{
		model.FieldTitle:       r.URL.Query().Get(model.FieldTitle),
		model.FieldDestination: r.URL.Query().Get(model.FieldDestination),
		model.FieldCountry:     r.URL.Query().Get(model.FieldCountry),
	}

	for field, value := range likeFilters {
		if value == "" {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorLike,
			Value:    value,
			Table:    model.TableName,
		})
	}

	packages, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get packages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Packages retrieved successfully")

	response.WithJSON(w, http.StatusOK, packages)
}

// GetPackageByID retrieves a package by its ID.
// @Summary Get a package by ID
// @Description Retrieve a package by its unique identifier, including audit fields.
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} dto.PackageResponse "Package details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPackageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	pkg, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get package by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Package retrieved successfully")

	response.WithJSON(w, http.StatusOK, pkg)
}

// GetPublicPackage serves the public share page payload by slug.
// @Summary Get a public package by slug
// @Description Retrieve the public view of a package by slug. Legacy short ids are also accepted.
// @Tags Package
// @Accept json
// @Produce json
// @Param slug path string true "Package slug"
// @Success 200 {object} dto.PublicPackageResponse "Public package details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/packages/{slug} [get]
func (handler *Handler) GetPublicPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPublicPackage")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	pkg, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get public package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Public package retrieved successfully")

	response.WithJSON(w, http.StatusOK, pkg)
}

// UpdatePackage updates an existing package by its ID.
// @Summary Update a package by ID
// @Description Update the details of an existing package. Only provided fields change.
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body dto.UpdatePackageRequest true "Update Package Request"
// @Success 200 {object} response.Message "Package updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePackage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePackageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update package")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Package updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Package updated successfully")
}

// DeletePackage deletes a package by its ID.
// @Summary Delete a package by ID
// @Description Delete a package. Deleting an id that is already gone still succeeds.
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Message "Package deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePackage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete package")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Package deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Package deleted successfully")
}
