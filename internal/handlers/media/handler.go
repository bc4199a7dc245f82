package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"viasol/infras/otel"
	"viasol/internal/domains/media/model/dto"
	"viasol/internal/domains/media/service"
	"viasol/shared/constant"
	"viasol/shared/validator"
	"viasol/transport/http/response"
)

type Handler struct {
	service service.Media
	otel    otel.Otel
}

func New(service service.Media, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/media", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadMedia)
		routerGroup.Delete("/", handler.DeleteMedia)
	})
}

// UploadMedia handles a package photo or video upload to S3.
// @Summary Upload package media
// @Description Upload a photo or video to S3 and return the public URL to attach to a package.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image or video file to upload"
// @Success 200 {object} dto.UploadMediaResponse "Media uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media [post]
// @Security BearerAuth
func (handler *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadMedia")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadMediaRequest{
		Media:     fileHeader,
		MediaFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded file")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload media")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Media uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteMedia handles deletion of package photos from S3.
// @Summary Delete package media
// @Description Delete photos or videos from S3 by providing their URLs.
// @Tags Media
// @Accept json
// @Produce json
// @Param request body dto.DeleteMediaRequest true "Delete Media Request"
// @Success 200 {object} response.Message "Media deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMedia")
	defer scope.End()

	req := dto.DeleteMediaRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete media")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Media deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Media deleted successfully")
}
