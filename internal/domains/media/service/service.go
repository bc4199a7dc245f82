package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"viasol/config"
	"viasol/infras/otel"
	"viasol/infras/s3"
	"viasol/internal/domains/media/model"
	"viasol/internal/domains/media/model/dto"
	"viasol/shared/constant"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Media=MockMediaService

var ErrDeleteMediaFromS3 = errors.New("failed to delete media from S3")

// Media stores package photos in S3. The resulting URLs are kept on the
// package row itself, so there is no repository behind this service.
type Media interface {
	Upload(ctx context.Context, req dto.UploadMediaRequest) (dto.UploadMediaResponse, error)
	Delete(ctx context.Context, req dto.DeleteMediaRequest) error
}

type serviceImpl struct {
	cfg  *config.Config
	s3   s3.S3
	otel otel.Otel
}

func New(cfg *config.Config, s3 s3.S3, otel otel.Otel) Media {
	return &serviceImpl{
		cfg:  cfg,
		s3:   s3,
		otel: otel,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadMediaRequest) (res dto.UploadMediaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.Directory, req.MediaFile, req.Media, req.Media.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload media to S3")

		return res, fmt.Errorf("failed to upload media to S3: %w", err)
	}

	res.FromUpload(url, req.Media.Filename)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteMediaRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName

	var deleteErrors []error

	for _, mediaURL := range req.MediaURLs {
		objectName := s.s3.GetObjectNameFromURL(bucketName, mediaURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", mediaURL).Msg("failed to extract object name from URL")

			continue
		}

		if err := s.s3.DeleteFile(ctx, bucketName, model.Directory, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete media from S3")
			deleteErrors = append(deleteErrors, err)
		}
	}

	if len(deleteErrors) > 0 {
		return fmt.Errorf("%w: %d objects", ErrDeleteMediaFromS3, len(deleteErrors))
	}

	return nil
}
