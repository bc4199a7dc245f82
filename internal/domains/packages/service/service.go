package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Packages=MockPackagesService

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"viasol/config"
	"viasol/infras/otel"
	mediaDto "viasol/internal/domains/media/model/dto"
	mediaService "viasol/internal/domains/media/service"
	"viasol/internal/domains/packages/model"
	"viasol/internal/domains/packages/model/dto"
	"viasol/internal/domains/packages/repository"
	"viasol/shared"
	"viasol/shared/cache"
	"viasol/shared/constant"
	gDto "viasol/shared/dto"
	"viasol/shared/failure"
)

const (
	cacheGetPackage    = "package:get"
	cacheGetAllPackage = "package:get_all"
	cacheCountPackage  = "package:count"
)

type Packages interface {
	Create(ctx context.Context, req dto.CreatePackageRequest) (dto.CreatePackageResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPackagesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PackageResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.PublicPackageResponse, error)
	Update(ctx context.Context, req dto.UpdatePackageRequest, id string) error
	Delete(ctx context.Context, id string) error
	ShareLink(slug string) string
}

type serviceImpl struct {
	repo  repository.Packages
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	media mediaService.Media
}

func New(repo repository.Packages, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, media mediaService.Media) Packages {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		media: media,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePackageRequest) (res dto.CreatePackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	// The wizard validates before submitting, but this service is the final
	// authority on the record invariants.
	if strings.TrimSpace(req.Title) == "" {
		return res, failure.BadRequestFromString("title must not be empty")
	}

	if req.Price <= 0 {
		return res, failure.BadRequestFromString("price must be greater than 0")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	pkg := req.ToModel(user, s.cfg.App.PackageTTLDays)

	if err = s.repo.Insert(ctx, pkg); err != nil {
		log.Error().Err(err).Msg("failed to insert package")

		return res, failure.InternalError(errors.New("failed to create package"))
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheCountPackage)
	}()

	res.ID = pkg.ID
	res.Slug = pkg.Slug
	res.ShareLink = s.ShareLink(pkg.Slug)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPackagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Admin dashboard lists newest first.
	if req.SortBy == "" {
		req.SortBy = constant.DefaultValueSortBy
		req.SortDir = constant.DefaultValueSortDir
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPackage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for packages")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count packages")

		return res, err
	}

	packages, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get packages")

		return res, failure.InternalError(errors.New("failed to get packages"))
	}

	res.FromModels(packages, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save packages to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPackage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count packages")

		return total, failure.InternalError(errors.New("failed to count packages"))
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save package count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	pkg, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get package")

		return res, failure.InternalError(errors.New("failed to get package"))
	}

	if pkg.ID == constant.Empty {
		return res, failure.NotFound("package not found")
	}

	res.FromModel(pkg)

	return res, nil
}

// GetBySlug serves the public share page. It also accepts a legacy short id
// in the slug position, since links minted before slugs existed used the raw
// record id.
func (s *serviceImpl) GetBySlug(ctx context.Context, slugOrID string) (res dto.PublicPackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPackage, slugOrID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for package")

		return res, nil
	}

	pkg, err := s.repo.Get(ctx, shared.FilterByID(slugOrID, model.FieldSlug, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get package by slug")

		return res, failure.InternalError(errors.New("No se pudo obtener el paquete"))
	}

	if pkg.ID == constant.Empty {
		// The id column is UUID typed. A value that does not parse as one
		// cannot be a legacy id and must never reach the id query.
		if uuid.Validate(slugOrID) != nil {
			return res, failure.NotFound("Paquete no encontrado")
		}

		pkg, err = s.repo.Get(ctx, shared.FilterByID(slugOrID, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get package by legacy id")

			return res, failure.InternalError(errors.New("No se pudo obtener el paquete"))
		}
	}

	if pkg.ID == constant.Empty {
		return res, failure.NotFound("Paquete no encontrado")
	}

	res.FromModel(pkg)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save package to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePackageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	pkg, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldSlug)
	if err != nil {
		log.Error().Err(err).Msg("failed to check package existence")

		return failure.InternalError(errors.New("failed to update package"))
	}

	if pkg.ID == constant.Empty {
		return failure.NotFound("package not found")
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update package")

		return failure.InternalError(errors.New("failed to update package"))
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPackage, pkg.Slug)); err != nil {
			log.Error().Err(err).Msg("failed to delete package cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheCountPackage)
	}()

	return nil
}

// Delete is idempotent from the caller's point of view: removing an id that
// no longer exists is still a success, so a double-click on the dashboard
// never surfaces an error.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	pkg, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldSlug, model.FieldMediaURLs)
	if err != nil {
		log.Error().Err(err).Msg("failed to get package for deletion")

		return failure.InternalError(errors.New("failed to delete package"))
	}

	if pkg.ID == constant.Empty {
		log.Info().Str("id", id).Msg("package already gone, delete treated as success")

		return nil
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete package")

		return failure.InternalError(errors.New("failed to delete package"))
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPackage, pkg.Slug)); err != nil {
			log.Error().Err(err).Msg("failed to delete package cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheCountPackage)

		if len(pkg.MediaURLs) > 0 {
			deleteReq := mediaDto.DeleteMediaRequest{
				MediaURLs: pkg.MediaURLs,
			}
			if err := s.media.Delete(c, deleteReq); err != nil {
				log.Error().Err(err).Str("id", pkg.ID).Msg("failed to delete package media from S3")
			}
		}
	}()

	return nil
}

// ShareLink is the only externally shareable artifact this service produces.
func (s *serviceImpl) ShareLink(slug string) string {
	return fmt.Sprintf("%s/paquete/%s", strings.TrimRight(s.cfg.App.PublicBaseURL, "/"), slug)
}
