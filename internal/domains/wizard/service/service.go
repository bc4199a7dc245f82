package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"viasol/config"
	"viasol/infras/otel"
	pkgService "viasol/internal/domains/packages/service"
	"viasol/internal/domains/wizard/model"
	"viasol/internal/domains/wizard/model/dto"
	"viasol/shared"
	"viasol/shared/cache"
	"viasol/shared/constant"
	"viasol/shared/failure"
)

const cacheWizardSession = "wizard:session"

type Wizard interface {
	Start(ctx context.Context) (dto.WizardStateResponse, error)
	Get(ctx context.Context, sessionID string) (dto.WizardStateResponse, error)
	Apply(ctx context.Context, sessionID string, req dto.ApplyFormRequest) (dto.WizardStateResponse, error)
	Next(ctx context.Context, sessionID string) (dto.WizardStateResponse, error)
	Back(ctx context.Context, sessionID string) (dto.WizardStateResponse, error)
	Skip(ctx context.Context, sessionID string) (dto.WizardStateResponse, error)
	Submit(ctx context.Context, sessionID string) (dto.SubmitResponse, error)
}

type serviceImpl struct {
	packages pkgService.Packages
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(packages pkgService.Packages, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Wizard {
	return &serviceImpl{
		packages: packages,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Start(ctx context.Context) (res dto.WizardStateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StartWizard")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID := uuid.NewString()
	wizard := model.New()

	if err = s.save(ctx, sessionID, wizard); err != nil {
		return res, err
	}

	res.FromWizard(sessionID, wizard, nil)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, sessionID string) (res dto.WizardStateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetWizard")
	defer scope.End()
	defer scope.TraceIfError(err)

	wizard, err := s.load(ctx, sessionID)
	if err != nil {
		return res, err
	}

	res.FromWizard(sessionID, wizard, nil)

	return res, nil
}

func (s *serviceImpl) Apply(ctx context.Context, sessionID string, req dto.ApplyFormRequest) (res dto.WizardStateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyWizardForm")
	defer scope.End()
	defer scope.TraceIfError(err)

	wizard, err := s.load(ctx, sessionID)
	if err != nil {
		return res, err
	}

	if err = wizard.Apply(req.Form); err != nil {
		return res, mapWizardError(err)
	}

	if err = s.save(ctx, sessionID, wizard); err != nil {
		return res, err
	}

	res.FromWizard(sessionID, wizard, nil)

	return res, nil
}

func (s *serviceImpl) Next(ctx context.Context, sessionID string) (res dto.WizardStateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WizardNext")
	defer scope.End()
	defer scope.TraceIfError(err)

	wizard, err := s.load(ctx, sessionID)
	if err != nil {
		return res, err
	}

	errs, err := wizard.Next()
	if err != nil {
		return res, mapWizardError(err)
	}

	if len(errs) == 0 {
		if err = s.save(ctx, sessionID, wizard); err != nil {
			return res, err
		}
	}

	res.FromWizard(sessionID, wizard, errs)

	return res, nil
}

func (s *serviceImpl) Back(ctx context.Context, sessionID string) (res dto.WizardStateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WizardBack")
	defer scope.End()
	defer scope.TraceIfError(err)

	wizard, err := s.load(ctx, sessionID)
	if err != nil {
		return res, err
	}

	if err = wizard.Back(); err != nil {
		return res, mapWizardError(err)
	}

	if err = s.save(ctx, sessionID, wizard); err != nil {
		return res, err
	}

	res.FromWizard(sessionID, wizard, nil)

	return res, nil
}

func (s *serviceImpl) Skip(ctx context.Context, sessionID string) (res dto.WizardStateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WizardSkip")
	defer scope.End()
	defer scope.TraceIfError(err)

	wizard, err := s.load(ctx, sessionID)
	if err != nil {
		return res, err
	}

	if err = wizard.Skip(); err != nil {
		return res, mapWizardError(err)
	}

	if err = s.save(ctx, sessionID, wizard); err != nil {
		return res, err
	}

	res.FromWizard(sessionID, wizard, nil)

	return res, nil
}

// Submit re-validates, flips the session into Submitting, and calls the
// package service under an explicit deadline, so a hung create can never
// leave the session stuck in Submitting forever. On success the session
// resets to defaults; on failure it returns to the last interactive step
// with the form intact and only a generic message surfaces to the admin.
func (s *serviceImpl) Submit(ctx context.Context, sessionID string) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WizardSubmit")
	defer scope.End()
	defer scope.TraceIfError(err)

	wizard, err := s.load(ctx, sessionID)
	if err != nil {
		return res, err
	}

	errs, err := wizard.BeginSubmit()
	if err != nil {
		return res, mapWizardError(err)
	}

	if len(errs) > 0 {
		res.Wizard.FromWizard(sessionID, wizard, errs)

		return res, nil
	}

	if err = s.save(ctx, sessionID, wizard); err != nil {
		return res, err
	}

	timeout := time.Duration(s.cfg.App.SubmitTimeoutSeconds) * time.Second
	createCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	created, err := s.packages.Create(createCtx, dto.ComposeCreateRequest(wizard.Form))
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("wizard submit failed")

		wizard.FinishSubmit()

		if saveErr := s.save(ctx, sessionID, wizard); saveErr != nil {
			log.Error().Err(saveErr).Str("sessionID", sessionID).Msg("failed to restore wizard session after submit failure")
		}

		return res, failure.InternalError(errors.New("No se pudo crear el paquete"))
	}

	wizard.Reset()

	if err = s.save(ctx, sessionID, wizard); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to reset wizard session after submit")
	}

	res.Package = created
	res.Wizard.FromWizard(sessionID, wizard, nil)

	return res, nil
}

// Sessions are scoped per admin: one admin can never load another's draft.
func (s *serviceImpl) sessionKey(ctx context.Context, sessionID string) string {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return shared.BuildCacheKey(cacheWizardSession, user, sessionID)
}

func (s *serviceImpl) load(ctx context.Context, sessionID string) (wizard model.Wizard, err error) {
	if err = s.cache.Get(ctx, s.sessionKey(ctx, sessionID), &wizard); err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("wizard session not found")

		return wizard, failure.NotFound("wizard session not found")
	}

	return wizard, nil
}

func (s *serviceImpl) save(ctx context.Context, sessionID string, wizard model.Wizard) error {
	if err := s.cache.Save(ctx, s.sessionKey(ctx, sessionID), wizard, s.cfg.App.WizardSessionTTLSeconds); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to save wizard session")

		return err
	}

	return nil
}

func mapWizardError(err error) error {
	switch {
	case errors.Is(err, model.ErrSubmitInProgress):
		return failure.Conflict(err.Error())
	case errors.Is(err, model.ErrSkipNotAllowed), errors.Is(err, model.ErrNotLastStep):
		return failure.BadRequestFromString(err.Error())
	default:
		return err
	}
}
