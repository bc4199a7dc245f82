package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"viasol/config"
	"viasol/infras/otel/mocks"
	mediaMocks "viasol/internal/domains/media/mocks"
	mediaDto "viasol/internal/domains/media/model/dto"
	packageMocks "viasol/internal/domains/packages/mocks"
	"viasol/internal/domains/packages/model"
	"viasol/internal/domains/packages/model/dto"
	"viasol/internal/domains/packages/service"
	cacheMocks "viasol/shared/cache/mocks"
	"viasol/shared/constant"
	gDto "viasol/shared/dto"
	gModel "viasol/shared/model"
	"viasol/shared/timezone"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.PublicBaseURL = "https://viasol.example.com"
	cfg.App.PackageTTLDays = 60

	return cfg
}

func strPtr(s string) *string {
	return &s
}

func TestPackageService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := packageMocks.NewMockPackages(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockMedia := mediaMocks.NewMockMediaService(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel, mockMedia)

	validReq := dto.CreatePackageRequest{
		Title:         "Escapada a Buzios",
		Destination:   "Buzios",
		Country:       "Brasil",
		DepartureCity: "Buenos Aires",
		Nights:        7,
		Price:         1250,
		Currency:      "USD",
		IncludesHotel: true,
		Hotel: &dto.HotelDetails{
			HotelName: "Latitud Buzios",
		},
	}

	tests := []struct {
		name      string
		req       dto.CreatePackageRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, pkg model.Package) error {
						assert.NotEmpty(t, pkg.ID)
						assert.NotEmpty(t, pkg.Slug)
						assert.Contains(t, pkg.Slug, "escapada-a-buzios-")
						assert.True(t, pkg.ExpiresAt.After(timezone.Now()))

						return nil
					})

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "zero price rejected",
			req: dto.CreatePackageRequest{
				Title:         "Escapada a Buzios",
				Destination:   "Buzios",
				Country:       "Brasil",
				DepartureCity: "Buenos Aires",
				Nights:        7,
				Price:         0,
				Currency:      "USD",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "blank title rejected",
			req: dto.CreatePackageRequest{
				Title:         "   ",
				Destination:   "Buzios",
				Country:       "Brasil",
				DepartureCity: "Buenos Aires",
				Nights:        7,
				Price:         1250,
				Currency:      "USD",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.NotEmpty(t, res.Slug)
				assert.Equal(t, "https://viasol.example.com/paquete/"+res.Slug, res.ShareLink)
			}
		})
	}
}

func TestPackageService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := packageMocks.NewMockPackages(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockMedia := mediaMocks.NewMockMediaService(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel, mockMedia)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		filter     gDto.FilterGroup
		setupMock  func()
		wantErr    bool
		wantResult dto.GetPackagesResponse
	}{
		{
			name: "successful get all defaults to newest first",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				packages := []model.Package{
					{
						ID:            "test-id",
						Slug:          "escapada-a-buzios-a1b2c3",
						Title:         "Escapada a Buzios",
						Destination:   "Buzios",
						Country:       "Brasil",
						DepartureCity: "Buenos Aires",
						Nights:        7,
						Price:         1250,
						Currency:      "USD",
						ExpiresAt:     timezone.Now().AddDate(0, 0, 60),
						Metadata: gModel.Metadata{
							CreatedAt:  timezone.Now(),
							ModifiedAt: timezone.Now(),
							CreatedBy:  "test-user",
							ModifiedBy: "test-user",
						},
					},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Package, error) {
						assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
						assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)

						return packages, nil
					})

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantResult: dto.GetPackagesResponse{
				TotalData: 1,
				TotalPage: 1,
			},
		},
		{
			name: "count error",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetAll(ctx, tt.params, tt.filter)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
				assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
			}
		})
	}
}

func TestPackageService_GetBySlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := packageMocks.NewMockPackages(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockMedia := mediaMocks.NewMockMediaService(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel, mockMedia)

	legacyID := "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	pkg := model.Package{
		ID:                legacyID,
		Slug:              "escapada-a-buzios-a1b2c3",
		Title:             "Escapada a Buzios",
		Destination:       "Buzios",
		Country:           "Brasil",
		DepartureCity:     "Buenos Aires",
		Nights:            7,
		Price:             1250,
		Currency:          "USD",
		IncludesHotel:     true,
		AccommodationType: strPtr(model.AccommodationHotel),
		HotelName:         strPtr("Latitud Buzios"),
		RoomType:          strPtr(model.RoomStandard),
		MealPlan:          strPtr(model.MealBreakfast),
		ExpiresAt:         timezone.Now().AddDate(0, 0, 60),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin-user-id",
			ModifiedBy: "admin-user-id",
		},
	}

	tests := []struct {
		name      string
		slug      string
		setupMock func()
		wantErr   bool
		wantMsg   string
		wantSlug  string
	}{
		{
			name: "cache hit",
			slug: "escapada-a-buzios-a1b2c3",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, found by slug",
			slug: "escapada-a-buzios-a1b2c3",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pkg, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantSlug: "escapada-a-buzios-a1b2c3",
		},
		{
			name: "legacy id fallback",
			slug: legacyID,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Package{}, nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pkg, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantSlug: "escapada-a-buzios-a1b2c3",
		},
		{
			name: "uuid not found after fallback",
			slug: "9b2f1c7e-8a3d-4f6b-9c1e-2d4a6b8c0e1f",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Package{}, nil).
					Times(2)
			},
			wantErr: true,
			wantMsg: "Paquete no encontrado",
		},
		{
			name: "dead slug never queries the id column",
			slug: "nonexistent-slug",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Package{}, nil)
			},
			wantErr: true,
			wantMsg: "Paquete no encontrado",
		},
		{
			name: "repository failure hides the cause",
			slug: "escapada-a-buzios-a1b2c3",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Package{}, errors.New(`pq: invalid input syntax for type uuid: "escapada"`))
			},
			wantErr: true,
			wantMsg: "No se pudo obtener el paquete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetBySlug(ctx, tt.slug)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantMsg)
				assert.NotContains(t, err.Error(), "pq:")
			} else {
				assert.NoError(t, err)

				if tt.wantSlug != "" {
					assert.Equal(t, tt.wantSlug, result.Slug)
					assert.NotNil(t, result.Hotel)
					assert.Equal(t, "Latitud Buzios", result.Hotel.HotelName)
				}
			}
		})
	}
}

func TestPackageService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := packageMocks.NewMockPackages(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockMedia := mediaMocks.NewMockMediaService(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel, mockMedia)

	tests := []struct {
		name      string
		req       dto.UpdatePackageRequest
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req: dto.UpdatePackageRequest{
				Title: "Escapada a Buzios 2026",
				Price: 1350,
			},
			id: "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Package{ID: "test-id", Slug: "escapada-a-buzios-a1b2c3"}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "package not found",
			req: dto.UpdatePackageRequest{
				Title: "Updated Title",
			},
			id: "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Package{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPackageService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := packageMocks.NewMockPackages(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockMedia := mediaMocks.NewMockMediaService(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel, mockMedia)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Package{
						ID:        "test-id",
						Slug:      "escapada-a-buzios-a1b2c3",
						MediaURLs: pq.StringArray{"https://viasol-media.s3.amazonaws.com/packages/photo1.jpg"},
					}, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockMedia.EXPECT().
					Delete(gomock.Any(), mediaDto.DeleteMediaRequest{
						MediaURLs: []string{"https://viasol-media.s3.amazonaws.com/packages/photo1.jpg"},
					}).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "deleting a missing id still succeeds",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Package{}, nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Package{ID: "test-id"}, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			err := svc.Delete(ctx, tt.id)

			time.Sleep(50 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
