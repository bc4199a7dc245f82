package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"viasol/config"
	"viasol/infras/kafka"
	"viasol/infras/otel"
	"viasol/internal/domains/inquiry/model"
	"viasol/internal/domains/inquiry/model/dto"
	"viasol/shared/constant"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Inquiry=MockInquiryService

type Inquiry interface {
	Create(ctx context.Context, req dto.CreateInquiryRequest) (dto.CreateInquiryResponse, error)
}

type serviceImpl struct {
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(cfg *config.Config, kafkaClient kafka.Client, otel otel.Otel) Inquiry {
	return &serviceImpl{
		cfg:   cfg,
		kafka: kafkaClient,
		otel:  otel,
	}
}

// Create builds the prefilled WhatsApp deep link for the visitor and emits
// the inquiry to the back-office topic. The event is best effort: a broker
// outage must never cost the agency a lead, so publish failures are only
// logged.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInquiryRequest) (res dto.CreateInquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateInquiry")
	defer scope.End()
	defer scope.TraceIfError(err)

	inquiry := req.ToModel()

	res.ID = inquiry.ID
	res.WhatsAppURL = s.buildWhatsAppURL(inquiry)

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   inquiry.ID,
			Value: inquiry,
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.InquiryTopic, message); err != nil {
			log.Error().Err(err).Str("inquiryID", inquiry.ID).Msg("failed to publish inquiry event")
		}
	}()

	log.Info().Str("inquiryID", inquiry.ID).Str("destination", inquiry.Destination).Msg("inquiry received")

	return res, nil
}

func (s *serviceImpl) buildWhatsAppURL(inquiry model.Inquiry) string {
	message := fmt.Sprintf(
		"Hola! Me gustaría cotizar un paquete:\n📱 Teléfono: %s\n👥 Viajeros: %d adultos, %d menores\n📅 Fecha: %s\n🌍 Destino: %s\n\n¡Gracias!",
		inquiry.Phone,
		inquiry.Adults,
		inquiry.Minors,
		dateLabel(inquiry),
		inquiry.Destination,
	)

	return fmt.Sprintf("https://wa.me/%s?text=%s", s.cfg.App.WhatsAppNumber, url.QueryEscape(message))
}

func dateLabel(inquiry model.Inquiry) string {
	if inquiry.DatePreference == model.DatePreferenceNone {
		return "Sin preferencia"
	}

	return inquiry.DateValue
}
