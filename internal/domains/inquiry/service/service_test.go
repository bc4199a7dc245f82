package service_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"viasol/config"
	kafkaMocks "viasol/infras/kafka/mocks"
	"viasol/infras/otel/mocks"
	"viasol/internal/domains/inquiry/model/dto"
	"viasol/internal/domains/inquiry/service"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.WhatsAppNumber = "5493511234567"
	cfg.Kafka.InquiryTopic = "viasol.inquiries"

	return cfg
}

func TestInquiryService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(newTestConfig(), mockKafka, mockOtel)

	t.Run("builds the WhatsApp deep link", func(t *testing.T) {
		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "viasol.inquiries", gomock.Any()).
			Return(nil)

		req := dto.CreateInquiryRequest{
			Phone:          "3511234567",
			Adults:         2,
			Minors:         1,
			DatePreference: "fecha",
			DateValue:      "2026-01-10 al 2026-01-17",
			Destination:    "Buzios",
		}

		res, err := svc.Create(context.Background(), req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/5493511234567?text="))

		parsed, parseErr := url.Parse(res.WhatsAppURL)
		assert.NoError(t, parseErr)

		message := parsed.Query().Get("text")
		assert.Contains(t, message, "Hola! Me gustaría cotizar un paquete:")
		assert.Contains(t, message, "Teléfono: 3511234567")
		assert.Contains(t, message, "2 adultos, 1 menores")
		assert.Contains(t, message, "2026-01-10 al 2026-01-17")
		assert.Contains(t, message, "Destino: Buzios")
		assert.Contains(t, message, "¡Gracias!")
	})

	t.Run("no date preference renders a fixed label", func(t *testing.T) {
		mockKafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		req := dto.CreateInquiryRequest{
			Phone:          "3511234567",
			Adults:         1,
			DatePreference: "sin_preferencia",
			Destination:    "Cancun",
		}

		res, err := svc.Create(context.Background(), req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)

		parsed, parseErr := url.Parse(res.WhatsAppURL)
		assert.NoError(t, parseErr)
		assert.Contains(t, parsed.Query().Get("text"), "Fecha: Sin preferencia")
	})

	t.Run("broker outage does not fail the request", func(t *testing.T) {
		mockKafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("broker unreachable"))

		req := dto.CreateInquiryRequest{
			Phone:          "3511234567",
			Adults:         2,
			DatePreference: "mes",
			DateValue:      "Enero 2026",
			Destination:    "Buzios",
		}

		res, err := svc.Create(context.Background(), req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.WhatsAppURL)
	})
}
