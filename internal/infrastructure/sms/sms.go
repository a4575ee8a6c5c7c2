package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anandbhardwaj456/E-commerce-webapp/config"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// Sender dispatches text messages through an external gateway.
type Sender interface {
	Send(ctx context.Context, phone string, message string) error
}

type GatewaySender struct {
	config  config.SMSConfig
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func CreateGatewaySender(config config.SMSConfig, breaker *gobreaker.CircuitBreaker[[]byte]) Sender {
	return &GatewaySender{config: config, breaker: breaker}
}

func (s *GatewaySender) Send(ctx context.Context, phone string, message string) error {
	payload, err := json.Marshal(map[string]string{
		"to":      phone,
		"from":    s.config.SenderID,
		"message": message,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal SMS payload: %w", err)
	}

	_, err = s.breaker.Execute(func() ([]byte, error) {
		statusCode, body, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    s.config.GatewayURL,
			Method: http.MethodPost,
			Body:   payload,
			Headers: map[string]string{
				"Content-Type":  "application/json",
				"Authorization": fmt.Sprintf("Bearer %s", s.config.APIKey),
			},
		})
		if err != nil {
			return nil, err
		}

		if statusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("SMS gateway returned status %d", statusCode)
		}

		return body, nil
	})

	if err != nil {
		log.Error().Err(err).Str("component", "SendSMS").Msg("")
		return err
	}

	return nil
}
