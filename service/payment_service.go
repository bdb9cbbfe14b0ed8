package application

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type ErrResp struct {
	URL        string
	Method     string
	StatusCode int
}

func (e ErrResp) Error() string {
	return fmt.Sprintf("error [status code %d] for request: HTTP %s\t%s", e.StatusCode, e.Method, e.URL)
}

// PaymentService delegates payment-intent creation to the external
// processor. Amounts arrive as single-currency decimals and are converted
// to integer minor units here, at the payment boundary only.
type PaymentService struct {
	endpoint  string
	secretKey string
	client    *http.Client
	cb        *gobreaker.CircuitBreaker
	tracer    trace.Tracer
	logger    *logrus.Logger
}

func NewPaymentService(endpoint, secretKey string, client *http.Client, tracer trace.Tracer, logger *logrus.Logger) *PaymentService {
	return &PaymentService{
		endpoint:  endpoint,
		secretKey: secretKey,
		client:    client,
		cb:        CircuitBreaker("paymentProcessor"),
		tracer:    tracer,
		logger:    logger,
	}
}

type paymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

func (service *PaymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	ctx, span := service.tracer.Start(ctx, "PaymentService.CreatePaymentIntent")
	defer span.End()

	amount := int64(math.Round(price * 100))

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", "usd")
	form.Add("payment_method_types[]", "card")

	result, err := service.cb.Execute(func() (interface{}, error) {
		endpoint := fmt.Sprintf("%s/v1/payment_intents", service.endpoint)
		request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		request.Header.Set("Authorization", "Bearer "+service.secretKey)
		request.Header.Set("Idempotency-Key", uuid.NewString())

		response, err := service.client.Do(request)
		if err != nil {
			return nil, err
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			return nil, ErrResp{URL: endpoint, Method: http.MethodPost, StatusCode: response.StatusCode}
		}

		var intent paymentIntent
		if err := json.NewDecoder(response.Body).Decode(&intent); err != nil {
			return nil, err
		}
		return &intent, nil
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		service.logger.Errorf("payment intent creation failed: %s", err)
		return "", err
	}

	return result.(*paymentIntent).ClientSecret, nil
}

func CircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			Interval:    0,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logrus.Printf("Circuit Breaker '%s' changed from '%s' to '%s'\n", name, from, to)
			},

			IsSuccessful: func(err error) bool {
				if err == nil {
					return true
				}
				errResp, ok := err.(ErrResp)
				return ok && errResp.StatusCode >= 400 && errResp.StatusCode < 500
			},
		},
	)
}
