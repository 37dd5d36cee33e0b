package integration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/eapache/go-resiliency/breaker"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/tinysteps/session-service/config"
)

var (
	// ErrDoctorNotFound means the doctor-service answered and the doctor does not exist.
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrDoctorServiceUnavailable means the doctor-service could not be reached,
	// the circuit is open, or it answered with a server error.
	ErrDoctorServiceUnavailable = errors.New("doctor service unavailable")
)

// DoctorValidator checks that a doctor exists in the doctor-service.
type DoctorValidator interface {
	ValidateDoctorExists(ctx context.Context, doctorID uuid.UUID) error
}

type doctorClient struct {
	http    *resty.Client
	baseURL string
	brk     *breaker.Breaker
	logger  *slog.Logger
}

// NewDoctorValidator builds the doctor-service client. When the integration is
// disabled in config a no-op validator is returned so callers need no branching.
func NewDoctorValidator(cfg config.IntegrationConfig, logger *slog.Logger) DoctorValidator {
	if !cfg.DoctorService.Enabled {
		return noopDoctorValidator{}
	}

	errorThreshold := cfg.Breaker.ErrorThreshold
	if errorThreshold <= 0 {
		errorThreshold = 3
	}
	successThreshold := cfg.Breaker.SuccessThreshold
	if successThreshold <= 0 {
		successThreshold = 1
	}
	breakerTimeout := time.Duration(cfg.Breaker.TimeoutSeconds) * time.Second
	if breakerTimeout <= 0 {
		breakerTimeout = 30 * time.Second
	}

	return &doctorClient{
		http:    newRestyClient(cfg),
		baseURL: cfg.DoctorService.BaseURL,
		brk:     breaker.New(errorThreshold, successThreshold, breakerTimeout),
		logger:  logger.With(slog.String("component", "doctor_client")),
	}
}

func (c *doctorClient) ValidateDoctorExists(ctx context.Context, doctorID uuid.UUID) error {
	err := c.brk.Run(func() error {
		return c.fetchDoctor(ctx, doctorID)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, breaker.ErrBreakerOpen):
		c.logger.WarnContext(ctx, "doctor validation skipped, circuit open",
			slog.String("doctor_id", doctorID.String()))
		return ErrDoctorServiceUnavailable
	case errors.Is(err, ErrDoctorNotFound):
		return err
	default:
		c.logger.ErrorContext(ctx, "doctor validation failed",
			slog.String("doctor_id", doctorID.String()),
			slog.String("error", err.Error()))
		return ErrDoctorServiceUnavailable
	}
}

func (c *doctorClient) fetchDoctor(ctx context.Context, doctorID uuid.UUID) error {
	return retry.Do(
		func() error {
			resp, err := c.http.R().
				SetContext(ctx).
				Get(fmt.Sprintf("%s/api/v1/doctors/%s", c.baseURL, doctorID))
			if err != nil {
				return err
			}

			switch {
			case resp.StatusCode() == http.StatusOK:
				return nil
			case resp.StatusCode() == http.StatusNotFound:
				// Do not retry a definitive answer.
				return retry.Unrecoverable(ErrDoctorNotFound)
			case resp.StatusCode() >= http.StatusInternalServerError:
				return fmt.Errorf("doctor service returned %d", resp.StatusCode())
			default:
				return retry.Unrecoverable(fmt.Errorf("doctor service returned %d", resp.StatusCode()))
			}
		},
		retry.Attempts(3),
		retry.Delay(200*time.Millisecond),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
}

type noopDoctorValidator struct{}

func (noopDoctorValidator) ValidateDoctorExists(context.Context, uuid.UUID) error { return nil }
