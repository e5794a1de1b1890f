// Package service contains the measurement business logic: input
// validation, BMI derivation and orchestration of the store. Handlers
// stay thin and only translate between HTTP and this package.
package service

import (
	"context"
	"log"
	"strings"

	"github.com/iliyamo/bmi-tracker/internal/bmi"
	"github.com/iliyamo/bmi-tracker/internal/model"
	"github.com/iliyamo/bmi-tracker/internal/queue"
)

// ValidationError reports invalid caller input. It is a distinct type
// so the HTTP layer can map it to a 400 response deterministically
// instead of pattern-matching on messages.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validation messages returned to clients.
const (
	msgFieldsRequired = "all fields are required"
	msgNotPositive    = "values must be positive numbers"
)

// MeasurementStore is the persistence boundary the service depends on.
// The production implementation is repository.MeasurementRepo; tests
// substitute an in-memory fake.
type MeasurementStore interface {
	Insert(ctx context.Context, m *model.Measurement) error
	FindByUser(ctx context.Context, userID string) ([]model.Measurement, error)
	FindLatestByUser(ctx context.Context, userID string) (model.Measurement, error)
}

// PublishFunc delivers a recorded-measurement event to the message
// broker. It may be nil when no broker is configured.
type PublishFunc func(ctx context.Context, ev queue.MeasurementRecordedEvent) error

// MeasurementService validates input, derives BMI values and persists
// measurements through the injected store.
type MeasurementService struct {
	store   MeasurementStore
	publish PublishFunc
}

// NewMeasurementService returns a service bound to the given store.
// publish may be nil to disable event publishing.
func NewMeasurementService(store MeasurementStore, publish PublishFunc) *MeasurementService {
	return &MeasurementService{store: store, publish: publish}
}

// CreateInput is the candidate record for Create. Numeric fields are
// pointers so that "absent" and "zero" stay distinguishable after the
// transport layer has coerced strings to numbers.
type CreateInput struct {
	UserID string
	Height *float64
	Weight *float64
	Age    *float64
}

// Create validates the input, computes the BMI and stores exactly one
// new measurement. Presence is checked before positivity, and nothing
// is persisted when validation fails. Storage errors are returned to
// the caller unretried.
func (s *MeasurementService) Create(ctx context.Context, in CreateInput) (model.Measurement, error) {
	if strings.TrimSpace(in.UserID) == "" || in.Height == nil || in.Weight == nil || in.Age == nil {
		return model.Measurement{}, &ValidationError{Reason: msgFieldsRequired}
	}
	if *in.Height <= 0 || *in.Weight <= 0 || *in.Age <= 0 {
		return model.Measurement{}, &ValidationError{Reason: msgNotPositive}
	}

	value, category := bmi.Calculate(*in.Weight, *in.Height)
	m := model.Measurement{
		UserID:   in.UserID,
		Height:   *in.Height,
		Weight:   *in.Weight,
		Age:      int(*in.Age),
		BMI:      value,
		Category: category,
	}
	if err := s.store.Insert(ctx, &m); err != nil {
		return model.Measurement{}, err
	}

	if s.publish != nil {
		ev := queue.MeasurementRecordedEvent{
			MeasurementID: m.ID,
			UserID:        m.UserID,
			Height:        m.Height,
			Weight:        m.Weight,
			Age:           m.Age,
			BMI:           m.BMI,
			Category:      m.Category,
			RecordedAt:    m.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		// Event delivery is best effort; a broker outage must not fail
		// the request that already persisted the measurement.
		if err := s.publish(ctx, ev); err != nil {
			log.Printf("measurement-service: publish event failed: %v", err)
		}
	}
	return m, nil
}

// ListByUser returns the user's measurements newest first. A user with
// no measurements yields an empty slice.
func (s *MeasurementService) ListByUser(ctx context.Context, userID string) ([]model.Measurement, error) {
	return s.store.FindByUser(ctx, userID)
}

// LatestByUser returns the user's most recent measurement, or
// repository.ErrNotFound (propagated from the store) when none exist.
func (s *MeasurementService) LatestByUser(ctx context.Context, userID string) (model.Measurement, error) {
	return s.store.FindLatestByUser(ctx, userID)
}
