package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/metro-service/internal/domain"
	apperrors "github.com/spec-kit/metro-service/pkg/util"
)

func newJourneyFixture() (*JourneyService, *fakeJourneyRepo, *fakePaymentRepo) {
	journeys := newFakeJourneyRepo()
	payments := newFakePaymentRepo()
	return NewJourneyService(journeys, payments), journeys, payments
}

func TestJourneyCreate(t *testing.T) {
	svc, _, _ := newJourneyFixture()
	user := &domain.User{ID: 2}

	journey, err := svc.Create(context.Background(), user, JourneyInput{
		Route:      "Uttara North - Motijheel",
		TravelDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		Fare:       100,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), journey.UserID)
	assert.Nil(t, journey.PaymentID)
}

func TestJourneyCreateValidation(t *testing.T) {
	svc, journeys, _ := newJourneyFixture()
	user := &domain.User{ID: 1}
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), user, JourneyInput{Route: "", TravelDate: date})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = svc.Create(context.Background(), user, JourneyInput{Route: "A-B"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = svc.Create(context.Background(), user, JourneyInput{Route: "A-B", TravelDate: date, Fare: -1})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	count, err := journeys.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestJourneyPaymentReferenceMustBeOwn(t *testing.T) {
	svc, _, payments := newJourneyFixture()
	ctx := context.Background()
	owner := &domain.User{ID: 1}
	other := &domain.User{ID: 2}
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	payment := &domain.Payment{UserID: owner.ID, Method: domain.PaymentMethodBkash, Amount: 60}
	require.NoError(t, payments.Create(ctx, payment))

	// Referencing someone else's payment fails validation, not not-found.
	_, err := svc.Create(ctx, other, JourneyInput{
		Route:      "Agargaon - Farmgate",
		TravelDate: date,
		Fare:       60,
		PaymentID:  &payment.ID,
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	journey, err := svc.Create(ctx, owner, JourneyInput{
		Route:      "Agargaon - Farmgate",
		TravelDate: date,
		Fare:       60,
		PaymentID:  &payment.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, journey.PaymentID)
	assert.Equal(t, payment.ID, *journey.PaymentID)
}

func TestJourneyUpdateAndDeleteOwnerScoped(t *testing.T) {
	svc, _, _ := newJourneyFixture()
	ctx := context.Background()
	owner := &domain.User{ID: 1}
	other := &domain.User{ID: 2}
	date := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)

	journey, err := svc.Create(ctx, owner, JourneyInput{Route: "Pallabi - Shahbagh", TravelDate: date, Fare: 40})
	require.NoError(t, err)

	_, err = svc.Update(ctx, journey.ID, other, JourneyInput{Route: "Hijacked", TravelDate: date, Fare: 1})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	updated, err := svc.Update(ctx, journey.ID, owner, JourneyInput{Route: "Pallabi - Motijheel", TravelDate: date, Fare: 50})
	require.NoError(t, err)
	assert.Equal(t, "Pallabi - Motijheel", updated.Route)

	err = svc.Delete(ctx, journey.ID, other)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	require.NoError(t, svc.Delete(ctx, journey.ID, owner))
}
