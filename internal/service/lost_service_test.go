package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/metro-service/internal/domain"
	apperrors "github.com/spec-kit/metro-service/pkg/util"
)

func newLostFixture() (*LostService, *fakeLostItemRepo, *fakeLostReportRepo) {
	items := newFakeLostItemRepo()
	reports := newFakeLostReportRepo()
	return NewLostService(items, reports), items, reports
}

func TestLostItemCreateAndClaim(t *testing.T) {
	svc, _, _ := newLostFixture()
	ctx := context.Background()
	poster := &domain.User{ID: 3}

	item, err := svc.CreateItem(ctx, poster, LostItemInput{
		Title:    "Black umbrella",
		Location: "Agargaon platform 2",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LostItemStatusUnclaimed, item.Status)
	assert.Equal(t, int64(3), item.PostedBy)

	claimer := &domain.User{ID: 9}
	require.NoError(t, svc.MarkItemClaimed(ctx, claimer, item.ID))

	got, err := svc.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LostItemStatusClaimed, got.Status)
}

func TestLostItemValidation(t *testing.T) {
	svc, _, _ := newLostFixture()
	ctx := context.Background()
	user := &domain.User{ID: 1}

	_, err := svc.CreateItem(ctx, user, LostItemInput{Title: "", Location: "somewhere"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = svc.CreateItem(ctx, user, LostItemInput{Title: "Wallet", Location: "x", Status: "missing"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = svc.CreateItem(ctx, nil, LostItemInput{Title: "Wallet", Location: "x"})
	require.Error(t, err)
	assert.Equal(t, "AUTHENTICATION_REQUIRED", apperrors.ToDomainError(err).Code)
}

func TestLostReportsOwnerScoped(t *testing.T) {
	svc, _, _ := newLostFixture()
	ctx := context.Background()
	owner := &domain.User{ID: 1}
	other := &domain.User{ID: 2}

	report, err := svc.CreateReport(ctx, owner, LostReportInput{
		Title:   "Lost phone",
		Contact: "017XXXXXXXX",
	})
	require.NoError(t, err)

	mine, err := svc.ListReports(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := svc.ListReports(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	err = svc.DeleteReport(ctx, report.ID, other)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	require.NoError(t, svc.DeleteReport(ctx, report.ID, owner))
}
