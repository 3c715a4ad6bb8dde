package service

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/metro-service/internal/config"
	"github.com/spec-kit/metro-service/internal/domain"
	"github.com/spec-kit/metro-service/internal/events"
	"github.com/spec-kit/metro-service/internal/qr"
	apperrors "github.com/spec-kit/metro-service/pkg/util"
)

func newTicketService(repo *fakeTicketRepo, dispatcher events.Dispatcher) *TicketService {
	return NewTicketService(TicketDependencies{
		TicketRepo: repo,
		Encoder:    qr.NewEncoder(config.QRConfig{ImageSize: 128}),
		BaseURL:    "https://metro.example.com",
		Dispatcher: dispatcher,
	})
}

func TestTicketCreate(t *testing.T) {
	repo := newFakeTicketRepo()
	dispatcher := &recordingDispatcher{}
	svc := newTicketService(repo, dispatcher)
	user := &domain.User{ID: 7, Name: "Anika", Email: "anika@example.com"}

	ticket, err := svc.Create(context.Background(), user, "Uttara North", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(7), ticket.UserID)
	assert.Equal(t, "Uttara North", ticket.Destination)
	assert.Equal(t, 60.0, ticket.Price)
	assert.NotEmpty(t, ticket.ExternalKey)

	captured := dispatcher.captured()
	require.Len(t, captured, 1)
	assert.Equal(t, events.EventTicketIssued, captured[0].Type)
}

func TestTicketCreateValidation(t *testing.T) {
	repo := newFakeTicketRepo()
	svc := newTicketService(repo, nil)
	user := &domain.User{ID: 1}

	cases := []struct {
		name        string
		destination string
		price       float64
	}{
		{"empty destination", "", 50},
		{"blank destination", "   ", 50},
		{"zero price", "Agargaon", 0},
		{"negative price", "Agargaon", -10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), user, tc.destination, tc.price)
			require.Error(t, err)
			domainErr := apperrors.ToDomainError(err)
			assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
		})
	}
	// Rejected requests must not leave records behind.
	assert.Equal(t, 0, repo.count())
}

func TestTicketCreateRequiresUser(t *testing.T) {
	repo := newFakeTicketRepo()
	svc := newTicketService(repo, nil)

	_, err := svc.Create(context.Background(), nil, "Motijheel", 100)
	require.Error(t, err)
	assert.Equal(t, "AUTHENTICATION_REQUIRED", apperrors.ToDomainError(err).Code)
	assert.Equal(t, 0, repo.count())
}

func TestTicketExternalKeysUniqueUnderConcurrency(t *testing.T) {
	repo := newFakeTicketRepo()
	svc := newTicketService(repo, nil)
	user := &domain.User{ID: 3}

	const n = 100
	keys := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticket, err := svc.Create(context.Background(), user, "Mirpur 10", 20)
			if assert.NoError(t, err) {
				keys <- ticket.ExternalKey
			}
		}()
	}
	wg.Wait()
	close(keys)

	seen := make(map[string]bool)
	for key := range keys {
		assert.False(t, seen[key], "duplicate external key %s", key)
		seen[key] = true
	}
	assert.Len(t, seen, n)
}

func TestTicketDeleteOwnerScoped(t *testing.T) {
	repo := newFakeTicketRepo()
	dispatcher := &recordingDispatcher{}
	svc := newTicketService(repo, dispatcher)
	owner := &domain.User{ID: 1}
	other := &domain.User{ID: 2}

	ticket, err := svc.Create(context.Background(), owner, "Kamalapur", 35)
	require.NoError(t, err)

	// Another user deleting the ticket gets the same answer as deleting a
	// ticket that does not exist.
	err = svc.Delete(context.Background(), ticket.ID, other)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	err = svc.Delete(context.Background(), ticket.ID+999, owner)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	require.NoError(t, svc.Delete(context.Background(), ticket.ID, owner))
	assert.Equal(t, 0, repo.count())

	captured := dispatcher.captured()
	require.Len(t, captured, 2)
	assert.Equal(t, events.EventTicketDeleted, captured[1].Type)
}

func TestTicketRenderQR(t *testing.T) {
	repo := newFakeTicketRepo()
	svc := newTicketService(repo, nil)
	owner := &domain.User{ID: 1}
	other := &domain.User{ID: 2}

	ticket, err := svc.Create(context.Background(), owner, "Farmgate", 30)
	require.NoError(t, err)

	png, err := svc.RenderQR(context.Background(), ticket.ID, owner)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	// Same ticket, same bytes.
	again, err := svc.RenderQR(context.Background(), ticket.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, png, again)

	// Foreign tickets are indistinguishable from missing ones.
	_, err = svc.RenderQR(context.Background(), ticket.ID, other)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	_, err = svc.RenderQR(context.Background(), ticket.ID, nil)
	require.Error(t, err)
	assert.Equal(t, "AUTHENTICATION_REQUIRED", apperrors.ToDomainError(err).Code)
}

func TestTicketRenderDemoQR(t *testing.T) {
	svc := newTicketService(newFakeTicketRepo(), nil)

	png, err := svc.RenderDemoQR()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	again, err := svc.RenderDemoQR()
	require.NoError(t, err)
	assert.Equal(t, png, again)
}

func TestTicketListAllIncludesOwner(t *testing.T) {
	repo := newFakeTicketRepo()
	svc := newTicketService(repo, nil)
	user := &domain.User{ID: 5, Name: "Rahim", Email: "rahim@example.com"}
	repo.owners[user.ID] = user

	_, err := svc.Create(context.Background(), user, "Shahbagh", 25)
	require.NoError(t, err)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Rahim", all[0].OwnerName)
	assert.Equal(t, "rahim@example.com", all[0].OwnerEmail)
}

func TestTicketGetPublic(t *testing.T) {
	repo := newFakeTicketRepo()
	svc := newTicketService(repo, nil)
	user := &domain.User{ID: 9}

	ticket, err := svc.Create(context.Background(), user, "Pallabi", 20)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.ExternalKey, got.ExternalKey)

	_, err = svc.Get(context.Background(), ticket.ID+1)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
