package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/metro-service/internal/domain"
	"github.com/spec-kit/metro-service/internal/events"
	"github.com/spec-kit/metro-service/internal/qr"
	"github.com/spec-kit/metro-service/internal/repository"
	apperrors "github.com/spec-kit/metro-service/pkg/util"
)

// TicketService coordinates ticket issuance, lookup and QR rendering.
type TicketService struct {
	tickets    repository.TicketRepository
	encoder    *qr.Encoder
	baseURL    string
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Encoder    *qr.Encoder
	BaseURL    string
	Dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		encoder:    deps.Encoder,
		baseURL:    strings.TrimRight(deps.BaseURL, "/"),
		dispatcher: deps.Dispatcher,
	}
}

// Create issues a ticket to user. The external key comes from a
// collision-resistant generator, so uniqueness holds under concurrent creates
// without a check-then-insert. Validation runs before any persistence call.
func (s *TicketService) Create(ctx context.Context, user *domain.User, destination string, price float64) (*domain.Ticket, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, apperrors.NewValidationError("destination required", nil)
	}
	if price <= 0 {
		return nil, apperrors.NewValidationError("price must be positive", map[string]any{"price": price})
	}

	ticket := &domain.Ticket{
		UserID:      user.ID,
		ExternalKey: uuid.NewString(),
		Destination: destination,
		Price:       price,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:   events.EventTicketIssued,
		UserID: &user.ID,
		Payload: events.TicketIssuedPayload{
			TicketID:    ticket.ID,
			ExternalKey: ticket.ExternalKey,
			Destination: ticket.Destination,
			Price:       ticket.Price,
		},
	})
	return ticket, nil
}

// Get returns a single ticket by id. Any caller may read any ticket; this
// backs the unauthenticated detail display.
func (s *TicketService) Get(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket")
		}
		return nil, err
	}
	return ticket, nil
}

// ListForUser returns the caller's tickets.
func (s *TicketService) ListForUser(ctx context.Context, user *domain.User) ([]domain.Ticket, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return s.tickets.ListByUser(ctx, user.ID)
}

// ListAll returns every ticket with an owner summary.
func (s *TicketService) ListAll(ctx context.Context) ([]domain.TicketWithOwner, error) {
	return s.tickets.ListAllWithOwner(ctx)
}

// Delete removes the caller's ticket. A ticket that does not exist and a
// ticket owned by someone else fail identically.
func (s *TicketService) Delete(ctx context.Context, id int64, user *domain.User) error {
	if user == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := s.tickets.DeleteOwned(ctx, id, user.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("ticket")
		}
		return err
	}
	s.publish(ctx, events.Event{
		Type:    events.EventTicketDeleted,
		UserID:  &user.ID,
		Payload: events.TicketDeletedPayload{TicketID: id},
	})
	return nil
}

// RenderQR renders the scannable code for a ticket owned by requester. The
// payload is the ticket locator URL; encoding parameters are fixed, so the
// same ticket always yields byte-identical images.
func (s *TicketService) RenderQR(ctx context.Context, ticketID int64, requester *domain.User) ([]byte, error) {
	if requester == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	ticket, err := s.tickets.GetOwned(ctx, ticketID, requester.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket")
		}
		return nil, err
	}
	return s.encoder.EncodePNG(s.ticketURL(ticket.ID))
}

// RenderDemoQR renders a fixed demonstration payload with no store lookup.
func (s *TicketService) RenderDemoQR() ([]byte, error) {
	return s.encoder.EncodePNG(s.baseURL + "/tickets/demo")
}

func (s *TicketService) ticketURL(id int64) string {
	return fmt.Sprintf("%s/tickets/%d", s.baseURL, id)
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
