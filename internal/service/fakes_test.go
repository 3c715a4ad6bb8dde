package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/metro-service/internal/domain"
	"github.com/spec-kit/metro-service/internal/events"
	"github.com/spec-kit/metro-service/internal/repository"
)

// In-memory repository fakes. They reproduce the store contract the services
// rely on: owner-scoped reads and deletes return pgx.ErrNoRows both for rows
// that do not exist and rows owned by someone else.

type fakeTicketRepo struct {
	mu      sync.Mutex
	nextID  int64
	tickets map[int64]*domain.Ticket
	owners  map[int64]*domain.User
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[int64]*domain.Ticket), owners: make(map[int64]*domain.User)}
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.tickets {
		if existing.ExternalKey == ticket.ExternalKey {
			return pgx.ErrTooManyRows // unique violation stand-in, never expected
		}
	}
	f.nextID++
	ticket.ID = f.nextID
	clone := *ticket
	f.tickets[ticket.ID] = &clone
	return nil
}

func (f *fakeTicketRepo) GetByID(_ context.Context, id int64) (*domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ticket, ok := f.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *ticket
	return &clone, nil
}

func (f *fakeTicketRepo) GetOwned(_ context.Context, id, userID int64) (*domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ticket, ok := f.tickets[id]
	if !ok || ticket.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	clone := *ticket
	return &clone, nil
}

func (f *fakeTicketRepo) ListByUser(_ context.Context, userID int64) ([]domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Ticket
	for _, ticket := range f.tickets {
		if ticket.UserID == userID {
			out = append(out, *ticket)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) ListAllWithOwner(_ context.Context) ([]domain.TicketWithOwner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.TicketWithOwner
	for _, ticket := range f.tickets {
		entry := domain.TicketWithOwner{Ticket: *ticket}
		if owner, ok := f.owners[ticket.UserID]; ok {
			entry.OwnerName = owner.Name
			entry.OwnerEmail = owner.Email
		}
		out = append(out, entry)
	}
	return out, nil
}

func (f *fakeTicketRepo) DeleteOwned(_ context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ticket, ok := f.tickets[id]
	if !ok || ticket.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(f.tickets, id)
	return nil
}

func (f *fakeTicketRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickets)
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	user.ID = f.nextID
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) SetAdminFlags(_ context.Context, id int64, admin bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.IsAdmin = admin
	user.IsStaff = admin
	user.IsSuperuser = admin
	return nil
}

type fakeJourneyRepo struct {
	mu       sync.Mutex
	nextID   int64
	journeys map[int64]*domain.Journey
}

func newFakeJourneyRepo() *fakeJourneyRepo {
	return &fakeJourneyRepo{journeys: make(map[int64]*domain.Journey)}
}

func (f *fakeJourneyRepo) Create(_ context.Context, journey *domain.Journey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	journey.ID = f.nextID
	clone := *journey
	f.journeys[journey.ID] = &clone
	return nil
}

func (f *fakeJourneyRepo) GetOwned(_ context.Context, id, userID int64) (*domain.Journey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	journey, ok := f.journeys[id]
	if !ok || journey.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	clone := *journey
	return &clone, nil
}

func (f *fakeJourneyRepo) ListByUser(_ context.Context, userID int64) ([]domain.Journey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Journey
	for _, journey := range f.journeys {
		if journey.UserID == userID {
			out = append(out, *journey)
		}
	}
	return out, nil
}

func (f *fakeJourneyRepo) UpdateOwned(_ context.Context, journey *domain.Journey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.journeys[journey.ID]
	if !ok || existing.UserID != journey.UserID {
		return pgx.ErrNoRows
	}
	clone := *journey
	f.journeys[journey.ID] = &clone
	return nil
}

func (f *fakeJourneyRepo) DeleteOwned(_ context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	journey, ok := f.journeys[id]
	if !ok || journey.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(f.journeys, id)
	return nil
}

func (f *fakeJourneyRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.journeys)), nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	nextID   int64
	payments map[int64]*domain.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[int64]*domain.Payment)}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	payment.ID = f.nextID
	clone := *payment
	f.payments[payment.ID] = &clone
	return nil
}

func (f *fakePaymentRepo) GetOwned(_ context.Context, id, userID int64) (*domain.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[id]
	if !ok || payment.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	clone := *payment
	return &clone, nil
}

func (f *fakePaymentRepo) ListByUser(_ context.Context, userID int64) ([]domain.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Payment
	for _, payment := range f.payments {
		if payment.UserID == userID {
			out = append(out, *payment)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) UpdateOwned(_ context.Context, payment *domain.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.payments[payment.ID]
	if !ok || existing.UserID != payment.UserID {
		return pgx.ErrNoRows
	}
	clone := *payment
	f.payments[payment.ID] = &clone
	return nil
}

func (f *fakePaymentRepo) DeleteOwned(_ context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[id]
	if !ok || payment.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(f.payments, id)
	return nil
}

func (f *fakePaymentRepo) TotalAmount(_ context.Context) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total float64
	for _, payment := range f.payments {
		total += payment.Amount
	}
	return total, nil
}

func (f *fakePaymentRepo) RevenueByYear(_ context.Context) ([]repository.YearRevenue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	byYear := make(map[int]float64)
	for _, payment := range f.payments {
		byYear[payment.CreatedAt.Year()] += payment.Amount
	}
	var out []repository.YearRevenue
	for year, total := range byYear {
		out = append(out, repository.YearRevenue{Year: year, Total: total})
	}
	return out, nil
}

type fakeFeedbackRepo struct {
	mu      sync.Mutex
	nextID  int64
	entries []domain.Feedback
}

func (f *fakeFeedbackRepo) Create(_ context.Context, feedback *domain.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	feedback.ID = f.nextID
	f.entries = append(f.entries, *feedback)
	return nil
}

func (f *fakeFeedbackRepo) List(_ context.Context) ([]domain.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Feedback{}, f.entries...), nil
}

func (f *fakeFeedbackRepo) DeleteOwned(_ context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, entry := range f.entries {
		if entry.ID == id && entry.UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeComplaintRepo struct {
	mu         sync.Mutex
	nextID     int64
	complaints map[int64]*domain.Complaint
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: make(map[int64]*domain.Complaint)}
}

func (f *fakeComplaintRepo) Create(_ context.Context, complaint *domain.Complaint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	complaint.ID = f.nextID
	clone := *complaint
	f.complaints[complaint.ID] = &clone
	return nil
}

func (f *fakeComplaintRepo) GetOwned(_ context.Context, id, userID int64) (*domain.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	complaint, ok := f.complaints[id]
	if !ok || complaint.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	clone := *complaint
	return &clone, nil
}

func (f *fakeComplaintRepo) ListByUser(_ context.Context, userID int64) ([]domain.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Complaint
	for _, complaint := range f.complaints {
		if complaint.UserID == userID {
			out = append(out, *complaint)
		}
	}
	return out, nil
}

func (f *fakeComplaintRepo) SetStatusOwned(_ context.Context, id, userID int64, status domain.ComplaintStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	complaint, ok := f.complaints[id]
	if !ok || complaint.UserID != userID {
		return pgx.ErrNoRows
	}
	complaint.Status = status
	return nil
}

func (f *fakeComplaintRepo) DeleteOwned(_ context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	complaint, ok := f.complaints[id]
	if !ok || complaint.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(f.complaints, id)
	return nil
}

type fakeQuizRepo struct {
	mu      sync.Mutex
	nextID  int64
	results []domain.QuizResult
}

func (f *fakeQuizRepo) Create(_ context.Context, result *domain.QuizResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	result.ID = f.nextID
	f.results = append(f.results, *result)
	return nil
}

func (f *fakeQuizRepo) ListByUser(_ context.Context, userID int64) ([]domain.QuizResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.QuizResult
	for _, result := range f.results {
		if result.UserID == userID {
			out = append(out, result)
		}
	}
	return out, nil
}

type fakeLostItemRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*domain.LostItem
}

func newFakeLostItemRepo() *fakeLostItemRepo {
	return &fakeLostItemRepo{items: make(map[int64]*domain.LostItem)}
}

func (f *fakeLostItemRepo) Create(_ context.Context, item *domain.LostItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	item.ID = f.nextID
	clone := *item
	f.items[item.ID] = &clone
	return nil
}

func (f *fakeLostItemRepo) GetByID(_ context.Context, id int64) (*domain.LostItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *item
	return &clone, nil
}

func (f *fakeLostItemRepo) List(_ context.Context) ([]domain.LostItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.LostItem
	for _, item := range f.items {
		out = append(out, *item)
	}
	return out, nil
}

func (f *fakeLostItemRepo) UpdateStatus(_ context.Context, id int64, status domain.LostItemStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return pgx.ErrNoRows
	}
	item.Status = status
	return nil
}

func (f *fakeLostItemRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.items, id)
	return nil
}

type fakeLostReportRepo struct {
	mu      sync.Mutex
	nextID  int64
	reports map[int64]*domain.LostReport
}

func newFakeLostReportRepo() *fakeLostReportRepo {
	return &fakeLostReportRepo{reports: make(map[int64]*domain.LostReport)}
}

func (f *fakeLostReportRepo) Create(_ context.Context, report *domain.LostReport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	report.ID = f.nextID
	clone := *report
	f.reports[report.ID] = &clone
	return nil
}

func (f *fakeLostReportRepo) GetOwned(_ context.Context, id, userID int64) (*domain.LostReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	report, ok := f.reports[id]
	if !ok || report.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	clone := *report
	return &clone, nil
}

func (f *fakeLostReportRepo) ListByUser(_ context.Context, userID int64) ([]domain.LostReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.LostReport
	for _, report := range f.reports {
		if report.UserID == userID {
			out = append(out, *report)
		}
	}
	return out, nil
}

func (f *fakeLostReportRepo) DeleteOwned(_ context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	report, ok := f.reports[id]
	if !ok || report.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(f.reports, id)
	return nil
}

type fakeMedicalRepo struct {
	mu        sync.Mutex
	nextID    int64
	helps     map[int64]*domain.MedicalHelp
	solutions []domain.MedicalHelpSolution
}

func newFakeMedicalRepo() *fakeMedicalRepo {
	return &fakeMedicalRepo{helps: make(map[int64]*domain.MedicalHelp)}
}

func (f *fakeMedicalRepo) Create(_ context.Context, help *domain.MedicalHelp) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	help.ID = f.nextID
	clone := *help
	f.helps[help.ID] = &clone
	return nil
}

func (f *fakeMedicalRepo) GetByID(_ context.Context, id int64) (*domain.MedicalHelp, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	help, ok := f.helps[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *help
	return &clone, nil
}

func (f *fakeMedicalRepo) List(_ context.Context) ([]domain.MedicalHelp, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.MedicalHelp
	for _, help := range f.helps {
		out = append(out, *help)
	}
	return out, nil
}

func (f *fakeMedicalRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.helps[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.helps, id)
	return nil
}

func (f *fakeMedicalRepo) AddSolution(_ context.Context, solution *domain.MedicalHelpSolution) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	solution.ID = f.nextID
	f.solutions = append(f.solutions, *solution)
	return nil
}

func (f *fakeMedicalRepo) ListSolutions(_ context.Context, medicalHelpID int64) ([]domain.MedicalHelpSolution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.MedicalHelpSolution
	for _, solution := range f.solutions {
		if solution.MedicalHelpID == medicalHelpID {
			out = append(out, solution)
		}
	}
	return out, nil
}

type fakeAlertRepo struct {
	mu     sync.Mutex
	nextID int64
	alerts map[int64]*domain.ServiceAlert
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{alerts: make(map[int64]*domain.ServiceAlert)}
}

func (f *fakeAlertRepo) Create(_ context.Context, alert *domain.ServiceAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	alert.ID = f.nextID
	clone := *alert
	f.alerts[alert.ID] = &clone
	return nil
}

func (f *fakeAlertRepo) GetByID(_ context.Context, id int64) (*domain.ServiceAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	alert, ok := f.alerts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *alert
	return &clone, nil
}

func (f *fakeAlertRepo) List(_ context.Context) ([]domain.ServiceAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ServiceAlert
	for _, alert := range f.alerts {
		out = append(out, *alert)
	}
	return out, nil
}

func (f *fakeAlertRepo) ListActive(_ context.Context) ([]domain.ServiceAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ServiceAlert
	for _, alert := range f.alerts {
		if alert.IsActive {
			out = append(out, *alert)
		}
	}
	return out, nil
}

func (f *fakeAlertRepo) Update(_ context.Context, alert *domain.ServiceAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.alerts[alert.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *alert
	f.alerts[alert.ID] = &clone
	return nil
}

func (f *fakeAlertRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.alerts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.alerts, id)
	return nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) captured() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}
