package booking

import (
	"context"
	"errors"

	bookingRepo "divinedetail/database/repository/booking"
	"divinedetail/models"
)

// memoryDraftStore implements DraftStore for testing.
type memoryDraftStore struct {
	sessions map[string]models.BookingSession
	bookings []models.Booking

	SaveErr   error
	AppendErr error
}

func newMemoryDraftStore() *memoryDraftStore {
	return &memoryDraftStore{sessions: make(map[string]models.BookingSession)}
}

func (m *memoryDraftStore) SaveSession(_ context.Context, s *models.BookingSession) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.sessions[s.ID] = *s
	return nil
}

func (m *memoryDraftStore) GetSession(_ context.Context, id string) (*models.BookingSession, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := s
	return &copied, nil
}

func (m *memoryDraftStore) DeleteSession(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func (m *memoryDraftStore) AppendBooking(_ context.Context, b models.Booking) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.bookings = append(m.bookings, b)
	return nil
}

func (m *memoryDraftStore) ListBookings(_ context.Context) ([]models.Booking, error) {
	return m.bookings, nil
}

// stubCalendar implements CalendarSource with fixed data.
type stubCalendar struct {
	Counts map[string]int
	Times  map[string][]string
	Err    error
}

func (s stubCalendar) CountByDateRange(_ context.Context, from, to string) (map[string]int, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make(map[string]int)
	for date, n := range s.Counts {
		if date >= from && date <= to {
			out[date] = n
		}
	}
	return out, nil
}

func (s stubCalendar) TimesByDate(_ context.Context, date string) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Times[date], nil
}

// stubBlocked implements BlockedSource with a fixed date set.
type stubBlocked struct {
	Dates []string
}

func (s stubBlocked) ListDates(_ context.Context, from, to string) ([]string, error) {
	var out []string
	for _, d := range s.Dates {
		if d >= from && d <= to {
			out = append(out, d)
		}
	}
	return out, nil
}

// mockBookingRepo implements bookingRepo.BookingRepository for testing.
type mockBookingRepo struct {
	Inserted  []models.Booking
	InsertErr error

	Bookings map[string]models.Booking

	MarkPaidCalls  int
	MarkPaidErr    error
	LastPaymentRef string
}

func (m *mockBookingRepo) EnsureIndexes() error { return nil }

func (m *mockBookingRepo) Insert(_ context.Context, b *models.Booking) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.Inserted = append(m.Inserted, *b)
	return nil
}

func (m *mockBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := m.Bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := b
	return &copied, nil
}

func (m *mockBookingRepo) MarkPaid(_ context.Context, id, paymentRef string) (*models.Booking, bool, error) {
	m.MarkPaidCalls++
	m.LastPaymentRef = paymentRef
	if m.MarkPaidErr != nil {
		return nil, false, m.MarkPaidErr
	}
	b, ok := m.Bookings[id]
	if !ok {
		return nil, false, bookingRepo.ErrNotFound
	}
	if b.PaymentStatus != models.PaymentStatusPending {
		copied := b
		return &copied, false, nil
	}
	b.PaymentStatus = models.PaymentStatusPaid
	b.BookingStatus = models.BookingStatusConfirmed
	b.StripePaymentID = paymentRef
	m.Bookings[id] = b
	copied := b
	return &copied, true, nil
}

func (m *mockBookingRepo) CountByDateRange(_ context.Context, from, to string) (map[string]int, error) {
	counts := make(map[string]int)
	for _, b := range m.Bookings {
		if b.PreferredDate >= from && b.PreferredDate <= to {
			counts[b.PreferredDate]++
		}
	}
	return counts, nil
}

func (m *mockBookingRepo) TimesByDate(_ context.Context, date string) ([]string, error) {
	var times []string
	for _, b := range m.Bookings {
		if b.PreferredDate == date {
			times = append(times, b.PreferredTime)
		}
	}
	return times, nil
}

// mockGateway implements PaymentGateway for testing.
type mockGateway struct {
	URL   string
	Err   error
	Calls int
	Last  models.Booking
}

func (m *mockGateway) CreateCheckoutSession(_ context.Context, b models.Booking, _ string) (string, error) {
	m.Calls++
	m.Last = b
	if m.Err != nil {
		return "", m.Err
	}
	return m.URL, nil
}

// mockNotifier records sent emails.
type mockNotifier struct {
	Confirmations []models.Booking
	Alerts        []models.Booking
	Reminders     []models.Booking
	SendErr       error
}

func (m *mockNotifier) SendBookingConfirmation(_ context.Context, b models.Booking) error {
	m.Confirmations = append(m.Confirmations, b)
	return m.SendErr
}

func (m *mockNotifier) SendNewBookingAlert(_ context.Context, b models.Booking) error {
	m.Alerts = append(m.Alerts, b)
	return m.SendErr
}

func (m *mockNotifier) SendAppointmentReminder(_ context.Context, b models.Booking) error {
	m.Reminders = append(m.Reminders, b)
	return m.SendErr
}

// mockScheduler records reminder requests.
type mockScheduler struct {
	Scheduled []models.Booking
	Err       error
}

func (m *mockScheduler) ScheduleReminder(_ context.Context, b models.Booking) error {
	m.Scheduled = append(m.Scheduled, b)
	return m.Err
}

var errStoreDown = errors.New("store down")
