package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"divinedetail/models"
)

// Redis key layout for the draft store.
const (
	sessionKeyPrefix = "divinedetail:session:"
	bookingListKey   = "divinedetail:bookings"
)

// DraftStore holds in-progress wizard sessions and the ordered list of
// finalized demo-path bookings. Injected rather than reached as ambient
// state so the wizard can be tested against an in-memory implementation.
type DraftStore interface {
	SaveSession(ctx context.Context, s *models.BookingSession) error
	GetSession(ctx context.Context, id string) (*models.BookingSession, error)
	DeleteSession(ctx context.Context, id string) error
	AppendBooking(ctx context.Context, b models.Booking) error
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

// RedisDraftStore is the production DraftStore, caching sessions as JSON
// blobs with a TTL and appending finalized bookings to a single list.
type RedisDraftStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisDraftStore constructs a draft store with a 30 minute session TTL.
func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{Client: client, TTL: 30 * time.Minute}
}

func (s *RedisDraftStore) SaveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, sessionKeyPrefix+session.ID, data, s.TTL).Err()
}

func (s *RedisDraftStore) GetSession(ctx context.Context, id string) (*models.BookingSession, error) {
	data, err := s.Client.Get(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisDraftStore) DeleteSession(ctx context.Context, id string) error {
	return s.Client.Del(ctx, sessionKeyPrefix+id).Err()
}

func (s *RedisDraftStore) AppendBooking(ctx context.Context, b models.Booking) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.Client.RPush(ctx, bookingListKey, data).Err()
}

// ListBookings returns the finalized bookings in submission order. Entries
// that fail to parse are skipped rather than failing the whole read, so a
// corrupted record degrades to an empty slot instead of a crash.
func (s *RedisDraftStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	raw, err := s.Client.LRange(ctx, bookingListKey, 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	bookings := make([]models.Booking, 0, len(raw))
	for _, item := range raw {
		var b models.Booking
		if err := json.Unmarshal([]byte(item), &b); err != nil {
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// DraftCalendar exposes the demo-path finalized bookings to the availability
// engine so they occupy calendar capacity alongside persisted bookings.
type DraftCalendar struct {
	Store DraftStore
}

func (d DraftCalendar) CountByDateRange(ctx context.Context, from, to string) (map[string]int, error) {
	bookings, err := d.Store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, b := range bookings {
		if b.PreferredDate >= from && b.PreferredDate <= to {
			counts[b.PreferredDate]++
		}
	}
	return counts, nil
}

func (d DraftCalendar) TimesByDate(ctx context.Context, date string) ([]string, error) {
	bookings, err := d.Store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	var times []string
	for _, b := range bookings {
		if b.PreferredDate == date {
			times = append(times, b.PreferredTime)
		}
	}
	return times, nil
}
