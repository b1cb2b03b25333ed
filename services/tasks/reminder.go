package tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"divinedetail/models"
)

const TypeBookingReminder = "booking:reminder"

// ReminderPayload identifies the booking a reminder task is for.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
}

// NewBookingReminderTask builds a reminder task scheduled for fireAt.
func NewBookingReminderTask(bookingID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ReminderPayload{BookingID: bookingID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// SlotStartFunc resolves a booking's date and slot string to a concrete time.
type SlotStartFunc func(b models.Booking) (time.Time, error)

// AsynqReminderScheduler enqueues reminder tasks a day ahead of the
// appointment.
type AsynqReminderScheduler struct {
	Client    *asynq.Client
	SlotStart SlotStartFunc
	Logger    *zap.Logger
}

// ScheduleReminder queues a reminder for 24 hours before the appointment.
// Appointments starting within the next 24 hours get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, b models.Booking) error {
	start, err := s.SlotStart(b)
	if err != nil {
		return err
	}
	fireAt := start.Add(-24 * time.Hour)
	if fireAt.Before(time.Now()) {
		s.Logger.Debug("appointment too soon for a reminder", zap.String("bookingID", b.ID))
		return nil
	}

	task, opts, err := NewBookingReminderTask(b.ID, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return err
	}
	s.Logger.Info("reminder scheduled",
		zap.String("bookingID", b.ID),
		zap.Time("fireAt", fireAt))
	return nil
}
