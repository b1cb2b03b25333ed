package booking

import (
	"context"

	"go.uber.org/zap"

	bookingRepo "divinedetail/database/repository/booking"
	"divinedetail/models"
	"divinedetail/services/notification"
)

// ReminderScheduler queues an appointment reminder for a confirmed booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, b models.Booking) error
}

// ConfirmationService reconciles verified payment-completion events into
// booking state and triggers the notification emails.
type ConfirmationService struct {
	Repo      bookingRepo.BookingRepository
	Notifier  notification.NotificationService
	Scheduler ReminderScheduler
	Logger    *zap.Logger
}

// HandleCheckoutCompleted transitions the correlated booking to
// paid/confirmed and sends the customer confirmation plus the internal
// new-booking alert. The transition is idempotent: a replayed event matches
// nothing and sends nothing.
func (s *ConfirmationService) HandleCheckoutCompleted(ctx context.Context, bookingID, paymentRef string) error {
	booking, transitioned, err := s.Repo.MarkPaid(ctx, bookingID, paymentRef)
	if err != nil {
		return err
	}
	if !transitioned {
		s.Logger.Info("booking already confirmed, skipping notifications",
			zap.String("bookingID", bookingID))
		return nil
	}

	s.Logger.Info("booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("paymentRef", paymentRef))

	// Email failures don't fail the webhook; the payment already settled.
	if err := s.Notifier.SendBookingConfirmation(ctx, *booking); err != nil {
		s.Logger.Error("failed to send customer confirmation", zap.String("bookingID", booking.ID), zap.Error(err))
	}
	if err := s.Notifier.SendNewBookingAlert(ctx, *booking); err != nil {
		s.Logger.Error("failed to send internal booking alert", zap.String("bookingID", booking.ID), zap.Error(err))
	}

	if s.Scheduler != nil {
		if err := s.Scheduler.ScheduleReminder(ctx, *booking); err != nil {
			s.Logger.Error("failed to schedule reminder", zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	return nil
}
