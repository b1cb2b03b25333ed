package notification

import (
	"context"

	"divinedetail/models"
)

// NotificationService defines the transactional emails sent around a booking.
type NotificationService interface {
	// SendBookingConfirmation emails the customer once payment settles.
	SendBookingConfirmation(ctx context.Context, b models.Booking) error
	// SendNewBookingAlert emails the internal contact address.
	SendNewBookingAlert(ctx context.Context, b models.Booking) error
	// SendAppointmentReminder emails the customer ahead of the appointment.
	SendAppointmentReminder(ctx context.Context, b models.Booking) error
}
