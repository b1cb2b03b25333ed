package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"divinedetail/catalog"
	"divinedetail/models"
)

// ResendNotificationService sends booking emails through the Resend API.
type ResendNotificationService struct {
	Client       *resend.Client
	From         string
	ContactEmail string
}

// NewResendNotificationService constructs the production email sender.
func NewResendNotificationService(apiKey, from, contactEmail string) *ResendNotificationService {
	return &ResendNotificationService{
		Client:       resend.NewClient(apiKey),
		From:         from,
		ContactEmail: contactEmail,
	}
}

func (s *ResendNotificationService) SendBookingConfirmation(ctx context.Context, b models.Booking) error {
	serviceName := serviceDisplayName(b.ServiceID)
	html := fmt.Sprintf(`
      <h2>Booking Confirmed!</h2>
      <p>Hi %s,</p>
      <p>Your detail is confirmed for <strong>%s</strong> at <strong>%s</strong>.</p>
      <p><strong>Service:</strong> %s</p>
      <p><strong>Vehicle:</strong> %s — %s</p>
      <p><strong>Add-ons:</strong> %s</p>
      <p><strong>Address:</strong> %s</p>
      <p><strong>Total Paid:</strong> %s</p>
      <p>If you need to reschedule, please call us at %s.</p>`,
		b.CustomerName, b.PreferredDate, b.PreferredTime,
		serviceName,
		b.VehicleType, b.VehicleDetails,
		addOnSummaryOrNone(b.AddOns),
		b.ServiceAddress,
		formatDollars(b.TotalPriceCents),
		catalog.Company.PhoneDisplay)

	return s.send(ctx, []string{b.CustomerEmail}, "Your Divine Detail Booking is Confirmed!", html)
}

func (s *ResendNotificationService) SendNewBookingAlert(ctx context.Context, b models.Booking) error {
	serviceName := serviceDisplayName(b.ServiceID)
	subject := fmt.Sprintf("New Booking: %s — %s", serviceName, b.CustomerName)
	instructions := b.SpecialInstructions
	if instructions == "" {
		instructions = "N/A"
	}
	html := fmt.Sprintf(`
      <h2>New Booking Received</h2>
      <p><strong>Customer:</strong> %s</p>
      <p><strong>Email:</strong> %s</p>
      <p><strong>Phone:</strong> %s</p>
      <p><strong>Vehicle:</strong> %s — %s</p>
      <p><strong>Service:</strong> %s</p>
      <p><strong>Add-ons:</strong> %s</p>
      <p><strong>Address:</strong> %s</p>
      <p><strong>Gate Code:</strong> %s</p>
      <p><strong>Date:</strong> %s</p>
      <p><strong>Time:</strong> %s</p>
      <p><strong>Total Paid:</strong> %s</p>`,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.VehicleType, b.VehicleDetails,
		serviceName,
		addOnSummaryOrNone(b.AddOns),
		b.ServiceAddress,
		instructions,
		b.PreferredDate, b.PreferredTime,
		formatDollars(b.TotalPriceCents))

	to := s.ContactEmail
	if to == "" {
		to = catalog.Company.Email
	}
	return s.send(ctx, []string{to}, subject, html)
}

func (s *ResendNotificationService) SendAppointmentReminder(ctx context.Context, b models.Booking) error {
	html := fmt.Sprintf(`
      <h2>See You Tomorrow!</h2>
      <p>Hi %s,</p>
      <p>A reminder that your %s is scheduled for <strong>%s</strong> at <strong>%s</strong>.</p>
      <p><strong>Address:</strong> %s</p>
      <p>Need to reschedule? Call us at %s.</p>`,
		b.CustomerName,
		serviceDisplayName(b.ServiceID),
		b.PreferredDate, b.PreferredTime,
		b.ServiceAddress,
		catalog.Company.PhoneDisplay)

	return s.send(ctx, []string{b.CustomerEmail}, "Reminder: Your Divine Detail Appointment", html)
}

func (s *ResendNotificationService) send(ctx context.Context, to []string, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    s.From,
		To:      to,
		Subject: subject,
		Html:    html,
	}
	if _, err := s.Client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}

func serviceDisplayName(serviceID string) string {
	if svc, ok := catalog.FindService(serviceID); ok {
		return svc.Name
	}
	return serviceID
}

func addOnSummaryOrNone(selections []models.AddOnSelection) string {
	var parts []string
	for _, sel := range selections {
		addOn, ok := catalog.FindAddOn(sel.ID)
		if !ok {
			continue
		}
		if sel.Quantity > 1 {
			parts = append(parts, fmt.Sprintf("%s x%d", addOn.Name, sel.Quantity))
		} else {
			parts = append(parts, addOn.Name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}

func formatDollars(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
