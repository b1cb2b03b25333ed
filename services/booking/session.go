package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"divinedetail/catalog"
	"divinedetail/models"
)

// submitDelay is the fixed artificial delay on the demo submission path
// before the confirmation reference is returned.
const submitDelay = 2 * time.Second

// SessionService drives the five-step booking wizard. Sessions live in the
// draft store for the duration of the flow; nothing is durable until Submit.
type SessionService struct {
	Store  DraftStore
	Engine *AvailabilityEngine
	Logger *zap.Logger
	// SubmitDelay overrides the demo-path delay; zero means the default.
	SubmitDelay *time.Duration
}

// Start opens a new wizard session. A non-empty serviceParam pre-selects a
// service when it resolves against the catalog by normalized id or name;
// an unmatched param starts a blank session.
func (s *SessionService) Start(ctx context.Context, serviceParam string) (*models.BookingSession, error) {
	session := &models.BookingSession{
		ID:        uuid.New().String(),
		Step:      models.StepService,
		CreatedAt: time.Now(),
		Draft: models.BookingDraft{
			VehicleType: models.VehicleMidSize,
		},
	}
	if serviceParam != "" {
		if svc, ok := catalog.MatchService(serviceParam); ok {
			session.Draft.ServiceID = svc.ID
		}
	}
	if err := s.Store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get loads an existing session.
func (s *SessionService) Get(ctx context.Context, id string) (*models.BookingSession, error) {
	return s.Store.GetSession(ctx, id)
}

// Update merges a partial draft patch into the session. Nil patch fields
// leave existing values alone, so revisiting earlier steps never clears
// entered data.
func (s *SessionService) Update(ctx context.Context, id string, patch models.DraftPatch) (*models.BookingSession, error) {
	session, err := s.Store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.VehicleType != nil && !patch.VehicleType.Valid() {
		return nil, ErrInvalidVehicleType
	}
	if patch.ServiceID != nil {
		if _, ok := catalog.FindService(*patch.ServiceID); !ok {
			return nil, ErrServiceNotFound
		}
	}

	applyPatch(&session.Draft, patch)
	if err := s.Store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance moves the wizard forward one step, gated by the current step's
// completeness predicate. The terminal step never advances further.
func (s *SessionService) Advance(ctx context.Context, id string) (*models.BookingSession, error) {
	session, err := s.Store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step >= models.StepPayment {
		return session, nil
	}
	if err := s.stepComplete(ctx, session, session.Step); err != nil {
		return nil, err
	}
	session.Step++
	if err := s.Store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves the wizard one step backward. Always permitted; data stays.
func (s *SessionService) Back(ctx context.Context, id string) (*models.BookingSession, error) {
	session, err := s.Store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step > models.StepService {
		session.Step--
		if err := s.Store.SaveSession(ctx, session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// Submit finalizes the demo checkout path: it verifies every step, builds
// the booking record with a generated id and timestamp, appends it to the
// finalized list, and returns the record after the fixed demo delay. No
// payment round trip happens on this path.
func (s *SessionService) Submit(ctx context.Context, id string) (*models.Booking, error) {
	session, err := s.Store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	for step := models.StepService; step <= models.StepDetails; step++ {
		if err := s.stepComplete(ctx, session, step); err != nil {
			return nil, err
		}
	}

	total, err := Quote(session.Draft.ServiceID, session.Draft.VehicleType, session.Draft.AddOns)
	if err != nil {
		return nil, err
	}

	draft := session.Draft
	record := &models.Booking{
		ID:                  uuid.New().String(),
		CustomerName:        draft.CustomerName,
		CustomerEmail:       draft.CustomerEmail,
		CustomerPhone:       draft.CustomerPhone,
		VehicleType:         draft.VehicleType,
		VehicleDetails:      draft.VehicleDetails,
		ServiceID:           draft.ServiceID,
		AddOns:              catalog.NormalizeSelections(draft.AddOns),
		ServiceAddress:      draft.ServiceAddress,
		PreferredDate:       draft.PreferredDate,
		PreferredTime:       draft.PreferredTime,
		SpecialInstructions: joinInstructions(draft.GateCode, draft.SpecialInstructions),
		TotalPriceCents:     total,
		BookingStatus:       models.BookingStatusConfirmed,
		PaymentStatus:       models.PaymentStatusPaid,
		CreatedAt:           time.Now(),
	}

	if err := s.Store.AppendBooking(ctx, *record); err != nil {
		return nil, err
	}
	if err := s.Store.DeleteSession(ctx, session.ID); err != nil {
		s.Logger.Warn("failed to delete submitted session", zap.String("sessionID", session.ID), zap.Error(err))
	}

	time.Sleep(s.delay())

	s.Logger.Info("demo booking submitted",
		zap.String("bookingID", record.ID),
		zap.String("date", record.PreferredDate),
		zap.String("time", record.PreferredTime))
	return record, nil
}

// Latest returns the most recently finalized booking; the confirmation page
// reads it after the demo submission path.
func (s *SessionService) Latest(ctx context.Context) (*models.Booking, error) {
	bookings, err := s.Store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}
	last := bookings[len(bookings)-1]
	return &last, nil
}

func (s *SessionService) delay() time.Duration {
	if s.SubmitDelay != nil {
		return *s.SubmitDelay
	}
	return submitDelay
}

// stepComplete is the per-step completeness predicate gating forward
// transitions.
func (s *SessionService) stepComplete(ctx context.Context, session *models.BookingSession, step models.BookingStep) error {
	draft := session.Draft
	var missing []string

	switch step {
	case models.StepService:
		if draft.ServiceID == "" {
			missing = append(missing, "serviceId")
		}
	case models.StepVehicle:
		if draft.VehicleDetails == "" {
			missing = append(missing, "vehicleDetails")
		}
		if draft.ServiceAddress == "" {
			missing = append(missing, "serviceAddress")
		}
	case models.StepDateTime:
		if draft.PreferredDate == "" {
			missing = append(missing, "preferredDate")
		}
		if draft.PreferredTime == "" {
			missing = append(missing, "preferredTime")
		}
		if len(missing) == 0 && s.Engine != nil {
			open, err := s.Engine.SlotOpen(ctx, draft.PreferredDate, draft.PreferredTime)
			if err != nil {
				return err
			}
			if !open {
				return ErrSlotTaken
			}
		}
	case models.StepDetails:
		if draft.CustomerName == "" {
			missing = append(missing, "customerName")
		}
		if draft.CustomerEmail == "" {
			missing = append(missing, "customerEmail")
		}
		if draft.CustomerPhone == "" {
			missing = append(missing, "customerPhone")
		}
	case models.StepPayment:
		// Terminal step; Submit performs its own checks.
	}

	if len(missing) > 0 {
		return NewStepError(step, missing...)
	}
	return nil
}

func applyPatch(draft *models.BookingDraft, patch models.DraftPatch) {
	if patch.ServiceID != nil {
		draft.ServiceID = *patch.ServiceID
	}
	if patch.AddOns != nil {
		draft.AddOns = catalog.NormalizeSelections(*patch.AddOns)
	}
	if patch.VehicleType != nil {
		draft.VehicleType = *patch.VehicleType
	}
	if patch.VehicleDetails != nil {
		draft.VehicleDetails = *patch.VehicleDetails
	}
	if patch.ServiceAddress != nil {
		draft.ServiceAddress = *patch.ServiceAddress
	}
	if patch.GateCode != nil {
		draft.GateCode = *patch.GateCode
	}
	if patch.PreferredDate != nil {
		draft.PreferredDate = *patch.PreferredDate
	}
	if patch.PreferredTime != nil {
		draft.PreferredTime = *patch.PreferredTime
	}
	if patch.CustomerName != nil {
		draft.CustomerName = *patch.CustomerName
	}
	if patch.CustomerEmail != nil {
		draft.CustomerEmail = *patch.CustomerEmail
	}
	if patch.CustomerPhone != nil {
		draft.CustomerPhone = *patch.CustomerPhone
	}
	if patch.SpecialInstructions != nil {
		draft.SpecialInstructions = *patch.SpecialInstructions
	}
}

// joinInstructions folds the gate code and free-form notes into the single
// special_instructions field, matching the checkout payload shape.
func joinInstructions(gateCode, notes string) string {
	var parts []string
	if gateCode != "" {
		parts = append(parts, "Gate Code: "+gateCode)
	}
	if notes != "" {
		parts = append(parts, "Notes: "+notes)
	}
	return strings.Join(parts, " | ")
}
