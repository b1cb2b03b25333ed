package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"divinedetail/models"
)

func strPtr(s string) *string { return &s }

func testSessionService(store DraftStore) *SessionService {
	noDelay := time.Duration(0)
	return &SessionService{
		Store:       store,
		Engine:      testEngine(nil, nil),
		Logger:      zap.NewNop(),
		SubmitDelay: &noDelay,
	}
}

// fillSession drives a session through all data-entry steps.
func fillSession(t *testing.T, svc *SessionService, id string) {
	t.Helper()
	_, err := svc.Update(context.Background(), id, models.DraftPatch{
		ServiceID:      strPtr("supreme"),
		VehicleDetails: strPtr("2021 Honda Accord, Black"),
		ServiceAddress: strPtr("123 Ocean Ave, West Palm Beach"),
		PreferredDate:  strPtr("2026-08-20"),
		PreferredTime:  strPtr("9:00 AM"),
		CustomerName:   strPtr("Jordan Miles"),
		CustomerEmail:  strPtr("jordan@example.com"),
		CustomerPhone:  strPtr("561-555-0143"),
	})
	require.NoError(t, err)
}

func TestStartSession(t *testing.T) {
	store := newMemoryDraftStore()
	svc := testSessionService(store)

	session, err := svc.Start(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, models.StepService, session.Step)
	assert.Equal(t, models.VehicleMidSize, session.Draft.VehicleType)
	assert.Empty(t, session.Draft.ServiceID)
}

func TestStartSessionPreselectsService(t *testing.T) {
	store := newMemoryDraftStore()
	svc := testSessionService(store)

	session, err := svc.Start(context.Background(), "Exterior Only")
	require.NoError(t, err)
	assert.Equal(t, "exterior-only", session.Draft.ServiceID)

	// Unmatched param starts blank rather than failing.
	session, err = svc.Start(context.Background(), "no-such-package")
	require.NoError(t, err)
	assert.Empty(t, session.Draft.ServiceID)
}

func TestGetUnknownSession(t *testing.T) {
	svc := testSessionService(newMemoryDraftStore())
	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdateValidatesPatch(t *testing.T) {
	store := newMemoryDraftStore()
	svc := testSessionService(store)
	session, err := svc.Start(context.Background(), "")
	require.NoError(t, err)

	bad := models.VehicleType("motorcycle")
	_, err = svc.Update(context.Background(), session.ID, models.DraftPatch{VehicleType: &bad})
	assert.ErrorIs(t, err, ErrInvalidVehicleType)

	_, err = svc.Update(context.Background(), session.ID, models.DraftPatch{ServiceID: strPtr("unknown")})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestAdvanceGatedByStepCompleteness(t *testing.T) {
	store := newMemoryDraftStore()
	svc := testSessionService(store)
	ctx := context.Background()

	session, err := svc.Start(ctx, "")
	require.NoError(t, err)

	// Step 0 incomplete: no service chosen.
	_, err = svc.Advance(ctx, session.ID)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, models.StepService, stepErr.Step)
	assert.Contains(t, stepErr.Missing, "serviceId")

	_, err = svc.Update(ctx, session.ID, models.DraftPatch{ServiceID: strPtr("supreme")})
	require.NoError(t, err)
	session, err = svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepVehicle, session.Step)

	// Step 1 needs vehicle details and address.
	_, err = svc.Advance(ctx, session.ID)
	require.ErrorAs(t, err, &stepErr)
	assert.ElementsMatch(t, []string{"vehicleDetails", "serviceAddress"}, stepErr.Missing)
}

func TestAdvanceThroughAllSteps(t *testing.T) {
	store := newMemoryDraftStore()
	svc := testSessionService(store)
	ctx := context.Background()

	session, err := svc.Start(ctx, "")
	require.NoError(t, err)
	fillSession(t, svc, session.ID)

	for want := models.StepVehicle; want <= models.StepPayment; want++ {
		session, err = svc.Advance(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, want, session.Step)
	}

	// Terminal step stays put.
	session, err = svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepPayment, session.Step)
}

func TestAdvanceRejectsBookedSlot(t *testing.T) {
	store := newMemoryDraftStore()
	cal := stubCalendar{Times: map[string][]string{"2026-08-20": {"9:00 AM"}}}
	svc := testSessionService(store)
	svc.Engine = testEngine([]CalendarSource{cal}, nil)
	ctx := context.Background()

	session, err := svc.Start(ctx, "")
	require.NoError(t, err)
	fillSession(t, svc, session.ID)

	_, err = svc.Advance(ctx, session.ID) // step 0 -> 1
	require.NoError(t, err)
	_, err = svc.Advance(ctx, session.ID) // step 1 -> 2
	require.NoError(t, err)

	_, err = svc.Advance(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestBackKeepsData(t *testing.T) {
	store := newMemoryDraftStore()
	svc := testSessionService(store)
	ctx := context.Background()

	session, err := svc.Start(ctx, "")
	require.NoError(t, err)
	fillSession(t, svc, session.ID)

	_, err = svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	session, err = svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDateTime, session.Step)

	session, err = svc.Back(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepVehicle, session.Step)
	assert.Equal(t, "supreme", session.Draft.ServiceID)
	assert.Equal(t, "2021 Honda Accord, Black", session.Draft.VehicleDetails)

	// Back at the first step is a no-op.
	session, err = svc.Back(ctx, session.ID)
	require.NoError(t, err)
	session, err = svc.Back(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepService, session.Step)
}

func TestSubmit(t *testing.T) {
	store := newMemoryDraftStore()
	svc := testSessionService(store)
	ctx := context.Background()

	session, err := svc.Start(ctx, "")
	require.NoError(t, err)
	fillSession(t, svc, session.ID)
	_, err = svc.Update(ctx, session.ID, models.DraftPatch{
		AddOns:   &[]models.AddOnSelection{{ID: "shampoo-seat", Quantity: 3}},
		GateCode: strPtr("4471"),
	})
	require.NoError(t, err)

	vehicleFull := models.VehicleFullSize
	_, err = svc.Update(ctx, session.ID, models.DraftPatch{VehicleType: &vehicleFull})
	require.NoError(t, err)

	record, err := svc.Submit(ctx, session.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, int64(32000), record.TotalPriceCents)
	assert.Equal(t, models.BookingStatusConfirmed, record.BookingStatus)
	assert.Equal(t, models.PaymentStatusPaid, record.PaymentStatus)
	assert.Equal(t, "Gate Code: 4471", record.SpecialInstructions)
	assert.False(t, record.CreatedAt.IsZero())

	// The record landed on the finalized list and the session is gone.
	require.Len(t, store.bookings, 1)
	_, err = svc.Get(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubmitIncompleteSession(t *testing.T) {
	store := newMemoryDraftStore()
	svc := testSessionService(store)
	ctx := context.Background()

	session, err := svc.Start(ctx, "")
	require.NoError(t, err)
	_, err = svc.Update(ctx, session.ID, models.DraftPatch{ServiceID: strPtr("supreme")})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session.ID)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Empty(t, store.bookings)
}

func TestLatest(t *testing.T) {
	store := newMemoryDraftStore()
	svc := testSessionService(store)
	ctx := context.Background()

	_, err := svc.Latest(ctx)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	store.bookings = append(store.bookings,
		models.Booking{ID: "first"},
		models.Booking{ID: "second"},
	)
	latest, err := svc.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", latest.ID)
}

func TestJoinInstructions(t *testing.T) {
	assert.Equal(t, "Gate Code: 1234 | Notes: beware of dog", joinInstructions("1234", "beware of dog"))
	assert.Equal(t, "Gate Code: 1234", joinInstructions("1234", ""))
	assert.Equal(t, "Notes: park in back", joinInstructions("", "park in back"))
	assert.Empty(t, joinInstructions("", ""))
}
