// File: database/repository/seed.go
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	blockedRepo "divinedetail/database/repository/blocked"
	bookingRepo "divinedetail/database/repository/booking"
	"divinedetail/models"
)

// seedBooking is one demo appointment, placed relative to today.
type seedBooking struct {
	id        string
	daysAhead int
	timeOfDay string
}

// SeedDemoData loads the demo calendar: a handful of confirmed bookings and a
// few operator-blocked dates, all placed relative to today so the calendar
// always has realistic contention. Safe to run repeatedly; slot conflicts on
// re-runs are skipped.
func SeedDemoData(ctx context.Context, bookings bookingRepo.BookingRepository, blocked blockedRepo.BlockedRepository, logger *zap.Logger) {
	now := time.Now()
	date := func(daysAhead int) string {
		return now.AddDate(0, 0, daysAhead).Format("2006-01-02")
	}

	seeds := []seedBooking{
		{id: "mock-1", daysAhead: 1, timeOfDay: "9:00 AM"},
		{id: "mock-2", daysAhead: 1, timeOfDay: "2:00 PM"},
		{id: "mock-3", daysAhead: 3, timeOfDay: "11:00 AM"},
		{id: "mock-4", daysAhead: 6, timeOfDay: "4:00 PM"},
		{id: "mock-5", daysAhead: 8, timeOfDay: "8:00 AM"},
		{id: "mock-6", daysAhead: 10, timeOfDay: "1:00 PM"},
		{id: "mock-7", daysAhead: 12, timeOfDay: "5:00 PM"},
	}

	for _, s := range seeds {
		b := &models.Booking{
			ID:              s.id,
			CustomerName:    "Demo Customer",
			CustomerEmail:   "demo@divinedetail.com",
			CustomerPhone:   "561-555-0100",
			VehicleType:     models.VehicleMidSize,
			VehicleDetails:  "Demo vehicle",
			ServiceID:       "supreme",
			ServiceAddress:  "Palm Beach, FL",
			PreferredDate:   date(s.daysAhead),
			PreferredTime:   s.timeOfDay,
			TotalPriceCents: 18000,
			PaymentStatus:   models.PaymentStatusPaid,
			BookingStatus:   models.BookingStatusConfirmed,
			CreatedAt:       now,
		}
		if err := bookings.Insert(ctx, b); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				continue
			}
			logger.Warn("seed: failed to insert demo booking", zap.String("id", s.id), zap.Error(err))
		}
	}

	for _, daysAhead := range []int{2, 5, 9} {
		block := models.BlockedDate{Date: date(daysAhead), Reason: "demo block", CreatedAt: now}
		if err := blocked.Add(ctx, block); err != nil {
			logger.Warn("seed: failed to insert blocked date", zap.String("date", block.Date), zap.Error(err))
		}
	}

	logger.Info("seed: demo calendar data loaded")
}
