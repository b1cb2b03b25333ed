// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"divinedetail/models"
)

// activeStatuses are the booking states that occupy calendar capacity.
var activeStatuses = []string{models.BookingStatusNew, models.BookingStatusConfirmed}

func (r *mongoBookingRepo) CountByDateRange(ctx context.Context, from, to string) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"preferred_date": bson.M{"$gte": from, "$lte": to},
			"booking_status": bson.M{"$in": activeStatuses},
		}},
		{"$group": bson.M{
			"_id":   "$preferred_date",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int)
	for cursor.Next(ctx) {
		var row struct {
			Date  string `bson:"_id"`
			Count int    `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Date] = row.Count
	}
	return counts, cursor.Err()
}

func (r *mongoBookingRepo) TimesByDate(ctx context.Context, date string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"preferred_date": date,
		"booking_status": bson.M{"$in": activeStatuses},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var times []string
	for cursor.Next(ctx) {
		var row struct {
			PreferredTime string `bson:"preferred_time"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		times = append(times, row.PreferredTime)
	}
	return times, cursor.Err()
}
