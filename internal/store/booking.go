package store

import (
	"context"
	"fmt"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/bookingrequest"
)

// bookingRepo implements BookingRepo using the ent client.
type bookingRepo struct {
	client *ent.Client
}

func (r *bookingRepo) Save(ctx context.Context, rec BookingRecord) error {
	_, err := r.client.BookingRequest.Create().
		SetSessionID(rec.SessionID).
		SetName(rec.Name).
		SetEmail(rec.Email).
		SetCompany(rec.Company).
		SetPreferredSlot(rec.PreferredSlot).
		SetNotes(rec.Notes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save booking request: %w", err)
	}
	return nil
}

func (r *bookingRepo) List(ctx context.Context, limit int) ([]BookingRecord, error) {
	q := r.client.BookingRequest.Query().Order(ent.Desc(bookingrequest.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	bookings, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list booking requests: %w", err)
	}

	out := make([]BookingRecord, len(bookings))
	for i, b := range bookings {
		out[i] = BookingRecord{
			SessionID:     b.SessionID,
			Name:          b.Name,
			Email:         b.Email,
			Company:       b.Company,
			PreferredSlot: b.PreferredSlot,
			Notes:         b.Notes,
			CreatedAt:     b.CreatedAt,
		}
	}
	return out, nil
}
