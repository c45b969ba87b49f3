package store

import (
	"context"
	"fmt"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/lead"
)

// leadRepo implements LeadRepo using the ent client.
type leadRepo struct {
	client *ent.Client
}

func (r *leadRepo) Upsert(ctx context.Context, rec LeadRecord) error {
	existing, err := r.client.Lead.Query().
		Where(lead.SessionID(rec.SessionID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query lead for upsert: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetName(rec.Name).
			SetEmail(rec.Email).
			SetCompany(rec.Company).
			SetRole(rec.Role).
			SetMarketingConsent(rec.MarketingConsent).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update lead: %w", err)
		}
		return nil
	}

	_, err = r.client.Lead.Create().
		SetSessionID(rec.SessionID).
		SetName(rec.Name).
		SetEmail(rec.Email).
		SetCompany(rec.Company).
		SetRole(rec.Role).
		SetMarketingConsent(rec.MarketingConsent).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

func (r *leadRepo) BySession(ctx context.Context, sessionID string) (*LeadRecord, error) {
	l, err := r.client.Lead.Query().
		Where(lead.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query lead: %w", err)
	}
	rec := leadToRecord(l)
	return &rec, nil
}

func (r *leadRepo) List(ctx context.Context, limit int) ([]LeadRecord, error) {
	q := r.client.Lead.Query().Order(ent.Desc(lead.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	leads, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}

	out := make([]LeadRecord, len(leads))
	for i, l := range leads {
		out[i] = leadToRecord(l)
	}
	return out, nil
}

func leadToRecord(l *ent.Lead) LeadRecord {
	return LeadRecord{
		SessionID:        l.SessionID,
		Name:             l.Name,
		Email:            l.Email,
		Company:          l.Company,
		Role:             l.Role,
		MarketingConsent: l.MarketingConsent,
		CreatedAt:        l.CreatedAt,
	}
}
