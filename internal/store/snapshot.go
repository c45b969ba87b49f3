package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/insightsnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) SaveIfAbsent(ctx context.Context, sessionID, insightType string, payload json.RawMessage) (bool, error) {
	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		return false, fmt.Errorf("decode insight payload: %w", err)
	}

	_, err := r.client.InsightSnapshot.Create().
		SetSessionID(sessionID).
		SetInsightType(insightType).
		SetPayload(data).
		Save(ctx)
	if err != nil {
		// Unique (session_id, insight_type) index: a concurrent or prior
		// write already holds the slot, which is the first-write-wins
		// contract working as intended.
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("save insight snapshot: %w", err)
	}
	return true, nil
}

func (r *snapshotRepo) Get(ctx context.Context, sessionID, insightType string) (json.RawMessage, error) {
	snap, err := r.client.InsightSnapshot.Query().
		Where(
			insightsnapshot.SessionID(sessionID),
			insightsnapshot.InsightType(insightType),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query insight snapshot: %w", err)
	}

	payload, err := json.Marshal(snap.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode insight payload: %w", err)
	}
	return payload, nil
}
