package insight

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/llm"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/store"
)

// Service produces leadership insights with a cache-aside lookup: redis
// first, durable snapshot second, LLM generation last. Generation failures
// surface as the canned fallback, never as an error.
type Service struct {
	provider  llm.Provider
	snapshots store.SnapshotRepo
	cache     *Cache
	cfg       Config
}

// NewService creates an insight service. cache may be nil.
func NewService(provider llm.Provider, snapshots store.SnapshotRepo, cache *Cache, cfg Config) *Service {
	return &Service{provider: provider, snapshots: snapshots, cache: cache, cfg: cfg}
}

// Insight returns the leadership insight for a completed session. The first
// successful generation for a session is persisted and every later call
// replays it.
func (s *Service) Insight(ctx context.Context, sessionID string, input Input) Insight {
	if cached := s.cache.Get(ctx, sessionID, TypeLeadership); cached != nil {
		var out Insight
		if err := json.Unmarshal(cached, &out); err == nil {
			return out
		}
	}

	if s.snapshots != nil {
		stored, err := s.snapshots.Get(ctx, sessionID, TypeLeadership)
		if err == nil && stored != nil {
			var out Insight
			if err := json.Unmarshal(stored, &out); err == nil {
				s.cache.Set(ctx, sessionID, TypeLeadership, stored)
				return out
			}
		}
	}

	out, err := s.generate(ctx, input)
	if err != nil {
		return fallbackInsight(input.Tier)
	}

	payload, err := json.Marshal(out)
	if err != nil {
		return out
	}

	if s.snapshots != nil {
		written, err := s.snapshots.SaveIfAbsent(ctx, sessionID, TypeLeadership, payload)
		if err == nil && !written {
			// Lost the race to an earlier write. Replay the stored copy so
			// every caller for this session sees the same insight.
			if stored, err := s.snapshots.Get(ctx, sessionID, TypeLeadership); err == nil && stored != nil {
				var prior Insight
				if err := json.Unmarshal(stored, &prior); err == nil {
					out = prior
					payload = stored
				}
			}
		}
	}

	s.cache.Set(ctx, sessionID, TypeLeadership, payload)
	return out
}

func (s *Service) generate(ctx context.Context, input Input) (Insight, error) {
	ctx = llm.WithPurpose(ctx, "insight")

	req := llm.Request{
		System: insightSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildInsightUserMessage(input)},
		},
		Schema:      InsightSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Insight{}, fmt.Errorf("insight generation: %w", err)
	}

	var out Insight
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Insight{}, fmt.Errorf("parse insight response: %w", err)
	}
	if len(out.Roadmap) != 3 {
		return Insight{}, fmt.Errorf("insight roadmap has %d initiatives, want 3", len(out.Roadmap))
	}

	if !validStage(out.LeadershipStage) {
		out.LeadershipStage = input.Tier.Label
	}
	return sanitize(out), nil
}

func validStage(stage string) bool {
	for _, l := range stageEnum() {
		if stage == l {
			return true
		}
	}
	return false
}
