package store

import (
	"context"
	"fmt"
	"time"

	"github.com/pathprep/pathprep/ent"
	"github.com/pathprep/pathprep/ent/exposureevent"
	"github.com/pathprep/pathprep/internal/mastery"
)

// ContentEventData captures the data for a single content-generation
// API call event.
type ContentEventData struct {
	Provider     string
	Model        string
	ConceptID    string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo appends domain events, stamping each with the next global
// sequence number. Events are append-only and never mutated.
type EventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// AppendExposure records one exposure attempt. Implements
// mastery.ExposureLog.
func (r *EventRepo) AppendExposure(ctx context.Context, e mastery.Exposure) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ExposureEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(e.LearnerID).
		SetConceptID(e.ConceptID).
		SetSuccess(e.Success).
		SetScoreAfter(e.ScoreAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exposure event: %w", err)
	}
	return nil
}

// AppendContentRequest records a content-generation API call.
func (r *EventRepo) AppendContentRequest(ctx context.Context, data ContentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ContentEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetConceptID(data.ConceptID).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save content event: %w", err)
	}
	return nil
}

// ConceptAccuracy returns the learner's all-time success fraction on a
// concept from the exposure log, or 0 if no exposures are recorded.
func (r *EventRepo) ConceptAccuracy(ctx context.Context, learnerID, conceptID string) (float64, error) {
	events, err := r.client.ExposureEvent.Query().
		Where(
			exposureevent.LearnerID(learnerID),
			exposureevent.ConceptID(conceptID),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query concept accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	succ := 0
	for _, e := range events {
		if e.Success {
			succ++
		}
	}
	return float64(succ) / float64(len(events)), nil
}

// ModelUsage sums token counts per model across all content events.
type ModelUsage struct {
	Requests     int
	InputTokens  int
	OutputTokens int
}

// ContentUsageByModel aggregates content-generation usage for spend
// reporting.
func (r *EventRepo) ContentUsageByModel(ctx context.Context) (map[string]ModelUsage, error) {
	events, err := r.client.ContentEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query content events: %w", err)
	}

	usage := make(map[string]ModelUsage)
	for _, e := range events {
		u := usage[e.Model]
		u.Requests++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		usage[e.Model] = u
	}
	return usage, nil
}

// LatestExposureTime returns the timestamp of the learner's most recent
// exposure to a concept, or the zero time if none exist.
func (r *EventRepo) LatestExposureTime(ctx context.Context, learnerID, conceptID string) (time.Time, error) {
	e, err := r.client.ExposureEvent.Query().
		Where(
			exposureevent.LearnerID(learnerID),
			exposureevent.ConceptID(conceptID),
		).
		Order(ent.Desc(exposureevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest exposure: %w", err)
	}
	return e.Timestamp, nil
}
