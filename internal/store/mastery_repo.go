package store

import (
	"context"
	"fmt"

	"github.com/pathprep/pathprep/ent"
	"github.com/pathprep/pathprep/ent/masteryrecord"
	"github.com/pathprep/pathprep/internal/mastery"
)

// masteryRepo implements mastery.Repo using the ent client.
type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, learnerID, conceptID string) (*mastery.MasteryRecord, error) {
	row, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.LearnerID(learnerID),
			masteryrecord.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query mastery record: %w", err)
	}
	return entToRecord(row), nil
}

func (r *masteryRepo) ForLearner(ctx context.Context, learnerID string) ([]*mastery.MasteryRecord, error) {
	rows, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.LearnerID(learnerID)).
		Order(ent.Asc(masteryrecord.FieldConceptID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query learner records: %w", err)
	}
	recs := make([]*mastery.MasteryRecord, len(rows))
	for i, row := range rows {
		recs[i] = entToRecord(row)
	}
	return recs, nil
}

// Upsert writes the record in a single INSERT ... ON CONFLICT statement
// keyed on (learner_id, concept_id).
func (r *masteryRepo) Upsert(ctx context.Context, rec *mastery.MasteryRecord) error {
	err := r.client.MasteryRecord.Create().
		SetLearnerID(rec.LearnerID).
		SetConceptID(rec.ConceptID).
		SetExposures(rec.Exposures).
		SetSuccesses(rec.Successes).
		SetFailures(rec.Failures).
		SetMastery(rec.Score).
		SetStatus(string(rec.Status)).
		SetNillableLastPracticedAt(rec.LastPracticedAt).
		SetNillableNextReviewAt(rec.NextReviewAt).
		OnConflictColumns(masteryrecord.FieldLearnerID, masteryrecord.FieldConceptID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert mastery record: %w", err)
	}
	return nil
}

// entToRecord converts an ent row to a domain record.
func entToRecord(row *ent.MasteryRecord) *mastery.MasteryRecord {
	return &mastery.MasteryRecord{
		LearnerID:       row.LearnerID,
		ConceptID:       row.ConceptID,
		Exposures:       row.Exposures,
		Successes:       row.Successes,
		Failures:        row.Failures,
		Score:           row.Mastery,
		Status:          mastery.Status(row.Status),
		LastPracticedAt: row.LastPracticedAt,
		NextReviewAt:    row.NextReviewAt,
	}
}
