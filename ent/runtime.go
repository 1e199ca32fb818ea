// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/pathprep/pathprep/ent/contentevent"
	"github.com/pathprep/pathprep/ent/exposureevent"
	"github.com/pathprep/pathprep/ent/masteryrecord"
	"github.com/pathprep/pathprep/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contenteventMixin := schema.ContentEvent{}.Mixin()
	contenteventMixinFields0 := contenteventMixin[0].Fields()
	_ = contenteventMixinFields0
	contenteventFields := schema.ContentEvent{}.Fields()
	_ = contenteventFields
	// contenteventDescTimestamp is the schema descriptor for timestamp field.
	contenteventDescTimestamp := contenteventMixinFields0[1].Descriptor()
	// contentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	contentevent.DefaultTimestamp = contenteventDescTimestamp.Default.(func() time.Time)
	// contenteventDescProvider is the schema descriptor for provider field.
	contenteventDescProvider := contenteventFields[0].Descriptor()
	// contentevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	contentevent.ProviderValidator = contenteventDescProvider.Validators[0].(func(string) error)
	// contenteventDescInputTokens is the schema descriptor for input_tokens field.
	contenteventDescInputTokens := contenteventFields[3].Descriptor()
	// contentevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	contentevent.DefaultInputTokens = contenteventDescInputTokens.Default.(int)
	// contenteventDescOutputTokens is the schema descriptor for output_tokens field.
	contenteventDescOutputTokens := contenteventFields[4].Descriptor()
	// contentevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	contentevent.DefaultOutputTokens = contenteventDescOutputTokens.Default.(int)
	// contenteventDescLatencyMs is the schema descriptor for latency_ms field.
	contenteventDescLatencyMs := contenteventFields[5].Descriptor()
	// contentevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	contentevent.DefaultLatencyMs = contenteventDescLatencyMs.Default.(int64)
	exposureeventMixin := schema.ExposureEvent{}.Mixin()
	exposureeventMixinFields0 := exposureeventMixin[0].Fields()
	_ = exposureeventMixinFields0
	exposureeventFields := schema.ExposureEvent{}.Fields()
	_ = exposureeventFields
	// exposureeventDescTimestamp is the schema descriptor for timestamp field.
	exposureeventDescTimestamp := exposureeventMixinFields0[1].Descriptor()
	// exposureevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	exposureevent.DefaultTimestamp = exposureeventDescTimestamp.Default.(func() time.Time)
	// exposureeventDescLearnerID is the schema descriptor for learner_id field.
	exposureeventDescLearnerID := exposureeventFields[0].Descriptor()
	// exposureevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	exposureevent.LearnerIDValidator = exposureeventDescLearnerID.Validators[0].(func(string) error)
	// exposureeventDescConceptID is the schema descriptor for concept_id field.
	exposureeventDescConceptID := exposureeventFields[1].Descriptor()
	// exposureevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	exposureevent.ConceptIDValidator = exposureeventDescConceptID.Validators[0].(func(string) error)
	// exposureeventDescScoreAfter is the schema descriptor for score_after field.
	exposureeventDescScoreAfter := exposureeventFields[3].Descriptor()
	// exposureevent.ScoreAfterValidator is a validator for the "score_after" field. It is called by the builders before save.
	exposureevent.ScoreAfterValidator = func() func(int) error {
		validators := exposureeventDescScoreAfter.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score_after int) error {
			for _, fn := range fns {
				if err := fn(score_after); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescLearnerID is the schema descriptor for learner_id field.
	masteryrecordDescLearnerID := masteryrecordFields[0].Descriptor()
	// masteryrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	masteryrecord.LearnerIDValidator = masteryrecordDescLearnerID.Validators[0].(func(string) error)
	// masteryrecordDescConceptID is the schema descriptor for concept_id field.
	masteryrecordDescConceptID := masteryrecordFields[1].Descriptor()
	// masteryrecord.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	masteryrecord.ConceptIDValidator = masteryrecordDescConceptID.Validators[0].(func(string) error)
	// masteryrecordDescExposures is the schema descriptor for exposures field.
	masteryrecordDescExposures := masteryrecordFields[2].Descriptor()
	// masteryrecord.DefaultExposures holds the default value on creation for the exposures field.
	masteryrecord.DefaultExposures = masteryrecordDescExposures.Default.(int)
	// masteryrecord.ExposuresValidator is a validator for the "exposures" field. It is called by the builders before save.
	masteryrecord.ExposuresValidator = masteryrecordDescExposures.Validators[0].(func(int) error)
	// masteryrecordDescSuccesses is the schema descriptor for successes field.
	masteryrecordDescSuccesses := masteryrecordFields[3].Descriptor()
	// masteryrecord.DefaultSuccesses holds the default value on creation for the successes field.
	masteryrecord.DefaultSuccesses = masteryrecordDescSuccesses.Default.(int)
	// masteryrecord.SuccessesValidator is a validator for the "successes" field. It is called by the builders before save.
	masteryrecord.SuccessesValidator = masteryrecordDescSuccesses.Validators[0].(func(int) error)
	// masteryrecordDescFailures is the schema descriptor for failures field.
	masteryrecordDescFailures := masteryrecordFields[4].Descriptor()
	// masteryrecord.DefaultFailures holds the default value on creation for the failures field.
	masteryrecord.DefaultFailures = masteryrecordDescFailures.Default.(int)
	// masteryrecord.FailuresValidator is a validator for the "failures" field. It is called by the builders before save.
	masteryrecord.FailuresValidator = masteryrecordDescFailures.Validators[0].(func(int) error)
	// masteryrecordDescMastery is the schema descriptor for mastery field.
	masteryrecordDescMastery := masteryrecordFields[5].Descriptor()
	// masteryrecord.DefaultMastery holds the default value on creation for the mastery field.
	masteryrecord.DefaultMastery = masteryrecordDescMastery.Default.(int)
	// masteryrecord.MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	masteryrecord.MasteryValidator = func() func(int) error {
		validators := masteryrecordDescMastery.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(mastery int) error {
			for _, fn := range fns {
				if err := fn(mastery); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// masteryrecordDescStatus is the schema descriptor for status field.
	masteryrecordDescStatus := masteryrecordFields[6].Descriptor()
	// masteryrecord.DefaultStatus holds the default value on creation for the status field.
	masteryrecord.DefaultStatus = masteryrecordDescStatus.Default.(string)
}
