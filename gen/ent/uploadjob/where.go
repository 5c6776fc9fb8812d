// Code generated by ent, DO NOT EDIT.

package uploadjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ksarkisyan/catalog-intake/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldID, id))
}

// TotalFiles applies equality check predicate on the "total_files" field. It's identical to TotalFilesEQ.
func TotalFiles(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldTotalFiles, v))
}

// ProcessedFiles applies equality check predicate on the "processed_files" field. It's identical to ProcessedFilesEQ.
func ProcessedFiles(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldProcessedFiles, v))
}

// FailedFiles applies equality check predicate on the "failed_files" field. It's identical to FailedFilesEQ.
func FailedFiles(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldFailedFiles, v))
}

// SkippedFiles applies equality check predicate on the "skipped_files" field. It's identical to SkippedFilesEQ.
func SkippedFiles(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldSkippedFiles, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldStatus, v))
}

// PhaseMessage applies equality check predicate on the "phase_message" field. It's identical to PhaseMessageEQ.
func PhaseMessage(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldPhaseMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldCompletedAt, v))
}

// TotalFilesEQ applies the EQ predicate on the "total_files" field.
func TotalFilesEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldTotalFiles, v))
}

// TotalFilesNEQ applies the NEQ predicate on the "total_files" field.
func TotalFilesNEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldTotalFiles, v))
}

// TotalFilesIn applies the In predicate on the "total_files" field.
func TotalFilesIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldTotalFiles, vs...))
}

// TotalFilesNotIn applies the NotIn predicate on the "total_files" field.
func TotalFilesNotIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldTotalFiles, vs...))
}

// TotalFilesGT applies the GT predicate on the "total_files" field.
func TotalFilesGT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldTotalFiles, v))
}

// TotalFilesGTE applies the GTE predicate on the "total_files" field.
func TotalFilesGTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldTotalFiles, v))
}

// TotalFilesLT applies the LT predicate on the "total_files" field.
func TotalFilesLT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldTotalFiles, v))
}

// TotalFilesLTE applies the LTE predicate on the "total_files" field.
func TotalFilesLTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldTotalFiles, v))
}

// ProcessedFilesEQ applies the EQ predicate on the "processed_files" field.
func ProcessedFilesEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldProcessedFiles, v))
}

// ProcessedFilesNEQ applies the NEQ predicate on the "processed_files" field.
func ProcessedFilesNEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldProcessedFiles, v))
}

// ProcessedFilesIn applies the In predicate on the "processed_files" field.
func ProcessedFilesIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldProcessedFiles, vs...))
}

// ProcessedFilesNotIn applies the NotIn predicate on the "processed_files" field.
func ProcessedFilesNotIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldProcessedFiles, vs...))
}

// ProcessedFilesGT applies the GT predicate on the "processed_files" field.
func ProcessedFilesGT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldProcessedFiles, v))
}

// ProcessedFilesGTE applies the GTE predicate on the "processed_files" field.
func ProcessedFilesGTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldProcessedFiles, v))
}

// ProcessedFilesLT applies the LT predicate on the "processed_files" field.
func ProcessedFilesLT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldProcessedFiles, v))
}

// ProcessedFilesLTE applies the LTE predicate on the "processed_files" field.
func ProcessedFilesLTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldProcessedFiles, v))
}

// FailedFilesEQ applies the EQ predicate on the "failed_files" field.
func FailedFilesEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldFailedFiles, v))
}

// FailedFilesNEQ applies the NEQ predicate on the "failed_files" field.
func FailedFilesNEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldFailedFiles, v))
}

// FailedFilesIn applies the In predicate on the "failed_files" field.
func FailedFilesIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldFailedFiles, vs...))
}

// FailedFilesNotIn applies the NotIn predicate on the "failed_files" field.
func FailedFilesNotIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldFailedFiles, vs...))
}

// FailedFilesGT applies the GT predicate on the "failed_files" field.
func FailedFilesGT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldFailedFiles, v))
}

// FailedFilesGTE applies the GTE predicate on the "failed_files" field.
func FailedFilesGTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldFailedFiles, v))
}

// FailedFilesLT applies the LT predicate on the "failed_files" field.
func FailedFilesLT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldFailedFiles, v))
}

// FailedFilesLTE applies the LTE predicate on the "failed_files" field.
func FailedFilesLTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldFailedFiles, v))
}

// SkippedFilesEQ applies the EQ predicate on the "skipped_files" field.
func SkippedFilesEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldSkippedFiles, v))
}

// SkippedFilesNEQ applies the NEQ predicate on the "skipped_files" field.
func SkippedFilesNEQ(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldSkippedFiles, v))
}

// SkippedFilesIn applies the In predicate on the "skipped_files" field.
func SkippedFilesIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldSkippedFiles, vs...))
}

// SkippedFilesNotIn applies the NotIn predicate on the "skipped_files" field.
func SkippedFilesNotIn(vs ...int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldSkippedFiles, vs...))
}

// SkippedFilesGT applies the GT predicate on the "skipped_files" field.
func SkippedFilesGT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldSkippedFiles, v))
}

// SkippedFilesGTE applies the GTE predicate on the "skipped_files" field.
func SkippedFilesGTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldSkippedFiles, v))
}

// SkippedFilesLT applies the LT predicate on the "skipped_files" field.
func SkippedFilesLT(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldSkippedFiles, v))
}

// SkippedFilesLTE applies the LTE predicate on the "skipped_files" field.
func SkippedFilesLTE(v int) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldSkippedFiles, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldContainsFold(FieldStatus, v))
}

// PhaseMessageEQ applies the EQ predicate on the "phase_message" field.
func PhaseMessageEQ(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldPhaseMessage, v))
}

// PhaseMessageNEQ applies the NEQ predicate on the "phase_message" field.
func PhaseMessageNEQ(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldPhaseMessage, v))
}

// PhaseMessageIn applies the In predicate on the "phase_message" field.
func PhaseMessageIn(vs ...string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldPhaseMessage, vs...))
}

// PhaseMessageNotIn applies the NotIn predicate on the "phase_message" field.
func PhaseMessageNotIn(vs ...string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldPhaseMessage, vs...))
}

// PhaseMessageGT applies the GT predicate on the "phase_message" field.
func PhaseMessageGT(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldPhaseMessage, v))
}

// PhaseMessageGTE applies the GTE predicate on the "phase_message" field.
func PhaseMessageGTE(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldPhaseMessage, v))
}

// PhaseMessageLT applies the LT predicate on the "phase_message" field.
func PhaseMessageLT(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldPhaseMessage, v))
}

// PhaseMessageLTE applies the LTE predicate on the "phase_message" field.
func PhaseMessageLTE(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldPhaseMessage, v))
}

// PhaseMessageContains applies the Contains predicate on the "phase_message" field.
func PhaseMessageContains(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldContains(FieldPhaseMessage, v))
}

// PhaseMessageHasPrefix applies the HasPrefix predicate on the "phase_message" field.
func PhaseMessageHasPrefix(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldHasPrefix(FieldPhaseMessage, v))
}

// PhaseMessageHasSuffix applies the HasSuffix predicate on the "phase_message" field.
func PhaseMessageHasSuffix(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldHasSuffix(FieldPhaseMessage, v))
}

// PhaseMessageIsNil applies the IsNil predicate on the "phase_message" field.
func PhaseMessageIsNil() predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIsNull(FieldPhaseMessage))
}

// PhaseMessageNotNil applies the NotNil predicate on the "phase_message" field.
func PhaseMessageNotNil() predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotNull(FieldPhaseMessage))
}

// PhaseMessageEqualFold applies the EqualFold predicate on the "phase_message" field.
func PhaseMessageEqualFold(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEqualFold(FieldPhaseMessage, v))
}

// PhaseMessageContainsFold applies the ContainsFold predicate on the "phase_message" field.
func PhaseMessageContainsFold(v string) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldContainsFold(FieldPhaseMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.UploadJob {
	return predicate.UploadJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.UploadJob {
	return predicate.UploadJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.UploadJob {
	return predicate.UploadJob(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UploadJob) predicate.UploadJob {
	return predicate.UploadJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UploadJob) predicate.UploadJob {
	return predicate.UploadJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UploadJob) predicate.UploadJob {
	return predicate.UploadJob(sql.NotPredicates(p))
}
