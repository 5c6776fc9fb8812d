// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ksarkisyan/catalog-intake/gen/ent/predicate"
	"github.com/ksarkisyan/catalog-intake/gen/ent/uploadjob"
)

// UploadJobUpdate is the builder for updating UploadJob entities.
type UploadJobUpdate struct {
	config
	hooks    []Hook
	mutation *UploadJobMutation
}

// Where appends a list predicates to the UploadJobUpdate builder.
func (_u *UploadJobUpdate) Where(ps ...predicate.UploadJob) *UploadJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTotalFiles sets the "total_files" field.
func (_u *UploadJobUpdate) SetTotalFiles(v int) *UploadJobUpdate {
	_u.mutation.ResetTotalFiles()
	_u.mutation.SetTotalFiles(v)
	return _u
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableTotalFiles(v *int) *UploadJobUpdate {
	if v != nil {
		_u.SetTotalFiles(*v)
	}
	return _u
}

// AddTotalFiles adds value to the "total_files" field.
func (_u *UploadJobUpdate) AddTotalFiles(v int) *UploadJobUpdate {
	_u.mutation.AddTotalFiles(v)
	return _u
}

// SetProcessedFiles sets the "processed_files" field.
func (_u *UploadJobUpdate) SetProcessedFiles(v int) *UploadJobUpdate {
	_u.mutation.ResetProcessedFiles()
	_u.mutation.SetProcessedFiles(v)
	return _u
}

// SetNillableProcessedFiles sets the "processed_files" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableProcessedFiles(v *int) *UploadJobUpdate {
	if v != nil {
		_u.SetProcessedFiles(*v)
	}
	return _u
}

// AddProcessedFiles adds value to the "processed_files" field.
func (_u *UploadJobUpdate) AddProcessedFiles(v int) *UploadJobUpdate {
	_u.mutation.AddProcessedFiles(v)
	return _u
}

// SetFailedFiles sets the "failed_files" field.
func (_u *UploadJobUpdate) SetFailedFiles(v int) *UploadJobUpdate {
	_u.mutation.ResetFailedFiles()
	_u.mutation.SetFailedFiles(v)
	return _u
}

// SetNillableFailedFiles sets the "failed_files" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableFailedFiles(v *int) *UploadJobUpdate {
	if v != nil {
		_u.SetFailedFiles(*v)
	}
	return _u
}

// AddFailedFiles adds value to the "failed_files" field.
func (_u *UploadJobUpdate) AddFailedFiles(v int) *UploadJobUpdate {
	_u.mutation.AddFailedFiles(v)
	return _u
}

// SetSkippedFiles sets the "skipped_files" field.
func (_u *UploadJobUpdate) SetSkippedFiles(v int) *UploadJobUpdate {
	_u.mutation.ResetSkippedFiles()
	_u.mutation.SetSkippedFiles(v)
	return _u
}

// SetNillableSkippedFiles sets the "skipped_files" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableSkippedFiles(v *int) *UploadJobUpdate {
	if v != nil {
		_u.SetSkippedFiles(*v)
	}
	return _u
}

// AddSkippedFiles adds value to the "skipped_files" field.
func (_u *UploadJobUpdate) AddSkippedFiles(v int) *UploadJobUpdate {
	_u.mutation.AddSkippedFiles(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *UploadJobUpdate) SetStatus(v string) *UploadJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableStatus(v *string) *UploadJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhaseMessage sets the "phase_message" field.
func (_u *UploadJobUpdate) SetPhaseMessage(v string) *UploadJobUpdate {
	_u.mutation.SetPhaseMessage(v)
	return _u
}

// SetNillablePhaseMessage sets the "phase_message" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillablePhaseMessage(v *string) *UploadJobUpdate {
	if v != nil {
		_u.SetPhaseMessage(*v)
	}
	return _u
}

// ClearPhaseMessage clears the value of the "phase_message" field.
func (_u *UploadJobUpdate) ClearPhaseMessage() *UploadJobUpdate {
	_u.mutation.ClearPhaseMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UploadJobUpdate) SetCreatedAt(v time.Time) *UploadJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableCreatedAt(v *time.Time) *UploadJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *UploadJobUpdate) SetCompletedAt(v time.Time) *UploadJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *UploadJobUpdate) SetNillableCompletedAt(v *time.Time) *UploadJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *UploadJobUpdate) ClearCompletedAt() *UploadJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the UploadJobMutation object of the builder.
func (_u *UploadJobUpdate) Mutation() *UploadJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadJobUpdate) check() error {
	if v, ok := _u.mutation.TotalFiles(); ok {
		if err := uploadjob.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "UploadJob.total_files": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedFiles(); ok {
		if err := uploadjob.ProcessedFilesValidator(v); err != nil {
			return &ValidationError{Name: "processed_files", err: fmt.Errorf(`ent: validator failed for field "UploadJob.processed_files": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedFiles(); ok {
		if err := uploadjob.FailedFilesValidator(v); err != nil {
			return &ValidationError{Name: "failed_files", err: fmt.Errorf(`ent: validator failed for field "UploadJob.failed_files": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkippedFiles(); ok {
		if err := uploadjob.SkippedFilesValidator(v); err != nil {
			return &ValidationError{Name: "skipped_files", err: fmt.Errorf(`ent: validator failed for field "UploadJob.skipped_files": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := uploadjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadjob.Table, uploadjob.Columns, sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalFiles(); ok {
		_spec.SetField(uploadjob.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFiles(); ok {
		_spec.AddField(uploadjob.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedFiles(); ok {
		_spec.SetField(uploadjob.FieldProcessedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedFiles(); ok {
		_spec.AddField(uploadjob.FieldProcessedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedFiles(); ok {
		_spec.SetField(uploadjob.FieldFailedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedFiles(); ok {
		_spec.AddField(uploadjob.FieldFailedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkippedFiles(); ok {
		_spec.SetField(uploadjob.FieldSkippedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkippedFiles(); ok {
		_spec.AddField(uploadjob.FieldSkippedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uploadjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhaseMessage(); ok {
		_spec.SetField(uploadjob.FieldPhaseMessage, field.TypeString, value)
	}
	if _u.mutation.PhaseMessageCleared() {
		_spec.ClearField(uploadjob.FieldPhaseMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(uploadjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(uploadjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(uploadjob.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadJobUpdateOne is the builder for updating a single UploadJob entity.
type UploadJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadJobMutation
}

// SetTotalFiles sets the "total_files" field.
func (_u *UploadJobUpdateOne) SetTotalFiles(v int) *UploadJobUpdateOne {
	_u.mutation.ResetTotalFiles()
	_u.mutation.SetTotalFiles(v)
	return _u
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableTotalFiles(v *int) *UploadJobUpdateOne {
	if v != nil {
		_u.SetTotalFiles(*v)
	}
	return _u
}

// AddTotalFiles adds value to the "total_files" field.
func (_u *UploadJobUpdateOne) AddTotalFiles(v int) *UploadJobUpdateOne {
	_u.mutation.AddTotalFiles(v)
	return _u
}

// SetProcessedFiles sets the "processed_files" field.
func (_u *UploadJobUpdateOne) SetProcessedFiles(v int) *UploadJobUpdateOne {
	_u.mutation.ResetProcessedFiles()
	_u.mutation.SetProcessedFiles(v)
	return _u
}

// SetNillableProcessedFiles sets the "processed_files" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableProcessedFiles(v *int) *UploadJobUpdateOne {
	if v != nil {
		_u.SetProcessedFiles(*v)
	}
	return _u
}

// AddProcessedFiles adds value to the "processed_files" field.
func (_u *UploadJobUpdateOne) AddProcessedFiles(v int) *UploadJobUpdateOne {
	_u.mutation.AddProcessedFiles(v)
	return _u
}

// SetFailedFiles sets the "failed_files" field.
func (_u *UploadJobUpdateOne) SetFailedFiles(v int) *UploadJobUpdateOne {
	_u.mutation.ResetFailedFiles()
	_u.mutation.SetFailedFiles(v)
	return _u
}

// SetNillableFailedFiles sets the "failed_files" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableFailedFiles(v *int) *UploadJobUpdateOne {
	if v != nil {
		_u.SetFailedFiles(*v)
	}
	return _u
}

// AddFailedFiles adds value to the "failed_files" field.
func (_u *UploadJobUpdateOne) AddFailedFiles(v int) *UploadJobUpdateOne {
	_u.mutation.AddFailedFiles(v)
	return _u
}

// SetSkippedFiles sets the "skipped_files" field.
func (_u *UploadJobUpdateOne) SetSkippedFiles(v int) *UploadJobUpdateOne {
	_u.mutation.ResetSkippedFiles()
	_u.mutation.SetSkippedFiles(v)
	return _u
}

// SetNillableSkippedFiles sets the "skipped_files" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableSkippedFiles(v *int) *UploadJobUpdateOne {
	if v != nil {
		_u.SetSkippedFiles(*v)
	}
	return _u
}

// AddSkippedFiles adds value to the "skipped_files" field.
func (_u *UploadJobUpdateOne) AddSkippedFiles(v int) *UploadJobUpdateOne {
	_u.mutation.AddSkippedFiles(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *UploadJobUpdateOne) SetStatus(v string) *UploadJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableStatus(v *string) *UploadJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhaseMessage sets the "phase_message" field.
func (_u *UploadJobUpdateOne) SetPhaseMessage(v string) *UploadJobUpdateOne {
	_u.mutation.SetPhaseMessage(v)
	return _u
}

// SetNillablePhaseMessage sets the "phase_message" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillablePhaseMessage(v *string) *UploadJobUpdateOne {
	if v != nil {
		_u.SetPhaseMessage(*v)
	}
	return _u
}

// ClearPhaseMessage clears the value of the "phase_message" field.
func (_u *UploadJobUpdateOne) ClearPhaseMessage() *UploadJobUpdateOne {
	_u.mutation.ClearPhaseMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UploadJobUpdateOne) SetCreatedAt(v time.Time) *UploadJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableCreatedAt(v *time.Time) *UploadJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *UploadJobUpdateOne) SetCompletedAt(v time.Time) *UploadJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *UploadJobUpdateOne) SetNillableCompletedAt(v *time.Time) *UploadJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *UploadJobUpdateOne) ClearCompletedAt() *UploadJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the UploadJobMutation object of the builder.
func (_u *UploadJobUpdateOne) Mutation() *UploadJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the UploadJobUpdate builder.
func (_u *UploadJobUpdateOne) Where(ps ...predicate.UploadJob) *UploadJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadJobUpdateOne) Select(field string, fields ...string) *UploadJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UploadJob entity.
func (_u *UploadJobUpdateOne) Save(ctx context.Context) (*UploadJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadJobUpdateOne) SaveX(ctx context.Context) *UploadJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadJobUpdateOne) check() error {
	if v, ok := _u.mutation.TotalFiles(); ok {
		if err := uploadjob.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "UploadJob.total_files": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedFiles(); ok {
		if err := uploadjob.ProcessedFilesValidator(v); err != nil {
			return &ValidationError{Name: "processed_files", err: fmt.Errorf(`ent: validator failed for field "UploadJob.processed_files": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedFiles(); ok {
		if err := uploadjob.FailedFilesValidator(v); err != nil {
			return &ValidationError{Name: "failed_files", err: fmt.Errorf(`ent: validator failed for field "UploadJob.failed_files": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkippedFiles(); ok {
		if err := uploadjob.SkippedFilesValidator(v); err != nil {
			return &ValidationError{Name: "skipped_files", err: fmt.Errorf(`ent: validator failed for field "UploadJob.skipped_files": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := uploadjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadJobUpdateOne) sqlSave(ctx context.Context) (_node *UploadJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadjob.Table, uploadjob.Columns, sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UploadJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadjob.FieldID)
		for _, f := range fields {
			if !uploadjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != uploadjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalFiles(); ok {
		_spec.SetField(uploadjob.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFiles(); ok {
		_spec.AddField(uploadjob.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedFiles(); ok {
		_spec.SetField(uploadjob.FieldProcessedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedFiles(); ok {
		_spec.AddField(uploadjob.FieldProcessedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedFiles(); ok {
		_spec.SetField(uploadjob.FieldFailedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedFiles(); ok {
		_spec.AddField(uploadjob.FieldFailedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkippedFiles(); ok {
		_spec.SetField(uploadjob.FieldSkippedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkippedFiles(); ok {
		_spec.AddField(uploadjob.FieldSkippedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uploadjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhaseMessage(); ok {
		_spec.SetField(uploadjob.FieldPhaseMessage, field.TypeString, value)
	}
	if _u.mutation.PhaseMessageCleared() {
		_spec.ClearField(uploadjob.FieldPhaseMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(uploadjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(uploadjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(uploadjob.FieldCompletedAt, field.TypeTime)
	}
	_node = &UploadJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
