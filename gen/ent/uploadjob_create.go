// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/ksarkisyan/catalog-intake/gen/ent/uploadjob"
)

// UploadJobCreate is the builder for creating a UploadJob entity.
type UploadJobCreate struct {
	config
	mutation *UploadJobMutation
	hooks    []Hook
}

// SetTotalFiles sets the "total_files" field.
func (_c *UploadJobCreate) SetTotalFiles(v int) *UploadJobCreate {
	_c.mutation.SetTotalFiles(v)
	return _c
}

// SetProcessedFiles sets the "processed_files" field.
func (_c *UploadJobCreate) SetProcessedFiles(v int) *UploadJobCreate {
	_c.mutation.SetProcessedFiles(v)
	return _c
}

// SetNillableProcessedFiles sets the "processed_files" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableProcessedFiles(v *int) *UploadJobCreate {
	if v != nil {
		_c.SetProcessedFiles(*v)
	}
	return _c
}

// SetFailedFiles sets the "failed_files" field.
func (_c *UploadJobCreate) SetFailedFiles(v int) *UploadJobCreate {
	_c.mutation.SetFailedFiles(v)
	return _c
}

// SetNillableFailedFiles sets the "failed_files" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableFailedFiles(v *int) *UploadJobCreate {
	if v != nil {
		_c.SetFailedFiles(*v)
	}
	return _c
}

// SetSkippedFiles sets the "skipped_files" field.
func (_c *UploadJobCreate) SetSkippedFiles(v int) *UploadJobCreate {
	_c.mutation.SetSkippedFiles(v)
	return _c
}

// SetNillableSkippedFiles sets the "skipped_files" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableSkippedFiles(v *int) *UploadJobCreate {
	if v != nil {
		_c.SetSkippedFiles(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *UploadJobCreate) SetStatus(v string) *UploadJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableStatus(v *string) *UploadJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPhaseMessage sets the "phase_message" field.
func (_c *UploadJobCreate) SetPhaseMessage(v string) *UploadJobCreate {
	_c.mutation.SetPhaseMessage(v)
	return _c
}

// SetNillablePhaseMessage sets the "phase_message" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillablePhaseMessage(v *string) *UploadJobCreate {
	if v != nil {
		_c.SetPhaseMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UploadJobCreate) SetCreatedAt(v time.Time) *UploadJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableCreatedAt(v *time.Time) *UploadJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *UploadJobCreate) SetCompletedAt(v time.Time) *UploadJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableCompletedAt(v *time.Time) *UploadJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UploadJobCreate) SetID(v uuid.UUID) *UploadJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UploadJobCreate) SetNillableID(v *uuid.UUID) *UploadJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UploadJobMutation object of the builder.
func (_c *UploadJobCreate) Mutation() *UploadJobMutation {
	return _c.mutation
}

// Save creates the UploadJob in the database.
func (_c *UploadJobCreate) Save(ctx context.Context) (*UploadJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadJobCreate) SaveX(ctx context.Context) *UploadJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UploadJobCreate) defaults() {
	if _, ok := _c.mutation.ProcessedFiles(); !ok {
		v := uploadjob.DefaultProcessedFiles
		_c.mutation.SetProcessedFiles(v)
	}
	if _, ok := _c.mutation.FailedFiles(); !ok {
		v := uploadjob.DefaultFailedFiles
		_c.mutation.SetFailedFiles(v)
	}
	if _, ok := _c.mutation.SkippedFiles(); !ok {
		v := uploadjob.DefaultSkippedFiles
		_c.mutation.SetSkippedFiles(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := uploadjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := uploadjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := uploadjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadJobCreate) check() error {
	if _, ok := _c.mutation.TotalFiles(); !ok {
		return &ValidationError{Name: "total_files", err: errors.New(`ent: missing required field "UploadJob.total_files"`)}
	}
	if v, ok := _c.mutation.TotalFiles(); ok {
		if err := uploadjob.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "UploadJob.total_files": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedFiles(); !ok {
		return &ValidationError{Name: "processed_files", err: errors.New(`ent: missing required field "UploadJob.processed_files"`)}
	}
	if v, ok := _c.mutation.ProcessedFiles(); ok {
		if err := uploadjob.ProcessedFilesValidator(v); err != nil {
			return &ValidationError{Name: "processed_files", err: fmt.Errorf(`ent: validator failed for field "UploadJob.processed_files": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailedFiles(); !ok {
		return &ValidationError{Name: "failed_files", err: errors.New(`ent: missing required field "UploadJob.failed_files"`)}
	}
	if v, ok := _c.mutation.FailedFiles(); ok {
		if err := uploadjob.FailedFilesValidator(v); err != nil {
			return &ValidationError{Name: "failed_files", err: fmt.Errorf(`ent: validator failed for field "UploadJob.failed_files": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkippedFiles(); !ok {
		return &ValidationError{Name: "skipped_files", err: errors.New(`ent: missing required field "UploadJob.skipped_files"`)}
	}
	if v, ok := _c.mutation.SkippedFiles(); ok {
		if err := uploadjob.SkippedFilesValidator(v); err != nil {
			return &ValidationError{Name: "skipped_files", err: fmt.Errorf(`ent: validator failed for field "UploadJob.skipped_files": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UploadJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := uploadjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UploadJob.created_at"`)}
	}
	return nil
}

func (_c *UploadJobCreate) sqlSave(ctx context.Context) (*UploadJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UploadJobCreate) createSpec() (*UploadJob, *sqlgraph.CreateSpec) {
	var (
		_node = &UploadJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(uploadjob.Table, sqlgraph.NewFieldSpec(uploadjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TotalFiles(); ok {
		_spec.SetField(uploadjob.FieldTotalFiles, field.TypeInt, value)
		_node.TotalFiles = value
	}
	if value, ok := _c.mutation.ProcessedFiles(); ok {
		_spec.SetField(uploadjob.FieldProcessedFiles, field.TypeInt, value)
		_node.ProcessedFiles = value
	}
	if value, ok := _c.mutation.FailedFiles(); ok {
		_spec.SetField(uploadjob.FieldFailedFiles, field.TypeInt, value)
		_node.FailedFiles = value
	}
	if value, ok := _c.mutation.SkippedFiles(); ok {
		_spec.SetField(uploadjob.FieldSkippedFiles, field.TypeInt, value)
		_node.SkippedFiles = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(uploadjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PhaseMessage(); ok {
		_spec.SetField(uploadjob.FieldPhaseMessage, field.TypeString, value)
		_node.PhaseMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(uploadjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(uploadjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// UploadJobCreateBulk is the builder for creating many UploadJob entities in bulk.
type UploadJobCreateBulk struct {
	config
	err      error
	builders []*UploadJobCreate
}

// Save creates the UploadJob entities in the database.
func (_c *UploadJobCreateBulk) Save(ctx context.Context) ([]*UploadJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UploadJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UploadJobCreateBulk) SaveX(ctx context.Context) []*UploadJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
