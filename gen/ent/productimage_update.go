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
	"github.com/google/uuid"
	"github.com/ksarkisyan/catalog-intake/gen/ent/predicate"
	"github.com/ksarkisyan/catalog-intake/gen/ent/product"
	"github.com/ksarkisyan/catalog-intake/gen/ent/productimage"
)

// ProductImageUpdate is the builder for updating ProductImage entities.
type ProductImageUpdate struct {
	config
	hooks    []Hook
	mutation *ProductImageMutation
}

// Where appends a list predicates to the ProductImageUpdate builder.
func (_u *ProductImageUpdate) Where(ps ...predicate.ProductImage) *ProductImageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *ProductImageUpdate) SetProductID(v uuid.UUID) *ProductImageUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *ProductImageUpdate) SetNillableProductID(v *uuid.UUID) *ProductImageUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ProductImageUpdate) SetFilename(v string) *ProductImageUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ProductImageUpdate) SetNillableFilename(v *string) *ProductImageUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *ProductImageUpdate) SetStoragePath(v string) *ProductImageUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *ProductImageUpdate) SetNillableStoragePath(v *string) *ProductImageUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetImageType sets the "image_type" field.
func (_u *ProductImageUpdate) SetImageType(v string) *ProductImageUpdate {
	_u.mutation.SetImageType(v)
	return _u
}

// SetNillableImageType sets the "image_type" field if the given value is not nil.
func (_u *ProductImageUpdate) SetNillableImageType(v *string) *ProductImageUpdate {
	if v != nil {
		_u.SetImageType(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ProductImageUpdate) SetSequence(v int) *ProductImageUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ProductImageUpdate) SetNillableSequence(v *int) *ProductImageUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ProductImageUpdate) AddSequence(v int) *ProductImageUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ProductImageUpdate) SetIsActive(v bool) *ProductImageUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ProductImageUpdate) SetNillableIsActive(v *bool) *ProductImageUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProductImageUpdate) SetCreatedAt(v time.Time) *ProductImageUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProductImageUpdate) SetNillableCreatedAt(v *time.Time) *ProductImageUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *ProductImageUpdate) SetProduct(v *Product) *ProductImageUpdate {
	return _u.SetProductID(v.ID)
}

// Mutation returns the ProductImageMutation object of the builder.
func (_u *ProductImageUpdate) Mutation() *ProductImageMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *ProductImageUpdate) ClearProduct() *ProductImageUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductImageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductImageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductImageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductImageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductImageUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := productimage.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ProductImage.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := productimage.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "ProductImage.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageType(); ok {
		if err := productimage.ImageTypeValidator(v); err != nil {
			return &ValidationError{Name: "image_type", err: fmt.Errorf(`ent: validator failed for field "ProductImage.image_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sequence(); ok {
		if err := productimage.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "ProductImage.sequence": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProductImage.product"`)
	}
	return nil
}

func (_u *ProductImageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productimage.Table, productimage.Columns, sqlgraph.NewFieldSpec(productimage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(productimage.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(productimage.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageType(); ok {
		_spec.SetField(productimage.FieldImageType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(productimage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(productimage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(productimage.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(productimage.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   productimage.ProductTable,
			Columns: []string{productimage.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   productimage.ProductTable,
			Columns: []string{productimage.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductImageUpdateOne is the builder for updating a single ProductImage entity.
type ProductImageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductImageMutation
}

// SetProductID sets the "product_id" field.
func (_u *ProductImageUpdateOne) SetProductID(v uuid.UUID) *ProductImageUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *ProductImageUpdateOne) SetNillableProductID(v *uuid.UUID) *ProductImageUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ProductImageUpdateOne) SetFilename(v string) *ProductImageUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ProductImageUpdateOne) SetNillableFilename(v *string) *ProductImageUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *ProductImageUpdateOne) SetStoragePath(v string) *ProductImageUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *ProductImageUpdateOne) SetNillableStoragePath(v *string) *ProductImageUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetImageType sets the "image_type" field.
func (_u *ProductImageUpdateOne) SetImageType(v string) *ProductImageUpdateOne {
	_u.mutation.SetImageType(v)
	return _u
}

// SetNillableImageType sets the "image_type" field if the given value is not nil.
func (_u *ProductImageUpdateOne) SetNillableImageType(v *string) *ProductImageUpdateOne {
	if v != nil {
		_u.SetImageType(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ProductImageUpdateOne) SetSequence(v int) *ProductImageUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ProductImageUpdateOne) SetNillableSequence(v *int) *ProductImageUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ProductImageUpdateOne) AddSequence(v int) *ProductImageUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ProductImageUpdateOne) SetIsActive(v bool) *ProductImageUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ProductImageUpdateOne) SetNillableIsActive(v *bool) *ProductImageUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProductImageUpdateOne) SetCreatedAt(v time.Time) *ProductImageUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProductImageUpdateOne) SetNillableCreatedAt(v *time.Time) *ProductImageUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *ProductImageUpdateOne) SetProduct(v *Product) *ProductImageUpdateOne {
	return _u.SetProductID(v.ID)
}

// Mutation returns the ProductImageMutation object of the builder.
func (_u *ProductImageUpdateOne) Mutation() *ProductImageMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *ProductImageUpdateOne) ClearProduct() *ProductImageUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// Where appends a list predicates to the ProductImageUpdate builder.
func (_u *ProductImageUpdateOne) Where(ps ...predicate.ProductImage) *ProductImageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductImageUpdateOne) Select(field string, fields ...string) *ProductImageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProductImage entity.
func (_u *ProductImageUpdateOne) Save(ctx context.Context) (*ProductImage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductImageUpdateOne) SaveX(ctx context.Context) *ProductImage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductImageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductImageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductImageUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := productimage.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ProductImage.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := productimage.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "ProductImage.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageType(); ok {
		if err := productimage.ImageTypeValidator(v); err != nil {
			return &ValidationError{Name: "image_type", err: fmt.Errorf(`ent: validator failed for field "ProductImage.image_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sequence(); ok {
		if err := productimage.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "ProductImage.sequence": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProductImage.product"`)
	}
	return nil
}

func (_u *ProductImageUpdateOne) sqlSave(ctx context.Context) (_node *ProductImage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productimage.Table, productimage.Columns, sqlgraph.NewFieldSpec(productimage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProductImage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, productimage.FieldID)
		for _, f := range fields {
			if !productimage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != productimage.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(productimage.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(productimage.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageType(); ok {
		_spec.SetField(productimage.FieldImageType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(productimage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(productimage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(productimage.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(productimage.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   productimage.ProductTable,
			Columns: []string{productimage.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   productimage.ProductTable,
			Columns: []string{productimage.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProductImage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
