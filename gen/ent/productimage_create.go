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
	"github.com/ksarkisyan/catalog-intake/gen/ent/product"
	"github.com/ksarkisyan/catalog-intake/gen/ent/productimage"
)

// ProductImageCreate is the builder for creating a ProductImage entity.
type ProductImageCreate struct {
	config
	mutation *ProductImageMutation
	hooks    []Hook
}

// SetProductID sets the "product_id" field.
func (_c *ProductImageCreate) SetProductID(v uuid.UUID) *ProductImageCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *ProductImageCreate) SetFilename(v string) *ProductImageCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *ProductImageCreate) SetStoragePath(v string) *ProductImageCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetImageType sets the "image_type" field.
func (_c *ProductImageCreate) SetImageType(v string) *ProductImageCreate {
	_c.mutation.SetImageType(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *ProductImageCreate) SetSequence(v int) *ProductImageCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_c *ProductImageCreate) SetNillableSequence(v *int) *ProductImageCreate {
	if v != nil {
		_c.SetSequence(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ProductImageCreate) SetIsActive(v bool) *ProductImageCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ProductImageCreate) SetNillableIsActive(v *bool) *ProductImageCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProductImageCreate) SetCreatedAt(v time.Time) *ProductImageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProductImageCreate) SetNillableCreatedAt(v *time.Time) *ProductImageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProductImageCreate) SetID(v uuid.UUID) *ProductImageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProductImageCreate) SetNillableID(v *uuid.UUID) *ProductImageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProduct sets the "product" edge to the Product entity.
func (_c *ProductImageCreate) SetProduct(v *Product) *ProductImageCreate {
	return _c.SetProductID(v.ID)
}

// Mutation returns the ProductImageMutation object of the builder.
func (_c *ProductImageCreate) Mutation() *ProductImageMutation {
	return _c.mutation
}

// Save creates the ProductImage in the database.
func (_c *ProductImageCreate) Save(ctx context.Context) (*ProductImage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProductImageCreate) SaveX(ctx context.Context) *ProductImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductImageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductImageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProductImageCreate) defaults() {
	if _, ok := _c.mutation.Sequence(); !ok {
		v := productimage.DefaultSequence
		_c.mutation.SetSequence(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := productimage.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := productimage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := productimage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProductImageCreate) check() error {
	if _, ok := _c.mutation.ProductID(); !ok {
		return &ValidationError{Name: "product_id", err: errors.New(`ent: missing required field "ProductImage.product_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "ProductImage.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := productimage.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ProductImage.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "ProductImage.storage_path"`)}
	}
	if v, ok := _c.mutation.StoragePath(); ok {
		if err := productimage.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "ProductImage.storage_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImageType(); !ok {
		return &ValidationError{Name: "image_type", err: errors.New(`ent: missing required field "ProductImage.image_type"`)}
	}
	if v, ok := _c.mutation.ImageType(); ok {
		if err := productimage.ImageTypeValidator(v); err != nil {
			return &ValidationError{Name: "image_type", err: fmt.Errorf(`ent: validator failed for field "ProductImage.image_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProductImage.sequence"`)}
	}
	if v, ok := _c.mutation.Sequence(); ok {
		if err := productimage.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "ProductImage.sequence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "ProductImage.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProductImage.created_at"`)}
	}
	if len(_c.mutation.ProductIDs()) == 0 {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required edge "ProductImage.product"`)}
	}
	return nil
}

func (_c *ProductImageCreate) sqlSave(ctx context.Context) (*ProductImage, error) {
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

func (_c *ProductImageCreate) createSpec() (*ProductImage, *sqlgraph.CreateSpec) {
	var (
		_node = &ProductImage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(productimage.Table, sqlgraph.NewFieldSpec(productimage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(productimage.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(productimage.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.ImageType(); ok {
		_spec.SetField(productimage.FieldImageType, field.TypeString, value)
		_node.ImageType = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(productimage.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(productimage.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(productimage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProductIDs(); len(nodes) > 0 {
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
		_node.ProductID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProductImageCreateBulk is the builder for creating many ProductImage entities in bulk.
type ProductImageCreateBulk struct {
	config
	err      error
	builders []*ProductImageCreate
}

// Save creates the ProductImage entities in the database.
func (_c *ProductImageCreateBulk) Save(ctx context.Context) ([]*ProductImage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProductImage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProductImageMutation)
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
func (_c *ProductImageCreateBulk) SaveX(ctx context.Context) []*ProductImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductImageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductImageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
