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
	"github.com/ksarkisyan/catalog-intake/gen/ent/brand"
	"github.com/ksarkisyan/catalog-intake/gen/ent/product"
	"github.com/ksarkisyan/catalog-intake/gen/ent/productimage"
)

// ProductCreate is the builder for creating a Product entity.
type ProductCreate struct {
	config
	mutation *ProductMutation
	hooks    []Hook
}

// SetCode sets the "code" field.
func (_c *ProductCreate) SetCode(v string) *ProductCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetColor sets the "color" field.
func (_c *ProductCreate) SetColor(v string) *ProductCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetBrandID sets the "brand_id" field.
func (_c *ProductCreate) SetBrandID(v uuid.UUID) *ProductCreate {
	_c.mutation.SetBrandID(v)
	return _c
}

// SetNillableBrandID sets the "brand_id" field if the given value is not nil.
func (_c *ProductCreate) SetNillableBrandID(v *uuid.UUID) *ProductCreate {
	if v != nil {
		_c.SetBrandID(*v)
	}
	return _c
}

// SetProductType sets the "product_type" field.
func (_c *ProductCreate) SetProductType(v string) *ProductCreate {
	_c.mutation.SetProductType(v)
	return _c
}

// SetNillableProductType sets the "product_type" field if the given value is not nil.
func (_c *ProductCreate) SetNillableProductType(v *string) *ProductCreate {
	if v != nil {
		_c.SetProductType(*v)
	}
	return _c
}

// SetSizeRange sets the "size_range" field.
func (_c *ProductCreate) SetSizeRange(v string) *ProductCreate {
	_c.mutation.SetSizeRange(v)
	return _c
}

// SetNillableSizeRange sets the "size_range" field if the given value is not nil.
func (_c *ProductCreate) SetNillableSizeRange(v *string) *ProductCreate {
	if v != nil {
		_c.SetSizeRange(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *ProductCreate) SetPrice(v float64) *ProductCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *ProductCreate) SetNillablePrice(v *float64) *ProductCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetMaterial sets the "material" field.
func (_c *ProductCreate) SetMaterial(v string) *ProductCreate {
	_c.mutation.SetMaterial(v)
	return _c
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (_c *ProductCreate) SetNillableMaterial(v *string) *ProductCreate {
	if v != nil {
		_c.SetMaterial(*v)
	}
	return _c
}

// SetBarcode sets the "barcode" field.
func (_c *ProductCreate) SetBarcode(v string) *ProductCreate {
	_c.mutation.SetBarcode(v)
	return _c
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_c *ProductCreate) SetNillableBarcode(v *string) *ProductCreate {
	if v != nil {
		_c.SetBarcode(*v)
	}
	return _c
}

// SetSecondaryCode sets the "secondary_code" field.
func (_c *ProductCreate) SetSecondaryCode(v string) *ProductCreate {
	_c.mutation.SetSecondaryCode(v)
	return _c
}

// SetNillableSecondaryCode sets the "secondary_code" field if the given value is not nil.
func (_c *ProductCreate) SetNillableSecondaryCode(v *string) *ProductCreate {
	if v != nil {
		_c.SetSecondaryCode(*v)
	}
	return _c
}

// SetSecondaryColor sets the "secondary_color" field.
func (_c *ProductCreate) SetSecondaryColor(v string) *ProductCreate {
	_c.mutation.SetSecondaryColor(v)
	return _c
}

// SetNillableSecondaryColor sets the "secondary_color" field if the given value is not nil.
func (_c *ProductCreate) SetNillableSecondaryColor(v *string) *ProductCreate {
	if v != nil {
		_c.SetSecondaryColor(*v)
	}
	return _c
}

// SetSecondarySizeRange sets the "secondary_size_range" field.
func (_c *ProductCreate) SetSecondarySizeRange(v string) *ProductCreate {
	_c.mutation.SetSecondarySizeRange(v)
	return _c
}

// SetNillableSecondarySizeRange sets the "secondary_size_range" field if the given value is not nil.
func (_c *ProductCreate) SetNillableSecondarySizeRange(v *string) *ProductCreate {
	if v != nil {
		_c.SetSecondarySizeRange(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ProductCreate) SetIsActive(v bool) *ProductCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ProductCreate) SetNillableIsActive(v *bool) *ProductCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetIsProcessed sets the "is_processed" field.
func (_c *ProductCreate) SetIsProcessed(v bool) *ProductCreate {
	_c.mutation.SetIsProcessed(v)
	return _c
}

// SetNillableIsProcessed sets the "is_processed" field if the given value is not nil.
func (_c *ProductCreate) SetNillableIsProcessed(v *bool) *ProductCreate {
	if v != nil {
		_c.SetIsProcessed(*v)
	}
	return _c
}

// SetTelegramSent sets the "telegram_sent" field.
func (_c *ProductCreate) SetTelegramSent(v bool) *ProductCreate {
	_c.mutation.SetTelegramSent(v)
	return _c
}

// SetNillableTelegramSent sets the "telegram_sent" field if the given value is not nil.
func (_c *ProductCreate) SetNillableTelegramSent(v *bool) *ProductCreate {
	if v != nil {
		_c.SetTelegramSent(*v)
	}
	return _c
}

// SetCollageFingerprint sets the "collage_fingerprint" field.
func (_c *ProductCreate) SetCollageFingerprint(v string) *ProductCreate {
	_c.mutation.SetCollageFingerprint(v)
	return _c
}

// SetNillableCollageFingerprint sets the "collage_fingerprint" field if the given value is not nil.
func (_c *ProductCreate) SetNillableCollageFingerprint(v *string) *ProductCreate {
	if v != nil {
		_c.SetCollageFingerprint(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProductCreate) SetCreatedAt(v time.Time) *ProductCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProductCreate) SetNillableCreatedAt(v *time.Time) *ProductCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProductCreate) SetUpdatedAt(v time.Time) *ProductCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProductCreate) SetNillableUpdatedAt(v *time.Time) *ProductCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProductCreate) SetID(v uuid.UUID) *ProductCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProductCreate) SetNillableID(v *uuid.UUID) *ProductCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBrand sets the "brand" edge to the Brand entity.
func (_c *ProductCreate) SetBrand(v *Brand) *ProductCreate {
	return _c.SetBrandID(v.ID)
}

// AddImageIDs adds the "images" edge to the ProductImage entity by IDs.
func (_c *ProductCreate) AddImageIDs(ids ...uuid.UUID) *ProductCreate {
	_c.mutation.AddImageIDs(ids...)
	return _c
}

// AddImages adds the "images" edges to the ProductImage entity.
func (_c *ProductCreate) AddImages(v ...*ProductImage) *ProductCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddImageIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_c *ProductCreate) Mutation() *ProductMutation {
	return _c.mutation
}

// Save creates the Product in the database.
func (_c *ProductCreate) Save(ctx context.Context) (*Product, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProductCreate) SaveX(ctx context.Context) *Product {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProductCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := product.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.IsProcessed(); !ok {
		v := product.DefaultIsProcessed
		_c.mutation.SetIsProcessed(v)
	}
	if _, ok := _c.mutation.TelegramSent(); !ok {
		v := product.DefaultTelegramSent
		_c.mutation.SetTelegramSent(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := product.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := product.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := product.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProductCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Product.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := product.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Product.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Color(); !ok {
		return &ValidationError{Name: "color", err: errors.New(`ent: missing required field "Product.color"`)}
	}
	if v, ok := _c.mutation.Color(); ok {
		if err := product.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`ent: validator failed for field "Product.color": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Product.is_active"`)}
	}
	if _, ok := _c.mutation.IsProcessed(); !ok {
		return &ValidationError{Name: "is_processed", err: errors.New(`ent: missing required field "Product.is_processed"`)}
	}
	if _, ok := _c.mutation.TelegramSent(); !ok {
		return &ValidationError{Name: "telegram_sent", err: errors.New(`ent: missing required field "Product.telegram_sent"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Product.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Product.updated_at"`)}
	}
	return nil
}

func (_c *ProductCreate) sqlSave(ctx context.Context) (*Product, error) {
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

func (_c *ProductCreate) createSpec() (*Product, *sqlgraph.CreateSpec) {
	var (
		_node = &Product{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(product.Table, sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(product.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(product.FieldColor, field.TypeString, value)
		_node.Color = value
	}
	if value, ok := _c.mutation.ProductType(); ok {
		_spec.SetField(product.FieldProductType, field.TypeString, value)
		_node.ProductType = &value
	}
	if value, ok := _c.mutation.SizeRange(); ok {
		_spec.SetField(product.FieldSizeRange, field.TypeString, value)
		_node.SizeRange = &value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(product.FieldPrice, field.TypeFloat64, value)
		_node.Price = &value
	}
	if value, ok := _c.mutation.Material(); ok {
		_spec.SetField(product.FieldMaterial, field.TypeString, value)
		_node.Material = &value
	}
	if value, ok := _c.mutation.Barcode(); ok {
		_spec.SetField(product.FieldBarcode, field.TypeString, value)
		_node.Barcode = &value
	}
	if value, ok := _c.mutation.SecondaryCode(); ok {
		_spec.SetField(product.FieldSecondaryCode, field.TypeString, value)
		_node.SecondaryCode = &value
	}
	if value, ok := _c.mutation.SecondaryColor(); ok {
		_spec.SetField(product.FieldSecondaryColor, field.TypeString, value)
		_node.SecondaryColor = &value
	}
	if value, ok := _c.mutation.SecondarySizeRange(); ok {
		_spec.SetField(product.FieldSecondarySizeRange, field.TypeString, value)
		_node.SecondarySizeRange = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(product.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.IsProcessed(); ok {
		_spec.SetField(product.FieldIsProcessed, field.TypeBool, value)
		_node.IsProcessed = value
	}
	if value, ok := _c.mutation.TelegramSent(); ok {
		_spec.SetField(product.FieldTelegramSent, field.TypeBool, value)
		_node.TelegramSent = value
	}
	if value, ok := _c.mutation.CollageFingerprint(); ok {
		_spec.SetField(product.FieldCollageFingerprint, field.TypeString, value)
		_node.CollageFingerprint = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(product.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BrandIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   product.BrandTable,
			Columns: []string{product.BrandColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(brand.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BrandID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ImagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.ImagesTable,
			Columns: []string{product.ImagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productimage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProductCreateBulk is the builder for creating many Product entities in bulk.
type ProductCreateBulk struct {
	config
	err      error
	builders []*ProductCreate
}

// Save creates the Product entities in the database.
func (_c *ProductCreateBulk) Save(ctx context.Context) ([]*Product, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Product, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProductMutation)
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
func (_c *ProductCreateBulk) SaveX(ctx context.Context) []*Product {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
