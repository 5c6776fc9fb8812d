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
	"github.com/ksarkisyan/catalog-intake/gen/ent/brand"
	"github.com/ksarkisyan/catalog-intake/gen/ent/predicate"
	"github.com/ksarkisyan/catalog-intake/gen/ent/product"
	"github.com/ksarkisyan/catalog-intake/gen/ent/productimage"
)

// ProductUpdate is the builder for updating Product entities.
type ProductUpdate struct {
	config
	hooks    []Hook
	mutation *ProductMutation
}

// Where appends a list predicates to the ProductUpdate builder.
func (_u *ProductUpdate) Where(ps ...predicate.Product) *ProductUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *ProductUpdate) SetCode(v string) *ProductUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableCode(v *string) *ProductUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetColor sets the "color" field.
func (_u *ProductUpdate) SetColor(v string) *ProductUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableColor(v *string) *ProductUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// SetBrandID sets the "brand_id" field.
func (_u *ProductUpdate) SetBrandID(v uuid.UUID) *ProductUpdate {
	_u.mutation.SetBrandID(v)
	return _u
}

// SetNillableBrandID sets the "brand_id" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableBrandID(v *uuid.UUID) *ProductUpdate {
	if v != nil {
		_u.SetBrandID(*v)
	}
	return _u
}

// ClearBrandID clears the value of the "brand_id" field.
func (_u *ProductUpdate) ClearBrandID() *ProductUpdate {
	_u.mutation.ClearBrandID()
	return _u
}

// SetProductType sets the "product_type" field.
func (_u *ProductUpdate) SetProductType(v string) *ProductUpdate {
	_u.mutation.SetProductType(v)
	return _u
}

// SetNillableProductType sets the "product_type" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableProductType(v *string) *ProductUpdate {
	if v != nil {
		_u.SetProductType(*v)
	}
	return _u
}

// ClearProductType clears the value of the "product_type" field.
func (_u *ProductUpdate) ClearProductType() *ProductUpdate {
	_u.mutation.ClearProductType()
	return _u
}

// SetSizeRange sets the "size_range" field.
func (_u *ProductUpdate) SetSizeRange(v string) *ProductUpdate {
	_u.mutation.SetSizeRange(v)
	return _u
}

// SetNillableSizeRange sets the "size_range" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableSizeRange(v *string) *ProductUpdate {
	if v != nil {
		_u.SetSizeRange(*v)
	}
	return _u
}

// ClearSizeRange clears the value of the "size_range" field.
func (_u *ProductUpdate) ClearSizeRange() *ProductUpdate {
	_u.mutation.ClearSizeRange()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ProductUpdate) SetPrice(v float64) *ProductUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ProductUpdate) SetNillablePrice(v *float64) *ProductUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ProductUpdate) AddPrice(v float64) *ProductUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *ProductUpdate) ClearPrice() *ProductUpdate {
	_u.mutation.ClearPrice()
	return _u
}

// SetMaterial sets the "material" field.
func (_u *ProductUpdate) SetMaterial(v string) *ProductUpdate {
	_u.mutation.SetMaterial(v)
	return _u
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableMaterial(v *string) *ProductUpdate {
	if v != nil {
		_u.SetMaterial(*v)
	}
	return _u
}

// ClearMaterial clears the value of the "material" field.
func (_u *ProductUpdate) ClearMaterial() *ProductUpdate {
	_u.mutation.ClearMaterial()
	return _u
}

// SetBarcode sets the "barcode" field.
func (_u *ProductUpdate) SetBarcode(v string) *ProductUpdate {
	_u.mutation.SetBarcode(v)
	return _u
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableBarcode(v *string) *ProductUpdate {
	if v != nil {
		_u.SetBarcode(*v)
	}
	return _u
}

// ClearBarcode clears the value of the "barcode" field.
func (_u *ProductUpdate) ClearBarcode() *ProductUpdate {
	_u.mutation.ClearBarcode()
	return _u
}

// SetSecondaryCode sets the "secondary_code" field.
func (_u *ProductUpdate) SetSecondaryCode(v string) *ProductUpdate {
	_u.mutation.SetSecondaryCode(v)
	return _u
}

// SetNillableSecondaryCode sets the "secondary_code" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableSecondaryCode(v *string) *ProductUpdate {
	if v != nil {
		_u.SetSecondaryCode(*v)
	}
	return _u
}

// ClearSecondaryCode clears the value of the "secondary_code" field.
func (_u *ProductUpdate) ClearSecondaryCode() *ProductUpdate {
	_u.mutation.ClearSecondaryCode()
	return _u
}

// SetSecondaryColor sets the "secondary_color" field.
func (_u *ProductUpdate) SetSecondaryColor(v string) *ProductUpdate {
	_u.mutation.SetSecondaryColor(v)
	return _u
}

// SetNillableSecondaryColor sets the "secondary_color" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableSecondaryColor(v *string) *ProductUpdate {
	if v != nil {
		_u.SetSecondaryColor(*v)
	}
	return _u
}

// ClearSecondaryColor clears the value of the "secondary_color" field.
func (_u *ProductUpdate) ClearSecondaryColor() *ProductUpdate {
	_u.mutation.ClearSecondaryColor()
	return _u
}

// SetSecondarySizeRange sets the "secondary_size_range" field.
func (_u *ProductUpdate) SetSecondarySizeRange(v string) *ProductUpdate {
	_u.mutation.SetSecondarySizeRange(v)
	return _u
}

// SetNillableSecondarySizeRange sets the "secondary_size_range" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableSecondarySizeRange(v *string) *ProductUpdate {
	if v != nil {
		_u.SetSecondarySizeRange(*v)
	}
	return _u
}

// ClearSecondarySizeRange clears the value of the "secondary_size_range" field.
func (_u *ProductUpdate) ClearSecondarySizeRange() *ProductUpdate {
	_u.mutation.ClearSecondarySizeRange()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ProductUpdate) SetIsActive(v bool) *ProductUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableIsActive(v *bool) *ProductUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsProcessed sets the "is_processed" field.
func (_u *ProductUpdate) SetIsProcessed(v bool) *ProductUpdate {
	_u.mutation.SetIsProcessed(v)
	return _u
}

// SetNillableIsProcessed sets the "is_processed" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableIsProcessed(v *bool) *ProductUpdate {
	if v != nil {
		_u.SetIsProcessed(*v)
	}
	return _u
}

// SetTelegramSent sets the "telegram_sent" field.
func (_u *ProductUpdate) SetTelegramSent(v bool) *ProductUpdate {
	_u.mutation.SetTelegramSent(v)
	return _u
}

// SetNillableTelegramSent sets the "telegram_sent" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableTelegramSent(v *bool) *ProductUpdate {
	if v != nil {
		_u.SetTelegramSent(*v)
	}
	return _u
}

// SetCollageFingerprint sets the "collage_fingerprint" field.
func (_u *ProductUpdate) SetCollageFingerprint(v string) *ProductUpdate {
	_u.mutation.SetCollageFingerprint(v)
	return _u
}

// SetNillableCollageFingerprint sets the "collage_fingerprint" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableCollageFingerprint(v *string) *ProductUpdate {
	if v != nil {
		_u.SetCollageFingerprint(*v)
	}
	return _u
}

// ClearCollageFingerprint clears the value of the "collage_fingerprint" field.
func (_u *ProductUpdate) ClearCollageFingerprint() *ProductUpdate {
	_u.mutation.ClearCollageFingerprint()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProductUpdate) SetCreatedAt(v time.Time) *ProductUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableCreatedAt(v *time.Time) *ProductUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductUpdate) SetUpdatedAt(v time.Time) *ProductUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBrand sets the "brand" edge to the Brand entity.
func (_u *ProductUpdate) SetBrand(v *Brand) *ProductUpdate {
	return _u.SetBrandID(v.ID)
}

// AddImageIDs adds the "images" edge to the ProductImage entity by IDs.
func (_u *ProductUpdate) AddImageIDs(ids ...uuid.UUID) *ProductUpdate {
	_u.mutation.AddImageIDs(ids...)
	return _u
}

// AddImages adds the "images" edges to the ProductImage entity.
func (_u *ProductUpdate) AddImages(v ...*ProductImage) *ProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_u *ProductUpdate) Mutation() *ProductMutation {
	return _u.mutation
}

// ClearBrand clears the "brand" edge to the Brand entity.
func (_u *ProductUpdate) ClearBrand() *ProductUpdate {
	_u.mutation.ClearBrand()
	return _u
}

// ClearImages clears all "images" edges to the ProductImage entity.
func (_u *ProductUpdate) ClearImages() *ProductUpdate {
	_u.mutation.ClearImages()
	return _u
}

// RemoveImageIDs removes the "images" edge to ProductImage entities by IDs.
func (_u *ProductUpdate) RemoveImageIDs(ids ...uuid.UUID) *ProductUpdate {
	_u.mutation.RemoveImageIDs(ids...)
	return _u
}

// RemoveImages removes "images" edges to ProductImage entities.
func (_u *ProductUpdate) RemoveImages(v ...*ProductImage) *ProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := product.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := product.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Product.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Color(); ok {
		if err := product.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`ent: validator failed for field "Product.color": %w`, err)}
		}
	}
	return nil
}

func (_u *ProductUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(product.Table, product.Columns, sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(product.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(product.FieldColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProductType(); ok {
		_spec.SetField(product.FieldProductType, field.TypeString, value)
	}
	if _u.mutation.ProductTypeCleared() {
		_spec.ClearField(product.FieldProductType, field.TypeString)
	}
	if value, ok := _u.mutation.SizeRange(); ok {
		_spec.SetField(product.FieldSizeRange, field.TypeString, value)
	}
	if _u.mutation.SizeRangeCleared() {
		_spec.ClearField(product.FieldSizeRange, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(product.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(product.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(product.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Material(); ok {
		_spec.SetField(product.FieldMaterial, field.TypeString, value)
	}
	if _u.mutation.MaterialCleared() {
		_spec.ClearField(product.FieldMaterial, field.TypeString)
	}
	if value, ok := _u.mutation.Barcode(); ok {
		_spec.SetField(product.FieldBarcode, field.TypeString, value)
	}
	if _u.mutation.BarcodeCleared() {
		_spec.ClearField(product.FieldBarcode, field.TypeString)
	}
	if value, ok := _u.mutation.SecondaryCode(); ok {
		_spec.SetField(product.FieldSecondaryCode, field.TypeString, value)
	}
	if _u.mutation.SecondaryCodeCleared() {
		_spec.ClearField(product.FieldSecondaryCode, field.TypeString)
	}
	if value, ok := _u.mutation.SecondaryColor(); ok {
		_spec.SetField(product.FieldSecondaryColor, field.TypeString, value)
	}
	if _u.mutation.SecondaryColorCleared() {
		_spec.ClearField(product.FieldSecondaryColor, field.TypeString)
	}
	if value, ok := _u.mutation.SecondarySizeRange(); ok {
		_spec.SetField(product.FieldSecondarySizeRange, field.TypeString, value)
	}
	if _u.mutation.SecondarySizeRangeCleared() {
		_spec.ClearField(product.FieldSecondarySizeRange, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(product.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsProcessed(); ok {
		_spec.SetField(product.FieldIsProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TelegramSent(); ok {
		_spec.SetField(product.FieldTelegramSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CollageFingerprint(); ok {
		_spec.SetField(product.FieldCollageFingerprint, field.TypeString, value)
	}
	if _u.mutation.CollageFingerprintCleared() {
		_spec.ClearField(product.FieldCollageFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(product.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BrandCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BrandIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagesIDs(); len(nodes) > 0 && !_u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{product.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductUpdateOne is the builder for updating a single Product entity.
type ProductUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductMutation
}

// SetCode sets the "code" field.
func (_u *ProductUpdateOne) SetCode(v string) *ProductUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableCode(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetColor sets the "color" field.
func (_u *ProductUpdateOne) SetColor(v string) *ProductUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableColor(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// SetBrandID sets the "brand_id" field.
func (_u *ProductUpdateOne) SetBrandID(v uuid.UUID) *ProductUpdateOne {
	_u.mutation.SetBrandID(v)
	return _u
}

// SetNillableBrandID sets the "brand_id" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableBrandID(v *uuid.UUID) *ProductUpdateOne {
	if v != nil {
		_u.SetBrandID(*v)
	}
	return _u
}

// ClearBrandID clears the value of the "brand_id" field.
func (_u *ProductUpdateOne) ClearBrandID() *ProductUpdateOne {
	_u.mutation.ClearBrandID()
	return _u
}

// SetProductType sets the "product_type" field.
func (_u *ProductUpdateOne) SetProductType(v string) *ProductUpdateOne {
	_u.mutation.SetProductType(v)
	return _u
}

// SetNillableProductType sets the "product_type" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableProductType(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetProductType(*v)
	}
	return _u
}

// ClearProductType clears the value of the "product_type" field.
func (_u *ProductUpdateOne) ClearProductType() *ProductUpdateOne {
	_u.mutation.ClearProductType()
	return _u
}

// SetSizeRange sets the "size_range" field.
func (_u *ProductUpdateOne) SetSizeRange(v string) *ProductUpdateOne {
	_u.mutation.SetSizeRange(v)
	return _u
}

// SetNillableSizeRange sets the "size_range" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableSizeRange(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetSizeRange(*v)
	}
	return _u
}

// ClearSizeRange clears the value of the "size_range" field.
func (_u *ProductUpdateOne) ClearSizeRange() *ProductUpdateOne {
	_u.mutation.ClearSizeRange()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ProductUpdateOne) SetPrice(v float64) *ProductUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillablePrice(v *float64) *ProductUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ProductUpdateOne) AddPrice(v float64) *ProductUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *ProductUpdateOne) ClearPrice() *ProductUpdateOne {
	_u.mutation.ClearPrice()
	return _u
}

// SetMaterial sets the "material" field.
func (_u *ProductUpdateOne) SetMaterial(v string) *ProductUpdateOne {
	_u.mutation.SetMaterial(v)
	return _u
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableMaterial(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetMaterial(*v)
	}
	return _u
}

// ClearMaterial clears the value of the "material" field.
func (_u *ProductUpdateOne) ClearMaterial() *ProductUpdateOne {
	_u.mutation.ClearMaterial()
	return _u
}

// SetBarcode sets the "barcode" field.
func (_u *ProductUpdateOne) SetBarcode(v string) *ProductUpdateOne {
	_u.mutation.SetBarcode(v)
	return _u
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableBarcode(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetBarcode(*v)
	}
	return _u
}

// ClearBarcode clears the value of the "barcode" field.
func (_u *ProductUpdateOne) ClearBarcode() *ProductUpdateOne {
	_u.mutation.ClearBarcode()
	return _u
}

// SetSecondaryCode sets the "secondary_code" field.
func (_u *ProductUpdateOne) SetSecondaryCode(v string) *ProductUpdateOne {
	_u.mutation.SetSecondaryCode(v)
	return _u
}

// SetNillableSecondaryCode sets the "secondary_code" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableSecondaryCode(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetSecondaryCode(*v)
	}
	return _u
}

// ClearSecondaryCode clears the value of the "secondary_code" field.
func (_u *ProductUpdateOne) ClearSecondaryCode() *ProductUpdateOne {
	_u.mutation.ClearSecondaryCode()
	return _u
}

// SetSecondaryColor sets the "secondary_color" field.
func (_u *ProductUpdateOne) SetSecondaryColor(v string) *ProductUpdateOne {
	_u.mutation.SetSecondaryColor(v)
	return _u
}

// SetNillableSecondaryColor sets the "secondary_color" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableSecondaryColor(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetSecondaryColor(*v)
	}
	return _u
}

// ClearSecondaryColor clears the value of the "secondary_color" field.
func (_u *ProductUpdateOne) ClearSecondaryColor() *ProductUpdateOne {
	_u.mutation.ClearSecondaryColor()
	return _u
}

// SetSecondarySizeRange sets the "secondary_size_range" field.
func (_u *ProductUpdateOne) SetSecondarySizeRange(v string) *ProductUpdateOne {
	_u.mutation.SetSecondarySizeRange(v)
	return _u
}

// SetNillableSecondarySizeRange sets the "secondary_size_range" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableSecondarySizeRange(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetSecondarySizeRange(*v)
	}
	return _u
}

// ClearSecondarySizeRange clears the value of the "secondary_size_range" field.
func (_u *ProductUpdateOne) ClearSecondarySizeRange() *ProductUpdateOne {
	_u.mutation.ClearSecondarySizeRange()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ProductUpdateOne) SetIsActive(v bool) *ProductUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableIsActive(v *bool) *ProductUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsProcessed sets the "is_processed" field.
func (_u *ProductUpdateOne) SetIsProcessed(v bool) *ProductUpdateOne {
	_u.mutation.SetIsProcessed(v)
	return _u
}

// SetNillableIsProcessed sets the "is_processed" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableIsProcessed(v *bool) *ProductUpdateOne {
	if v != nil {
		_u.SetIsProcessed(*v)
	}
	return _u
}

// SetTelegramSent sets the "telegram_sent" field.
func (_u *ProductUpdateOne) SetTelegramSent(v bool) *ProductUpdateOne {
	_u.mutation.SetTelegramSent(v)
	return _u
}

// SetNillableTelegramSent sets the "telegram_sent" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableTelegramSent(v *bool) *ProductUpdateOne {
	if v != nil {
		_u.SetTelegramSent(*v)
	}
	return _u
}

// SetCollageFingerprint sets the "collage_fingerprint" field.
func (_u *ProductUpdateOne) SetCollageFingerprint(v string) *ProductUpdateOne {
	_u.mutation.SetCollageFingerprint(v)
	return _u
}

// SetNillableCollageFingerprint sets the "collage_fingerprint" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableCollageFingerprint(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetCollageFingerprint(*v)
	}
	return _u
}

// ClearCollageFingerprint clears the value of the "collage_fingerprint" field.
func (_u *ProductUpdateOne) ClearCollageFingerprint() *ProductUpdateOne {
	_u.mutation.ClearCollageFingerprint()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProductUpdateOne) SetCreatedAt(v time.Time) *ProductUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableCreatedAt(v *time.Time) *ProductUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductUpdateOne) SetUpdatedAt(v time.Time) *ProductUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBrand sets the "brand" edge to the Brand entity.
func (_u *ProductUpdateOne) SetBrand(v *Brand) *ProductUpdateOne {
	return _u.SetBrandID(v.ID)
}

// AddImageIDs adds the "images" edge to the ProductImage entity by IDs.
func (_u *ProductUpdateOne) AddImageIDs(ids ...uuid.UUID) *ProductUpdateOne {
	_u.mutation.AddImageIDs(ids...)
	return _u
}

// AddImages adds the "images" edges to the ProductImage entity.
func (_u *ProductUpdateOne) AddImages(v ...*ProductImage) *ProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_u *ProductUpdateOne) Mutation() *ProductMutation {
	return _u.mutation
}

// ClearBrand clears the "brand" edge to the Brand entity.
func (_u *ProductUpdateOne) ClearBrand() *ProductUpdateOne {
	_u.mutation.ClearBrand()
	return _u
}

// ClearImages clears all "images" edges to the ProductImage entity.
func (_u *ProductUpdateOne) ClearImages() *ProductUpdateOne {
	_u.mutation.ClearImages()
	return _u
}

// RemoveImageIDs removes the "images" edge to ProductImage entities by IDs.
func (_u *ProductUpdateOne) RemoveImageIDs(ids ...uuid.UUID) *ProductUpdateOne {
	_u.mutation.RemoveImageIDs(ids...)
	return _u
}

// RemoveImages removes "images" edges to ProductImage entities.
func (_u *ProductUpdateOne) RemoveImages(v ...*ProductImage) *ProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageIDs(ids...)
}

// Where appends a list predicates to the ProductUpdate builder.
func (_u *ProductUpdateOne) Where(ps ...predicate.Product) *ProductUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductUpdateOne) Select(field string, fields ...string) *ProductUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Product entity.
func (_u *ProductUpdateOne) Save(ctx context.Context) (*Product, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductUpdateOne) SaveX(ctx context.Context) *Product {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := product.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := product.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Product.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Color(); ok {
		if err := product.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`ent: validator failed for field "Product.color": %w`, err)}
		}
	}
	return nil
}

func (_u *ProductUpdateOne) sqlSave(ctx context.Context) (_node *Product, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(product.Table, product.Columns, sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Product.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, product.FieldID)
		for _, f := range fields {
			if !product.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != product.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(product.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(product.FieldColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProductType(); ok {
		_spec.SetField(product.FieldProductType, field.TypeString, value)
	}
	if _u.mutation.ProductTypeCleared() {
		_spec.ClearField(product.FieldProductType, field.TypeString)
	}
	if value, ok := _u.mutation.SizeRange(); ok {
		_spec.SetField(product.FieldSizeRange, field.TypeString, value)
	}
	if _u.mutation.SizeRangeCleared() {
		_spec.ClearField(product.FieldSizeRange, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(product.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(product.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(product.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Material(); ok {
		_spec.SetField(product.FieldMaterial, field.TypeString, value)
	}
	if _u.mutation.MaterialCleared() {
		_spec.ClearField(product.FieldMaterial, field.TypeString)
	}
	if value, ok := _u.mutation.Barcode(); ok {
		_spec.SetField(product.FieldBarcode, field.TypeString, value)
	}
	if _u.mutation.BarcodeCleared() {
		_spec.ClearField(product.FieldBarcode, field.TypeString)
	}
	if value, ok := _u.mutation.SecondaryCode(); ok {
		_spec.SetField(product.FieldSecondaryCode, field.TypeString, value)
	}
	if _u.mutation.SecondaryCodeCleared() {
		_spec.ClearField(product.FieldSecondaryCode, field.TypeString)
	}
	if value, ok := _u.mutation.SecondaryColor(); ok {
		_spec.SetField(product.FieldSecondaryColor, field.TypeString, value)
	}
	if _u.mutation.SecondaryColorCleared() {
		_spec.ClearField(product.FieldSecondaryColor, field.TypeString)
	}
	if value, ok := _u.mutation.SecondarySizeRange(); ok {
		_spec.SetField(product.FieldSecondarySizeRange, field.TypeString, value)
	}
	if _u.mutation.SecondarySizeRangeCleared() {
		_spec.ClearField(product.FieldSecondarySizeRange, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(product.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsProcessed(); ok {
		_spec.SetField(product.FieldIsProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TelegramSent(); ok {
		_spec.SetField(product.FieldTelegramSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CollageFingerprint(); ok {
		_spec.SetField(product.FieldCollageFingerprint, field.TypeString, value)
	}
	if _u.mutation.CollageFingerprintCleared() {
		_spec.ClearField(product.FieldCollageFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(product.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BrandCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BrandIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagesIDs(); len(nodes) > 0 && !_u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Product{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{product.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
