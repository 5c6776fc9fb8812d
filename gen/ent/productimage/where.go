// Code generated by ent, DO NOT EDIT.

package productimage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/ksarkisyan/catalog-intake/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldLTE(FieldID, id))
}

// ProductID applies equality check predicate on the "product_id" field. It's identical to ProductIDEQ.
func ProductID(v uuid.UUID) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldProductID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldFilename, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldStoragePath, v))
}

// ImageType applies equality check predicate on the "image_type" field. It's identical to ImageTypeEQ.
func ImageType(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldImageType, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldSequence, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldCreatedAt, v))
}

// ProductIDEQ applies the EQ predicate on the "product_id" field.
func ProductIDEQ(v uuid.UUID) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldProductID, v))
}

// ProductIDNEQ applies the NEQ predicate on the "product_id" field.
func ProductIDNEQ(v uuid.UUID) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNEQ(FieldProductID, v))
}

// ProductIDIn applies the In predicate on the "product_id" field.
func ProductIDIn(vs ...uuid.UUID) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldIn(FieldProductID, vs...))
}

// ProductIDNotIn applies the NotIn predicate on the "product_id" field.
func ProductIDNotIn(vs ...uuid.UUID) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNotIn(FieldProductID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldContainsFold(FieldFilename, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldContainsFold(FieldStoragePath, v))
}

// ImageTypeEQ applies the EQ predicate on the "image_type" field.
func ImageTypeEQ(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldImageType, v))
}

// ImageTypeNEQ applies the NEQ predicate on the "image_type" field.
func ImageTypeNEQ(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNEQ(FieldImageType, v))
}

// ImageTypeIn applies the In predicate on the "image_type" field.
func ImageTypeIn(vs ...string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldIn(FieldImageType, vs...))
}

// ImageTypeNotIn applies the NotIn predicate on the "image_type" field.
func ImageTypeNotIn(vs ...string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNotIn(FieldImageType, vs...))
}

// ImageTypeGT applies the GT predicate on the "image_type" field.
func ImageTypeGT(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldGT(FieldImageType, v))
}

// ImageTypeGTE applies the GTE predicate on the "image_type" field.
func ImageTypeGTE(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldGTE(FieldImageType, v))
}

// ImageTypeLT applies the LT predicate on the "image_type" field.
func ImageTypeLT(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldLT(FieldImageType, v))
}

// ImageTypeLTE applies the LTE predicate on the "image_type" field.
func ImageTypeLTE(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldLTE(FieldImageType, v))
}

// ImageTypeContains applies the Contains predicate on the "image_type" field.
func ImageTypeContains(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldContains(FieldImageType, v))
}

// ImageTypeHasPrefix applies the HasPrefix predicate on the "image_type" field.
func ImageTypeHasPrefix(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldHasPrefix(FieldImageType, v))
}

// ImageTypeHasSuffix applies the HasSuffix predicate on the "image_type" field.
func ImageTypeHasSuffix(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldHasSuffix(FieldImageType, v))
}

// ImageTypeEqualFold applies the EqualFold predicate on the "image_type" field.
func ImageTypeEqualFold(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEqualFold(FieldImageType, v))
}

// ImageTypeContainsFold applies the ContainsFold predicate on the "image_type" field.
func ImageTypeContainsFold(v string) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldContainsFold(FieldImageType, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldLTE(FieldSequence, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProductImage {
	return predicate.ProductImage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProduct applies the HasEdge predicate on the "product" edge.
func HasProduct() predicate.ProductImage {
	return predicate.ProductImage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductWith applies the HasEdge predicate on the "product" edge with a given conditions (other predicates).
func HasProductWith(preds ...predicate.Product) predicate.ProductImage {
	return predicate.ProductImage(func(s *sql.Selector) {
		step := newProductStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProductImage) predicate.ProductImage {
	return predicate.ProductImage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProductImage) predicate.ProductImage {
	return predicate.ProductImage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProductImage) predicate.ProductImage {
	return predicate.ProductImage(sql.NotPredicates(p))
}
