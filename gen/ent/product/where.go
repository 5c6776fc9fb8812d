// Code generated by ent, DO NOT EDIT.

package product

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/ksarkisyan/catalog-intake/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldID, id))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCode, v))
}

// Color applies equality check predicate on the "color" field. It's identical to ColorEQ.
func Color(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldColor, v))
}

// BrandID applies equality check predicate on the "brand_id" field. It's identical to BrandIDEQ.
func BrandID(v uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldBrandID, v))
}

// ProductType applies equality check predicate on the "product_type" field. It's identical to ProductTypeEQ.
func ProductType(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldProductType, v))
}

// SizeRange applies equality check predicate on the "size_range" field. It's identical to SizeRangeEQ.
func SizeRange(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSizeRange, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldPrice, v))
}

// Material applies equality check predicate on the "material" field. It's identical to MaterialEQ.
func Material(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldMaterial, v))
}

// Barcode applies equality check predicate on the "barcode" field. It's identical to BarcodeEQ.
func Barcode(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldBarcode, v))
}

// SecondaryCode applies equality check predicate on the "secondary_code" field. It's identical to SecondaryCodeEQ.
func SecondaryCode(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSecondaryCode, v))
}

// SecondaryColor applies equality check predicate on the "secondary_color" field. It's identical to SecondaryColorEQ.
func SecondaryColor(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSecondaryColor, v))
}

// SecondarySizeRange applies equality check predicate on the "secondary_size_range" field. It's identical to SecondarySizeRangeEQ.
func SecondarySizeRange(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSecondarySizeRange, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldIsActive, v))
}

// IsProcessed applies equality check predicate on the "is_processed" field. It's identical to IsProcessedEQ.
func IsProcessed(v bool) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldIsProcessed, v))
}

// TelegramSent applies equality check predicate on the "telegram_sent" field. It's identical to TelegramSentEQ.
func TelegramSent(v bool) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldTelegramSent, v))
}

// CollageFingerprint applies equality check predicate on the "collage_fingerprint" field. It's identical to CollageFingerprintEQ.
func CollageFingerprint(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCollageFingerprint, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUpdatedAt, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldCode, v))
}

// ColorEQ applies the EQ predicate on the "color" field.
func ColorEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldColor, v))
}

// ColorNEQ applies the NEQ predicate on the "color" field.
func ColorNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldColor, v))
}

// ColorIn applies the In predicate on the "color" field.
func ColorIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldColor, vs...))
}

// ColorNotIn applies the NotIn predicate on the "color" field.
func ColorNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldColor, vs...))
}

// ColorGT applies the GT predicate on the "color" field.
func ColorGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldColor, v))
}

// ColorGTE applies the GTE predicate on the "color" field.
func ColorGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldColor, v))
}

// ColorLT applies the LT predicate on the "color" field.
func ColorLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldColor, v))
}

// ColorLTE applies the LTE predicate on the "color" field.
func ColorLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldColor, v))
}

// ColorContains applies the Contains predicate on the "color" field.
func ColorContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldColor, v))
}

// ColorHasPrefix applies the HasPrefix predicate on the "color" field.
func ColorHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldColor, v))
}

// ColorHasSuffix applies the HasSuffix predicate on the "color" field.
func ColorHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldColor, v))
}

// ColorEqualFold applies the EqualFold predicate on the "color" field.
func ColorEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldColor, v))
}

// ColorContainsFold applies the ContainsFold predicate on the "color" field.
func ColorContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldColor, v))
}

// BrandIDEQ applies the EQ predicate on the "brand_id" field.
func BrandIDEQ(v uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldBrandID, v))
}

// BrandIDNEQ applies the NEQ predicate on the "brand_id" field.
func BrandIDNEQ(v uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldBrandID, v))
}

// BrandIDIn applies the In predicate on the "brand_id" field.
func BrandIDIn(vs ...uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldBrandID, vs...))
}

// BrandIDNotIn applies the NotIn predicate on the "brand_id" field.
func BrandIDNotIn(vs ...uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldBrandID, vs...))
}

// BrandIDIsNil applies the IsNil predicate on the "brand_id" field.
func BrandIDIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldBrandID))
}

// BrandIDNotNil applies the NotNil predicate on the "brand_id" field.
func BrandIDNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldBrandID))
}

// ProductTypeEQ applies the EQ predicate on the "product_type" field.
func ProductTypeEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldProductType, v))
}

// ProductTypeNEQ applies the NEQ predicate on the "product_type" field.
func ProductTypeNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldProductType, v))
}

// ProductTypeIn applies the In predicate on the "product_type" field.
func ProductTypeIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldProductType, vs...))
}

// ProductTypeNotIn applies the NotIn predicate on the "product_type" field.
func ProductTypeNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldProductType, vs...))
}

// ProductTypeGT applies the GT predicate on the "product_type" field.
func ProductTypeGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldProductType, v))
}

// ProductTypeGTE applies the GTE predicate on the "product_type" field.
func ProductTypeGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldProductType, v))
}

// ProductTypeLT applies the LT predicate on the "product_type" field.
func ProductTypeLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldProductType, v))
}

// ProductTypeLTE applies the LTE predicate on the "product_type" field.
func ProductTypeLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldProductType, v))
}

// ProductTypeContains applies the Contains predicate on the "product_type" field.
func ProductTypeContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldProductType, v))
}

// ProductTypeHasPrefix applies the HasPrefix predicate on the "product_type" field.
func ProductTypeHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldProductType, v))
}

// ProductTypeHasSuffix applies the HasSuffix predicate on the "product_type" field.
func ProductTypeHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldProductType, v))
}

// ProductTypeIsNil applies the IsNil predicate on the "product_type" field.
func ProductTypeIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldProductType))
}

// ProductTypeNotNil applies the NotNil predicate on the "product_type" field.
func ProductTypeNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldProductType))
}

// ProductTypeEqualFold applies the EqualFold predicate on the "product_type" field.
func ProductTypeEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldProductType, v))
}

// ProductTypeContainsFold applies the ContainsFold predicate on the "product_type" field.
func ProductTypeContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldProductType, v))
}

// SizeRangeEQ applies the EQ predicate on the "size_range" field.
func SizeRangeEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSizeRange, v))
}

// SizeRangeNEQ applies the NEQ predicate on the "size_range" field.
func SizeRangeNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldSizeRange, v))
}

// SizeRangeIn applies the In predicate on the "size_range" field.
func SizeRangeIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldSizeRange, vs...))
}

// SizeRangeNotIn applies the NotIn predicate on the "size_range" field.
func SizeRangeNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldSizeRange, vs...))
}

// SizeRangeGT applies the GT predicate on the "size_range" field.
func SizeRangeGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldSizeRange, v))
}

// SizeRangeGTE applies the GTE predicate on the "size_range" field.
func SizeRangeGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldSizeRange, v))
}

// SizeRangeLT applies the LT predicate on the "size_range" field.
func SizeRangeLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldSizeRange, v))
}

// SizeRangeLTE applies the LTE predicate on the "size_range" field.
func SizeRangeLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldSizeRange, v))
}

// SizeRangeContains applies the Contains predicate on the "size_range" field.
func SizeRangeContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldSizeRange, v))
}

// SizeRangeHasPrefix applies the HasPrefix predicate on the "size_range" field.
func SizeRangeHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldSizeRange, v))
}

// SizeRangeHasSuffix applies the HasSuffix predicate on the "size_range" field.
func SizeRangeHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldSizeRange, v))
}

// SizeRangeIsNil applies the IsNil predicate on the "size_range" field.
func SizeRangeIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldSizeRange))
}

// SizeRangeNotNil applies the NotNil predicate on the "size_range" field.
func SizeRangeNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldSizeRange))
}

// SizeRangeEqualFold applies the EqualFold predicate on the "size_range" field.
func SizeRangeEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldSizeRange, v))
}

// SizeRangeContainsFold applies the ContainsFold predicate on the "size_range" field.
func SizeRangeContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldSizeRange, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldPrice, v))
}

// PriceIsNil applies the IsNil predicate on the "price" field.
func PriceIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldPrice))
}

// PriceNotNil applies the NotNil predicate on the "price" field.
func PriceNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldPrice))
}

// MaterialEQ applies the EQ predicate on the "material" field.
func MaterialEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldMaterial, v))
}

// MaterialNEQ applies the NEQ predicate on the "material" field.
func MaterialNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldMaterial, v))
}

// MaterialIn applies the In predicate on the "material" field.
func MaterialIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldMaterial, vs...))
}

// MaterialNotIn applies the NotIn predicate on the "material" field.
func MaterialNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldMaterial, vs...))
}

// MaterialGT applies the GT predicate on the "material" field.
func MaterialGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldMaterial, v))
}

// MaterialGTE applies the GTE predicate on the "material" field.
func MaterialGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldMaterial, v))
}

// MaterialLT applies the LT predicate on the "material" field.
func MaterialLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldMaterial, v))
}

// MaterialLTE applies the LTE predicate on the "material" field.
func MaterialLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldMaterial, v))
}

// MaterialContains applies the Contains predicate on the "material" field.
func MaterialContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldMaterial, v))
}

// MaterialHasPrefix applies the HasPrefix predicate on the "material" field.
func MaterialHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldMaterial, v))
}

// MaterialHasSuffix applies the HasSuffix predicate on the "material" field.
func MaterialHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldMaterial, v))
}

// MaterialIsNil applies the IsNil predicate on the "material" field.
func MaterialIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldMaterial))
}

// MaterialNotNil applies the NotNil predicate on the "material" field.
func MaterialNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldMaterial))
}

// MaterialEqualFold applies the EqualFold predicate on the "material" field.
func MaterialEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldMaterial, v))
}

// MaterialContainsFold applies the ContainsFold predicate on the "material" field.
func MaterialContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldMaterial, v))
}

// BarcodeEQ applies the EQ predicate on the "barcode" field.
func BarcodeEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldBarcode, v))
}

// BarcodeNEQ applies the NEQ predicate on the "barcode" field.
func BarcodeNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldBarcode, v))
}

// BarcodeIn applies the In predicate on the "barcode" field.
func BarcodeIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldBarcode, vs...))
}

// BarcodeNotIn applies the NotIn predicate on the "barcode" field.
func BarcodeNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldBarcode, vs...))
}

// BarcodeGT applies the GT predicate on the "barcode" field.
func BarcodeGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldBarcode, v))
}

// BarcodeGTE applies the GTE predicate on the "barcode" field.
func BarcodeGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldBarcode, v))
}

// BarcodeLT applies the LT predicate on the "barcode" field.
func BarcodeLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldBarcode, v))
}

// BarcodeLTE applies the LTE predicate on the "barcode" field.
func BarcodeLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldBarcode, v))
}

// BarcodeContains applies the Contains predicate on the "barcode" field.
func BarcodeContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldBarcode, v))
}

// BarcodeHasPrefix applies the HasPrefix predicate on the "barcode" field.
func BarcodeHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldBarcode, v))
}

// BarcodeHasSuffix applies the HasSuffix predicate on the "barcode" field.
func BarcodeHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldBarcode, v))
}

// BarcodeIsNil applies the IsNil predicate on the "barcode" field.
func BarcodeIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldBarcode))
}

// BarcodeNotNil applies the NotNil predicate on the "barcode" field.
func BarcodeNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldBarcode))
}

// BarcodeEqualFold applies the EqualFold predicate on the "barcode" field.
func BarcodeEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldBarcode, v))
}

// BarcodeContainsFold applies the ContainsFold predicate on the "barcode" field.
func BarcodeContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldBarcode, v))
}

// SecondaryCodeEQ applies the EQ predicate on the "secondary_code" field.
func SecondaryCodeEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSecondaryCode, v))
}

// SecondaryCodeNEQ applies the NEQ predicate on the "secondary_code" field.
func SecondaryCodeNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldSecondaryCode, v))
}

// SecondaryCodeIn applies the In predicate on the "secondary_code" field.
func SecondaryCodeIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldSecondaryCode, vs...))
}

// SecondaryCodeNotIn applies the NotIn predicate on the "secondary_code" field.
func SecondaryCodeNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldSecondaryCode, vs...))
}

// SecondaryCodeGT applies the GT predicate on the "secondary_code" field.
func SecondaryCodeGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldSecondaryCode, v))
}

// SecondaryCodeGTE applies the GTE predicate on the "secondary_code" field.
func SecondaryCodeGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldSecondaryCode, v))
}

// SecondaryCodeLT applies the LT predicate on the "secondary_code" field.
func SecondaryCodeLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldSecondaryCode, v))
}

// SecondaryCodeLTE applies the LTE predicate on the "secondary_code" field.
func SecondaryCodeLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldSecondaryCode, v))
}

// SecondaryCodeContains applies the Contains predicate on the "secondary_code" field.
func SecondaryCodeContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldSecondaryCode, v))
}

// SecondaryCodeHasPrefix applies the HasPrefix predicate on the "secondary_code" field.
func SecondaryCodeHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldSecondaryCode, v))
}

// SecondaryCodeHasSuffix applies the HasSuffix predicate on the "secondary_code" field.
func SecondaryCodeHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldSecondaryCode, v))
}

// SecondaryCodeIsNil applies the IsNil predicate on the "secondary_code" field.
func SecondaryCodeIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldSecondaryCode))
}

// SecondaryCodeNotNil applies the NotNil predicate on the "secondary_code" field.
func SecondaryCodeNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldSecondaryCode))
}

// SecondaryCodeEqualFold applies the EqualFold predicate on the "secondary_code" field.
func SecondaryCodeEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldSecondaryCode, v))
}

// SecondaryCodeContainsFold applies the ContainsFold predicate on the "secondary_code" field.
func SecondaryCodeContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldSecondaryCode, v))
}

// SecondaryColorEQ applies the EQ predicate on the "secondary_color" field.
func SecondaryColorEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSecondaryColor, v))
}

// SecondaryColorNEQ applies the NEQ predicate on the "secondary_color" field.
func SecondaryColorNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldSecondaryColor, v))
}

// SecondaryColorIn applies the In predicate on the "secondary_color" field.
func SecondaryColorIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldSecondaryColor, vs...))
}

// SecondaryColorNotIn applies the NotIn predicate on the "secondary_color" field.
func SecondaryColorNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldSecondaryColor, vs...))
}

// SecondaryColorGT applies the GT predicate on the "secondary_color" field.
func SecondaryColorGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldSecondaryColor, v))
}

// SecondaryColorGTE applies the GTE predicate on the "secondary_color" field.
func SecondaryColorGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldSecondaryColor, v))
}

// SecondaryColorLT applies the LT predicate on the "secondary_color" field.
func SecondaryColorLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldSecondaryColor, v))
}

// SecondaryColorLTE applies the LTE predicate on the "secondary_color" field.
func SecondaryColorLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldSecondaryColor, v))
}

// SecondaryColorContains applies the Contains predicate on the "secondary_color" field.
func SecondaryColorContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldSecondaryColor, v))
}

// SecondaryColorHasPrefix applies the HasPrefix predicate on the "secondary_color" field.
func SecondaryColorHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldSecondaryColor, v))
}

// SecondaryColorHasSuffix applies the HasSuffix predicate on the "secondary_color" field.
func SecondaryColorHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldSecondaryColor, v))
}

// SecondaryColorIsNil applies the IsNil predicate on the "secondary_color" field.
func SecondaryColorIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldSecondaryColor))
}

// SecondaryColorNotNil applies the NotNil predicate on the "secondary_color" field.
func SecondaryColorNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldSecondaryColor))
}

// SecondaryColorEqualFold applies the EqualFold predicate on the "secondary_color" field.
func SecondaryColorEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldSecondaryColor, v))
}

// SecondaryColorContainsFold applies the ContainsFold predicate on the "secondary_color" field.
func SecondaryColorContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldSecondaryColor, v))
}

// SecondarySizeRangeEQ applies the EQ predicate on the "secondary_size_range" field.
func SecondarySizeRangeEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSecondarySizeRange, v))
}

// SecondarySizeRangeNEQ applies the NEQ predicate on the "secondary_size_range" field.
func SecondarySizeRangeNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldSecondarySizeRange, v))
}

// SecondarySizeRangeIn applies the In predicate on the "secondary_size_range" field.
func SecondarySizeRangeIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldSecondarySizeRange, vs...))
}

// SecondarySizeRangeNotIn applies the NotIn predicate on the "secondary_size_range" field.
func SecondarySizeRangeNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldSecondarySizeRange, vs...))
}

// SecondarySizeRangeGT applies the GT predicate on the "secondary_size_range" field.
func SecondarySizeRangeGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldSecondarySizeRange, v))
}

// SecondarySizeRangeGTE applies the GTE predicate on the "secondary_size_range" field.
func SecondarySizeRangeGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldSecondarySizeRange, v))
}

// SecondarySizeRangeLT applies the LT predicate on the "secondary_size_range" field.
func SecondarySizeRangeLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldSecondarySizeRange, v))
}

// SecondarySizeRangeLTE applies the LTE predicate on the "secondary_size_range" field.
func SecondarySizeRangeLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldSecondarySizeRange, v))
}

// SecondarySizeRangeContains applies the Contains predicate on the "secondary_size_range" field.
func SecondarySizeRangeContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldSecondarySizeRange, v))
}

// SecondarySizeRangeHasPrefix applies the HasPrefix predicate on the "secondary_size_range" field.
func SecondarySizeRangeHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldSecondarySizeRange, v))
}

// SecondarySizeRangeHasSuffix applies the HasSuffix predicate on the "secondary_size_range" field.
func SecondarySizeRangeHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldSecondarySizeRange, v))
}

// SecondarySizeRangeIsNil applies the IsNil predicate on the "secondary_size_range" field.
func SecondarySizeRangeIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldSecondarySizeRange))
}

// SecondarySizeRangeNotNil applies the NotNil predicate on the "secondary_size_range" field.
func SecondarySizeRangeNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldSecondarySizeRange))
}

// SecondarySizeRangeEqualFold applies the EqualFold predicate on the "secondary_size_range" field.
func SecondarySizeRangeEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldSecondarySizeRange, v))
}

// SecondarySizeRangeContainsFold applies the ContainsFold predicate on the "secondary_size_range" field.
func SecondarySizeRangeContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldSecondarySizeRange, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldIsActive, v))
}

// IsProcessedEQ applies the EQ predicate on the "is_processed" field.
func IsProcessedEQ(v bool) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldIsProcessed, v))
}

// IsProcessedNEQ applies the NEQ predicate on the "is_processed" field.
func IsProcessedNEQ(v bool) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldIsProcessed, v))
}

// TelegramSentEQ applies the EQ predicate on the "telegram_sent" field.
func TelegramSentEQ(v bool) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldTelegramSent, v))
}

// TelegramSentNEQ applies the NEQ predicate on the "telegram_sent" field.
func TelegramSentNEQ(v bool) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldTelegramSent, v))
}

// CollageFingerprintEQ applies the EQ predicate on the "collage_fingerprint" field.
func CollageFingerprintEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCollageFingerprint, v))
}

// CollageFingerprintNEQ applies the NEQ predicate on the "collage_fingerprint" field.
func CollageFingerprintNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldCollageFingerprint, v))
}

// CollageFingerprintIn applies the In predicate on the "collage_fingerprint" field.
func CollageFingerprintIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldCollageFingerprint, vs...))
}

// CollageFingerprintNotIn applies the NotIn predicate on the "collage_fingerprint" field.
func CollageFingerprintNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldCollageFingerprint, vs...))
}

// CollageFingerprintGT applies the GT predicate on the "collage_fingerprint" field.
func CollageFingerprintGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldCollageFingerprint, v))
}

// CollageFingerprintGTE applies the GTE predicate on the "collage_fingerprint" field.
func CollageFingerprintGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldCollageFingerprint, v))
}

// CollageFingerprintLT applies the LT predicate on the "collage_fingerprint" field.
func CollageFingerprintLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldCollageFingerprint, v))
}

// CollageFingerprintLTE applies the LTE predicate on the "collage_fingerprint" field.
func CollageFingerprintLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldCollageFingerprint, v))
}

// CollageFingerprintContains applies the Contains predicate on the "collage_fingerprint" field.
func CollageFingerprintContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldCollageFingerprint, v))
}

// CollageFingerprintHasPrefix applies the HasPrefix predicate on the "collage_fingerprint" field.
func CollageFingerprintHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldCollageFingerprint, v))
}

// CollageFingerprintHasSuffix applies the HasSuffix predicate on the "collage_fingerprint" field.
func CollageFingerprintHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldCollageFingerprint, v))
}

// CollageFingerprintIsNil applies the IsNil predicate on the "collage_fingerprint" field.
func CollageFingerprintIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldCollageFingerprint))
}

// CollageFingerprintNotNil applies the NotNil predicate on the "collage_fingerprint" field.
func CollageFingerprintNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldCollageFingerprint))
}

// CollageFingerprintEqualFold applies the EqualFold predicate on the "collage_fingerprint" field.
func CollageFingerprintEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldCollageFingerprint, v))
}

// CollageFingerprintContainsFold applies the ContainsFold predicate on the "collage_fingerprint" field.
func CollageFingerprintContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldCollageFingerprint, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBrand applies the HasEdge predicate on the "brand" edge.
func HasBrand() predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BrandTable, BrandColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBrandWith applies the HasEdge predicate on the "brand" edge with a given conditions (other predicates).
func HasBrandWith(preds ...predicate.Brand) predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := newBrandStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasImages applies the HasEdge predicate on the "images" edge.
func HasImages() predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ImagesTable, ImagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImagesWith applies the HasEdge predicate on the "images" edge with a given conditions (other predicates).
func HasImagesWith(preds ...predicate.ProductImage) predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := newImagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Product) predicate.Product {
	return predicate.Product(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Product) predicate.Product {
	return predicate.Product(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Product) predicate.Product {
	return predicate.Product(sql.NotPredicates(p))
}
