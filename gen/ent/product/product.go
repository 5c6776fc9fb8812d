// Code generated by ent, DO NOT EDIT.

package product

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the product type in the database.
	Label = "product"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldColor holds the string denoting the color field in the database.
	FieldColor = "color"
	// FieldBrandID holds the string denoting the brand_id field in the database.
	FieldBrandID = "brand_id"
	// FieldProductType holds the string denoting the product_type field in the database.
	FieldProductType = "product_type"
	// FieldSizeRange holds the string denoting the size_range field in the database.
	FieldSizeRange = "size_range"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldMaterial holds the string denoting the material field in the database.
	FieldMaterial = "material"
	// FieldBarcode holds the string denoting the barcode field in the database.
	FieldBarcode = "barcode"
	// FieldSecondaryCode holds the string denoting the secondary_code field in the database.
	FieldSecondaryCode = "secondary_code"
	// FieldSecondaryColor holds the string denoting the secondary_color field in the database.
	FieldSecondaryColor = "secondary_color"
	// FieldSecondarySizeRange holds the string denoting the secondary_size_range field in the database.
	FieldSecondarySizeRange = "secondary_size_range"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldIsProcessed holds the string denoting the is_processed field in the database.
	FieldIsProcessed = "is_processed"
	// FieldTelegramSent holds the string denoting the telegram_sent field in the database.
	FieldTelegramSent = "telegram_sent"
	// FieldCollageFingerprint holds the string denoting the collage_fingerprint field in the database.
	FieldCollageFingerprint = "collage_fingerprint"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBrand holds the string denoting the brand edge name in mutations.
	EdgeBrand = "brand"
	// EdgeImages holds the string denoting the images edge name in mutations.
	EdgeImages = "images"
	// Table holds the table name of the product in the database.
	Table = "products"
	// BrandTable is the table that holds the brand relation/edge.
	BrandTable = "products"
	// BrandInverseTable is the table name for the Brand entity.
	// It exists in this package in order to avoid circular dependency with the "brand" package.
	BrandInverseTable = "brands"
	// BrandColumn is the table column denoting the brand relation/edge.
	BrandColumn = "brand_id"
	// ImagesTable is the table that holds the images relation/edge.
	ImagesTable = "product_images"
	// ImagesInverseTable is the table name for the ProductImage entity.
	// It exists in this package in order to avoid circular dependency with the "productimage" package.
	ImagesInverseTable = "product_images"
	// ImagesColumn is the table column denoting the images relation/edge.
	ImagesColumn = "product_id"
)

// Columns holds all SQL columns for product fields.
var Columns = []string{
	FieldID,
	FieldCode,
	FieldColor,
	FieldBrandID,
	FieldProductType,
	FieldSizeRange,
	FieldPrice,
	FieldMaterial,
	FieldBarcode,
	FieldSecondaryCode,
	FieldSecondaryColor,
	FieldSecondarySizeRange,
	FieldIsActive,
	FieldIsProcessed,
	FieldTelegramSent,
	FieldCollageFingerprint,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CodeValidator is a validator for the "code" field. It is called by the builders before save.
	CodeValidator func(string) error
	// ColorValidator is a validator for the "color" field. It is called by the builders before save.
	ColorValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultIsProcessed holds the default value on creation for the "is_processed" field.
	DefaultIsProcessed bool
	// DefaultTelegramSent holds the default value on creation for the "telegram_sent" field.
	DefaultTelegramSent bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Product queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByColor orders the results by the color field.
func ByColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColor, opts...).ToFunc()
}

// ByBrandID orders the results by the brand_id field.
func ByBrandID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandID, opts...).ToFunc()
}

// ByProductType orders the results by the product_type field.
func ByProductType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductType, opts...).ToFunc()
}

// BySizeRange orders the results by the size_range field.
func BySizeRange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeRange, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByMaterial orders the results by the material field.
func ByMaterial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaterial, opts...).ToFunc()
}

// ByBarcode orders the results by the barcode field.
func ByBarcode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBarcode, opts...).ToFunc()
}

// BySecondaryCode orders the results by the secondary_code field.
func BySecondaryCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecondaryCode, opts...).ToFunc()
}

// BySecondaryColor orders the results by the secondary_color field.
func BySecondaryColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecondaryColor, opts...).ToFunc()
}

// BySecondarySizeRange orders the results by the secondary_size_range field.
func BySecondarySizeRange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecondarySizeRange, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByIsProcessed orders the results by the is_processed field.
func ByIsProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsProcessed, opts...).ToFunc()
}

// ByTelegramSent orders the results by the telegram_sent field.
func ByTelegramSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelegramSent, opts...).ToFunc()
}

// ByCollageFingerprint orders the results by the collage_fingerprint field.
func ByCollageFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollageFingerprint, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBrandField orders the results by brand field.
func ByBrandField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBrandStep(), sql.OrderByField(field, opts...))
	}
}

// ByImagesCount orders the results by images count.
func ByImagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newImagesStep(), opts...)
	}
}

// ByImages orders the results by images terms.
func ByImages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBrandStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BrandInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BrandTable, BrandColumn),
	)
}
func newImagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ImagesTable, ImagesColumn),
	)
}
