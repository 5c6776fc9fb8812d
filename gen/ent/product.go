// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ksarkisyan/catalog-intake/gen/ent/brand"
	"github.com/ksarkisyan/catalog-intake/gen/ent/product"
)

// Product is the model entity for the Product schema.
type Product struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Code holds the value of the "code" field.
	Code string `json:"code,omitempty"`
	// Color holds the value of the "color" field.
	Color string `json:"color,omitempty"`
	// BrandID holds the value of the "brand_id" field.
	BrandID *uuid.UUID `json:"brand_id,omitempty"`
	// ProductType holds the value of the "product_type" field.
	ProductType *string `json:"product_type,omitempty"`
	// SizeRange holds the value of the "size_range" field.
	SizeRange *string `json:"size_range,omitempty"`
	// Price holds the value of the "price" field.
	Price *float64 `json:"price,omitempty"`
	// Material holds the value of the "material" field.
	Material *string `json:"material,omitempty"`
	// Barcode holds the value of the "barcode" field.
	Barcode *string `json:"barcode,omitempty"`
	// SecondaryCode holds the value of the "secondary_code" field.
	SecondaryCode *string `json:"secondary_code,omitempty"`
	// SecondaryColor holds the value of the "secondary_color" field.
	SecondaryColor *string `json:"secondary_color,omitempty"`
	// SecondarySizeRange holds the value of the "secondary_size_range" field.
	SecondarySizeRange *string `json:"secondary_size_range,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// IsProcessed holds the value of the "is_processed" field.
	IsProcessed bool `json:"is_processed,omitempty"`
	// TelegramSent holds the value of the "telegram_sent" field.
	TelegramSent bool `json:"telegram_sent,omitempty"`
	// CollageFingerprint holds the value of the "collage_fingerprint" field.
	CollageFingerprint *string `json:"collage_fingerprint,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProductQuery when eager-loading is set.
	Edges        ProductEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProductEdges holds the relations/edges for other nodes in the graph.
type ProductEdges struct {
	// Brand holds the value of the brand edge.
	Brand *Brand `json:"brand,omitempty"`
	// Images holds the value of the images edge.
	Images []*ProductImage `json:"images,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BrandOrErr returns the Brand value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProductEdges) BrandOrErr() (*Brand, error) {
	if e.Brand != nil {
		return e.Brand, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: brand.Label}
	}
	return nil, &NotLoadedError{edge: "brand"}
}

// ImagesOrErr returns the Images value or an error if the edge
// was not loaded in eager-loading.
func (e ProductEdges) ImagesOrErr() ([]*ProductImage, error) {
	if e.loadedTypes[1] {
		return e.Images, nil
	}
	return nil, &NotLoadedError{edge: "images"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Product) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case product.FieldBrandID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case product.FieldIsActive, product.FieldIsProcessed, product.FieldTelegramSent:
			values[i] = new(sql.NullBool)
		case product.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case product.FieldCode, product.FieldColor, product.FieldProductType, product.FieldSizeRange, product.FieldMaterial, product.FieldBarcode, product.FieldSecondaryCode, product.FieldSecondaryColor, product.FieldSecondarySizeRange, product.FieldCollageFingerprint:
			values[i] = new(sql.NullString)
		case product.FieldCreatedAt, product.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case product.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Product fields.
func (_m *Product) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case product.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case product.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case product.FieldColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color", values[i])
			} else if value.Valid {
				_m.Color = value.String
			}
		case product.FieldBrandID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field brand_id", values[i])
			} else if value.Valid {
				_m.BrandID = new(uuid.UUID)
				*_m.BrandID = *value.S.(*uuid.UUID)
			}
		case product.FieldProductType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_type", values[i])
			} else if value.Valid {
				_m.ProductType = new(string)
				*_m.ProductType = value.String
			}
		case product.FieldSizeRange:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field size_range", values[i])
			} else if value.Valid {
				_m.SizeRange = new(string)
				*_m.SizeRange = value.String
			}
		case product.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = new(float64)
				*_m.Price = value.Float64
			}
		case product.FieldMaterial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field material", values[i])
			} else if value.Valid {
				_m.Material = new(string)
				*_m.Material = value.String
			}
		case product.FieldBarcode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field barcode", values[i])
			} else if value.Valid {
				_m.Barcode = new(string)
				*_m.Barcode = value.String
			}
		case product.FieldSecondaryCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secondary_code", values[i])
			} else if value.Valid {
				_m.SecondaryCode = new(string)
				*_m.SecondaryCode = value.String
			}
		case product.FieldSecondaryColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secondary_color", values[i])
			} else if value.Valid {
				_m.SecondaryColor = new(string)
				*_m.SecondaryColor = value.String
			}
		case product.FieldSecondarySizeRange:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secondary_size_range", values[i])
			} else if value.Valid {
				_m.SecondarySizeRange = new(string)
				*_m.SecondarySizeRange = value.String
			}
		case product.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case product.FieldIsProcessed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_processed", values[i])
			} else if value.Valid {
				_m.IsProcessed = value.Bool
			}
		case product.FieldTelegramSent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field telegram_sent", values[i])
			} else if value.Valid {
				_m.TelegramSent = value.Bool
			}
		case product.FieldCollageFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field collage_fingerprint", values[i])
			} else if value.Valid {
				_m.CollageFingerprint = new(string)
				*_m.CollageFingerprint = value.String
			}
		case product.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case product.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Product.
// This includes values selected through modifiers, order, etc.
func (_m *Product) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBrand queries the "brand" edge of the Product entity.
func (_m *Product) QueryBrand() *BrandQuery {
	return NewProductClient(_m.config).QueryBrand(_m)
}

// QueryImages queries the "images" edge of the Product entity.
func (_m *Product) QueryImages() *ProductImageQuery {
	return NewProductClient(_m.config).QueryImages(_m)
}

// Update returns a builder for updating this Product.
// Note that you need to call Product.Unwrap() before calling this method if this Product
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Product) Update() *ProductUpdateOne {
	return NewProductClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Product entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Product) Unwrap() *Product {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Product is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Product) String() string {
	var builder strings.Builder
	builder.WriteString("Product(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("color=")
	builder.WriteString(_m.Color)
	builder.WriteString(", ")
	if v := _m.BrandID; v != nil {
		builder.WriteString("brand_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ProductType; v != nil {
		builder.WriteString("product_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SizeRange; v != nil {
		builder.WriteString("size_range=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Price; v != nil {
		builder.WriteString("price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Material; v != nil {
		builder.WriteString("material=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Barcode; v != nil {
		builder.WriteString("barcode=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SecondaryCode; v != nil {
		builder.WriteString("secondary_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SecondaryColor; v != nil {
		builder.WriteString("secondary_color=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SecondarySizeRange; v != nil {
		builder.WriteString("secondary_size_range=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("is_processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsProcessed))
	builder.WriteString(", ")
	builder.WriteString("telegram_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.TelegramSent))
	builder.WriteString(", ")
	if v := _m.CollageFingerprint; v != nil {
		builder.WriteString("collage_fingerprint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Products is a parsable slice of Product.
type Products []*Product
