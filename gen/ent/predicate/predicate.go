// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Brand is the predicate function for brand builders.
type Brand func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// ProductImage is the predicate function for productimage builders.
type ProductImage func(*sql.Selector)

// UploadJob is the predicate function for uploadjob builders.
type UploadJob func(*sql.Selector)
