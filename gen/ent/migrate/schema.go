// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BrandsColumns holds the columns for the "brands" table.
	BrandsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BrandsTable holds the schema information for the "brands" table.
	BrandsTable = &schema.Table{
		Name:       "brands",
		Columns:    BrandsColumns,
		PrimaryKey: []*schema.Column{BrandsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "brand_normalized_name",
				Unique:  false,
				Columns: []*schema.Column{BrandsColumns[2]},
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "code", Type: field.TypeString},
		{Name: "color", Type: field.TypeString},
		{Name: "product_type", Type: field.TypeString, Nullable: true},
		{Name: "size_range", Type: field.TypeString, Nullable: true},
		{Name: "price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "material", Type: field.TypeString, Nullable: true},
		{Name: "barcode", Type: field.TypeString, Nullable: true},
		{Name: "secondary_code", Type: field.TypeString, Nullable: true},
		{Name: "secondary_color", Type: field.TypeString, Nullable: true},
		{Name: "secondary_size_range", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "is_processed", Type: field.TypeBool, Default: false},
		{Name: "telegram_sent", Type: field.TypeBool, Default: false},
		{Name: "collage_fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "brand_id", Type: field.TypeUUID, Nullable: true},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "products_brands_products",
				Columns:    []*schema.Column{ProductsColumns[17]},
				RefColumns: []*schema.Column{BrandsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "product_code_color_brand_id",
				Unique:  true,
				Columns: []*schema.Column{ProductsColumns[1], ProductsColumns[2], ProductsColumns[17]},
			},
			{
				Name:    "product_is_active_is_processed",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[11], ProductsColumns[12]},
			},
		},
	}
	// ProductImagesColumns holds the columns for the "product_images" table.
	ProductImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "image_type", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "product_id", Type: field.TypeUUID},
	}
	// ProductImagesTable holds the schema information for the "product_images" table.
	ProductImagesTable = &schema.Table{
		Name:       "product_images",
		Columns:    ProductImagesColumns,
		PrimaryKey: []*schema.Column{ProductImagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "product_images_products_images",
				Columns:    []*schema.Column{ProductImagesColumns[7]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "productimage_product_id_image_type",
				Unique:  false,
				Columns: []*schema.Column{ProductImagesColumns[7], ProductImagesColumns[3]},
			},
			{
				Name:    "productimage_product_id_filename",
				Unique:  false,
				Columns: []*schema.Column{ProductImagesColumns[7], ProductImagesColumns[1]},
			},
		},
	}
	// UploadJobsColumns holds the columns for the "upload_jobs" table.
	UploadJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "total_files", Type: field.TypeInt},
		{Name: "processed_files", Type: field.TypeInt, Default: 0},
		{Name: "failed_files", Type: field.TypeInt, Default: 0},
		{Name: "skipped_files", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "phase_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// UploadJobsTable holds the schema information for the "upload_jobs" table.
	UploadJobsTable = &schema.Table{
		Name:       "upload_jobs",
		Columns:    UploadJobsColumns,
		PrimaryKey: []*schema.Column{UploadJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "uploadjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{UploadJobsColumns[5], UploadJobsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BrandsTable,
		ProductsTable,
		ProductImagesTable,
		UploadJobsTable,
	}
)

func init() {
	BrandsTable.Annotation = &entsql.Annotation{
		Table: "brands",
	}
	ProductsTable.ForeignKeys[0].RefTable = BrandsTable
	ProductsTable.Annotation = &entsql.Annotation{
		Table: "products",
	}
	ProductImagesTable.ForeignKeys[0].RefTable = ProductsTable
	ProductImagesTable.Annotation = &entsql.Annotation{
		Table: "product_images",
	}
	UploadJobsTable.Annotation = &entsql.Annotation{
		Table: "upload_jobs",
	}
}
