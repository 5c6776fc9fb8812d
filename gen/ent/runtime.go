// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/ksarkisyan/catalog-intake/db/ent/schema"
	"github.com/ksarkisyan/catalog-intake/gen/ent/brand"
	"github.com/ksarkisyan/catalog-intake/gen/ent/product"
	"github.com/ksarkisyan/catalog-intake/gen/ent/productimage"
	"github.com/ksarkisyan/catalog-intake/gen/ent/uploadjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	brandFields := schema.Brand{}.Fields()
	_ = brandFields
	// brandDescName is the schema descriptor for name field.
	brandDescName := brandFields[1].Descriptor()
	// brand.NameValidator is a validator for the "name" field. It is called by the builders before save.
	brand.NameValidator = brandDescName.Validators[0].(func(string) error)
	// brandDescNormalizedName is the schema descriptor for normalized_name field.
	brandDescNormalizedName := brandFields[2].Descriptor()
	// brand.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	brand.NormalizedNameValidator = brandDescNormalizedName.Validators[0].(func(string) error)
	// brandDescIsActive is the schema descriptor for is_active field.
	brandDescIsActive := brandFields[3].Descriptor()
	// brand.DefaultIsActive holds the default value on creation for the is_active field.
	brand.DefaultIsActive = brandDescIsActive.Default.(bool)
	// brandDescCreatedAt is the schema descriptor for created_at field.
	brandDescCreatedAt := brandFields[4].Descriptor()
	// brand.DefaultCreatedAt holds the default value on creation for the created_at field.
	brand.DefaultCreatedAt = brandDescCreatedAt.Default.(func() time.Time)
	// brandDescUpdatedAt is the schema descriptor for updated_at field.
	brandDescUpdatedAt := brandFields[5].Descriptor()
	// brand.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	brand.DefaultUpdatedAt = brandDescUpdatedAt.Default.(func() time.Time)
	// brand.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	brand.UpdateDefaultUpdatedAt = brandDescUpdatedAt.UpdateDefault.(func() time.Time)
	// brandDescID is the schema descriptor for id field.
	brandDescID := brandFields[0].Descriptor()
	// brand.DefaultID holds the default value on creation for the id field.
	brand.DefaultID = brandDescID.Default.(func() uuid.UUID)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescCode is the schema descriptor for code field.
	productDescCode := productFields[1].Descriptor()
	// product.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	product.CodeValidator = productDescCode.Validators[0].(func(string) error)
	// productDescColor is the schema descriptor for color field.
	productDescColor := productFields[2].Descriptor()
	// product.ColorValidator is a validator for the "color" field. It is called by the builders before save.
	product.ColorValidator = productDescColor.Validators[0].(func(string) error)
	// productDescIsActive is the schema descriptor for is_active field.
	productDescIsActive := productFields[12].Descriptor()
	// product.DefaultIsActive holds the default value on creation for the is_active field.
	product.DefaultIsActive = productDescIsActive.Default.(bool)
	// productDescIsProcessed is the schema descriptor for is_processed field.
	productDescIsProcessed := productFields[13].Descriptor()
	// product.DefaultIsProcessed holds the default value on creation for the is_processed field.
	product.DefaultIsProcessed = productDescIsProcessed.Default.(bool)
	// productDescTelegramSent is the schema descriptor for telegram_sent field.
	productDescTelegramSent := productFields[14].Descriptor()
	// product.DefaultTelegramSent holds the default value on creation for the telegram_sent field.
	product.DefaultTelegramSent = productDescTelegramSent.Default.(bool)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[16].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	// productDescUpdatedAt is the schema descriptor for updated_at field.
	productDescUpdatedAt := productFields[17].Descriptor()
	// product.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	product.DefaultUpdatedAt = productDescUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	product.UpdateDefaultUpdatedAt = productDescUpdatedAt.UpdateDefault.(func() time.Time)
	// productDescID is the schema descriptor for id field.
	productDescID := productFields[0].Descriptor()
	// product.DefaultID holds the default value on creation for the id field.
	product.DefaultID = productDescID.Default.(func() uuid.UUID)
	productimageFields := schema.ProductImage{}.Fields()
	_ = productimageFields
	// productimageDescFilename is the schema descriptor for filename field.
	productimageDescFilename := productimageFields[2].Descriptor()
	// productimage.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	productimage.FilenameValidator = productimageDescFilename.Validators[0].(func(string) error)
	// productimageDescStoragePath is the schema descriptor for storage_path field.
	productimageDescStoragePath := productimageFields[3].Descriptor()
	// productimage.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	productimage.StoragePathValidator = productimageDescStoragePath.Validators[0].(func(string) error)
	// productimageDescImageType is the schema descriptor for image_type field.
	productimageDescImageType := productimageFields[4].Descriptor()
	// productimage.ImageTypeValidator is a validator for the "image_type" field. It is called by the builders before save.
	productimage.ImageTypeValidator = func() func(string) error {
		validators := productimageDescImageType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(image_type string) error {
			for _, fn := range fns {
				if err := fn(image_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// productimageDescSequence is the schema descriptor for sequence field.
	productimageDescSequence := productimageFields[5].Descriptor()
	// productimage.DefaultSequence holds the default value on creation for the sequence field.
	productimage.DefaultSequence = productimageDescSequence.Default.(int)
	// productimage.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	productimage.SequenceValidator = productimageDescSequence.Validators[0].(func(int) error)
	// productimageDescIsActive is the schema descriptor for is_active field.
	productimageDescIsActive := productimageFields[6].Descriptor()
	// productimage.DefaultIsActive holds the default value on creation for the is_active field.
	productimage.DefaultIsActive = productimageDescIsActive.Default.(bool)
	// productimageDescCreatedAt is the schema descriptor for created_at field.
	productimageDescCreatedAt := productimageFields[7].Descriptor()
	// productimage.DefaultCreatedAt holds the default value on creation for the created_at field.
	productimage.DefaultCreatedAt = productimageDescCreatedAt.Default.(func() time.Time)
	// productimageDescID is the schema descriptor for id field.
	productimageDescID := productimageFields[0].Descriptor()
	// productimage.DefaultID holds the default value on creation for the id field.
	productimage.DefaultID = productimageDescID.Default.(func() uuid.UUID)
	uploadjobFields := schema.UploadJob{}.Fields()
	_ = uploadjobFields
	// uploadjobDescTotalFiles is the schema descriptor for total_files field.
	uploadjobDescTotalFiles := uploadjobFields[1].Descriptor()
	// uploadjob.TotalFilesValidator is a validator for the "total_files" field. It is called by the builders before save.
	uploadjob.TotalFilesValidator = uploadjobDescTotalFiles.Validators[0].(func(int) error)
	// uploadjobDescProcessedFiles is the schema descriptor for processed_files field.
	uploadjobDescProcessedFiles := uploadjobFields[2].Descriptor()
	// uploadjob.DefaultProcessedFiles holds the default value on creation for the processed_files field.
	uploadjob.DefaultProcessedFiles = uploadjobDescProcessedFiles.Default.(int)
	// uploadjob.ProcessedFilesValidator is a validator for the "processed_files" field. It is called by the builders before save.
	uploadjob.ProcessedFilesValidator = uploadjobDescProcessedFiles.Validators[0].(func(int) error)
	// uploadjobDescFailedFiles is the schema descriptor for failed_files field.
	uploadjobDescFailedFiles := uploadjobFields[3].Descriptor()
	// uploadjob.DefaultFailedFiles holds the default value on creation for the failed_files field.
	uploadjob.DefaultFailedFiles = uploadjobDescFailedFiles.Default.(int)
	// uploadjob.FailedFilesValidator is a validator for the "failed_files" field. It is called by the builders before save.
	uploadjob.FailedFilesValidator = uploadjobDescFailedFiles.Validators[0].(func(int) error)
	// uploadjobDescSkippedFiles is the schema descriptor for skipped_files field.
	uploadjobDescSkippedFiles := uploadjobFields[4].Descriptor()
	// uploadjob.DefaultSkippedFiles holds the default value on creation for the skipped_files field.
	uploadjob.DefaultSkippedFiles = uploadjobDescSkippedFiles.Default.(int)
	// uploadjob.SkippedFilesValidator is a validator for the "skipped_files" field. It is called by the builders before save.
	uploadjob.SkippedFilesValidator = uploadjobDescSkippedFiles.Validators[0].(func(int) error)
	// uploadjobDescStatus is the schema descriptor for status field.
	uploadjobDescStatus := uploadjobFields[5].Descriptor()
	// uploadjob.DefaultStatus holds the default value on creation for the status field.
	uploadjob.DefaultStatus = uploadjobDescStatus.Default.(string)
	// uploadjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	uploadjob.StatusValidator = uploadjobDescStatus.Validators[0].(func(string) error)
	// uploadjobDescCreatedAt is the schema descriptor for created_at field.
	uploadjobDescCreatedAt := uploadjobFields[7].Descriptor()
	// uploadjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	uploadjob.DefaultCreatedAt = uploadjobDescCreatedAt.Default.(func() time.Time)
	// uploadjobDescID is the schema descriptor for id field.
	uploadjobDescID := uploadjobFields[0].Descriptor()
	// uploadjob.DefaultID holds the default value on creation for the id field.
	uploadjob.DefaultID = uploadjobDescID.Default.(func() uuid.UUID)
}
