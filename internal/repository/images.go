package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/gen/ent"
	entimage "github.com/ksarkisyan/catalog-intake/gen/ent/productimage"
)

// ImageDraft carries the fields for a new product_image row.
type ImageDraft struct {
	ProductID   uuid.UUID
	Filename    string
	StoragePath string
	Type        constants.ImageType
	Sequence    int
}

type ProductImageRepository interface {
	Create(ctx context.Context, draft ImageDraft) (*ent.ProductImage, error)
	// ExistsByFilename reports whether the same filename is already
	// attached to the product (duplicate upload detection).
	ExistsByFilename(ctx context.Context, productID uuid.UUID, filename string) (bool, error)
	// ActiveCollage returns the current collage row, or (nil, nil).
	ActiveCollage(ctx context.Context, productID uuid.UUID) (*ent.ProductImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ListActiveItems returns active item-type images ordered by their
	// embedded run number ascending.
	ListActiveItems(ctx context.Context, productID uuid.UUID) ([]*ent.ProductImage, error)
}

type productImageRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewProductImageRepository(entc *ent.Client, logger *slog.Logger) ProductImageRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &productImageRepo{ent: entc, logger: logger}
}

func (r *productImageRepo) Create(ctx context.Context, draft ImageDraft) (*ent.ProductImage, error) {
	row, err := r.ent.ProductImage.Create().
		SetProductID(draft.ProductID).
		SetFilename(draft.Filename).
		SetStoragePath(draft.StoragePath).
		SetImageType(string(draft.Type)).
		SetSequence(draft.Sequence).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create product image", "product_id", draft.ProductID, "filename", draft.Filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *productImageRepo) ExistsByFilename(ctx context.Context, productID uuid.UUID, filename string) (bool, error) {
	return r.ent.ProductImage.Query().
		Where(
			entimage.ProductID(productID),
			entimage.Filename(filename),
			entimage.IsActive(true),
		).
		Exist(ctx)
}

func (r *productImageRepo) ActiveCollage(ctx context.Context, productID uuid.UUID) (*ent.ProductImage, error) {
	row, err := r.ent.ProductImage.Query().
		Where(
			entimage.ProductID(productID),
			entimage.ImageType(string(constants.ImageTypeCollage)),
			entimage.IsActive(true),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to query active collage", "product_id", productID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *productImageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.ProductImage.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete product image", "image_id", id, "error", err)
		return err
	}
	return nil
}

func (r *productImageRepo) ListActiveItems(ctx context.Context, productID uuid.UUID) ([]*ent.ProductImage, error) {
	rows, err := r.ent.ProductImage.Query().
		Where(
			entimage.ProductID(productID),
			entimage.ImageType(string(constants.ImageTypeItem)),
			entimage.IsActive(true),
		).
		Order(ent.Asc(entimage.FieldSequence), ent.Asc(entimage.FieldFilename)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list item images", "product_id", productID, "error", err)
		return nil, err
	}
	return rows, nil
}
