package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ksarkisyan/catalog-intake/gen/ent"
	entproduct "github.com/ksarkisyan/catalog-intake/gen/ent/product"
)

// ProductDraft carries the fields for a new product row.
type ProductDraft struct {
	Code               string
	Color              string
	BrandID            *uuid.UUID
	ProductType        *string
	SizeRange          *string
	Price              *float64
	Material           *string
	Barcode            *string
	SecondaryCode      *string
	SecondaryColor     *string
	SecondarySizeRange *string
}

// ProductPatch is a typed update command: only non-nil fields are
// applied. Built by the resolver so that already-populated columns are
// never clobbered.
type ProductPatch struct {
	BrandID            *uuid.UUID
	ProductType        *string
	SizeRange          *string
	Price              *float64
	Material           *string
	Barcode            *string
	SecondaryCode      *string
	SecondaryColor     *string
	SecondarySizeRange *string
}

// IsEmpty reports whether the patch would change nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.BrandID == nil && p.ProductType == nil && p.SizeRange == nil &&
		p.Price == nil && p.Material == nil && p.Barcode == nil &&
		p.SecondaryCode == nil && p.SecondaryColor == nil && p.SecondarySizeRange == nil
}

type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Product, error)
	// FindActive looks up the single active product for a
	// (code, color, brand) triple. Returns (nil, nil) when absent.
	FindActive(ctx context.Context, code, color string, brandID uuid.UUID) (*ent.Product, error)
	Create(ctx context.Context, draft ProductDraft) (*ent.Product, error)
	Apply(ctx context.Context, id uuid.UUID, patch ProductPatch) (*ent.Product, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	MarkPublished(ctx context.Context, id uuid.UUID, fingerprint string) error
	List(ctx context.Context, from, to *time.Time) ([]*ent.Product, error)
}

type productRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewProductRepository(entc *ent.Client, logger *slog.Logger) ProductRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &productRepo{ent: entc, logger: logger}
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Product, error) {
	return r.ent.Product.Get(ctx, id)
}

func (r *productRepo) FindActive(ctx context.Context, code, color string, brandID uuid.UUID) (*ent.Product, error) {
	row, err := r.ent.Product.Query().
		Where(
			entproduct.Code(code),
			entproduct.Color(color),
			entproduct.BrandID(brandID),
			entproduct.IsActive(true),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to find product", "code", code, "color", color, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *productRepo) Create(ctx context.Context, draft ProductDraft) (*ent.Product, error) {
	row, err := r.ent.Product.Create().
		SetCode(draft.Code).
		SetColor(draft.Color).
		SetNillableBrandID(draft.BrandID).
		SetNillableProductType(draft.ProductType).
		SetNillableSizeRange(draft.SizeRange).
		SetNillablePrice(draft.Price).
		SetNillableMaterial(draft.Material).
		SetNillableBarcode(draft.Barcode).
		SetNillableSecondaryCode(draft.SecondaryCode).
		SetNillableSecondaryColor(draft.SecondaryColor).
		SetNillableSecondarySizeRange(draft.SecondarySizeRange).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create product", "code", draft.Code, "color", draft.Color, "error", err)
		return nil, err
	}
	r.logger.Info("product created", "product_id", row.ID, "code", row.Code, "color", row.Color)
	return row, nil
}

func (r *productRepo) Apply(ctx context.Context, id uuid.UUID, patch ProductPatch) (*ent.Product, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	row, err := r.ent.Product.UpdateOneID(id).
		SetNillableBrandID(patch.BrandID).
		SetNillableProductType(patch.ProductType).
		SetNillableSizeRange(patch.SizeRange).
		SetNillablePrice(patch.Price).
		SetNillableMaterial(patch.Material).
		SetNillableBarcode(patch.Barcode).
		SetNillableSecondaryCode(patch.SecondaryCode).
		SetNillableSecondaryColor(patch.SecondaryColor).
		SetNillableSecondarySizeRange(patch.SecondarySizeRange).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to apply product patch", "product_id", id, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *productRepo) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Product.UpdateOneID(id).
		SetIsProcessed(true).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark product processed", "product_id", id, "error", err)
	}
	return err
}

func (r *productRepo) MarkPublished(ctx context.Context, id uuid.UUID, fingerprint string) error {
	_, err := r.ent.Product.UpdateOneID(id).
		SetTelegramSent(true).
		SetCollageFingerprint(fingerprint).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark product published", "product_id", id, "error", err)
	}
	return err
}

func (r *productRepo) List(ctx context.Context, from, to *time.Time) ([]*ent.Product, error) {
	q := r.ent.Product.Query().
		Where(entproduct.IsActive(true)).
		Order(ent.Asc(entproduct.FieldCode), ent.Asc(entproduct.FieldColor))
	if from != nil {
		q = q.Where(entproduct.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entproduct.CreatedAtLTE(*to))
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list products", "error", err)
		return nil, err
	}
	return rows, nil
}
