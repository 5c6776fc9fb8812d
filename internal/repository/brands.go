package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ksarkisyan/catalog-intake/gen/ent"
	entbrand "github.com/ksarkisyan/catalog-intake/gen/ent/brand"
)

type BrandRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Brand, error)
	// ListActive returns every active brand; the resolver matches
	// against the full set in memory.
	ListActive(ctx context.Context) ([]*ent.Brand, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name, normalizedName string) (*ent.Brand, error)
}

type brandRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewBrandRepository(entc *ent.Client, logger *slog.Logger) BrandRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &brandRepo{ent: entc, logger: logger}
}

func (r *brandRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Brand, error) {
	return r.ent.Brand.Get(ctx, id)
}

func (r *brandRepo) ListActive(ctx context.Context) ([]*ent.Brand, error) {
	rows, err := r.ent.Brand.Query().
		Where(entbrand.IsActive(true)).
		Order(ent.Asc(entbrand.FieldName)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list active brands", "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *brandRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.ent.Brand.Query().
		Where(entbrand.NameEqualFold(name), entbrand.IsActive(true)).
		Exist(ctx)
}

func (r *brandRepo) Create(ctx context.Context, name, normalizedName string) (*ent.Brand, error) {
	row, err := r.ent.Brand.Create().
		SetName(name).
		SetNormalizedName(normalizedName).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create brand", "name", name, "error", err)
		return nil, err
	}
	return row, nil
}
