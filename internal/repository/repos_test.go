package repository

import (
	"context"
	"database/sql"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/gen/ent"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	require.NoError(t, err)
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	require.NoError(t, client.Schema.Create(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestProductFindActiveAndPatch(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)

	brands := NewBrandRepository(client, nil)
	products := NewProductRepository(client, nil)

	brand, err := brands.Create(ctx, "Vera Moda", "veramoda")
	require.NoError(t, err)

	missing, err := products.FindActive(ctx, "VV-6124-B", "BROWN", brand.ID)
	require.NoError(t, err)
	require.Nil(t, missing)

	created, err := products.Create(ctx, ProductDraft{
		Code:    "VV-6124-B",
		Color:   "BROWN",
		BrandID: &brand.ID,
	})
	require.NoError(t, err)
	require.False(t, created.TelegramSent)

	found, err := products.FindActive(ctx, "VV-6124-B", "BROWN", brand.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)

	price := 24.0
	size := "36-42"
	patched, err := products.Apply(ctx, created.ID, ProductPatch{Price: &price, SizeRange: &size})
	require.NoError(t, err)
	require.NotNil(t, patched.Price)
	require.Equal(t, 24.0, *patched.Price)
	require.Equal(t, "36-42", *patched.SizeRange)

	// Empty patch is a read, not a write.
	same, err := products.Apply(ctx, created.ID, ProductPatch{})
	require.NoError(t, err)
	require.Equal(t, *patched.SizeRange, *same.SizeRange)

	require.NoError(t, products.MarkPublished(ctx, created.ID, "fp-1"))
	published, err := products.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, published.TelegramSent)
	require.Equal(t, "fp-1", *published.CollageFingerprint)
}

func TestProductImageCollageLifecycle(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)

	brands := NewBrandRepository(client, nil)
	products := NewProductRepository(client, nil)
	images := NewProductImageRepository(client, nil)

	brand, err := brands.Create(ctx, "Nora", "nora")
	require.NoError(t, err)
	product, err := products.Create(ctx, ProductDraft{Code: "NR-100-A", Color: "BLACK", BrandID: &brand.ID})
	require.NoError(t, err)

	for i, name := range []string{"NR-100-A BLACK 2.jpg", "NR-100-A BLACK 1.jpg"} {
		_, err := images.Create(ctx, ImageDraft{
			ProductID:   product.ID,
			Filename:    name,
			StoragePath: "/media/" + name,
			Type:        constants.ImageTypeItem,
			Sequence:    2 - i,
		})
		require.NoError(t, err)
	}

	items, err := images.ListActiveItems(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 1, items[0].Sequence)
	require.Equal(t, 2, items[1].Sequence)

	exists, err := images.ExistsByFilename(ctx, product.ID, "NR-100-A BLACK 1.jpg")
	require.NoError(t, err)
	require.True(t, exists)

	none, err := images.ActiveCollage(ctx, product.ID)
	require.NoError(t, err)
	require.Nil(t, none)

	collage, err := images.Create(ctx, ImageDraft{
		ProductID:   product.ID,
		Filename:    "collage_1.png",
		StoragePath: "/media/collage_1.png",
		Type:        constants.ImageTypeCollage,
	})
	require.NoError(t, err)

	current, err := images.ActiveCollage(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, collage.ID, current.ID)

	require.NoError(t, images.Delete(ctx, collage.ID))
	gone, err := images.ActiveCollage(ctx, product.ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestUploadJobLifecycle(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)

	jobs := NewUploadJobRepository(client, nil)

	job, err := jobs.Create(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, string(constants.JobStatusPending), job.Status)

	require.NoError(t, jobs.MarkProcessing(ctx, job.ID, "processing labels"))
	require.NoError(t, jobs.Progress(ctx, job.ID, JobProgress{Processed: 3, Failed: 1, Skipped: 1, Phase: "processing items"}))

	got, err := jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.ProcessedFiles)
	require.Equal(t, 1, got.FailedFiles)
	require.Equal(t, 1, got.SkippedFiles)

	require.NoError(t, jobs.Finish(ctx, job.ID, constants.JobStatusError, "completed with failures"))
	done, err := jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, string(constants.JobStatusError), done.Status)
	require.NotNil(t, done.CompletedAt)

	_, err = uuid.Parse(done.ID.String())
	require.NoError(t, err)
}
