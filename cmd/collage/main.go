package main

import (
	"context"
	"flag"
	"log/slog"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ksarkisyan/catalog-intake/internal/collage"
	"github.com/ksarkisyan/catalog-intake/internal/common"
	repo "github.com/ksarkisyan/catalog-intake/internal/repository"
)

// Renders the collage for one product to a local PNG without touching
// the publish channel. Useful for tuning layout and fonts.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	productArg := flag.String("product", "", "product UUID to render")
	outArg := flag.String("out", "collage.png", "output PNG path")
	flag.Parse()

	productID, err := uuid.Parse(*productArg)
	if err != nil {
		logger.Error("-product must be a UUID", "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(2)
	}
	if cfg.Collage.FontPath == "" {
		logger.Error("COLLAGE_FONT env var is required")
		os.Exit(2)
	}

	ctx := context.Background()
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        2,
		MinConns:        1,
		MaxConnLifetime: 5 * time.Minute,
		MaxConnIdleTime: time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("opening DB", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	products := repo.NewProductRepository(entc, logger)
	brands := repo.NewBrandRepository(entc, logger)
	images := repo.NewProductImageRepository(entc, logger)

	p, err := products.GetByID(ctx, productID)
	if err != nil {
		logger.Error("loading product", "product_id", productID, "error", err)
		os.Exit(1)
	}

	items, err := images.ListActiveItems(ctx, productID)
	if err != nil {
		logger.Error("listing item images", "error", err)
		os.Exit(1)
	}
	selected := collage.SelectImages(items)
	if len(selected) == 0 {
		logger.Error("product has no item photos", "product_id", productID)
		os.Exit(1)
	}

	brandName := ""
	if p.BrandID != nil {
		if b, err := brands.GetByID(ctx, *p.BrandID); err == nil {
			brandName = b.Name
		}
	}

	info := p.Code + " " + p.Color
	if p.SizeRange != nil {
		info += " " + *p.SizeRange
	}
	priceText := ""
	if p.Price != nil {
		sym := cfg.Collage.CurrencySymbol
		if sym == "" {
			sym = "$"
		}
		priceText = sym + formatPrice(*p.Price)
	}

	compositor, err := collage.NewCompositor(collage.Config{
		Width:    cfg.Collage.CanvasWidth,
		Height:   cfg.Collage.CanvasHeight,
		FontPath: cfg.Collage.FontPath,
	}, logger)
	if err != nil {
		logger.Error("creating compositor", "error", err)
		os.Exit(1)
	}

	paths := make([]string, 0, len(selected))
	for _, img := range selected {
		paths = append(paths, img.StoragePath)
	}

	out, err := os.Create(*outArg)
	if err != nil {
		logger.Error("creating output file", "path", *outArg, "error", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := compositor.Compose(collage.Spec{
		BrandName:  brandName,
		Info:       info,
		PriceText:  priceText,
		ImagePaths: paths,
	}, out); err != nil {
		logger.Error("composing collage", "error", err)
		os.Exit(1)
	}
	logger.Info("collage written", "path", *outArg, "images", len(paths))
}

// Same whole-amount badge text the publish path renders.
func formatPrice(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}
