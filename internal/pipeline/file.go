package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/internal/common"
	"github.com/ksarkisyan/catalog-intake/internal/extract"
	"github.com/ksarkisyan/catalog-intake/internal/ocr"
	"github.com/ksarkisyan/catalog-intake/internal/repository"
)

type outcome int

const (
	outcomeProcessed outcome = iota
	outcomeSkipped
	outcomeFailed
)

// processFile runs one file through extraction, resolution, duplicate
// detection and storage. All failures are contained here: the returned
// outcome feeds the job counters, and the touched product IDs feed the
// publish pass.
func (c *Coordinator) processFile(ctx context.Context, cache *extract.Cache, file BatchFile, defaultBrandID *uuid.UUID) (outcome, []uuid.UUID) {
	log := c.logger.With("filename", file.Filename)

	role, seq := extract.ParseRole(file.Filename)
	fields := extract.FromFilename(file.Filename)

	switch role {
	case constants.ImageTypeLabel:
		fields = c.enrichFromOCR(ctx, fields, file, log)
		if key := fields.Key(); key != "" {
			cache.Put(key, fields)
		}
	default:
		if cached, ok := cache.Get(fields.Key()); ok {
			fields = fields.Merge(cached)
		} else {
			// No label seen for this product in the batch: proceed on
			// filename data alone.
			log.Warn("no cached label extraction", "key", fields.Key())
		}
	}

	if err := extract.ValidateFields(fields); err != nil {
		log.Warn("extraction failed validation", "err", err)
	}

	brand, err := c.brands.Resolve(ctx, fields.BrandName, defaultBrandID)
	if err != nil {
		log.Warn("file failed", "err", err)
		return outcomeFailed, nil
	}

	product, created, err := c.productsRes.FindOrCreate(ctx, fields, brand.ID)
	if err != nil {
		log.Warn("file failed", "err", fmt.Errorf("%w: %v", common.ErrPersistence, err))
		return outcomeFailed, nil
	}
	touched := []uuid.UUID{product.ID}

	// A dual-product label registers the second variant as its own
	// product; the image itself attaches to the primary only.
	if role == constants.ImageTypeLabel && fields.Secondary != nil {
		if sec, _, err := c.productsRes.FindOrCreate(ctx, *fields.Secondary, brand.ID); err != nil {
			log.Warn("secondary product not persisted", "err", err)
		} else {
			touched = append(touched, sec.ID)
		}
	}

	safeName, err := constants.SafeFilename(file.Filename)
	if err != nil {
		log.Warn("file failed", "err", err)
		return outcomeFailed, touched
	}

	exists, err := c.images.ExistsByFilename(ctx, product.ID, safeName)
	if err != nil {
		log.Warn("file failed", "err", fmt.Errorf("%w: %v", common.ErrPersistence, err))
		return outcomeFailed, touched
	}
	if exists {
		log.Info("duplicate filename skipped", "product_id", product.ID, "err", common.ErrDuplicateFile)
		return outcomeSkipped, touched
	}

	path, err := c.store.Save(product.ID, safeName, file.Content)
	if err != nil {
		log.Warn("file failed", "err", fmt.Errorf("%w: %v", common.ErrPersistence, err))
		return outcomeFailed, touched
	}

	if _, err := c.images.Create(ctx, repository.ImageDraft{
		ProductID:   product.ID,
		Filename:    safeName,
		StoragePath: path,
		Type:        role,
		Sequence:    seq,
	}); err != nil {
		log.Warn("file failed", "err", fmt.Errorf("%w: %v", common.ErrPersistence, err))
		return outcomeFailed, touched
	}

	if !product.IsProcessed {
		if err := c.products.MarkProcessed(ctx, product.ID); err != nil {
			log.Warn("mark processed failed", "product_id", product.ID, "err", err)
		}
	}

	log.Info("file processed",
		"product_id", product.ID,
		"role", role,
		"sequence", seq,
		"created", created,
		"confidence", fields.Confidence,
	)
	return outcomeProcessed, touched
}

// enrichFromOCR merges label text extraction over filename fields. An
// OCR failure is contained: the label proceeds with filename data only.
func (c *Coordinator) enrichFromOCR(ctx context.Context, fields extract.Fields, file BatchFile, log *slog.Logger) extract.Fields {
	text, err := c.recognizer.Recognize(ctx, file.Content)
	if err != nil {
		var ocrErr *ocr.Error
		if errors.As(err, &ocrErr) {
			log.Warn("ocr unavailable, using filename fields", "err", fmt.Errorf("%w: %v", common.ErrExtraction, err))
		} else {
			log.Warn("ocr failed, using filename fields", "err", err)
		}
		return fields
	}
	if text == "" {
		log.Warn("label produced no text")
		return fields
	}
	return fields.Merge(extract.FromText(text))
}
