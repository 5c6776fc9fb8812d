package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ksarkisyan/catalog-intake/internal/pipeline"
	"github.com/ksarkisyan/catalog-intake/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes
// for catalog exports.
type Service struct {
	products repository.ProductRepository
	brands   repository.BrandRepository
	images   repository.ProductImageRepository
	logger   *slog.Logger
}

func NewService(products repository.ProductRepository, brands repository.BrandRepository, images repository.ProductImageRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{products: products, brands: brands, images: images, logger: logger}
}

// ExportProductsXLSX returns an XLSX workbook (as bytes) for the given
// creation-date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> the whole active catalog.
func (s *Service) ExportProductsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	rows, err := s.products.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Products"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Code",
		"Color",
		"Brand",
		"Type",
		"Size Range",
		"Price",
		"Barcode",
		"Complete",
		"Published",
		"Item Photos",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	// Brand names repeat heavily across a catalog; resolve each ID once.
	brandNames := map[string]string{}

	row := 2
	for _, p := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		brandName := ""
		if p.BrandID != nil {
			key := p.BrandID.String()
			if name, ok := brandNames[key]; ok {
				brandName = name
			} else if b, err := s.brands.GetByID(ctx, *p.BrandID); err == nil {
				brandName = b.Name
				brandNames[key] = brandName
			}
		}

		items, err := s.images.ListActiveItems(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("query images for %s: %w", p.ID, err)
		}

		write(1, p.Code)
		write(2, p.Color)
		write(3, brandName)
		write(4, deref(p.ProductType))
		write(5, deref(p.SizeRange))
		if p.Price != nil {
			write(6, *p.Price)
		} else {
			write(6, "")
		}
		write(7, deref(p.Barcode))
		// Same gate the publisher uses, so the sheet never calls a
		// product complete that the channel would still hold back.
		write(8, yesNo(pipeline.IsComplete(p)))
		write(9, yesNo(p.TelegramSent))
		write(10, len(items))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 16) // code
	_ = f.SetColWidth(sheet, "B", "B", 14) // color
	_ = f.SetColWidth(sheet, "C", "C", 22) // brand
	_ = f.SetColWidth(sheet, "D", "E", 14) // type, sizes
	_ = f.SetColWidth(sheet, "F", "G", 16) // price, barcode

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
