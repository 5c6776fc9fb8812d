package collage

import (
	"sort"

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/gen/ent"
)

// MaxImages is the largest number of photos one collage composes.
const MaxImages = 3

// SelectImages picks the photos that go on a collage: item-type rows
// only, ordered by embedded run number then filename, capped at
// MaxImages. Label and collage rows never appear on a collage.
func SelectImages(rows []*ent.ProductImage) []*ent.ProductImage {
	items := make([]*ent.ProductImage, 0, len(rows))
	for _, row := range rows {
		if row.ImageType != string(constants.ImageTypeItem) {
			continue
		}
		if !row.IsActive {
			continue
		}
		items = append(items, row)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Sequence != items[j].Sequence {
			return items[i].Sequence < items[j].Sequence
		}
		return items[i].Filename < items[j].Filename
	})
	if len(items) > MaxImages {
		items = items[:MaxImages]
	}
	return items
}
