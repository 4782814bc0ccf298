package catalog

import (
	"fmt"

	"github.com/SaharHalili95/price-comparison-platform/pkg/images"
	"github.com/SaharHalili95/price-comparison-platform/pkg/models"
)

// priceDate is the synthetic last_updated stamp for seeded offers. The
// refresh path overwrites it with the current date.
const priceDate = "2024-02-04"

// Template is one hand-authored catalog entry: name, description and the
// base price the per-retailer offers are derived from. BasePrice must be
// positive.
type Template struct {
	Name        string
	Description string
	BasePrice   float64
}

// Generate builds fully-populated products from a template list. Ids are
// assigned sequentially from startID, so categories generated with
// disjoint offsets never collide. Output is deterministic: all prices
// and availability flags are seeded from the assigned id, the image
// reference comes from the static resolution strategies only, and the
// creation date cycles a 28-day window by template position.
func Generate(templates []Template, category string, startID int) []models.Product {
	products := make([]models.Product, 0, len(templates))
	for i, t := range templates {
		id := startID + i

		prices := SynthesizePrices(id, t.BasePrice, priceDate)
		lowest, highest, average := Aggregate(prices)

		products = append(products, models.Product{
			ID:           id,
			Name:         t.Name,
			Description:  t.Description,
			Category:     category,
			ImageURL:     images.StaticImageURL(t.Name, category),
			CreatedAt:    fmt.Sprintf("2024-01-%02d", i%28+1),
			Prices:       prices,
			LowestPrice:  lowest,
			HighestPrice: highest,
			AveragePrice: average,
		})
	}
	return products
}
