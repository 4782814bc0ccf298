package catalog

import (
	"math"
	"math/rand"
	"time"

	"github.com/SaharHalili95/price-comparison-platform/pkg/models"
)

// seedStride spaces the derived seeds of consecutive product ids far
// enough apart that their retailer draws do not overlap.
const seedStride = 7

// Each retailer draws its price variance and availability from fixed
// offsets of the product's base seed. The variance band shifts the base
// price by a retailer-specific spread (KSP -2%..+8%, Bug -8%..+2%,
// Zap +1%..+11%) and the availability threshold gives roughly 80-90%
// in-stock odds.
var retailerBands = []struct {
	source         models.Retailer
	varianceOffset int
	varianceShift  float64
	availOffset    int
	availThreshold float64
}{
	{models.RetailerKSP, 0, -0.02, 3, 0.10},
	{models.RetailerBug, 1, -0.08, 4, 0.15},
	{models.RetailerZap, 2, 0.01, 5, 0.20},
}

// SynthesizePrices fabricates one offer per retailer for the given
// product, seeded entirely from its id. basePrice must be positive; the
// caller owns that precondition and non-positive input is undefined.
func SynthesizePrices(productID int, basePrice float64, lastUpdated string) []models.PriceInfo {
	seed := productID * seedStride

	prices := make([]models.PriceInfo, 0, len(retailerBands))
	for _, band := range retailerBands {
		variance := SeededRandom(seed+band.varianceOffset)*0.10 + band.varianceShift
		prices = append(prices, models.PriceInfo{
			Source:       band.source,
			Price:        math.Round(basePrice * (1 + variance)),
			Currency:     models.Currency,
			Availability: SeededRandom(seed+band.availOffset) > band.availThreshold,
			URL:          "#",
			LastUpdated:  lastUpdated,
		})
	}
	return prices
}

// Aggregate computes lowest/highest/average over the available offers
// only. All three are nil when nothing is in stock.
func Aggregate(prices []models.PriceInfo) (lowest, highest, average *float64) {
	var sum float64
	var n int
	for _, p := range prices {
		if !p.Availability {
			continue
		}
		if n == 0 {
			lo, hi := p.Price, p.Price
			lowest, highest = &lo, &hi
		} else {
			if p.Price < *lowest {
				*lowest = p.Price
			}
			if p.Price > *highest {
				*highest = p.Price
			}
		}
		sum += p.Price
		n++
	}
	if n > 0 {
		avg := math.Round(sum / float64(n))
		average = &avg
	}
	return lowest, highest, average
}

// RefreshPrices re-jitters a product's offers with true entropy to
// simulate live market movement: every price moves within ±5% and each
// retailer has a 90% chance of being in stock. This path is deliberately
// not reproducible; anything that asserts exact values must use
// SynthesizePrices instead.
func RefreshPrices(p *models.Product) {
	today := time.Now().Format("2006-01-02")
	for i := range p.Prices {
		variation := rand.Float64()*0.10 - 0.05
		p.Prices[i].Price = math.Round(p.Prices[i].Price * (1 + variation))
		p.Prices[i].Availability = rand.Float64() > 0.1
		p.Prices[i].LastUpdated = today
	}
	p.LowestPrice, p.HighestPrice, p.AveragePrice = Aggregate(p.Prices)
}
