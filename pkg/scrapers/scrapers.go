// Package scrapers fans a search query out to the real retailer sites
// and aggregates their offers into comparison products. It is the
// opt-in alternative to the synthetic catalog; every scraper failure is
// soft and the retailer simply contributes no offers.
package scrapers

import (
	"log"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/SaharHalili95/price-comparison-platform/pkg/catalog"
	"github.com/SaharHalili95/price-comparison-platform/pkg/images"
	"github.com/SaharHalili95/price-comparison-platform/pkg/models"
)

// Offer is one scraped listing from one retailer.
type Offer struct {
	Source       models.Retailer
	Name         string
	Price        float64
	Currency     string
	URL          string
	ImageURL     string
	Availability bool
}

// Searcher is a single retailer's search scraper.
type Searcher interface {
	Source() models.Retailer
	Search(query string, maxResults int) ([]Offer, error)
}

// Manager runs every retailer scraper for a query and merges the
// results.
type Manager struct {
	searchers []Searcher
}

func NewManager(searchers ...Searcher) *Manager {
	return &Manager{searchers: searchers}
}

// SearchAll queries every retailer concurrently. A failing retailer is
// logged and skipped.
func (m *Manager) SearchAll(query string, maxPerSite int) map[models.Retailer][]Offer {
	results := make(map[models.Retailer][]Offer)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, s := range m.searchers {
		wg.Add(1)
		go func(s Searcher) {
			defer wg.Done()
			offers, err := s.Search(query, maxPerSite)
			if err != nil {
				log.Printf("[%s] search failed: %v", s.Source(), err)
				return
			}
			mu.Lock()
			results[s.Source()] = offers
			mu.Unlock()
		}(s)
	}
	wg.Wait()
	return results
}

// Aggregate merges per-retailer offers into products, grouping offers
// by normalized listing name. Products come out in the order their
// names were first seen, iterating retailers in comparison-table order.
func (m *Manager) Aggregate(results map[models.Retailer][]Offer) []models.Product {
	today := time.Now().Format("2006-01-02")

	type group struct {
		name   string
		image  string
		prices []models.PriceInfo
	}
	var order []string
	groups := make(map[string]*group)

	for _, retailer := range models.Retailers {
		for _, offer := range results[retailer] {
			key := normalizeName(offer.Name)
			if key == "" {
				continue
			}
			g, ok := groups[key]
			if !ok {
				g = &group{name: offer.Name}
				groups[key] = g
				order = append(order, key)
			}
			if g.image == "" {
				g.image = offer.ImageURL
			}
			currency := offer.Currency
			if currency == "" {
				currency = models.Currency
			}
			g.prices = append(g.prices, models.PriceInfo{
				Source:       offer.Source,
				Price:        offer.Price,
				Currency:     currency,
				Availability: offer.Availability,
				URL:          offer.URL,
				LastUpdated:  today,
			})
		}
	}

	products := make([]models.Product, 0, len(order))
	for i, key := range order {
		g := groups[key]
		image := g.image
		if image == "" {
			image = images.StaticImageURL(g.name, "")
		}
		lowest, highest, average := catalog.Aggregate(g.prices)
		products = append(products, models.Product{
			ID:           i + 1,
			Name:         g.name,
			ImageURL:     image,
			CreatedAt:    today,
			Prices:       g.prices,
			LowestPrice:  lowest,
			HighestPrice: highest,
			AveragePrice: average,
		})
	}
	return products
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

var priceDigits = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)

// ParsePrice extracts a numeric amount from retailer price text like
// "‏5,490 ₪" or "₪1,234.90".
func ParsePrice(text string) (float64, bool) {
	match := priceDigits.FindString(text)
	if match == "" {
		return 0, false
	}
	match = strings.ReplaceAll(match, ",", "")
	val, err := strconv.ParseFloat(match, 64)
	if err != nil || val <= 0 {
		return 0, false
	}
	return val, true
}
