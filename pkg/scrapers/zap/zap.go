package zap

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/SaharHalili95/price-comparison-platform/pkg/models"
	"github.com/SaharHalili95/price-comparison-platform/pkg/scrapers"
)

const Source = models.RetailerZap

// Zap renders its comparison listings client-side, so this scraper
// drives a headless browser instead of fetching raw HTML.
type Scraper struct {
	BaseURL string
}

func NewScraper() *Scraper {
	return &Scraper{BaseURL: "https://www.zap.co.il"}
}

func (s *Scraper) Source() models.Retailer {
	return Source
}

type zapListing struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	URL   string `json:"url"`
	Image string `json:"image"`
}

func (s *Scraper) Search(query string, maxResults int) ([]scrapers.Offer, error) {
	searchURL := fmt.Sprintf("%s/search.aspx?keyword=%s", s.BaseURL, url.QueryEscape(query))

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
		chromedp.WindowSize(1920, 1080),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	scrapeCtx, cancelScrape := context.WithTimeout(ctx, 45*time.Second)
	defer cancelScrape()

	log.Printf("[ZAP] Navigating to %s", searchURL)

	var listings []zapListing
	err := chromedp.Run(scrapeCtx,
		chromedp.Navigate(searchURL),
		chromedp.WaitReady(`body`, chromedp.ByQuery),
		chromedp.Sleep(2*time.Second),
		chromedp.Evaluate(`
			(function() {
				const cards = document.querySelectorAll(".ProductBox, .product-box, [data-product-id]");
				const out = [];
				for (const card of cards) {
					const nameEl = card.querySelector(".ProductName, .product-name, h3, a[title]");
					const priceEl = card.querySelector(".Price, .product-price, .price");
					if (!nameEl || !priceEl) continue;
					const linkEl = card.querySelector("a[href]");
					const imgEl = card.querySelector("img");
					out.push({
						name: nameEl.innerText.trim(),
						price: priceEl.innerText.trim(),
						url: linkEl ? linkEl.href : "",
						image: imgEl ? (imgEl.src || imgEl.dataset.src || "") : "",
					});
				}
				return out;
			})()
		`, &listings),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp execution failed: %w", err)
	}

	var offers []scrapers.Offer
	for _, l := range listings {
		if len(offers) >= maxResults {
			break
		}
		name := strings.TrimSpace(l.Name)
		if name == "" {
			continue
		}
		price, ok := scrapers.ParsePrice(l.Price)
		if !ok {
			continue
		}
		offers = append(offers, scrapers.Offer{
			Source:       Source,
			Name:         name,
			Price:        price,
			Currency:     models.Currency,
			URL:          l.URL,
			ImageURL:     l.Image,
			Availability: true, // Zap only lists offers it can route to a seller
		})
	}
	return offers, nil
}
