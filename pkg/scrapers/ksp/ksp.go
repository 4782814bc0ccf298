package ksp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gocolly/colly/v2"

	"github.com/SaharHalili95/price-comparison-platform/pkg/models"
	"github.com/SaharHalili95/price-comparison-platform/pkg/scrapers"
)

const Source = models.RetailerKSP

type Scraper struct {
	BaseURL        string
	AllowedDomains []string
}

func NewScraper() *Scraper {
	return &Scraper{
		BaseURL:        "https://ksp.co.il",
		AllowedDomains: []string{"ksp.co.il", "www.ksp.co.il"},
	}
}

func (s *Scraper) Source() models.Retailer {
	return Source
}

// newCollector builds a one-shot collector. Colly tracks visited URLs
// per collector, so sharing one across searches would reject repeated
// queries and leak callbacks; every Search gets its own.
func (s *Scraper) newCollector() *colly.Collector {
	opts := []colly.CollectorOption{
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
	}
	if len(s.AllowedDomains) > 0 {
		opts = append(opts, colly.AllowedDomains(s.AllowedDomains...))
	}
	return colly.NewCollector(opts...)
}

// Search scrapes the KSP search results page for product cards.
func (s *Scraper) Search(query string, maxResults int) ([]scrapers.Offer, error) {
	searchURL := fmt.Sprintf("%s/web/he/search?q=%s", s.BaseURL, url.QueryEscape(query))

	var offers []scrapers.Offer

	c := s.newCollector()
	c.OnHTML("div.product-item", func(e *colly.HTMLElement) {
		if len(offers) >= maxResults {
			return
		}

		name := strings.TrimSpace(e.ChildText("a.product-name"))
		if name == "" {
			name = strings.TrimSpace(e.ChildText("h3"))
		}
		if name == "" {
			return
		}

		price, ok := scrapers.ParsePrice(e.ChildText("span.price"))
		if !ok {
			if attr := e.ChildAttr("span[data-price]", "data-price"); attr != "" {
				price, ok = scrapers.ParsePrice(attr)
			}
		}
		if !ok {
			return
		}

		link := e.ChildAttr("a.product-name", "href")
		if link != "" && !strings.HasPrefix(link, "http") {
			link = s.BaseURL + link
		}

		image := e.ChildAttr("img", "src")
		if image == "" {
			image = e.ChildAttr("img", "data-src")
		}
		if image != "" && !strings.HasPrefix(image, "http") {
			image = s.BaseURL + image
		}

		// Listings default to available unless the stock label says otherwise.
		available := true
		if stock := strings.TrimSpace(e.ChildText("span.availability")); stock != "" {
			lower := strings.ToLower(stock)
			available = strings.Contains(lower, "במלאי") ||
				strings.Contains(lower, "זמין") ||
				strings.Contains(lower, "available")
		}

		offers = append(offers, scrapers.Offer{
			Source:       Source,
			Name:         name,
			Price:        price,
			Currency:     models.Currency,
			URL:          link,
			ImageURL:     image,
			Availability: available,
		})
	})

	if err := c.Visit(searchURL); err != nil {
		return nil, err
	}
	return offers, nil
}
