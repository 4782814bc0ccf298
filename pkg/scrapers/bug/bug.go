package bug

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/SaharHalili95/price-comparison-platform/pkg/models"
	"github.com/SaharHalili95/price-comparison-platform/pkg/scrapers"
)

const Source = models.RetailerBug

type Scraper struct {
	client  *http.Client
	BaseURL string
}

func NewScraper() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		BaseURL: "https://www.bug.co.il",
	}
}

func (s *Scraper) Source() models.Retailer {
	return Source
}

// Search fetches the Bug search results page and extracts product
// cells.
func (s *Scraper) Search(query string, maxResults int) ([]scrapers.Offer, error) {
	searchURL := fmt.Sprintf("%s/search?q=%s", s.BaseURL, url.QueryEscape(query))

	req, err := http.NewRequest(http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "he-IL,he;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	var offers []scrapers.Offer
	doc.Find("div.product-cell, div.product-box").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		name := strings.TrimSpace(sel.Find(".product-name, h3").First().Text())
		if name == "" {
			return true
		}

		price, ok := scrapers.ParsePrice(sel.Find(".product-price, .price").First().Text())
		if !ok {
			return true
		}

		link, _ := sel.Find("a").First().Attr("href")
		if link != "" && !strings.HasPrefix(link, "http") {
			link = s.BaseURL + link
		}

		image, _ := sel.Find("img").First().Attr("src")
		if image == "" {
			image, _ = sel.Find("img").First().Attr("data-src")
		}

		available := !strings.Contains(sel.Text(), "אזל מהמלאי")

		offers = append(offers, scrapers.Offer{
			Source:       Source,
			Name:         name,
			Price:        price,
			Currency:     models.Currency,
			URL:          link,
			ImageURL:     image,
			Availability: available,
		})
		return len(offers) < maxResults
	})

	return offers, nil
}
