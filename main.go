package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	scalargo "github.com/bdpiprava/scalar-go"
	"github.com/joho/godotenv"

	"github.com/SaharHalili95/price-comparison-platform/pkg/api"
	"github.com/SaharHalili95/price-comparison-platform/pkg/cache"
	"github.com/SaharHalili95/price-comparison-platform/pkg/catalog"
	"github.com/SaharHalili95/price-comparison-platform/pkg/client"
	"github.com/SaharHalili95/price-comparison-platform/pkg/format"
	"github.com/SaharHalili95/price-comparison-platform/pkg/images"
	"github.com/SaharHalili95/price-comparison-platform/pkg/logger"
	"github.com/SaharHalili95/price-comparison-platform/pkg/models"
	"github.com/SaharHalili95/price-comparison-platform/pkg/scrapers"
	"github.com/SaharHalili95/price-comparison-platform/pkg/scrapers/bug"
	"github.com/SaharHalili95/price-comparison-platform/pkg/scrapers/ksp"
	"github.com/SaharHalili95/price-comparison-platform/pkg/scrapers/zap"
)

var (
	scraperSemaphore = make(chan struct{}, 3)

	productCatalog  *catalog.Catalog
	imageResolver   *images.Resolver
	searchClient    *client.Client
	scraperManager  *scrapers.Manager
	useRealScrapers bool
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8001"
	}

	dbPath := os.Getenv("CACHE_DB_PATH")
	if dbPath == "" {
		dbPath = "./cache.db"
	}

	searchTimeout := client.DefaultTimeout
	if val := os.Getenv("SEARCH_TIMEOUT_SEC"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			searchTimeout = time.Duration(parsed) * time.Second
		}
	}

	useRealScrapers = strings.EqualFold(os.Getenv("USE_REAL_SCRAPERS"), "true")

	productCatalog = catalog.Build(catalog.DefaultSections())
	log.Printf("Catalog generated: %d products across %d categories",
		len(productCatalog.All()), len(productCatalog.Categories()))

	imageStore, err := cache.New(dbPath, cache.Namespace)
	if err != nil {
		log.Fatalf("Failed to initialize image cache: %v", err)
	}
	defer imageStore.Close()

	wikipedia := images.NewWikipediaClient(images.DefaultLookupTimeout)
	imageResolver = images.NewResolver(imageStore, wikipedia.FetchThumbnail, images.DefaultLookupTimeout)
	defer imageResolver.Close()

	searchClient = client.New(os.Getenv("SEARCH_API_URL"), searchTimeout, productCatalog)
	scraperManager = scrapers.NewManager(ksp.NewScraper(), bug.NewScraper(), zap.NewScraper())

	http.HandleFunc("/", rootHandler)

	ip := GetOutboundIP()
	if ip != nil {
		fmt.Printf("Local Network URL: http://%s:%s\n", ip.String(), port)
	}
	fmt.Printf("Access URL: http://localhost:%s\n", port)
	fmt.Printf("API Docs: http://localhost:%s/\n", port)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           nil,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	err = server.ListenAndServe()
	logger.Flush()
	log.Fatal(err)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		apiHandler(w, r)
		return
	}

	// Serve Scalar docs on root path
	html, err := scalargo.NewV2(
		scalargo.WithSpecDir("./"),
		scalargo.WithMetaDataOpts(
			scalargo.WithTitle("Price Comparison Platform API"),
		),
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

func GetOutboundIP() net.IP {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		addrs, _ := net.InterfaceAddrs()
		for _, addr := range addrs {
			if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
				if ipnet.IP.To4() != nil {
					return ipnet.IP
				}
			}
		}
		return nil
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)

	return localAddr.IP
}

func apiHandler(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimSuffix(r.URL.Path, "/"), "/")
	// parts[0] = ""
	// parts[1] = "api"
	// parts[2] = resource
	// parts[3:] = resource-specific

	if len(parts) < 3 {
		api.WriteBadRequest(w, "Invalid path", r.URL.Path)
		return
	}

	switch parts[2] {
	case "products":
		productsHandler(w, r, parts[3:])
	case "categories":
		categoriesHandler(w, r)
	case "scrapers":
		if len(parts) == 4 && parts[3] == "status" {
			scraperStatusHandler(w, r)
			return
		}
		api.WriteBadRequest(w, "Invalid path. Expected /api/scrapers/status", r.URL.Path)
	case "prices":
		if len(parts) == 4 && parts[3] == "refresh" {
			refreshHandler(w, r)
			return
		}
		api.WriteBadRequest(w, "Invalid path. Expected /api/prices/refresh", r.URL.Path)
	default:
		api.WriteNotFound(w, "Unknown resource: "+parts[2], r.URL.Path)
	}
}

func productsHandler(w http.ResponseWriter, r *http.Request, rest []string) {
	if r.Method != http.MethodGet {
		api.WriteBadRequest(w, "Method not allowed. Use GET.", r.URL.Path)
		return
	}

	switch len(rest) {
	case 0:
		listProductsHandler(w, r)
	case 1:
		if rest[0] == "search" {
			searchHandler(w, r)
			return
		}
		getProductHandler(w, r, rest[0], "")
	case 2:
		if rest[1] != "prices" && rest[1] != "image" {
			api.WriteBadRequest(w, "Invalid path. Expected /api/products/{id}/prices or /api/products/{id}/image", r.URL.Path)
			return
		}
		getProductHandler(w, r, rest[0], rest[1])
	default:
		api.WriteBadRequest(w, "Invalid path", r.URL.Path)
	}
}

func searchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	if useRealScrapers {
		// Bound concurrent scraping sessions, not individual site fetches.
		scraperSemaphore <- struct{}{}
		results := scraperManager.SearchAll(query, 5)
		<-scraperSemaphore

		products := scraperManager.Aggregate(results)
		api.WriteJSON(w, models.SearchResponse{
			Query:        query,
			TotalResults: len(products),
			Products:     products,
		}, r.URL.Path)
		return
	}

	resp, err := searchClient.Search(r.Context(), query)
	if err != nil {
		// Remote search failed; the response already carries the local
		// fallback results.
		logger.Dedup("Search fallback: %v", err)
	}
	api.WriteJSON(w, resp, r.URL.Path)
}

func getProductHandler(w http.ResponseWriter, r *http.Request, rawID, sub string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		api.WriteBadRequest(w, fmt.Sprintf("Invalid product ID: %s", rawID), r.URL.Path)
		return
	}

	product, err := productCatalog.Get(id)
	if err != nil {
		api.WriteNotFound(w, "Product not found", r.URL.Path)
		return
	}

	switch sub {
	case "":
		api.WriteJSON(w, newProductView(product), r.URL.Path)
	case "prices":
		api.WriteJSON(w, newOfferViews(product.Prices), r.URL.Path)
	case "image":
		productImageHandler(w, r, product)
	}
}

// offerView decorates a raw offer with its rendered price and date, so
// the comparison table needs no locale logic of its own.
type offerView struct {
	models.PriceInfo
	DisplayPrice string `json:"display_price"`
	DisplayDate  string `json:"display_date"`
}

type productView struct {
	models.Product
	Prices              []offerView `json:"prices"`
	DisplayLowestPrice  string      `json:"display_lowest_price"`
	DisplayHighestPrice string      `json:"display_highest_price"`
	DisplayAveragePrice string      `json:"display_average_price"`
	SavingsPercent      int         `json:"savings_percent"`
}

func newOfferViews(prices []models.PriceInfo) []offerView {
	views := make([]offerView, 0, len(prices))
	for _, p := range prices {
		amount := p.Price
		views = append(views, offerView{
			PriceInfo:    p,
			DisplayPrice: format.Price(&amount),
			DisplayDate:  format.Date(p.LastUpdated),
		})
	}
	return views
}

func newProductView(p models.Product) productView {
	return productView{
		Product:             p,
		Prices:              newOfferViews(p.Prices),
		DisplayLowestPrice:  format.Price(p.LowestPrice),
		DisplayHighestPrice: format.Price(p.HighestPrice),
		DisplayAveragePrice: format.Price(p.AveragePrice),
		SavingsPercent:      p.SavingsPercent(),
	}
}

// productImageHandler is the visibility signal in the HTTP rendition:
// the UI calls it when a product card approaches the viewport. The
// response always includes the deterministic placeholder card; image_url
// is empty while nothing better is known.
func productImageHandler(w http.ResponseWriter, r *http.Request, product models.Product) {
	type imageResponse struct {
		ImageURL    string `json:"image_url"`
		Placeholder struct {
			Background string `json:"background"`
			Accent     string `json:"accent"`
			Label      string `json:"label"`
			URL        string `json:"url"`
		} `json:"placeholder"`
	}

	var resp imageResponse
	card := images.CardFor(product.Name)
	resp.Placeholder.Background = card.Background
	resp.Placeholder.Accent = card.Accent
	resp.Placeholder.Label = card.Label
	resp.Placeholder.URL = card.URL()

	if url, ok := imageResolver.Cached(product.Name); ok {
		logger.Dedup("Image cache hit for %q", product.Name)
		resp.ImageURL = url
		api.WriteJSON(w, resp, r.URL.Path)
		return
	}

	done := make(chan string, 1)
	imageResolver.Request(product.Name, func(url string) {
		select {
		case done <- url:
		default:
		}
	})

	select {
	case url := <-done:
		resp.ImageURL = url
	case <-time.After(images.DefaultLookupTimeout + time.Second):
		// Queue backlog; the lookup keeps running and lands in the cache
		// for the next request. Serve the placeholder meanwhile.
	case <-r.Context().Done():
	}
	api.WriteJSON(w, resp, r.URL.Path)
}

func listProductsHandler(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	limit := 10
	if val := r.URL.Query().Get("limit"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil || parsed < 1 || parsed > 100 {
			api.WriteBadRequest(w, "limit must be an integer between 1 and 100", r.URL.Path)
			return
		}
		limit = parsed
	}

	products := productCatalog.ListByCategory(category, limit)
	if products == nil {
		products = []models.Product{}
	}
	api.WriteJSON(w, products, r.URL.Path)
}

func categoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories := productCatalog.Categories()
	api.WriteJSON(w, map[string]any{
		"categories":       categories,
		"total_categories": len(categories),
	}, r.URL.Path)
}

func scraperStatusHandler(w http.ResponseWriter, r *http.Request) {
	enabled := []string{}
	if useRealScrapers {
		enabled = []string{"ksp", "bug", "zap"}
	}
	api.WriteJSON(w, map[string]any{
		"use_real_scrapers": useRealScrapers,
		"enabled_scrapers":  enabled,
	}, r.URL.Path)
}

func refreshHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.WriteBadRequest(w, "Method not allowed. Use POST.", r.URL.Path)
		return
	}

	productCatalog.Refresh()
	api.WriteJSON(w, map[string]any{
		"refreshed": len(productCatalog.All()),
	}, r.URL.Path)
}
