package catalog

import (
	"reflect"
	"testing"

	"github.com/SaharHalili95/price-comparison-platform/pkg/models"
)

func testTemplates() []Template {
	return []Template{
		{"iPhone 15 Pro Max 256GB", "סמארטפון דגל של Apple", 5490},
		{"Sony WH-1000XM5", "אוזניות אלחוטיות", 1390},
		{"JBL Charge 5", "רמקול Bluetooth נייד", 549},
		{"Kindle Paperwhite 11", "קורא ספרים אלקטרוני", 649},
	}
}

func TestSeededRandomDeterminism(t *testing.T) {
	for seed := -1000; seed < 1000; seed++ {
		a := SeededRandom(seed)
		b := SeededRandom(seed)
		if a != b {
			t.Fatalf("SeededRandom(%d) not stable: %v vs %v", seed, a, b)
		}
		if a < 0 || a >= 1 {
			t.Fatalf("SeededRandom(%d) = %v, want [0,1)", seed, a)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	first := Generate(testTemplates(), "אלקטרוניקה", 1)
	second := Generate(testTemplates(), "אלקטרוניקה", 1)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two generation runs differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestGenerateShape(t *testing.T) {
	products := Generate(testTemplates(), "אלקטרוניקה", 1)

	if len(products) != len(testTemplates()) {
		t.Fatalf("got %d products, want %d", len(products), len(testTemplates()))
	}

	for i, p := range products {
		if p.ID != 1+i {
			t.Errorf("product %d: id = %d, want %d", i, p.ID, 1+i)
		}
		if len(p.Prices) != len(models.Retailers) {
			t.Errorf("%s: %d price records, want one per retailer (%d)",
				p.Name, len(p.Prices), len(models.Retailers))
		}
		for _, price := range p.Prices {
			if price.Currency != models.Currency {
				t.Errorf("%s/%s: currency %q", p.Name, price.Source, price.Currency)
			}
			if price.Price <= 0 {
				t.Errorf("%s/%s: non-positive price %v", p.Name, price.Source, price.Price)
			}
		}
		if p.ImageURL == "" {
			t.Errorf("%s: empty image reference", p.Name)
		}
		if p.CreatedAt == "" {
			t.Errorf("%s: empty creation date", p.Name)
		}
	}
}

func TestCreatedAtCyclesWindow(t *testing.T) {
	templates := make([]Template, 30)
	for i := range templates {
		templates[i] = Template{Name: "פריט", BasePrice: 100}
	}
	products := Generate(templates, "בית וגן", 301)

	if products[0].CreatedAt != "2024-01-01" {
		t.Errorf("first product created_at = %s, want 2024-01-01", products[0].CreatedAt)
	}
	if products[28].CreatedAt != "2024-01-01" {
		t.Errorf("29th product created_at = %s, want window to wrap to 2024-01-01", products[28].CreatedAt)
	}
}

func TestAggregateInvariant(t *testing.T) {
	// Check over the full default catalog: whenever any retailer is
	// available, lowest <= average <= highest and all three exist.
	c := Build(DefaultSections())

	for _, p := range c.All() {
		anyAvailable := false
		for _, price := range p.Prices {
			if price.Availability {
				anyAvailable = true
			}
		}

		if !anyAvailable {
			if p.LowestPrice != nil || p.HighestPrice != nil || p.AveragePrice != nil {
				t.Errorf("%s: aggregate present with no available offers", p.Name)
			}
			continue
		}

		if p.LowestPrice == nil || p.HighestPrice == nil || p.AveragePrice == nil {
			t.Errorf("%s: aggregate missing despite available offers", p.Name)
			continue
		}
		if *p.LowestPrice > *p.AveragePrice || *p.AveragePrice > *p.HighestPrice {
			t.Errorf("%s: aggregate out of order: %v <= %v <= %v does not hold",
				p.Name, *p.LowestPrice, *p.AveragePrice, *p.HighestPrice)
		}
	}
}

func TestIDPartitioning(t *testing.T) {
	c := Build(DefaultSections())

	seen := make(map[int]string)
	for _, p := range c.All() {
		if other, ok := seen[p.ID]; ok {
			t.Errorf("id %d assigned to both %q and %q", p.ID, other, p.Category)
		}
		seen[p.ID] = p.Category
	}
}

func TestSearch(t *testing.T) {
	c := Build(DefaultSections())
	total := len(c.All())

	results := c.Search("iPhone")
	if len(results) == 0 {
		t.Fatal("searching iPhone returned nothing")
	}
	found := false
	for _, p := range results {
		if p.Name == "iPhone 15 Pro Max 256GB" {
			found = true
			if p.Category != "אלקטרוניקה" {
				t.Errorf("iPhone category = %q", p.Category)
			}
		}
	}
	if !found {
		t.Error("iPhone 15 Pro Max 256GB not in results")
	}

	if got := len(c.Search("")); got != total {
		t.Errorf("empty query returned %d products, want full catalog (%d)", got, total)
	}
	if got := len(c.Search("   ")); got != total {
		t.Errorf("whitespace query returned %d products, want full catalog (%d)", got, total)
	}

	if got := c.Search("zzz-nonexistent"); len(got) != 0 {
		t.Errorf("nonsense query returned %d products, want 0", len(got))
	}

	// Category text matches too.
	if got := c.Search("אלקטרוניקה"); len(got) == 0 {
		t.Error("category term returned nothing")
	}
}

func TestSearchPreservesCatalogOrder(t *testing.T) {
	c := Build(DefaultSections())

	prev := -1
	for _, p := range c.Search("Philips") {
		if p.ID <= prev {
			t.Fatalf("results out of catalog order at id %d", p.ID)
		}
		prev = p.ID
	}
}

func TestListByCategory(t *testing.T) {
	c := Build(DefaultSections())

	list := c.ListByCategory("מחשבים", 5)
	if len(list) != 5 {
		t.Fatalf("got %d products, want 5", len(list))
	}
	for _, p := range list {
		if p.Category != "מחשבים" {
			t.Errorf("%s: category %q", p.Name, p.Category)
		}
	}

	all := c.ListByCategory("", 3)
	if len(all) != 3 {
		t.Errorf("unfiltered list returned %d, want 3", len(all))
	}
}

func TestGet(t *testing.T) {
	c := Build(DefaultSections())

	p, err := c.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if p.ID != 1 {
		t.Errorf("Get(1) returned id %d", p.ID)
	}

	if _, err := c.Get(999999); err != models.ErrProductNotFound {
		t.Errorf("Get(999999) error = %v, want ErrProductNotFound", err)
	}
}

func TestRefreshBounds(t *testing.T) {
	c := Build(DefaultSections())

	before := make(map[int][]float64)
	for _, p := range c.All() {
		prices := make([]float64, len(p.Prices))
		for i, pr := range p.Prices {
			prices[i] = pr.Price
		}
		before[p.ID] = prices
	}

	c.Refresh()

	for _, p := range c.All() {
		old := before[p.ID]
		for i, pr := range p.Prices {
			lo := old[i]*0.95 - 0.5
			hi := old[i]*1.05 + 0.5
			if pr.Price < lo || pr.Price > hi {
				t.Errorf("%s/%s: refreshed price %v outside ±5%% of %v",
					p.Name, pr.Source, pr.Price, old[i])
			}
		}
		anyAvailable := false
		for _, pr := range p.Prices {
			if pr.Availability {
				anyAvailable = true
			}
		}
		if anyAvailable && p.LowestPrice == nil {
			t.Errorf("%s: aggregate not recomputed after refresh", p.Name)
		}
	}
}
