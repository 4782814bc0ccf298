package models

import (
	"errors"
	"math"
)

// Currency is the single currency symbol used across the platform.
const Currency = "₪"

var ErrProductNotFound = errors.New("product not found")

// Retailer identifies one of the fixed price sources.
type Retailer string

const (
	RetailerKSP Retailer = "KSP"
	RetailerBug Retailer = "Bug"
	RetailerZap Retailer = "Zap"
)

// Retailers lists every price source, in comparison-table order.
var Retailers = []Retailer{RetailerKSP, RetailerBug, RetailerZap}

// PriceInfo is a single retailer's offer for a product.
type PriceInfo struct {
	Source       Retailer `json:"source"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	Availability bool     `json:"availability"`
	URL          string   `json:"url,omitempty"`
	LastUpdated  string   `json:"last_updated"`
}

// Product is a catalog entry together with its per-retailer offers and
// the aggregate statistics derived from the available ones. The aggregate
// fields are nil when no retailer has the product in stock.
type Product struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	Category     string      `json:"category,omitempty"`
	ImageURL     string      `json:"image_url,omitempty"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at,omitempty"`
	Prices       []PriceInfo `json:"prices"`
	LowestPrice  *float64    `json:"lowest_price,omitempty"`
	HighestPrice *float64    `json:"highest_price,omitempty"`
	AveragePrice *float64    `json:"average_price,omitempty"`
}

// SavingsPercent is the rounded spread between the highest and lowest
// available offer, as a percentage of the highest. Zero when the product
// has no aggregate.
func (p *Product) SavingsPercent() int {
	if p.LowestPrice == nil || p.HighestPrice == nil || *p.HighestPrice == 0 {
		return 0
	}
	return int(math.Round((*p.HighestPrice - *p.LowestPrice) / *p.HighestPrice * 100))
}

// SearchResponse is the payload shape shared by the local facade and the
// remote search API.
type SearchResponse struct {
	Query        string    `json:"query"`
	TotalResults int       `json:"total_results"`
	Products     []Product `json:"products"`
}
