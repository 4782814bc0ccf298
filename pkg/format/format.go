// Package format renders money and dates for display. All prices share
// one currency symbol; grouping follows the Hebrew locale.
package format

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/SaharHalili95/price-comparison-platform/pkg/models"
)

var printer = message.NewPrinter(language.Hebrew)

// Price renders a shekel amount with thousands grouping, or "N/A" when
// the amount is absent (e.g. a product with no available offers).
func Price(amount *float64) string {
	if amount == nil {
		return "N/A"
	}
	return models.Currency + printer.Sprintf("%d", int64(math.Round(*amount)))
}

// Date renders a stored date string in short day-month hour:minute
// form. Unparseable values pass through untouched.
func Date(value string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2 Jan 15:04")
		}
	}
	return value
}
