package images

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// Card is the deterministic placeholder shown while no photograph is
// available: a color pair derived from a hash of the full product name
// and the leading token of the name as a label. The same name always
// yields the same card, across sessions and processes.
type Card struct {
	Background string
	Accent     string
	Label      string
}

// CardFor builds the placeholder card for a product name.
func CardFor(productName string) Card {
	hue := nameHue(productName)
	return Card{
		Background: hslToHex(hue, 0.45, 0.28),
		Accent:     hslToHex(hue, 0.55, 0.88),
		Label:      leadingToken(productName),
	}
}

// URL renders the card as a placeholder image reference.
func (c Card) URL() string {
	return "https://placehold.co/400x300/" + c.Background + "/" + c.Accent +
		"?text=" + c.Label
}

// nameHue hashes the full name, not a substring, into a hue in [0,360).
func nameHue(name string) float64 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return float64(h.Sum32() % 360)
}

// leadingToken returns the first run of letters in the name, which for
// the catalog's templates is the brand or model prefix.
func leadingToken(name string) string {
	start := -1
	for i, r := range name {
		if unicode.IsLetter(r) {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			return name[start:i]
		}
	}
	if start == -1 {
		return ""
	}
	return name[start:]
}

func hslToHex(hue, saturation, lightness float64) string {
	c := (1 - math.Abs(2*lightness-1)) * saturation
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := lightness - c/2

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return strings.ToLower(fmt.Sprintf("%02x%02x%02x",
		int(math.Round((r+m)*255)),
		int(math.Round((g+m)*255)),
		int(math.Round((b+m)*255))))
}
