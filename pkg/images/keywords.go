package images

import (
	"net/url"
	"strings"
)

// photoRule maps a keyword set to a static product photo. Rules are
// checked in list order against the product name; the first rule with
// any matching keyword wins.
type photoRule struct {
	keywords []string
	photoURL string
}

var photoRules = []photoRule{
	{[]string{"iphone", "galaxy", "smartphone", "סלולרי"}, "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400"},
	{[]string{"macbook", "thinkpad", "xps", "spectre", "laptop", "נייד"}, "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400"},
	{[]string{"airpods", "wh-1000", "headphone", "אוזניות"}, "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400"},
	{[]string{"watch", "forerunner", "fitbit", "שעון"}, "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400"},
	{[]string{"tv", "oled", "qled", "טלוויזיה"}, "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400"},
	{[]string{"playstation", "nintendo", "xbox", "קונסול"}, "https://images.unsplash.com/photo-1486401899868-0e435ed85128?w=400"},
	{[]string{"mouse", "keyboard", "עכבר", "מקלדת"}, "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=400"},
	{[]string{"camera", "gopro", "מצלמ"}, "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=400"},
	{[]string{"speaker", "jbl", "רמקול"}, "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400"},
	{[]string{"shoe", "sneaker", "pegasus", "ultraboost", "נעלי"}, "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400"},
	{[]string{"coffee", "nespresso", "lavazza", "קפה"}, "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400"},
	{[]string{"vacuum", "roomba", "שואב"}, "https://images.unsplash.com/photo-1558317374-067fb5f30001?w=400"},
	{[]string{"lego", "playmobil", "puzzle", "פאזל"}, "https://images.unsplash.com/photo-1587654780291-39c9404d746b?w=400"},
	{[]string{"perfume", "edp", "בושם"}, "https://images.unsplash.com/photo-1541643600914-78b084683601?w=400"},
}

// Category placeholder palette: background and text hex pairs used when
// no photo rule matches.
var categoryColors = map[string][2]string{
	"אלקטרוניקה":    {"1a365d", "e2e8f0"},
	"מחשבים":        {"2d1b69", "e9d5ff"},
	"אופנה":         {"831843", "fce7f3"},
	"בית וגן":       {"14532d", "d1fae5"},
	"ספורט ובריאות": {"7c2d12", "fed7aa"},
	"ילדים ותינוקות": {"581c87", "f3e8ff"},
	"מזון ושתייה":   {"7f1d1d", "fecaca"},
	"טיפוח ויופי":   {"4a1942", "fae8ff"},
}

var defaultColors = [2]string{"374151", "e5e7eb"}

// StaticImageURL resolves an image reference using the synchronous
// strategies only: a keyword-matched photo when a rule applies, else a
// category-colored placeholder carrying the product name. Safe to call
// during bulk catalog generation; it never touches the network.
func StaticImageURL(productName, category string) string {
	lower := strings.ToLower(productName)
	for _, rule := range photoRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.photoURL
			}
		}
	}
	return placeholderURL(productName, category)
}

func placeholderURL(productName, category string) string {
	colors, ok := categoryColors[category]
	if !ok {
		colors = defaultColors
	}
	text := []rune(productName)
	if len(text) > 40 {
		text = text[:40]
	}
	return "https://placehold.co/400x300/" + colors[0] + "/" + colors[1] +
		"?text=" + url.QueryEscape(string(text))
}
