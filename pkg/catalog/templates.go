package catalog

// Hand-authored product templates. Each category owns a disjoint id
// range (startID gaps of 100), so generated ids never collide across
// categories.

// DefaultSections wires every template table to its category and id
// offset, in display order.
func DefaultSections() []Section {
	return []Section{
		{Category: "אלקטרוניקה", StartID: 1, Templates: electronicsTemplates},
		{Category: "מחשבים", StartID: 101, Templates: computersTemplates},
		{Category: "אופנה", StartID: 201, Templates: fashionTemplates},
		{Category: "בית וגן", StartID: 301, Templates: homeGardenTemplates},
		{Category: "ספורט ובריאות", StartID: 401, Templates: sportsTemplates},
		{Category: "ילדים ותינוקות", StartID: 501, Templates: kidsTemplates},
		{Category: "מזון ושתייה", StartID: 601, Templates: foodTemplates},
		{Category: "טיפוח ויופי", StartID: 701, Templates: beautyTemplates},
	}
}

var electronicsTemplates = []Template{
	{"iPhone 15 Pro Max 256GB", "סמארטפון דגל של Apple עם שבב A17 Pro ומצלמה משולשת", 5490},
	{"Samsung Galaxy S24 Ultra", "סמארטפון דגל עם מסך 6.8 אינץ' ועט S Pen מובנה", 4990},
	{"Sony WH-1000XM5", "אוזניות אלחוטיות עם ביטול רעשים מתקדם", 1390},
	{"Apple AirPods Pro 2", "אוזניות כפתור אלחוטיות עם ביטול רעשים אקטיבי", 949},
	{"Samsung 65 Neo QLED TV", "טלוויזיה חכמה 65 אינץ' ברזולוציית 4K", 4290},
	{"LG OLED C3 55", "טלוויזיית OLED בגודל 55 אינץ' עם עיבוד תמונה AI", 4890},
	{"Apple Watch Series 9", "שעון חכם עם חיישן חמצן בדם ומסך Always-On", 1690},
	{"Garmin Forerunner 265", "שעון ריצה עם GPS ומסך AMOLED", 1790},
	{"JBL Charge 5", "רמקול Bluetooth נייד עמיד במים", 549},
	{"Sony PlayStation 5 Slim", "קונסולת משחקים עם כונן SSD מהיר", 2290},
	{"Nintendo Switch OLED", "קונסולה היברידית עם מסך OLED בגודל 7 אינץ'", 1390},
	{"Anker PowerCore 20000", "מטען נייד בקיבולת 20,000mAh עם טעינה מהירה", 179},
	{"GoPro Hero 12 Black", "מצלמת אקסטרים עם ייצוב HyperSmooth", 1590},
	{"Kindle Paperwhite 11", "קורא ספרים אלקטרוני עם תאורה חמה ועמידות במים", 649},
}

var computersTemplates = []Template{
	{"MacBook Air M3 13", "מחשב נייד דק עם שבב M3 וסוללה ליום עבודה מלא", 5290},
	{"Dell XPS 13 Plus", "אולטרבוק עם מסך InfinityEdge ומעבד Intel Core i7", 5990},
	{"Lenovo ThinkPad X1 Carbon", "מחשב נייד עסקי קל משקל עם מקלדת מוארת", 6490},
	{"Asus ROG Strix G16", "מחשב נייד גיימינג עם RTX 4060 ומסך 165Hz", 5790},
	{"HP Spectre x360 14", "מחשב נייד היברידי עם מסך מגע OLED", 5490},
	{"Logitech MX Master 3S", "עכבר ארגונומי שקט עם גלגלת MagSpeed", 379},
	{"Keychron K8 Pro", "מקלדת מכנית אלחוטית עם מתגים ניתנים להחלפה", 429},
	{"Samsung 990 Pro 2TB", "כונן SSD NVMe במהירות קריאה 7,450MB/s", 799},
	{"LG UltraGear 27 144Hz", "מסך גיימינג QHD עם זמן תגובה 1ms", 1190},
	{"Nvidia GeForce RTX 4070", "כרטיס מסך לגיימינג ברזולוציית 1440p", 2590},
	{"Kingston Fury 32GB DDR5", "ערכת זיכרון 2x16GB במהירות 6000MT/s", 489},
	{"Logitech C920 HD Pro", "מצלמת רשת Full HD עם מיקרופונים כפולים", 289},
}

var fashionTemplates = []Template{
	{"Levi's 501 Original", "ג'ינס קלאסי בגזרה ישרה", 349},
	{"Nike Air Force 1", "נעלי סניקרס עור בצבע לבן", 449},
	{"Adidas Stan Smith", "נעלי סניקרס קלאסיות עם לוגו ירוק", 399},
	{"Ray-Ban Wayfarer", "משקפי שמש קלאסיים עם עדשות מקוטבות", 649},
	{"Casio G-Shock GA-2100", "שעון יד עמיד בזעזועים ובמים", 429},
	{"Tommy Hilfiger Polo", "חולצת פולו כותנה עם לוגו רקום", 249},
	{"Columbia Powder Lite", "מעיל מבודד קל משקל לחורף", 499},
	{"Herschel Little America", "תיק גב בנפח 25 ליטר עם תא למחשב נייד", 379},
	{"Birkenstock Arizona", "כפכפי שעם עם רצועות מתכווננות", 349},
	{"Calvin Klein Trunk 3-Pack", "שלישיית תחתוני כותנה", 159},
}

var homeGardenTemplates = []Template{
	{"Dyson V15 Detect", "שואב אבק אלחוטי עם לייזר לזיהוי אבק", 2890},
	{"iRobot Roomba j7+", "שואב אבק רובוטי עם ריקון אוטומטי", 2490},
	{"Nespresso Vertuo Next", "מכונת קפה עם טכנולוגיית Centrifusion", 599},
	{"Ninja Foodi MAX", "סיר בישול רב-תכליתי עם טיגון באוויר חם", 899},
	{"Philips Airfryer XXL", "מטגנת אוויר משפחתית בנפח 7.3 ליטר", 1090},
	{"KitchenAid Artisan", "מיקסר עומד מקצועי בנפח 4.8 ליטר", 2190},
	{"SodaStream Duo", "מכשיר להכנת סודה עם בקבוקי זכוכית", 499},
	{"Xiaomi Smart Air Purifier 4", "מטהר אוויר חכם לחדרים עד 48 מ\"ר", 599},
	{"Bosch Serie 6 מדיח", "מדיח כלים רחב עם תוכנית שקטה", 2790},
	{"Philips Hue Starter Kit", "ערכת תאורה חכמה עם שלוש נורות וגשר", 649},
}

var sportsTemplates = []Template{
	{"Nike Pegasus 40", "נעלי ריצה עם בלימת זעזועים React", 519},
	{"Adidas Ultraboost Light", "נעלי ריצה עם מדרס Boost קל משקל", 729},
	{"Garmin Edge 540", "מחשב אופניים עם GPS ומפות ניווט", 1590},
	{"Theragun Mini", "מכשיר עיסוי נייד לשחרור שרירים", 799},
	{"Manduka PRO Yoga Mat", "מזרן יוגה מקצועי בעובי 6 מ\"מ", 549},
	{"Fitbit Charge 6", "צמיד כושר עם מדידת דופק ו-GPS מובנה", 649},
	{"Hydro Flask 32oz", "בקבוק שתייה מבודד מנירוסטה", 189},
	{"Wilson Evolution", "כדורסל משחק רשמי מעור סינתטי", 289},
	{"TRX Home2 System", "ערכת רצועות אימון פונקציונלי", 689},
	{"Polar H10", "רצועת חזה למדידת דופק בדיוק גבוה", 349},
}

var kidsTemplates = []Template{
	{"Lego Technic 42151", "ערכת הרכבה של מכונית מרוץ בוגאטי", 219},
	{"Bugaboo Fox 5", "עגלת תינוק רב-שלבית עם שלדה קלה", 4990},
	{"Chicco NextFit Zip", "כיסא בטיחות מתכוונן לגילאי 0-6", 1290},
	{"Fisher-Price Jumperoo", "טרמפולינת פעילות לתינוקות עם אורות וצלילים", 449},
	{"Philips Avent SCD843", "מוניטור וידאו לתינוק עם מסך 3.5 אינץ'", 749},
	{"Playmobil City Life", "בית חולים לילדים עם דמויות ואביזרים", 299},
	{"Tiny Love Meadow Days", "משטח פעילות מוזיקלי לתינוק", 349},
	{"Stokke Tripp Trapp", "כיסא אוכל מתכוונן שגדל עם הילד", 1190},
	{"Ravensburger 1000 Puzzle", "פאזל 1000 חלקים לכל המשפחה", 89},
	{"Micro Maxi Deluxe", "קורקינט שלושה גלגלים לילדים", 499},
}

var foodTemplates = []Template{
	{"Lavazza Qualita Oro 1kg", "פולי קפה ערביקה 100% בקלייה בינונית", 119},
	{"Lindt Excellence 70%", "טבלת שוקולד מריר 100 גרם", 22},
	{"Twinings Earl Grey 100", "מארז 100 שקיקי תה ארל גריי", 45},
	{"Olive Oil Extra Virgin 750ml", "שמן זית כתית מעולה בכבישה קרה", 59},
	{"Manuka Honey UMF 10+", "דבש מאנוקה ניו זילנדי 250 גרם", 189},
	{"Nutella 750g", "ממרח אגוזי לוז עם קקאו", 32},
	{"Barilla Spaghetti No.5", "פסטה איטלקית מחיטת דורום", 12},
	{"Nespresso Capsules 50-Pack", "מארז 50 קפסולות אספרסו בקלייה כהה", 115},
	{"Heinz Ketchup 700g", "קטשופ עגבניות קלאסי", 18},
	{"Kellogg's Granola 750g", "גרנולה עם דבש ושקדים", 29},
}

var beautyTemplates = []Template{
	{"Dyson Airwrap Complete", "מעצב שיער רב-תכליתי עם טכנולוגיית Coanda", 2390},
	{"Philips OneBlade Pro", "מכונת גילוח היברידית לגילוח ועיצוב", 349},
	{"Braun Silk-epil 9", "מכשיר להסרת שיער עם ראש עיסוי", 699},
	{"Oral-B iO Series 9", "מברשת שיניים חשמלית עם בינה מלאכותית", 1190},
	{"La Roche-Posay Effaclar", "ג'ל ניקוי לעור מעורב עד שמן 400 מ\"ל", 89},
	{"CeraVe Moisturizing Cream", "קרם לחות לעור יבש עם חומצה היאלורונית", 69},
	{"Kerastase Elixir Ultime", "שמן הזנה לשיער 100 מ\"ל", 189},
	{"Estee Lauder Advanced Night Repair", "סרום לילה לחידוש העור 50 מ\"ל", 459},
	{"Chanel Bleu de Chanel EDP", "בושם לגבר 100 מ\"ל", 559},
	{"Foreo Luna 4", "מברשת ניקוי פנים סונית מסיליקון", 899},
}
