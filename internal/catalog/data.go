package catalog

// Base images rotated through generated products.
var imageSets = map[string][]string{
	"tshirt": {
		"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=1200&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1523381210434-271e8be1f52b?w=1200&auto=format&fit=crop&q=80",
	},
	"jeans": {
		"https://images.unsplash.com/photo-1542272604-787c3835535d?w=1200&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1490367532201-b9bc1dc483f6?w=1200&auto=format&fit=crop&q=80",
	},
	"dresses": {
		"https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=1200&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1496747611176-843222e1e57c?w=1200&auto=format&fit=crop&q=80",
	},
	"jacket": {
		"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=1200&auto=format&fit=crop&q=80",
	},
	"footwear": {
		"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=1200&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=1200&auto=format&fit=crop&q=80",
	},
	"saree": {
		"https://images.unsplash.com/photo-1552332386-f8dd00dc2f85?w=1200&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1530810811122-0b6ba8f2d3b2?w=1200&auto=format&fit=crop&q=80",
	},
	"kurta": {
		"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=1200&auto=format&fit=crop&q=80",
	},
	"default": {
		"https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=1200&auto=format&fit=crop&q=80",
	},
}

type template struct {
	category           string
	brand              string
	nameBase           string
	priceCents         int64
	originalPriceCents int64
	discountPercent    int
	description        string
	sizes              []string
	colors             []string
	images             []string
	badge              string
}

// Categories in display order. Every category gets at least eight products.
var Categories = []string{
	"T-Shirts",
	"Jeans",
	"Dresses",
	"Jackets",
	"Footwear",
	"Hoodies",
	"Shirts",
	"Sarees",
	"Lehengas",
	"Kurta Sets",
}

var templates = map[string]template{
	"T-Shirts": {
		category:    "T-Shirts",
		brand:       "UrbanStyle",
		nameBase:    "Casual Cotton Tee",
		priceCents:  59900,
		description: "Premium cotton tee, soft and breathable.",
		sizes:       []string{"S", "M", "L", "XL", "XXL"},
		colors:      []string{"White", "Black", "Navy", "Grey"},
		images:      imageSets["tshirt"],
	},
	"Jeans": {
		category:           "Jeans",
		brand:              "DenimCo",
		nameBase:           "Slim Fit Denim Jeans",
		priceCents:         149900,
		originalPriceCents: 249900,
		discountPercent:    40,
		description:        "Classic slim fit denim with comfortable stretch.",
		sizes:              []string{"28", "30", "32", "34", "36"},
		colors:             []string{"Blue", "Dark Blue", "Black"},
		images:             imageSets["jeans"],
	},
	"Dresses": {
		category:    "Dresses",
		brand:       "FloralStyle",
		nameBase:    "Printed Summer Dress",
		priceCents:  129900,
		description: "Flowy floral dress perfect for sunny days.",
		sizes:       []string{"XS", "S", "M", "L", "XL"},
		colors:      []string{"Pink", "Blue", "Yellow"},
		images:      imageSets["dresses"],
		badge:       "new",
	},
	"Jackets": {
		category:           "Jackets",
		brand:              "UrbanEdge",
		nameBase:           "Leather Jacket",
		priceCents:         399900,
		originalPriceCents: 599900,
		discountPercent:    33,
		description:        "Premium leather jacket with classic design.",
		sizes:              []string{"S", "M", "L", "XL"},
		colors:             []string{"Black", "Brown"},
		images:             imageSets["jacket"],
	},
	"Footwear": {
		category:           "Footwear",
		brand:              "RunFast",
		nameBase:           "Running Shoes",
		priceCents:         249900,
		originalPriceCents: 399900,
		discountPercent:    38,
		description:        "Performance running shoes with cushioning tech.",
		sizes:              []string{"6", "7", "8", "9", "10", "11"},
		colors:             []string{"White", "Black", "Blue"},
		images:             imageSets["footwear"],
	},
	"Hoodies": {
		category:    "Hoodies",
		brand:       "ComfortZone",
		nameBase:    "Cozy Hoodie",
		priceCents:  99900,
		description: "Warm cotton-blend hoodie for casual comfort.",
		sizes:       []string{"S", "M", "L", "XL", "XXL"},
		colors:      []string{"Grey", "Black", "Maroon"},
		images:      imageSets["default"],
	},
	"Shirts": {
		category:           "Shirts",
		brand:              "ExecutiveWear",
		nameBase:           "Formal Shirt",
		priceCents:         89900,
		originalPriceCents: 149900,
		discountPercent:    40,
		description:        "Wrinkle-free formal shirt for office wear.",
		sizes:              []string{"S", "M", "L", "XL", "XXL"},
		colors:             []string{"White", "Light Blue", "Pink"},
		images:             imageSets["default"],
	},
	"Sarees": {
		category:           "Sarees",
		brand:              "Savera",
		nameBase:           "Silk Banarasi Saree",
		priceCents:         799900,
		originalPriceCents: 1199900,
		discountPercent:    33,
		description:        "Banarasi silk saree with zari work for weddings.",
		sizes:              []string{"One Size"},
		colors:             []string{"Maroon", "Gold", "Sapphire"},
		images:             imageSets["saree"],
		badge:              "trending",
	},
	"Lehengas": {
		category:    "Lehengas",
		brand:       "Rivaah",
		nameBase:    "Designer Lehenga Set",
		priceCents:  1599900,
		description: "Hand-embroidered lehenga with dupatta.",
		sizes:       []string{"S", "M", "L", "XL"},
		colors:      []string{"Rose Gold", "Emerald", "Fuchsia"},
		images:      imageSets["default"],
	},
	"Kurta Sets": {
		category:    "Kurta Sets",
		brand:       "Nazrana",
		nameBase:    "Kurta Set",
		priceCents:  249900,
		description: "Comfortable kurta set with churidar or palazzo.",
		sizes:       []string{"S", "M", "L", "XL"},
		colors:      []string{"Mustard", "Teal", "Coral"},
		images:      imageSets["kurta"],
		badge:       "new",
	},
}
