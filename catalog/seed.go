package catalog

import "shopfront/domain"

// Default returns the built-in demo catalog used when no catalog file is
// configured.
func Default() *Catalog {
	c, err := New(seedProducts)
	if err != nil {
		// the seed is a compile-time constant; a validation failure here
		// is a programming error
		panic(err)
	}
	return c
}

var seedProducts = []domain.Product{
	{
		ID: 1, Name: "iPhone 15 Pro", Brand: "Apple", Category: "Electronics",
		Price: 1199, OriginalPrice: 1299, Rating: 4.8, Reviews: 2341,
		InStock: true, FastDelivery: true,
		Features:    []string{"A17 Pro chip", "Titanium design", "48MP camera"},
		Image:       "https://images.example.com/products/iphone-15-pro.jpg",
		Description: "The most advanced iPhone with titanium design and pro camera system.",
	},
	{
		ID: 2, Name: "Galaxy S24 Ultra", Brand: "Samsung", Category: "Electronics",
		Price: 1099, OriginalPrice: 1249, Rating: 4.7, Reviews: 1876,
		InStock: true, FastDelivery: true,
		Features:    []string{"S Pen included", "200MP camera", "AI editing"},
		Image:       "https://images.example.com/products/galaxy-s24-ultra.jpg",
		Description: "Flagship Android phone with built-in S Pen and AI photography.",
	},
	{
		ID: 3, Name: "MacBook Air M3", Brand: "Apple", Category: "Electronics",
		Price: 1299, Rating: 4.9, Reviews: 987,
		InStock: true, FastDelivery: false,
		Features:    []string{"M3 chip", "18-hour battery", "Fanless design"},
		Image:       "https://images.example.com/products/macbook-air-m3.jpg",
		Description: "Ultra-thin laptop with all-day battery life.",
	},
	{
		ID: 4, Name: "WH-1000XM5 Headphones", Brand: "Sony", Category: "Electronics",
		Price: 349, OriginalPrice: 399, Rating: 4.6, Reviews: 3210,
		InStock: true, FastDelivery: true,
		Features:    []string{"Noise cancelling", "30-hour battery", "Multipoint connection"},
		Image:       "https://images.example.com/products/wh-1000xm5.jpg",
		Description: "Industry-leading wireless noise cancelling headphones.",
	},
	{
		ID: 5, Name: "Air Max 270", Brand: "Nike", Category: "Footwear",
		Price: 129, OriginalPrice: 160, Rating: 4.4, Reviews: 5432,
		InStock: true, FastDelivery: true,
		Features:    []string{"Air cushioning", "Breathable mesh", "Lifestyle sneakers"},
		Image:       "https://images.example.com/products/air-max-270.jpg",
		Description: "Everyday sneakers with visible Air cushioning.",
	},
	{
		ID: 6, Name: "Ultraboost Light", Brand: "Adidas", Category: "Footwear",
		Price: 179, Rating: 4.5, Reviews: 2109,
		InStock: false, FastDelivery: false,
		Features:    []string{"Boost midsole", "Primeknit upper", "Running shoes"},
		Image:       "https://images.example.com/products/ultraboost-light.jpg",
		Description: "Running shoes with the lightest Boost foam yet.",
	},
	{
		ID: 7, Name: "OLED C3 55\" Smart TV", Brand: "LG", Category: "Electronics",
		Price: 1399, OriginalPrice: 1799, Rating: 4.7, Reviews: 1543,
		InStock: true, FastDelivery: false,
		Features:    []string{"OLED evo panel", "Dolby Vision", "webOS smart platform"},
		Image:       "https://images.example.com/products/oled-c3-55.jpg",
		Description: "Self-lit OLED pixels for perfect black and cinematic color.",
	},
	{
		ID: 8, Name: "EOS R50 Camera", Brand: "Canon", Category: "Electronics",
		Price: 679, Rating: 4.3, Reviews: 432,
		InStock: true, FastDelivery: true,
		Features:    []string{"24MP APS-C sensor", "4K video", "Mirrorless"},
		Image:       "https://images.example.com/products/eos-r50.jpg",
		Description: "Compact mirrorless camera for creators.",
	},
	{
		ID: 9, Name: "511 Slim Fit Jeans", Brand: "Levi's", Category: "Fashion",
		Price: 59, OriginalPrice: 89, Rating: 4.2, Reviews: 8765,
		InStock: true, FastDelivery: true,
		Features:    []string{"Slim fit", "Stretch denim", "Classic 5-pocket"},
		Image:       "https://images.example.com/products/511-slim-jeans.jpg",
		Description: "The original slim jean with room to move.",
	},
	{
		ID: 10, Name: "Airdopes 441 Earbuds", Brand: "boAt", Category: "Electronics",
		Price: 29, OriginalPrice: 49, Rating: 4.0, Reviews: 15234,
		InStock: true, FastDelivery: true,
		Features:    []string{"True wireless", "IPX7 rated", "25-hour playback"},
		Image:       "https://images.example.com/products/airdopes-441.jpg",
		Description: "Budget true wireless earbuds with deep bass.",
	},
	{
		ID: 11, Name: "Classic Leather Wallet", Brand: "Fossil", Category: "Accessories",
		Price: 45, Rating: 4.1, Reviews: 654,
		InStock: true, FastDelivery: false,
		Features:    []string{"Genuine leather", "RFID blocking", "Bifold"},
		Image:       "https://images.example.com/products/leather-wallet.jpg",
		Description: "Timeless bifold wallet in genuine leather.",
	},
	{
		ID: 12, Name: "Revolution 7 Running Shoes", Brand: "Nike", Category: "Footwear",
		Price: 65, Rating: 3.9, Reviews: 1098,
		InStock: false, FastDelivery: true,
		Features:    []string{"Lightweight foam", "Road running", "Recycled materials"},
		Image:       "https://images.example.com/products/revolution-7.jpg",
		Description: "Soft, springy everyday runner at an honest price.",
	},
}
