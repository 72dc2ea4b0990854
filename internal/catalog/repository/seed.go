package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tair/bookmypanditji/internal/catalog/domain"
)

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func discount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// SeedItems returns the launch catalog: twelve products followed by six
// pandit listings, in display order
func SeedItems() []domain.Item {
	items := append(seedProducts(), seedPandits()...)
	for i := range items {
		items[i].Position = i
	}
	return items
}

func seedProducts() []domain.Item {
	return []domain.Item{
		{
			ID: "1", Kind: domain.KindProduct,
			Name:        "Complete Diwali Poojan Kit",
			Description: "Everything you need for a traditional Diwali poojan ceremony",
			Category:    domain.CategoryPoojaKits,
			BasePrice:   money(1299), DiscountPrice: discount(999),
			Rating: 4.8, ReviewCount: 210, InStock: true, IsFeatured: true,
			DateAdded: day("2025-03-15"),
		},
		{
			ID: "2", Kind: domain.KindProduct,
			Name:        "Brass Panchpatra Set",
			Description: "Traditional brass panchpatra set for daily rituals",
			Category:    domain.CategoryAccessories,
			BasePrice:   money(850),
			Rating:      4.6, ReviewCount: 88, InStock: true,
			DateAdded: day("2025-02-20"),
		},
		{
			ID: "3", Kind: domain.KindProduct,
			Name:        "Ganesha Idol - Eco-friendly",
			Description: "Handcrafted eco-friendly clay Ganesha idol",
			Category:    domain.CategoryIdols,
			BasePrice:   money(599), DiscountPrice: discount(499),
			Rating: 4.9, ReviewCount: 342, InStock: true, IsFeatured: true,
			DateAdded: day("2025-04-01"),
		},
		{
			ID: "4", Kind: domain.KindProduct,
			Name:        "Premium Camphor Tablets",
			Description: "High quality camphor tablets for aarti",
			Category:    domain.CategoryAccessories,
			BasePrice:   money(120),
			Rating:      4.7, ReviewCount: 156, InStock: true,
			DateAdded: day("2025-01-10"),
		},
		{
			ID: "5", Kind: domain.KindProduct,
			Name:        "Sandalwood Incense Sticks",
			Description: "Pure sandalwood incense sticks - Pack of 30",
			Category:    domain.CategoryIncense,
			BasePrice:   money(199),
			Rating:      4.5, ReviewCount: 97, InStock: true,
			DateAdded: day("2025-03-25"),
		},
		{
			ID: "6", Kind: domain.KindProduct,
			Name:        "Lakshmi Ganesh Idol Set",
			Description: "Beautiful brass Lakshmi Ganesh idol set for prosperity",
			Category:    domain.CategoryIdols,
			BasePrice:   money(2499), DiscountPrice: discount(1999),
			Rating: 4.8, ReviewCount: 121, InStock: true,
			DateAdded: day("2025-02-05"),
		},
		{
			ID: "7", Kind: domain.KindProduct,
			Name:        "Navgraha Yantra",
			Description: "Sacred geometry Navgraha (nine planets) yantra on copper plate",
			Category:    domain.CategoryAccessories,
			BasePrice:   money(1450),
			Rating:      4.7, ReviewCount: 64, InStock: true,
			DateAdded: day("2025-01-15"),
		},
		{
			ID: "8", Kind: domain.KindProduct,
			Name:        "Brass Diya Set",
			Description: "Set of five hand-polished brass diyas for aarti and festivals",
			Category:    domain.CategoryLamps,
			BasePrice:   money(699), DiscountPrice: discount(549),
			Rating: 4.6, ReviewCount: 73, InStock: true,
			DateAdded: day("2025-03-05"),
		},
		{
			ID: "9", Kind: domain.KindProduct,
			Name:        "Bhagavad Gita - Sanskrit with Hindi Commentary",
			Description: "Hardbound edition with original verses and word-by-word meaning",
			Category:    domain.CategoryBooks,
			BasePrice:   money(450),
			Rating:      4.9, ReviewCount: 188, InStock: true,
		},
		{
			ID: "10", Kind: domain.KindProduct,
			Name:        "Satyanarayan Puja Samagri Kit",
			Description: "Complete samagri for Satyanarayan katha including kalash and panchamrit items",
			Category:    domain.CategoryPoojaKits,
			BasePrice:   money(1599), DiscountPrice: discount(1399),
			Rating: 4.7, ReviewCount: 59, InStock: true, IsFeatured: true,
			DateAdded: day("2025-04-10"),
		},
		{
			ID: "11", Kind: domain.KindProduct,
			Name:        "Rose and Jasmine Dhoop Cones",
			Description: "Hand-rolled dhoop cones with natural floral fragrance",
			Category:    domain.CategoryIncense,
			BasePrice:   money(249),
			Rating:      4.3, ReviewCount: 41, InStock: false,
		},
		{
			ID: "12", Kind: domain.KindProduct,
			Name:        "Akhand Jyoti Brass Lamp",
			Description: "Large brass oil lamp with glass chimney for continuous lighting",
			Category:    domain.CategoryLamps,
			BasePrice:   money(1899),
			Rating:      4.4, ReviewCount: 35, InStock: false,
			DateAdded: day("2025-01-28"),
		},
	}
}

func seedPandits() []domain.Item {
	return []domain.Item{
		{
			ID: "1", Kind: domain.KindPandit,
			Name:        "Pandit Rajesh Sharma",
			Description: "Vedic priest specialising in marriage ceremonies, house warming and Vastu",
			Category:    "wedding-ceremony",
			BasePrice:   money(5000),
			Rating:      5, ReviewCount: 124, InStock: true,
			Availability: []string{"Morning", "Evening"},
			Location:     "Delhi, India",
			Expertise:    []string{"Wedding Ceremony", "Griha Pravesh", "Satyanarayan Puja"},
			Languages:    []string{"Hindi", "Sanskrit", "English"},
			Experience:   15,
			IsFeatured:   true,
			Services: []domain.Service{
				{Name: "Griha Pravesh Puja", Description: "Traditional house warming ceremony", Price: money(5000)},
				{Name: "Vivah (Wedding) Ceremony", Description: "Complete traditional Hindu wedding rituals", Price: money(15000)},
				{Name: "Satyanarayan Puja", Description: "Ritual worship of Lord Vishnu", Price: money(3500)},
				{Name: "Vastu Consultation", Description: "Analysis and remedies for home/office", Price: money(2500)},
			},
		},
		{
			ID: "2", Kind: domain.KindPandit,
			Name:        "Pandit Mukesh Joshi",
			Description: "Family priest for naming, birthday and Satyanarayan ceremonies",
			Category:    "baby-naming",
			BasePrice:   money(4500),
			Rating:      4, ReviewCount: 98, InStock: true,
			Availability: []string{"Morning", "Afternoon", "Evening"},
			Location:     "Mumbai, India",
			Expertise:    []string{"Baby Naming", "Birthday Ceremony", "Satyanarayan Puja"},
			Languages:    []string{"Hindi", "Marathi", "English"},
			Experience:   12,
			Services: []domain.Service{
				{Name: "Naamkaran Sanskar", Description: "Child naming ceremony", Price: money(3500)},
				{Name: "Annual Homam", Description: "Yearly ritual for family prosperity", Price: money(4000)},
				{Name: "Ganesh Puja", Description: "Special puja to Lord Ganesha", Price: money(2500)},
				{Name: "Lakshmi Puja", Description: "Prosperity ritual to Goddess Lakshmi", Price: money(3000)},
			},
		},
		{
			ID: "3", Kind: domain.KindPandit,
			Name:        "Acharya Devendra Trivedi",
			Description: "Vedic scholar known for astrological remedies and precise rituals",
			Category:    "wedding-ceremony",
			BasePrice:   money(6000),
			Rating:      5, ReviewCount: 156, InStock: true,
			Availability: []string{"Morning", "Evening"},
			Location:     "Bangalore, India",
			Expertise:    []string{"Wedding Ceremony", "Griha Pravesh", "Yoga"},
			Languages:    []string{"Hindi", "Sanskrit", "English", "Kannada"},
			Experience:   20,
			IsFeatured:   true,
			Services: []domain.Service{
				{Name: "Graha Shanti Puja", Description: "Planetary peace ritual", Price: money(4500)},
				{Name: "Kaal Sarp Dosh Nivaran", Description: "Remedy for Kaal Sarp yoga in horoscope", Price: money(6000)},
				{Name: "Navgraha Shanti", Description: "Peace ritual for all nine planets", Price: money(5500)},
				{Name: "Rudrabhishek", Description: "Special abhishekam to Lord Shiva", Price: money(3800)},
			},
		},
		{
			ID: "4", Kind: domain.KindPandit,
			Name:        "Pandit Srinivas Acharya",
			Description: "Follows South Indian Vedic traditions for family sanskars",
			Category:    "baby-naming",
			BasePrice:   money(4000),
			Rating:      4, ReviewCount: 87, InStock: true,
			Availability: []string{"Morning", "Afternoon"},
			Location:     "Chennai, India",
			Expertise:    []string{"Baby Naming", "Birthday Ceremony", "House Warming"},
			Languages:    []string{"Tamil", "Sanskrit", "English"},
			Experience:   10,
			Services: []domain.Service{
				{Name: "Naamkaran Sanskar", Description: "Child naming ceremony", Price: money(3500)},
				{Name: "Ayush Homam", Description: "Birthday homam for long life", Price: money(4200)},
				{Name: "Griha Pravesh Puja", Description: "Traditional house warming ceremony", Price: money(4800)},
			},
		},
		{
			ID: "5", Kind: domain.KindPandit,
			Name:        "Pandit Krishna Pandey",
			Description: "Performs weddings and last rites following Bengali customs",
			Category:    "wedding-ceremony",
			BasePrice:   money(5500),
			Rating:      5, ReviewCount: 112, InStock: true,
			Availability: []string{"Morning", "Evening"},
			Location:     "Kolkata, India",
			Expertise:    []string{"Wedding Ceremony", "Funeral Rites", "Satyanarayan Puja"},
			Languages:    []string{"Bengali", "Hindi", "Sanskrit"},
			Experience:   18,
			Services: []domain.Service{
				{Name: "Vivah (Wedding) Ceremony", Description: "Complete traditional Hindu wedding rituals", Price: money(14000)},
				{Name: "Antyesti Sanskar", Description: "Last rites and shraddh ceremonies", Price: money(6500)},
				{Name: "Satyanarayan Puja", Description: "Ritual worship of Lord Vishnu", Price: money(3200)},
			},
		},
		{
			ID: "6", Kind: domain.KindPandit,
			Name:        "Acharya Vishal Shastri",
			Description: "House warming and Vastu specialist for homes, offices and vehicles",
			Category:    "griha-pravesh",
			BasePrice:   money(3500),
			Rating:      4, ReviewCount: 72, InStock: true,
			Availability: []string{"Morning", "Afternoon", "Evening"},
			Location:     "Pune, India",
			Expertise:    []string{"Griha Pravesh", "Vastu Consultation", "Car Puja"},
			Languages:    []string{"Marathi", "Hindi", "English"},
			Experience:   8,
			Services: []domain.Service{
				{Name: "Griha Pravesh Puja", Description: "Traditional house warming ceremony", Price: money(4500)},
				{Name: "Vastu Consultation", Description: "Analysis and remedies for home/office", Price: money(2500)},
				{Name: "Vahan Puja", Description: "Blessing ceremony for a new vehicle", Price: money(1500)},
			},
		},
	}
}
