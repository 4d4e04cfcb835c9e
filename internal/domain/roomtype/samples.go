package roomtype

import "luxora-booking/internal/domain/pricing"

func mustMoney(cents int64) pricing.Money {
	m, err := pricing.NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// SampleRooms is the starter catalogue seeded into an empty inventory.
func SampleRooms() []Attributes {
	return []Attributes{
		{
			Name:          "Standard Single Room",
			Description:   "A cozy room with a single bed, perfect for solo travellers on business or leisure.",
			PricePerNight: mustMoney(12000),
			Label:         "Single",
			ImageURL:      "https://images.unsplash.com/photo-1631049307264-da0ec9d70304",
			MaxGuests:     1,
			Amenities:     []string{"WiFi", "TV", "Air Conditioning", "Work Desk"},
			TotalUnits:    8,
			Status:        StatusActive,
		},
		{
			Name:          "Deluxe Double Room",
			Description:   "A spacious room with a queen-size bed and city views, ideal for couples.",
			PricePerNight: mustMoney(18000),
			Label:         "Double",
			ImageURL:      "https://images.unsplash.com/photo-1618773928121-c32242e63f39",
			MaxGuests:     2,
			Amenities:     []string{"WiFi", "TV", "Air Conditioning", "Mini Bar", "City View"},
			TotalUnits:    6,
			Status:        StatusActive,
		},
		{
			Name:          "Executive Suite",
			Description:   "A luxurious suite with a separate living area, king-size bed and premium amenities.",
			PricePerNight: mustMoney(35000),
			Label:         "Suite",
			ImageURL:      "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b",
			MaxGuests:     4,
			Amenities:     []string{"WiFi", "TV", "Air Conditioning", "Mini Bar", "Jacuzzi", "Living Area", "Room Service"},
			TotalUnits:    3,
			Status:        StatusActive,
		},
	}
}
