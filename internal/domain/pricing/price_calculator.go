package pricing

// Quote is the priced result for a stay: the nightly rate snapshot, the
// number of nights and the total.
type Quote struct {
	PricePerNight Money
	Nights        int
	Total         Money
}

type PriceCalculator interface {
	Quote(pricePerNight Money, nights int) Quote
}

// NightlyPriceCalculator charges the flat nightly rate for every night.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (NightlyPriceCalculator) Quote(pricePerNight Money, nights int) Quote {
	if nights < 0 {
		nights = 0
	}
	return Quote{
		PricePerNight: pricePerNight,
		Nights:        nights,
		Total:         pricePerNight.Times(nights),
	}
}
