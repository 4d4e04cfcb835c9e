package roomtype

import "strings"

// NormalizeAmenities trims every entry and drops blanks, keeping order.
func NormalizeAmenities(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SplitAmenities reads a comma separated amenity list such as "WiFi, TV".
func SplitAmenities(s string) []string {
	return NormalizeAmenities(strings.Split(s, ","))
}
