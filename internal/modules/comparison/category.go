// README: Vehicle category classification, labels and default images.
package comparison

import "strings"

type Category string

const (
	PartyBuses   Category = "party_buses"
	Limousines   Category = "limousines"
	ShuttleBuses Category = "shuttle_buses"
	// Other is assigned to anything that is not one of the three known keys.
	Other Category = "other"
)

const (
	partyBusImage   = "https://img.icons8.com/color/96/party-bus.png"
	limousineImage  = "https://img.icons8.com/color/96/limousine.png"
	shuttleBusImage = "https://img.icons8.com/color/96/bus.png"
	genericImage    = "https://img.icons8.com/color/96/transportation.png"
)

// BucketCategories returns the fixed display order of the "more options" buckets.
func BucketCategories() []Category {
	return []Category{PartyBuses, Limousines, ShuttleBuses}
}

// ResolveCategory maps a raw category/type value onto the closed set.
// Case, surrounding space and space/hyphen separators are ignored, so
// "Party Buses" resolves, while "limo" or "Party Bus" do not.
func ResolveCategory(raw string) Category {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	switch c := Category(key); c {
	case PartyBuses, Limousines, ShuttleBuses:
		return c
	}
	return Other
}

func (c Category) IsKnown() bool {
	switch c {
	case PartyBuses, Limousines, ShuttleBuses:
		return true
	}
	return false
}

// Label is the human badge text, e.g. "Party Buses".
func (c Category) Label() string {
	if !c.IsKnown() {
		return FormatLabel(string(Other))
	}
	return FormatLabel(string(c))
}

// DefaultImageFor returns the stock image for a category, or the generic
// transportation image for anything unknown.
func DefaultImageFor(c Category) string {
	switch c {
	case PartyBuses:
		return partyBusImage
	case Limousines:
		return limousineImage
	case ShuttleBuses:
		return shuttleBusImage
	default:
		return genericImage
	}
}

// FormatLabel turns a snake_case key into title-cased words: "shuttle_buses" -> "Shuttle Buses".
func FormatLabel(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
