// README: Trip request and canonical quote response shapes.
package quote

// EventTypes lists the selectable event types; the empty string means "not specified".
var EventTypes = []string{
	"Birthday",
	"Wedding",
	"Prom",
	"Concert",
	"Corporate",
	"Bachelor/Bachelorette",
	"Other",
}

// IsEventType reports whether v is empty or one of EventTypes.
func IsEventType(v string) bool {
	if v == "" {
		return true
	}
	for _, et := range EventTypes {
		if et == v {
			return true
		}
	}
	return false
}

type TripRequest struct {
	ZipCode    string
	Passengers int
	Hours      int
	Date       string // YYYY-MM-DD
	EventType  string
}

// Option is one vehicle offer after boundary normalization. Legacy wire fields
// (type, price) are folded into Category and LegacyPrice here so nothing
// downstream has to branch on the response shape.
type Option struct {
	Name     string
	Category string
	Capacity int
	Image    string
	City     string
	Zip      string

	// PriceTable is nil when the option carried no price_table. A nil value
	// for a present hour means the service sent null for it.
	PriceTable  map[int]*float64
	LegacyPrice *float64
}

// HasPriceTable reports whether the option uses the hour-keyed price table shape.
func (o Option) HasPriceTable() bool {
	return o.PriceTable != nil
}

type Response struct {
	MainOptions []Option
	// Backups is keyed by the category key exactly as sent by the service.
	Backups map[string][]Option
}
