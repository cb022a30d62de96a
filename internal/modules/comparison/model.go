// README: Render-ready view model produced from one quote response.
package comparison

import "busquote/internal/types"

// Card is one fully resolved vehicle, in the shortlist or a backup bucket.
type Card struct {
	Rank          int          `json:"rank"`
	Name          string       `json:"name"`
	Category      Category     `json:"category"`
	CategoryLabel string       `json:"category_label"`
	Capacity      int          `json:"capacity"`
	CapacityLabel string       `json:"capacity_label"`
	City          string       `json:"city,omitempty"`
	Image         ImageState   `json:"image"`
	Prices        []PriceRow   `json:"prices"`
	Price         *types.Money `json:"price,omitempty"`
	PriceDisplay  string       `json:"price_display"`
}

type Bucket struct {
	Category     Category `json:"category"`
	Label        string   `json:"label"`
	Image        string   `json:"image"`
	Options      []Card   `json:"options"`
	Empty        bool     `json:"empty"`
	EmptyMessage string   `json:"empty_message,omitempty"`
}

type ViewModel struct {
	Hours      int      `json:"hours"`
	HoursLabel string   `json:"hours_label"`
	Headline   string   `json:"headline"`
	Main       []Card   `json:"main_options"`
	Buckets    []Bucket `json:"backups"`
}

// TripSummary echoes the submitted trip back in display form.
type TripSummary struct {
	ZipCode         string `json:"zip_code"`
	PassengersLabel string `json:"passengers"`
	HoursLabel      string `json:"hours"`
	Date            string `json:"date"`
	EventType       string `json:"event_type,omitempty"`
}
