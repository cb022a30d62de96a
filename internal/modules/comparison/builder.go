// README: Result normalizer turning a quote response into a ViewModel.
package comparison

import (
	"strings"

	"busquote/internal/modules/quote"
)

const unnamedVehicle = "Unnamed vehicle"

// Build normalizes resp for the requested rental length. It never fails:
// missing or malformed option fields fall back to defaults. resp is not modified.
func Build(resp quote.Response, requestedHours int) ViewModel {
	hours := PriceHours(requestedHours)[1]

	main := make([]Card, 0, len(resp.MainOptions))
	for i, o := range resp.MainOptions {
		main = append(main, buildCard(o, i+1, hours))
	}

	categories := BucketCategories()
	buckets := make([]Bucket, 0, len(categories))
	for _, c := range categories {
		buckets = append(buckets, buildBucket(c, resp.Backups[string(c)], hours))
	}

	return ViewModel{
		Hours:      hours,
		HoursLabel: HoursLabel(hours),
		Headline:   Headline(len(main)),
		Main:       main,
		Buckets:    buckets,
	}
}

func buildBucket(c Category, options []quote.Option, hours int) Bucket {
	b := Bucket{
		Category: c,
		Label:    c.Label(),
		Image:    DefaultImageFor(c),
		Options:  make([]Card, 0, len(options)),
	}
	for _, o := range options {
		// Options without a recognized category never sit in a named bucket.
		if ResolveCategory(o.Category) == Other {
			continue
		}
		b.Options = append(b.Options, buildCard(o, len(b.Options)+1, hours))
	}
	if len(b.Options) == 0 {
		b.Empty = true
		b.EmptyMessage = NoneFoundMessage(c)
	}
	return b
}

func buildCard(o quote.Option, rank, hours int) Card {
	c := ResolveCategory(o.Category)
	name := strings.TrimSpace(o.Name)
	if name == "" {
		name = unnamedVehicle
	}

	rows := BuildPriceRows(o, hours)
	card := Card{
		Rank:          rank,
		Name:          name,
		Category:      c,
		CategoryLabel: c.Label(),
		Capacity:      o.Capacity,
		CapacityLabel: CapacityLabel(o.Capacity),
		City:          o.City,
		Image:         ResolveImage(o.Image, c),
		Prices:        rows,
		PriceDisplay:  rows[1].Display,
	}
	if rows[1].Price != nil {
		p := *rows[1].Price
		card.Price = &p
	}
	return card
}
