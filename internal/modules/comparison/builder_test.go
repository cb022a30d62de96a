package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busquote/internal/modules/quote"
)

func sampleResponse() quote.Response {
	return quote.Response{
		MainOptions: []quote.Option{
			{
				Name:       "Sprinter Party Bus",
				Category:   "party_buses",
				Capacity:   14,
				Image:      "https://cdn.example.com/sprinter.jpg",
				PriceTable: map[int]*float64{3: ptr(650), 4: ptr(800), 5: ptr(950)},
			},
			{
				Name:       "Stretch Hummer",
				Category:   "limo",
				Capacity:   18,
				PriceTable: map[int]*float64{4: ptr(1100)},
			},
			{
				Name:        "Coach 56",
				Category:    "shuttle_buses",
				Capacity:    56,
				Image:       "   ",
				LegacyPrice: ptr(1400),
			},
		},
		Backups: map[string][]quote.Option{
			"shuttle_buses": {},
			"limousines": {
				{Name: "Lincoln MKT", Category: "limousines", Capacity: 8, PriceTable: map[int]*float64{4: ptr(700)}},
			},
			"party_buses": {
				{Name: "Sprinter Party Bus", Category: "party_buses", Capacity: 14},
				{Name: "Big Party", Category: "party_buses", Capacity: 40},
			},
			"other": {
				{Name: "Trolley", Category: "other", Capacity: 30},
			},
		},
	}
}

func TestBuild_MainOptionsKeepRankAndResolve(t *testing.T) {
	vm := Build(sampleResponse(), 4)

	require.Len(t, vm.Main, 3)
	assert.Equal(t, "Top 3 Options", vm.Headline)
	assert.Equal(t, "4 hours", vm.HoursLabel)

	first := vm.Main[0]
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, PartyBuses, first.Category)
	assert.Equal(t, "Party Buses", first.CategoryLabel)
	assert.Equal(t, "https://cdn.example.com/sprinter.jpg", first.Image.Src)
	assert.Equal(t, "$800", first.PriceDisplay)
	assert.Equal(t, "Up to 14 passengers", first.CapacityLabel)

	// unrecognized category keeps its ranking position
	limo := vm.Main[1]
	assert.Equal(t, 2, limo.Rank)
	assert.Equal(t, "Stretch Hummer", limo.Name)
	assert.Equal(t, Other, limo.Category)
	assert.Equal(t, "Other", limo.CategoryLabel)
	assert.Equal(t, genericImage, limo.Image.Src)
	assert.Equal(t, "$1100", limo.PriceDisplay)

	coach := vm.Main[2]
	assert.Equal(t, shuttleBusImage, coach.Image.Src)
	assert.Equal(t, []string{Unavailable, "$1400", Unavailable},
		[]string{coach.Prices[0].Display, coach.Prices[1].Display, coach.Prices[2].Display})
}

func TestBuild_BucketOrderAndEmptyState(t *testing.T) {
	vm := Build(sampleResponse(), 4)

	require.Len(t, vm.Buckets, 3)
	assert.Equal(t, PartyBuses, vm.Buckets[0].Category)
	assert.Equal(t, Limousines, vm.Buckets[1].Category)
	assert.Equal(t, ShuttleBuses, vm.Buckets[2].Category)

	assert.Len(t, vm.Buckets[0].Options, 2)
	assert.False(t, vm.Buckets[0].Empty)
	assert.Equal(t, partyBusImage, vm.Buckets[0].Options[1].Image.Src)

	shuttle := vm.Buckets[2]
	assert.True(t, shuttle.Empty)
	assert.Empty(t, shuttle.Options)
	assert.Equal(t, "No shuttle buses found", shuttle.EmptyMessage)

	for _, b := range vm.Buckets {
		for _, c := range b.Options {
			assert.NotEqual(t, "Trolley", c.Name, "unknown bucket keys are never rendered")
		}
	}
}

func TestBuild_UncategorizedBackupsStayOutOfNamedBuckets(t *testing.T) {
	resp := quote.Response{
		Backups: map[string][]quote.Option{
			"party_buses": {{Name: "Mystery", Category: "limo"}, {Name: "NoCat"}},
			"limousines": {
				{Name: "Ghost", Category: "Party Bus"},
				{Name: "Lincoln MKT", Category: "limousines"},
			},
		},
	}
	vm := Build(resp, 2)

	party := vm.Buckets[0]
	assert.Empty(t, party.Options)
	assert.True(t, party.Empty)
	assert.Equal(t, "No party buses found", party.EmptyMessage)

	limo := vm.Buckets[1]
	require.Len(t, limo.Options, 1)
	assert.Equal(t, "Lincoln MKT", limo.Options[0].Name)
	assert.Equal(t, 1, limo.Options[0].Rank)

	for _, b := range vm.Buckets {
		for _, c := range b.Options {
			assert.NotEqual(t, Other, c.Category, "bucket %s holds %q", b.Category, c.Name)
		}
	}
}

func TestBuild_MissingBucketRendersNoneFound(t *testing.T) {
	resp := quote.Response{MainOptions: []quote.Option{}, Backups: map[string][]quote.Option{}}
	vm := Build(resp, 2)

	assert.Equal(t, "No matching vehicles", vm.Headline)
	require.Len(t, vm.Buckets, 3)
	for _, b := range vm.Buckets {
		assert.True(t, b.Empty)
		assert.NotEmpty(t, b.EmptyMessage)
	}
}

func TestBuild_HourOne(t *testing.T) {
	resp := quote.Response{
		MainOptions: []quote.Option{{Name: "Limo", Category: "limousines", PriceTable: map[int]*float64{1: ptr(200), 2: ptr(350)}}},
		Backups:     map[string][]quote.Option{},
	}
	vm := Build(resp, 1)

	rows := vm.Main[0].Prices
	assert.Equal(t, []int{1, 1, 2}, rowHours(rows))
	assert.True(t, rows[1].Highlight)
	assert.NotEqual(t, rows[0].Key, rows[1].Key)
	assert.Equal(t, "1 hour", vm.HoursLabel)
}

func TestBuild_MiddleRowRoundTrip(t *testing.T) {
	for h := 1; h <= 12; h++ {
		price := float64(100 * h)
		withPrice := quote.Option{PriceTable: map[int]*float64{h: &price}}
		without := quote.Option{PriceTable: map[int]*float64{h + 5: &price}}
		resp := quote.Response{MainOptions: []quote.Option{withPrice, without}}

		vm := Build(resp, h)
		require.NotNil(t, vm.Main[0].Price, "h=%d", h)
		assert.Equal(t, int64(price*100), vm.Main[0].Price.Cents)
		assert.Equal(t, h, vm.Main[0].Prices[1].Hours)
		assert.Nil(t, vm.Main[1].Price)
		assert.Equal(t, Unavailable, vm.Main[1].PriceDisplay)
	}
}

func TestBuild_EveryCardResolved(t *testing.T) {
	resp := quote.Response{
		MainOptions: []quote.Option{{}, {Name: "  ", Category: "  ", Image: " "}},
		Backups:     map[string][]quote.Option{"limousines": {{Category: "limousines"}}},
	}
	vm := Build(resp, 3)

	cards := append([]Card{}, vm.Main...)
	for _, b := range vm.Buckets {
		cards = append(cards, b.Options...)
	}
	require.Len(t, cards, 3)
	for _, c := range cards {
		assert.NotEmpty(t, c.Image.Src)
		assert.NotEmpty(t, c.CategoryLabel)
		assert.Equal(t, unnamedVehicle, c.Name)
		assert.Len(t, c.Prices, 3)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	resp := sampleResponse()
	first := Build(resp, 4)
	second := Build(resp, 4)
	assert.Equal(t, first, second)
	assert.Equal(t, sampleResponse(), resp, "input is not modified")

	// view models are independent values
	first.Main[0].Prices[1].Display = "changed"
	assert.Equal(t, "$800", second.Main[0].Prices[1].Display)
}
