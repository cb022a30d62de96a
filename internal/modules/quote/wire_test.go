package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResponse_CanonicalShape(t *testing.T) {
	body := `{
		"main_options": [
			{"name": "Party Bus 30", "category": "party_buses", "capacity": 30,
			 "image": "https://cdn.example.com/pb30.jpg",
			 "price_table": {"3": 900, "4": 1150.5, "5": null}}
		],
		"backups": {
			"party_buses": [{"name": "Party Bus 30", "category": "party_buses", "capacity": 30}],
			"limousines": [],
			"shuttle_buses": []
		}
	}`

	resp, err := DecodeResponse([]byte(body))
	require.NoError(t, err)
	require.Len(t, resp.MainOptions, 1)

	o := resp.MainOptions[0]
	assert.Equal(t, "Party Bus 30", o.Name)
	assert.Equal(t, "party_buses", o.Category)
	assert.Equal(t, 30, o.Capacity)
	assert.Equal(t, "https://cdn.example.com/pb30.jpg", o.Image)
	require.True(t, o.HasPriceTable())
	require.NotNil(t, o.PriceTable[3])
	assert.Equal(t, 900.0, *o.PriceTable[3])
	assert.Equal(t, 1150.5, *o.PriceTable[4])
	v, present := o.PriceTable[5]
	assert.True(t, present)
	assert.Nil(t, v)
	assert.Nil(t, o.LegacyPrice)

	assert.Len(t, resp.Backups["party_buses"], 1)
	assert.Empty(t, resp.Backups["limousines"])
}

func TestDecodeResponse_LegacyShape(t *testing.T) {
	body := `{
		"main_options": [{"name": "Stretch", "type": "limousines", "capacity": "10", "price": 475.5, "image": "  "}],
		"backups": {"limousines": []}
	}`

	resp, err := DecodeResponse([]byte(body))
	require.NoError(t, err)
	o := resp.MainOptions[0]
	assert.Equal(t, "limousines", o.Category)
	assert.Equal(t, 10, o.Capacity)
	assert.Equal(t, "", o.Image)
	assert.False(t, o.HasPriceTable())
	require.NotNil(t, o.LegacyPrice)
	assert.Equal(t, 475.5, *o.LegacyPrice)
}

func TestDecodeResponse_CategoryPreferredOverType(t *testing.T) {
	body := `{"main_options": [{"name": "x", "category": "shuttle_buses", "type": "limousines"}], "backups": {}}`
	resp, err := DecodeResponse([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "shuttle_buses", resp.MainOptions[0].Category)
}

func TestDecodeResponse_MalformedFieldsDegrade(t *testing.T) {
	body := `{
		"main_options": [
			"not an object",
			{"name": 42, "capacity": {"a": 1}, "price_table": {"x": 1, "2": "250", "3": "n/a", "0": 5}, "price": "cheap"},
			{"name": "Ok", "price_table": []}
		],
		"backups": {"party_buses": "oops", "limousines": null}
	}`

	resp, err := DecodeResponse([]byte(body))
	require.NoError(t, err)
	require.Len(t, resp.MainOptions, 3, "ranking positions are preserved")

	assert.Equal(t, Option{}, resp.MainOptions[0])

	o := resp.MainOptions[1]
	assert.Equal(t, "42", o.Name)
	assert.Equal(t, 0, o.Capacity)
	assert.Nil(t, o.LegacyPrice)
	require.Len(t, o.PriceTable, 2)
	assert.Equal(t, 250.0, *o.PriceTable[2])
	assert.Nil(t, o.PriceTable[3])

	assert.Nil(t, resp.MainOptions[2].PriceTable)

	assert.Empty(t, resp.Backups["party_buses"])
	assert.Empty(t, resp.Backups["limousines"])
}

func TestDecodeResponse_CapacityOutOfRange(t *testing.T) {
	body := `{"main_options": [{"capacity": 1e20}, {"capacity": 2147483648}, {"capacity": 56}], "backups": {}}`
	resp, err := DecodeResponse([]byte(body))
	require.NoError(t, err)
	require.Len(t, resp.MainOptions, 3)
	assert.Equal(t, 0, resp.MainOptions[0].Capacity)
	assert.Equal(t, 0, resp.MainOptions[1].Capacity)
	assert.Equal(t, 56, resp.MainOptions[2].Capacity)
}

func TestDecodeResponse_ShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"not json", `<html>oops</html>`, ErrRequest},
		{"missing main_options", `{"backups": {}}`, ErrDataShape},
		{"null main_options", `{"main_options": null, "backups": {}}`, ErrDataShape},
		{"missing backups", `{"main_options": []}`, ErrDataShape},
		{"main_options not list", `{"main_options": {}, "backups": {}}`, ErrDataShape},
		{"backups not object", `{"main_options": [], "backups": []}`, ErrDataShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := DecodeResponse([]byte(tt.body))
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIsEventType(t *testing.T) {
	assert.True(t, IsEventType(""))
	assert.True(t, IsEventType("Prom"))
	assert.True(t, IsEventType("Bachelor/Bachelorette"))
	assert.False(t, IsEventType("prom"))
	assert.False(t, IsEventType("Funeral"))
}
