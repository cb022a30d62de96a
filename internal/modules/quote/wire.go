// README: Lenient decoding of the /quote JSON body into the canonical Response.
package quote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type wireResponse struct {
	MainOptions json.RawMessage `json:"main_options"`
	Backups     json.RawMessage `json:"backups"`
}

// DecodeResponse parses a /quote body. Only a missing top-level structure is an
// error; anything wrong inside an option degrades to zero values.
func DecodeResponse(body []byte) (*Response, error) {
	var wr wireResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrRequest, err)
	}
	if isNull(wr.MainOptions) {
		return nil, fmt.Errorf("%w: main_options missing", ErrDataShape)
	}
	if isNull(wr.Backups) {
		return nil, fmt.Errorf("%w: backups missing", ErrDataShape)
	}

	var mainRaw []json.RawMessage
	if err := json.Unmarshal(wr.MainOptions, &mainRaw); err != nil {
		return nil, fmt.Errorf("%w: main_options is not a list", ErrDataShape)
	}
	var backupsRaw map[string]json.RawMessage
	if err := json.Unmarshal(wr.Backups, &backupsRaw); err != nil {
		return nil, fmt.Errorf("%w: backups is not an object", ErrDataShape)
	}

	resp := &Response{
		MainOptions: decodeOptions(mainRaw),
		Backups:     make(map[string][]Option, len(backupsRaw)),
	}
	for key, raw := range backupsRaw {
		var items []json.RawMessage
		if isNull(raw) || json.Unmarshal(raw, &items) != nil {
			resp.Backups[key] = []Option{}
			continue
		}
		resp.Backups[key] = decodeOptions(items)
	}
	return resp, nil
}

func decodeOptions(items []json.RawMessage) []Option {
	out := make([]Option, 0, len(items))
	for _, raw := range items {
		out = append(out, decodeOption(raw))
	}
	return out
}

func decodeOption(raw json.RawMessage) Option {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Option{}
	}

	o := Option{
		Name:     stringField(fields["name"]),
		Capacity: intField(fields["capacity"]),
		Image:    stringField(fields["image"]),
		City:     stringField(fields["city"]),
		Zip:      stringField(fields["zip"]),
	}

	o.Category = stringField(fields["category"])
	if o.Category == "" {
		o.Category = stringField(fields["type"])
	}

	if table, ok := fields["price_table"]; ok && !isNull(table) {
		o.PriceTable = priceTableField(table)
	}
	o.LegacyPrice = floatField(fields["price"])
	return o
}

func priceTableField(raw json.RawMessage) map[int]*float64 {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	table := make(map[int]*float64, len(entries))
	for k, v := range entries {
		hour, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || hour < 1 {
			continue
		}
		table[hour] = floatField(v)
	}
	return table
}

func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

func stringField(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func floatField(raw json.RawMessage) *float64 {
	if isNull(raw) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return finite(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return finite(f)
		}
	}
	return nil
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// intField degrades negative and out-of-range values to 0.
func intField(raw json.RawMessage) int {
	f := floatField(raw)
	if f == nil || *f < 0 || *f > math.MaxInt32 {
		return 0
	}
	return int(*f)
}
