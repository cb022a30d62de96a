// README: Submission boundary: fetch a quote, normalize it, reduce failures to one error state.
package comparison

import (
	"context"
	"errors"
	"log"

	"busquote/internal/modules/quote"
)

// GenericErrorMessage is the only failure text users ever see.
const GenericErrorMessage = "Failed to fetch quote."

type QuoteFetcher interface {
	Fetch(ctx context.Context, req quote.TripRequest) (*quote.Response, error)
}

type Service struct {
	quotes QuoteFetcher
}

func NewService(quotes QuoteFetcher) *Service {
	return &Service{quotes: quotes}
}

// Outcome holds exactly one of View or Err.
type Outcome struct {
	Trip    TripSummary
	View    *ViewModel
	Err     error
	Message string
}

func (o Outcome) Succeeded() bool {
	return o.View != nil && o.Err == nil
}

// Compare runs one submission. Nothing is kept between calls, so a failure
// never leaves an earlier result behind.
func (s *Service) Compare(ctx context.Context, req quote.TripRequest) Outcome {
	trip := SummarizeTrip(req)

	resp, err := s.quotes.Fetch(ctx, req)
	if err == nil && resp == nil {
		err = quote.ErrDataShape
	}
	if err != nil {
		kind := "request"
		if errors.Is(err, quote.ErrDataShape) {
			kind = "data_shape"
		}
		log.Printf("[COMPARISON] action=compare zip=%s kind=%s error=%v", req.ZipCode, kind, err)
		return Outcome{Trip: trip, Err: err, Message: GenericErrorMessage}
	}

	vm := Build(*resp, req.Hours)
	return Outcome{Trip: trip, View: &vm}
}

func SummarizeTrip(req quote.TripRequest) TripSummary {
	return TripSummary{
		ZipCode:         req.ZipCode,
		PassengersLabel: Pluralize(req.Passengers, "passenger"),
		HoursLabel:      HoursLabel(req.Hours),
		Date:            req.Date,
		EventType:       req.EventType,
	}
}
