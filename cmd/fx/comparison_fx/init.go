package comparison_fx

import (
	"go.uber.org/fx"

	"busquote/internal/modules/comparison"
	"busquote/internal/modules/quote"
)

var Module = fx.Provide(provideComparisonService)

func provideComparisonService(client *quote.Client) *comparison.Service {
	return comparison.NewService(client)
}
