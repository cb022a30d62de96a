package quote_fx

import (
	"go.uber.org/fx"

	"busquote/internal/config"
	"busquote/internal/modules/quote"
)

var Module = fx.Provide(provideQuoteClient)

func provideQuoteClient(cfg config.QuoteConfig) *quote.Client {
	return quote.NewClient(cfg, nil)
}
