package config_fx

import (
	"go.uber.org/fx"

	"busquote/internal/config"
)

var Module = fx.Provide(config.Load, provideQuoteConfig)

func provideQuoteConfig(cfg config.Config) config.QuoteConfig {
	return cfg.Quote
}
