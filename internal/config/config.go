// README: Config loader with env defaults for HTTP and the upstream quoting service.
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultQuoteAPIBase = "http://localhost:8000"

type QuoteConfig struct {
	BaseURL string
}

type Config struct {
	HTTP struct {
		Addr        string
		GinMode     string
		CORSOrigins []string
	}
	Quote QuoteConfig
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[CONFIG] action=load_dotenv msg=%v", err)
	}

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("BUSQUOTE_HTTP_ADDR", ":8080")
	cfg.HTTP.GinMode = envOrDefault("GIN_MODE", "")
	cfg.HTTP.CORSOrigins = envOrDefaultList("BUSQUOTE_CORS_ORIGINS", []string{"http://localhost:3000"})
	cfg.Quote.BaseURL = strings.TrimRight(envOrDefault("BUSQUOTE_QUOTE_API_BASE", DefaultQuoteAPIBase), "/")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envOrDefaultList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
