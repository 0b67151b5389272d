package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	GeminiKey   string
	GeminiModel string

	UnsplashKey  string
	UnsplashBase string

	AmadeusBase   string
	AmadeusKey    string
	AmadeusSecret string

	GeocodeBase string
	RoutingBase string
	TransitBase string
	TransitKey  string

	RedisAddr string
	RedisDB   int
	RedisPass string

	Workers         int
	ItemCount       int
	ProviderTimeout time.Duration
	CacheTTL        time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),

		GeminiKey:   env("GEMINI_API_KEY", ""),
		GeminiModel: env("GEMINI_MODEL", "gemini-2.5-flash"),

		UnsplashKey:  env("UNSPLASH_ACCESS_KEY", ""),
		UnsplashBase: env("UNSPLASH_BASE_URL", "https://api.unsplash.com"),

		AmadeusBase:   env("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
		AmadeusKey:    env("AMADEUS_API_KEY", ""),
		AmadeusSecret: env("AMADEUS_API_SECRET", ""),

		GeocodeBase: env("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		RoutingBase: env("ROUTING_BASE_URL", "https://router.project-osrm.org"),
		TransitBase: env("TRANSIT_BASE_URL", "https://api.odsay.com/v1/api"),
		TransitKey:  env("TRANSIT_API_KEY", ""),

		RedisAddr: env("REDIS_ADDR", ""),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),

		Workers:         atoi("ENRICH_WORKERS", 8),
		ItemCount:       atoi("RECOMMEND_COUNT", 3),
		ProviderTimeout: time.Duration(atoi("PROVIDER_TIMEOUT_SECONDS", 10)) * time.Second,
		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 86400)) * time.Second,
	}
	if c.GeminiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is empty")
	}
	if c.UnsplashKey == "" {
		log.Warn().Msg("UNSPLASH_ACCESS_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
