package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"trip_scout/internal/adapters/amadeus"
	"trip_scout/internal/adapters/gemini"
	"trip_scout/internal/adapters/geocode"
	server "trip_scout/internal/adapters/http_server"
	"trip_scout/internal/adapters/memcache"
	"trip_scout/internal/adapters/observability"
	redisad "trip_scout/internal/adapters/redis"
	"trip_scout/internal/adapters/routing"
	"trip_scout/internal/adapters/unsplash"
	"trip_scout/internal/app"
	"trip_scout/internal/domain"
	"trip_scout/internal/shared"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// generative backend: required, everything downstream hangs off it
	gen, err := gemini.New(ctx, cfg.GeminiKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("gemini client init failed")
	}

	// image search: optional; enrichment degrades to placeholders without it
	var images domain.ImageSearcher
	if img, err := unsplash.New(cfg.UnsplashBase, cfg.UnsplashKey, 5); err != nil {
		log.Warn().Err(err).Msg("image search disabled")
	} else {
		images = img
	}

	// amadeus backs flights, hotels and the remote IATA tier
	var flights domain.FlightSearcher
	var hotels domain.HotelSearcher
	var cityLookup domain.CityLookup
	if am, err := amadeus.New(cfg.AmadeusBase, cfg.AmadeusKey, cfg.AmadeusSecret, 5); err != nil {
		log.Warn().Err(err).Msg("amadeus disabled; flight and hotel search unavailable")
	} else {
		flights, hotels, cityLookup = am, am, am
	}

	geocoder := geocode.New(cfg.GeocodeBase, 1)
	router := routing.NewOSRM(cfg.RoutingBase, 5)
	var transit domain.TransitPlanner
	if tr, err := routing.NewTransit(cfg.TransitBase, cfg.TransitKey, 5); err != nil {
		log.Warn().Err(err).Msg("transit planning disabled")
	} else {
		transit = tr
	}

	// IATA memo: redis when configured, in-process otherwise
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	} else {
		cache = memcache.New(cfg.CacheTTL)
	}

	resolver := app.NewIATAResolver(cityLookup, cache, int(cfg.CacheTTL.Seconds()))
	reco := app.NewRecommendService(gen, images, cfg.ItemCount, cfg.ProviderTimeout, cfg.Workers)
	book := app.NewBookingService(resolver, flights, hotels, geocoder, router, transit, cfg.ProviderTimeout)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Reco: reco, Book: book})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
