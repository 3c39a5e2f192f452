package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const tableCacheKey = "billing:currency:table"

// ServiceConfig configures the reference-data service.
type ServiceConfig struct {
	// File optionally points at a JSON document overriding the built-in table.
	File string
	// Base overrides the pivot currency id. Empty means BaseCurrencyID.
	Base   string
	Cache  *Cache
	Logger zerolog.Logger
}

// Service resolves currency and country reference data. The table is loaded
// once at startup and served read-only; the engine never mutates it.
type Service struct {
	source Table
	base   string
	cache  *Cache
	logger zerolog.Logger
}

// NewService loads the reference table from the configured file, falling back
// to the built-in seed data.
func NewService(cfg ServiceConfig) (*Service, error) {
	table := seedTable()
	if strings.TrimSpace(cfg.File) != "" {
		data, err := os.ReadFile(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("read currency file: %w", err)
		}
		var loaded Table
		if err := json.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("parse currency file: %w", err)
		}
		if len(loaded.Currencies) > 0 {
			table = loaded
		}
	}
	base := strings.TrimSpace(cfg.Base)
	if base == "" {
		base = BaseCurrencyID
	}
	return &Service{source: table, base: base, cache: cfg.Cache, logger: cfg.Logger}, nil
}

// Table returns the full reference table, preferring the cached copy.
func (s *Service) Table(ctx context.Context) Table {
	var cached Table
	hit, err := s.cache.GetJSON(ctx, tableCacheKey, &cached)
	if err != nil {
		s.logger.Warn().Err(err).Msg("currency table cache read")
	}
	if hit && len(cached.Currencies) > 0 {
		return cached
	}
	if err := s.cache.SetJSON(ctx, tableCacheKey, s.source); err != nil {
		s.logger.Warn().Err(err).Msg("currency table cache write")
	}
	return s.source
}

// Currencies lists every known currency.
func (s *Service) Currencies(ctx context.Context) []Currency {
	return s.Table(ctx).Currencies
}

// CurrencyByID resolves a currency record. The zero Currency carries empty
// separators and symbol, which the formatter replaces with defaults, keeping
// lookup misses non-fatal.
func (s *Service) CurrencyByID(ctx context.Context, id string) (Currency, bool) {
	return find(s.Table(ctx).Currencies, id)
}

// CountryByID resolves a country record by id or ISO code.
func (s *Service) CountryByID(ctx context.Context, id string) (Country, bool) {
	if strings.TrimSpace(id) == "" {
		return Country{}, false
	}
	for _, c := range s.Table(ctx).Countries {
		if c.ID == id || strings.EqualFold(c.Code, id) {
			return c, true
		}
	}
	return Country{}, false
}

// Rate computes the cross rate between two currency ids over the current table.
func (s *Service) Rate(ctx context.Context, from, to string) float64 {
	return rateVia(s.base, from, to, s.Table(ctx).Currencies)
}

// Ping probes the backing cache for readiness checks.
func (s *Service) Ping(ctx context.Context) error {
	return s.cache.Ping(ctx)
}
