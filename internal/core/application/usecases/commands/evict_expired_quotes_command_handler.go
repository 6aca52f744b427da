package commands

import (
	"context"
	"log/slog"
)

// CacheSweeper removes expired cache entries.
type CacheSweeper interface {
	Sweep(ctx context.Context) (int64, error)
}

// EvictExpiredQuotesCommandHandler sweeps the quote cache.
type EvictExpiredQuotesCommandHandler struct {
	cache  CacheSweeper
	logger *slog.Logger
}

// NewEvictExpiredQuotesCommandHandler creates a handler sweeping cache.
func NewEvictExpiredQuotesCommandHandler(cache CacheSweeper, logger *slog.Logger) EvictExpiredQuotesCommandHandler {
	return EvictExpiredQuotesCommandHandler{
		cache:  cache,
		logger: logger.With("component", "evict_expired_quotes"),
	}
}

// Handle returns the number of removed entries.
func (h *EvictExpiredQuotesCommandHandler) Handle(ctx context.Context, cmd EvictExpiredQuotesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	removed, err := h.cache.Sweep(ctx)
	if err != nil {
		return removed, err
	}

	if removed > 0 {
		h.logger.InfoContext(ctx, "expired quote cache entries evicted", "removed", removed)
	}
	return removed, nil
}
