package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/recipeclip/recipeclip"
)

// Ensure LoggingIngestor implements recipeclip.Ingestor.
var _ recipeclip.Ingestor = (*LoggingIngestor)(nil)

// LoggingIngestor wraps an Ingestor with logging.
type LoggingIngestor struct {
	next   recipeclip.Ingestor
	logger *slog.Logger
}

// NewLoggingIngestor creates a new LoggingIngestor.
func NewLoggingIngestor(next recipeclip.Ingestor, logger *slog.Logger) *LoggingIngestor {
	return &LoggingIngestor{next: next, logger: logger}
}

// IngestURL delegates to the wrapped ingestor and logs the operation.
func (i *LoggingIngestor) IngestURL(ctx context.Context, rawURL string) (rec *recipeclip.RecipeRecord, err error) {
	defer func(begin time.Time) {
		title := ""
		if rec != nil {
			title = rec.Title
		}
		i.logger.Info("ingest",
			"url", rawURL,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.IngestURL(ctx, rawURL)
}
