package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/recipeclip/recipeclip"
	"github.com/recipeclip/recipeclip/mock"
	recslog "github.com/recipeclip/recipeclip/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingIngestor_IngestURL(t *testing.T) {
	t.Parallel()

	t.Run("logs url, title and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Ingestor{
			IngestURLFn: func(ctx context.Context, rawURL string) (*recipeclip.RecipeRecord, error) {
				return &recipeclip.RecipeRecord{Title: "Shakshuka"}, nil
			},
		}

		ingestor := recslog.NewLoggingIngestor(inner, logger)
		rec, err := ingestor.IngestURL(context.Background(), "https://example.com/shakshuka")

		require.NoError(t, err)
		assert.Equal(t, "Shakshuka", rec.Title)
		output := buf.String()
		assert.Contains(t, output, "ingest")
		assert.Contains(t, output, "url=https://example.com/shakshuka")
		assert.Contains(t, output, "title=Shakshuka")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Ingestor{
			IngestURLFn: func(ctx context.Context, rawURL string) (*recipeclip.RecipeRecord, error) {
				return nil, recipeclip.Errorf(recipeclip.EUNAVAILABLE, "connection refused")
			},
		}

		ingestor := recslog.NewLoggingIngestor(inner, logger)
		_, err := ingestor.IngestURL(context.Background(), "https://example.com/down")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "unavailable")
	})
}
