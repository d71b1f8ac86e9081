package reclist

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/reclist/filter"
	"github.com/hupe1980/reclist/order"
	"github.com/hupe1980/reclist/record"
)

func TestBasicMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	l := newList(t, WithMetricsCollector(metrics), WithSelectionMode(MultiSelect))

	recs := named("Alpha", "Beta", "Gamma")
	recs = append(recs, record.Record{})
	l.Load(recs)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.LoadCount)
	assert.Equal(t, int64(3), stats.LoadedItems)
	assert.Equal(t, int64(1), stats.SkippedItems)
	assert.Equal(t, int64(1), stats.OrderCount)
	assert.Equal(t, int64(1), stats.FilterCount)
	assert.Equal(t, int64(3), stats.LastMatched)

	l.SetOrder(order.Desc("name"))
	l.SetFilters(filter.Eq("name", "Beta"))
	l.Toggle("2")

	stats = metrics.GetStats()
	assert.Equal(t, int64(2), stats.OrderCount)
	assert.Equal(t, int64(3), stats.FilterCount)
	assert.Equal(t, int64(1), stats.LastMatched)
	assert.Equal(t, int64(1), stats.SelectionChanges)
	assert.Equal(t, int64(1), stats.LastSelectedCount)
	assert.GreaterOrEqual(t, stats.FilterAvgNanos, int64(0))
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	mc.RecordLoad(1, 0, 0)
	mc.RecordOrder(1, 1, 0)
	mc.RecordFilter(1, 1, 0)
	mc.RecordSelection(1)

	assert.Equal(t, BasicMetricsStats{}, (&BasicMetricsCollector{}).GetStats())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := newList(t, WithLogger(logger))

	l.Load(append(named("Alpha"), record.Record{}))

	var warn map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["level"] == "WARN" {
			warn = entry
		}
	}
	require.NotNil(t, warn)
	assert.Equal(t, "load skipped records without id", warn["msg"])
	assert.Equal(t, float64(1), warn["skipped"])
	assert.Contains(t, buf.String(), `"msg":"filter applied"`)
	assert.Contains(t, buf.String(), `"msg":"page updated"`)

	buf.Reset()
	l.Toggle("1")
	assert.Contains(t, buf.String(), `"op":"toggle"`)
	assert.Contains(t, buf.String(), `"active":"1"`)
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	l := newList(t, WithLogger(logger))

	l.Load(named("Alpha"))
	assert.Empty(t, buf.String(), "debug output is filtered")

	logger.WithCount(2).Warn("x")
	assert.Contains(t, buf.String(), "count=2")

	assert.NotNil(t, NoopLogger())
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NewTextLogger(slog.LevelInfo))
}
