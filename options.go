package reclist

import (
	"log/slog"

	"github.com/hupe1980/reclist/highlight"
)

// DefaultPageSize is the page size used when none is configured.
const DefaultPageSize = 10

type options struct {
	pageSize         int
	locale           string
	selectionMode    SelectionMode
	highlight        highlight.Options
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a List.
type Option func(*options)

// WithPageSize configures the initial page size. Must be positive.
func WithPageSize(size int) Option {
	return func(o *options) {
		o.pageSize = size
	}
}

// WithLocale configures the BCP 47 locale used to lowercase and collate
// text when ordering (e.g. "de", "sv-SE"). Defaults to "en".
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
	}
}

// WithSelectionMode configures the initial selection mode.
func WithSelectionMode(mode SelectionMode) Option {
	return func(o *options) {
		o.selectionMode = mode
	}
}

// WithHighlightClass configures the class of the highlight marker element.
func WithHighlightClass(class string) Option {
	return func(o *options) {
		o.highlight.Class = class
	}
}

// WithHighlightTag configures the tag of the highlight marker element.
func WithHighlightTag(tag string) Option {
	return func(o *options) {
		if tag != "" {
			o.highlight.Tag = tag
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &reclist.BasicMetricsCollector{}
//	l, _ := reclist.New(reclist.WithMetricsCollector(metrics))
//	// ... use l ...
//	stats := metrics.GetStats()
//	fmt.Printf("Filters: %d, Avg latency: %dns\n", stats.FilterCount, stats.FilterAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := reclist.NewJSONLogger(slog.LevelDebug)
//	l, _ := reclist.New(reclist.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		pageSize:         DefaultPageSize,
		locale:           "en",
		selectionMode:    SingleSelect,
		highlight:        highlight.DefaultOptions(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
