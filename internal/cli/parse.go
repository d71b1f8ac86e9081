package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hupe1980/reclist"
	"github.com/hupe1980/reclist/filter"
	"github.com/hupe1980/reclist/order"
	"github.com/hupe1980/reclist/record"
)

// parseOrder parses "field" or "field:direction".
func parseOrder(s string) (order.Rule, error) {
	field, dir, _ := strings.Cut(strings.TrimSpace(s), ":")
	if field == "" {
		return order.Rule{}, fmt.Errorf("invalid order %q: missing field", s)
	}
	d, err := order.ParseDirection(dir)
	if err != nil {
		return order.Rule{}, fmt.Errorf("invalid order %q: %w", s, err)
	}
	return order.Rule{Field: field, Direction: d}, nil
}

// parseFilter parses "field operator value". The value is read as JSON when
// possible (numbers, booleans, arrays) and as plain text otherwise. Set and
// range operators also accept comma separated values.
func parseFilter(s string, normalizeDiacritics bool) (filter.Rule, error) {
	parts := strings.Fields(s)
	if len(parts) < 3 {
		return filter.Rule{}, fmt.Errorf("invalid filter %q: want \"field operator value\"", s)
	}
	op, err := filter.ParseOperator(parts[1])
	if err != nil {
		return filter.Rule{}, fmt.Errorf("invalid filter %q: %w", s, err)
	}

	raw := strings.TrimSpace(s)
	for range 2 {
		raw = strings.TrimSpace(raw[len(strings.Fields(raw)[0]):])
	}

	v, err := record.FromAny(parseValue(raw, op))
	if err != nil {
		return filter.Rule{}, fmt.Errorf("invalid filter %q: %w", s, err)
	}
	return filter.Rule{
		Field:               parts[0],
		Operator:            op,
		Value:               v,
		NormalizeDiacritics: normalizeDiacritics,
	}, nil
}

func parseValue(raw string, op filter.Operator) any {
	if v, ok := decodeJSON(raw); ok {
		return v
	}
	switch op {
	case filter.OpIn, filter.OpNotIn, filter.OpBetween, filter.OpNotBetween:
		items := strings.Split(raw, ",")
		out := make([]any, 0, len(items))
		for _, item := range items {
			item = strings.TrimSpace(item)
			if v, ok := decodeJSON(item); ok {
				out = append(out, v)
			} else {
				out = append(out, item)
			}
		}
		return out
	default:
		return raw
	}
}

func decodeJSON(s string) (any, bool) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return v, true
}

// newLogger builds a reclist logger writing to w.
func newLogger(w io.Writer, level, format string) (*reclist.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return reclist.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return reclist.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text|json)", format)
	}
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
