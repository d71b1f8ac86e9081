package source

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of files LoadAll reads at once.
const DefaultConcurrency = 4

// Load reads the records of one file.
func Load(ctx context.Context, s Store, name string) ([]map[string]any, error) {
	c, f, err := Detect(name)
	if err != nil {
		return nil, err
	}

	rc, err := s.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()

	r, err := decompress(rc, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer r.Close()

	records, err := Decode(r, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return records, nil
}

// LoadAll reads several files concurrently and concatenates their records
// in the order the names are given. concurrency <= 0 uses DefaultConcurrency.
func LoadAll(ctx context.Context, s Store, names []string, concurrency int) ([]map[string]any, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	parts := make([][]map[string]any, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, name := range names {
		g.Go(func() error {
			records, err := Load(ctx, s, name)
			if err != nil {
				return err
			}
			parts[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]map[string]any, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}
