package source

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrUnknownFormat is returned for file names without a known extension.
var ErrUnknownFormat = errors.New("unknown record file format")

// Compression identifies the compression of a record file.
type Compression uint8

const (
	// CompressionNone indicates a plain file.
	CompressionNone Compression = iota
	// CompressionZSTD indicates a zstd stream (.zst).
	CompressionZSTD
	// CompressionGzip indicates a gzip stream (.gz).
	CompressionGzip
	// CompressionLZ4 indicates an lz4 frame stream (.lz4).
	CompressionLZ4
)

// Format identifies the record encoding of a file.
type Format uint8

const (
	// FormatJSON is a JSON array of objects.
	FormatJSON Format = iota
	// FormatJSONLines is one JSON object per line.
	FormatJSONLines
)

// Detect derives compression and format from a file name.
func Detect(name string) (Compression, Format, error) {
	base := strings.ToLower(path.Base(name))
	c := CompressionNone
	switch {
	case strings.HasSuffix(base, ".zst"):
		c, base = CompressionZSTD, strings.TrimSuffix(base, ".zst")
	case strings.HasSuffix(base, ".gz"):
		c, base = CompressionGzip, strings.TrimSuffix(base, ".gz")
	case strings.HasSuffix(base, ".lz4"):
		c, base = CompressionLZ4, strings.TrimSuffix(base, ".lz4")
	}
	switch path.Ext(base) {
	case ".json":
		return c, FormatJSON, nil
	case ".jsonl", ".ndjson":
		return c, FormatJSONLines, nil
	default:
		return c, FormatJSON, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

// decompress wraps r according to c. Closing the result does not close r.
func decompress(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return dec.IOReadCloser(), nil
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// Decode reads records in the given format.
func Decode(r io.Reader, f Format) ([]map[string]any, error) {
	if f == FormatJSONLines {
		return decodeLines(r)
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var out []map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return out, nil
}

func decodeLines(r io.Reader) ([]map[string]any, error) {
	var out []map[string]any
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		b := strings.TrimSpace(sc.Text())
		if b == "" {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(b))
		dec.UseNumber()
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode line %d: %w", line, err)
		}
		out = append(out, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return out, nil
}
