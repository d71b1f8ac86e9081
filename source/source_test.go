package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const records = `[{"id": "1", "name": "Alpha", "price": 1.5}, {"id": 2, "name": "Beta"}]`

func compress(t *testing.T, c Compression, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	switch c {
	case CompressionZSTD:
		enc, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		w = enc
	case CompressionGzip:
		w = gzip.NewWriter(&buf)
	case CompressionLZ4:
		w = lz4.NewWriter(&buf)
	default:
		return data
	}
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		c       Compression
		f       Format
		wantErr bool
	}{
		{name: "a.json", c: CompressionNone, f: FormatJSON},
		{name: "dir/a.JSONL", c: CompressionNone, f: FormatJSONLines},
		{name: "a.ndjson.gz", c: CompressionGzip, f: FormatJSONLines},
		{name: "a.json.zst", c: CompressionZSTD, f: FormatJSON},
		{name: "a.jsonl.lz4", c: CompressionLZ4, f: FormatJSONLines},
		{name: "a.csv", wantErr: true},
		{name: "a.zst", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, f, err := Detect(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.c, c)
			assert.Equal(t, tt.f, f)
		})
	}
}

func TestLoadCompressed(t *testing.T) {
	ctx := context.Background()
	for _, tt := range []struct {
		name string
		c    Compression
	}{
		{"items.json", CompressionNone},
		{"items.json.zst", CompressionZSTD},
		{"items.json.gz", CompressionGzip},
		{"items.json.lz4", CompressionLZ4},
	} {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryStore()
			s.Put(tt.name, compress(t, tt.c, []byte(records)))

			got, err := Load(ctx, s, tt.name)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "Alpha", got[0]["name"])
			assert.Equal(t, json.Number("1.5"), got[0]["price"])
			assert.Equal(t, json.Number("2"), got[1]["id"])
		})
	}
}

func TestDecodeLines(t *testing.T) {
	in := "{\"id\": \"1\"}\n\n  {\"id\": \"2\"}  \n"
	got, err := Decode(bytes.NewReader([]byte(in)), FormatJSONLines)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = Decode(bytes.NewReader([]byte("{\"id\": 1}\nnot json\n")), FormatJSONLines)
	assert.ErrorContains(t, err, "line 2")

	_, err = Decode(bytes.NewReader([]byte(`{"id": 1}`)), FormatJSON)
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.Put("bad.json.zst", []byte("not zstd"))

	_, err := Load(ctx, s, "missing.json")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = Load(ctx, s, "bad.json.zst")
	assert.Error(t, err)

	_, err = Load(ctx, s, "notes.txt")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	s.Put("ok.json", []byte(records))
	_, err = Load(cancelled, s, "ok.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadAll(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.Put("a.json", []byte(`[{"id": "a1"}, {"id": "a2"}]`))
	s.Put("b.jsonl.gz", compress(t, CompressionGzip, []byte("{\"id\": \"b1\"}\n")))
	s.Put("c.json", []byte(`[{"id": "c1"}]`))

	got, err := LoadAll(ctx, s, []string{"c.json", "a.json", "b.jsonl.gz"}, 2)
	require.NoError(t, err)

	var ids []any
	for _, m := range got {
		ids = append(ids, m["id"])
	}
	assert.Equal(t, []any{"c1", "a1", "a2", "b1"}, ids)

	_, err = LoadAll(ctx, s, []string{"a.json", "nope.json"}, 0)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err = LoadAll(ctx, s, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.json"), []byte(records), 0o644))

	s := NewLocalStore(dir)
	got, err := Load(context.Background(), s, "items.json")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = Load(context.Background(), NewLocalStore("unused"), filepath.Join(dir, "items.json"))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = Load(context.Background(), s, "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)
}
