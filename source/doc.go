// Package source loads loose record arrays from files.
//
// Files are read through a Store, an abstraction for accessing named,
// immutable blobs. LocalStore reads from a directory on the local file
// system; MemoryStore keeps blobs in memory for tests.
//
// The format is chosen from the file name:
//
//	records.json         JSON array of objects
//	records.jsonl        one JSON object per line (also .ndjson)
//	records.json.zst     zstd compressed
//	records.jsonl.gz     gzip compressed
//	records.json.lz4     lz4 frame compressed
//
// Numbers are decoded as json.Number so that integer ids and values keep
// their exact representation when converted with record.FromAny.
package source
