package testutil

import (
	"math"
	"math/rand"
	"strconv"
	"sync"

	"github.com/hupe1980/reclist/record"
	"github.com/hupe1980/reclist/text"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Zipf returns a Zipfian-distributed value in [0, n).
// s=1.0 gives standard Zipf, s=1.5 gives a heavy tail.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}
	return n - 1
}

// Words are the names used by Records. Several carry diacritics.
var Words = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Zürich", "São Paulo", "Kraków",
	"Malmö", "Zaragoza", "Ålesund", "Québec", "Reykjavík", "Oslo", "Łódź",
}

// Categories are the category values used by Records.
var Categories = []string{"red", "green", "blue", "cyan", "magenta"}

// RecordOptions controls Records generation.
type RecordOptions struct {
	// MissingIDRate is the probability that a record has no id.
	MissingIDRate float64
	// DisabledRate is the probability that a record is disabled.
	DisabledRate float64
	// ShadowRate is the probability that the name carries a diacritic-free
	// shadow value.
	ShadowRate float64
	// MarkupRate is the probability that the name is wrapped in <b> tags.
	MarkupRate float64
}

// Records generates n records with the fields name (text), category
// (Zipf distributed text), score (int) and price (float). Ids are the
// decimal position of the record.
func (r *RNG) Records(n int, opts RecordOptions) []record.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]record.Record, n)
	for i := range n {
		name := Words[r.rand.Intn(len(Words))]
		plain := name
		if r.rand.Float64() < opts.MarkupRate {
			name = "<b>" + name + "</b>"
		}
		rec := record.Record{
			Fields: record.Document{
				"name":     record.String(name),
				"category": record.String(Categories[r.zipfLocked(len(Categories), 1.2)]),
				"score":    record.Int(int64(r.rand.Intn(100))),
				"price":    record.Float(math.Round(r.rand.Float64()*10000) / 100),
			},
		}
		if r.rand.Float64() >= opts.MissingIDRate {
			rec.ID = strconv.Itoa(i)
		}
		if r.rand.Float64() < opts.DisabledRate {
			rec.Disabled = true
		}
		if r.rand.Float64() < opts.ShadowRate {
			rec.Shadow = record.Document{"name": record.String(text.RemoveDiacritics(plain))}
		}
		out[i] = rec
	}
	return out
}

// IsSubsequence reports whether sub appears in seq in the same relative order.
func IsSubsequence(sub, seq []string) bool {
	j := 0
	for _, s := range seq {
		if j < len(sub) && sub[j] == s {
			j++
		}
	}
	return j == len(sub)
}

// IsSubset reports whether every element of sub is in set.
func IsSubset(sub, set []string) bool {
	m := make(map[string]struct{}, len(set))
	for _, s := range set {
		m[s] = struct{}{}
	}
	for _, s := range sub {
		if _, ok := m[s]; !ok {
			return false
		}
	}
	return true
}
