package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"wordlookup/internal/models"
)

const (
	// maxInMemoryWords bounds the word label set kept without a database.
	maxInMemoryWords = 1000

	// overflowWord labels lookups of words beyond the cap.
	overflowWord = "_other"
)

var (
	wordLookupDesc = prometheus.NewDesc(
		"wordlookup_word_lookups_total",
		"Total word lookup count by outcome",
		[]string{"word", "outcome"},
		nil,
	)
)

// Store persists lookup counts. *db.DB satisfies it.
type Store interface {
	IncrementWordLookup(ctx context.Context, word, outcome string) error
	GetAllWordLookups(ctx context.Context) ([]models.WordLookup, error)
}

// WordCollector is a custom Prometheus collector that reads word lookup
// counts from the database on each scrape.
type WordCollector struct {
	store Store
}

// Describe sends the metric descriptor to the channel.
func (c *WordCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- wordLookupDesc
}

// Collect queries the database for all word lookups and emits them as counters.
func (c *WordCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.store.GetAllWordLookups(context.Background())
	if err != nil {
		slog.Error("failed to collect word lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			wordLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Word,
			l.Outcome,
		)
	}
}

// Recorder counts lookup outcomes and upstream reachability.
// With a Store, counts are persisted asynchronously and exported by
// WordCollector; without one they are kept in an in-process counter with a
// bounded word label set.
type Recorder struct {
	store    Store
	counter  *prometheus.CounterVec
	upstream *prometheus.GaugeVec
	wg       sync.WaitGroup

	mu       sync.Mutex
	words    map[string]struct{}
	maxWords int
}

// New registers the lookup and upstream metrics on reg. store may be nil.
func New(reg prometheus.Registerer, store Store) *Recorder {
	r := &Recorder{
		store:    store,
		words:    make(map[string]struct{}),
		maxWords: maxInMemoryWords,
		upstream: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "wordlookup_upstream_up",
			Help: "Whether the last reachability check of an upstream host succeeded (1) or failed (0)",
		}, []string{"host"}),
	}
	reg.MustRegister(r.upstream)

	if store != nil {
		reg.MustRegister(&WordCollector{store: store})
		return r
	}

	r.counter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wordlookup_word_lookups_total",
		Help: "Total word lookup count by outcome",
	}, []string{"word", "outcome"})
	reg.MustRegister(r.counter)
	return r
}

// RecordWordLookup records a lookup outcome. Database writes happen in the
// background and never delay the response.
func (r *Recorder) RecordWordLookup(word, outcome string) {
	if r == nil {
		return
	}
	if r.store == nil {
		r.counter.WithLabelValues(r.trackedWord(word), outcome).Inc()
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.store.IncrementWordLookup(context.Background(), word, outcome); err != nil {
			slog.Error("failed to record word lookup", "word", word, "outcome", outcome, "error", err)
		}
	}()
}

// trackedWord returns word while the in-memory label set has room, and
// overflowWord for new words once it is full.
func (r *Recorder) trackedWord(word string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.words[word]; ok {
		return word
	}
	if len(r.words) >= r.maxWords {
		return overflowWord
	}
	r.words[word] = struct{}{}
	return word
}

// SetUpstreamUp publishes the reachability of host.
func (r *Recorder) SetUpstreamUp(host string, up bool) {
	if r == nil {
		return
	}
	v := 0.0
	if up {
		v = 1
	}
	r.upstream.WithLabelValues(host).Set(v)
}

// Wait blocks until pending background writes finish.
func (r *Recorder) Wait() {
	if r == nil {
		return
	}
	r.wg.Wait()
}
