package maplist

import (
	"runtime"

	"github.com/rs/zerolog"

	"maplist-generator/internal/mappool"
)

// DefaultMaxIterations bounds the search of a single request.
const DefaultMaxIterations = 1_000_000

// Options tunes generation. The zero value is not usable; start from DefaultOptions.
type Options struct {
	Logger zerolog.Logger
	// MaxIterations caps visited search nodes. 0 disables the cap.
	MaxIterations int
	// DefaultPool is played when neither team submitted a pool.
	DefaultPool mappool.Pool
	// StageCatalog lists the stages a one-mode tournament can fall back to
	// for its tiebreaker.
	StageCatalog []mappool.StageID
	// Workers bounds parallel requests in GenerateAll.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the options Generate uses when none are given.
func DefaultOptions() Options {
	return Options{
		Logger:        zerolog.Nop(),
		MaxIterations: DefaultMaxIterations,
		DefaultPool:   mappool.Default,
		StageCatalog:  mappool.StageIDs,
		Workers:       runtime.GOMAXPROCS(0),
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

func WithDefaultPool(p mappool.Pool) Option {
	return func(o *Options) { o.DefaultPool = p }
}

func WithStageCatalog(ids []mappool.StageID) Option {
	return func(o *Options) { o.StageCatalog = ids }
}

// WithWorkers sets the GenerateAll worker count. Values below 1 keep the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
