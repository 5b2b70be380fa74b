package bfm

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/lvbfm/bondvec"
	"github.com/katalvlaran/lvbfm/core"
)

// Option configures a Reader or a Writer. Options that only apply to one
// side are ignored by the other.
type Option func(*options)

type options struct {
	registry *Registry
	log      *slog.Logger
	clock    func() time.Time
	comments []string
	strict   bool
	mol      *core.Molecules
	bonds    *bondvec.Set
}

func newOptions(opts []Option) options {
	o := options{
		log:   slog.New(slog.DiscardHandler),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}

	return o
}

// WithRegistry replaces the default command set.
func WithRegistry(r *Registry) Option {
	if r == nil {
		panic("bfm: WithRegistry(nil)")
	}
	return func(o *options) { o.registry = r }
}

// WithLogger installs a structured logger; the default discards output.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("bfm: WithLogger(nil)")
	}
	return func(o *options) { o.log = l }
}

// WithClock sets the time source of the header timestamp (Writer).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("bfm: WithClock(nil)")
	}
	return func(o *options) { o.clock = now }
}

// WithComment appends free-form metadata lines to the file header (Writer).
func WithComment(lines ...string) Option {
	return func(o *options) { o.comments = append(o.comments, lines...) }
}

// WithStrictMonomerCount makes a short first frame an error too (Reader).
func WithStrictMonomerCount() Option {
	return func(o *options) { o.strict = true }
}

// WithMolecules reads into an existing container (Reader).
func WithMolecules(m *core.Molecules) Option {
	if m == nil {
		panic("bfm: WithMolecules(nil)")
	}
	return func(o *options) { o.mol = m }
}

// WithBondSet reads into an existing alphabet (Reader). A file that carries
// !set_of_bondvectors replaces its contents.
func WithBondSet(s *bondvec.Set) Option {
	if s == nil {
		panic("bfm: WithBondSet(nil)")
	}
	return func(o *options) { o.bonds = s }
}
