package id

import (
	"bytes"
	"sync"

	"github.com/google/uuid"
)

// Generator issues new IDs. Implementations must be safe for concurrent use.
type Generator interface {
	NewID() ID
}

// Source produces candidate UUIDs for a V7Generator.
type Source func() (uuid.UUID, error)

type generatorConfig struct {
	source Source
}

// GeneratorOption configures a V7Generator.
type GeneratorOption func(*generatorConfig)

// WithSource replaces uuid.NewV7 as the candidate source.
func WithSource(src Source) GeneratorOption {
	return func(c *generatorConfig) {
		c.source = src
	}
}

// V7Generator issues strictly increasing UUIDv7 IDs.
type V7Generator struct {
	mu     sync.Mutex
	last   uuid.UUID
	source Source
}

// NewGenerator returns a V7Generator.
func NewGenerator(opts ...GeneratorOption) *V7Generator {
	cfg := &generatorConfig{source: uuid.NewV7}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.source == nil {
		cfg.source = uuid.NewV7
	}
	return &V7Generator{source: cfg.source}
}

// Generate returns the next ID, or the source's error.
func (g *V7Generator) Generate() (ID, error) {
	u, err := g.source()
	if err != nil {
		return ID{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if bytes.Compare(u[:], g.last[:]) <= 0 {
		u = successor(g.last)
	}
	g.last = u
	return ID{u: u}, nil
}

// NewID is Generate that panics if the random source fails.
func (g *V7Generator) NewID() ID {
	v, err := g.Generate()
	if err != nil {
		panic("id: generate: " + err.Error())
	}
	return v
}

// successor increments the random tail of u, leaving the timestamp,
// version and variant bits untouched.
func successor(u uuid.UUID) uuid.UUID {
	for i := len(u) - 1; i > 8; i-- {
		u[i]++
		if u[i] != 0 {
			return u
		}
	}
	u[8] = (u[8] & 0xc0) | ((u[8] + 1) & 0x3f)
	return u
}

var defaultGenerator = NewGenerator()

// New returns an ID from the package default generator.
func New() ID { return defaultGenerator.NewID() }
