// Package idgen issues identifiers for activated rooms.
// Ids have the form "<kind>_<suffix>".
package idgen

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/KirkDiggler/layout-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/layout-api/internal/pkg/idgen Generator

// Kind is the prefix that names what an id refers to
type Kind string

// KindRoom prefixes generated room ids
const KindRoom Kind = "room"

// maxDraws bounds Allocate when every drawn id is taken
const maxDraws = 16

// Generator issues ids of a single kind
type Generator interface {
	Generate() string
}

// Format joins a kind and suffix into an id. An empty kind yields the bare suffix.
func Format(kind Kind, suffix string) string {
	if kind == "" {
		return suffix
	}
	return string(kind) + "_" + suffix
}

// Split returns the suffix of an id in kind's namespace.
// It reports false for ids that do not carry the prefix. A bare "<kind>_"
// reports true with an empty suffix.
func Split(id string, kind Kind) (string, bool) {
	return strings.CutPrefix(id, string(kind)+"_")
}

// Random issues "<kind>_<uuid>" ids
type Random struct {
	kind Kind
}

// NewRandom returns a uuid-backed generator
func NewRandom(kind Kind) *Random {
	return &Random{kind: kind}
}

// Generate implements Generator
func (g *Random) Generate() string {
	return Format(g.kind, uuid.NewString())
}

// Counter issues "<kind>_1", "<kind>_2", ... and is safe for concurrent use
type Counter struct {
	kind Kind
	n    atomic.Uint64
}

// NewCounter returns a deterministic generator for tests and fixtures
func NewCounter(kind Kind) *Counter {
	return &Counter{kind: kind}
}

// Generate implements Generator
func (g *Counter) Generate() string {
	return Format(g.kind, strconv.FormatUint(g.n.Add(1), 10))
}

// Allocate draws ids from g until taken reports one as free.
// Caller-supplied ids can shadow generated ones, so a draw may collide.
func Allocate(g Generator, taken func(string) bool) (string, error) {
	for i := 0; i < maxDraws; i++ {
		id := g.Generate()
		if id == "" {
			return "", errors.Internal("id generator returned an empty id")
		}
		if !taken(id) {
			return id, nil
		}
	}
	return "", errors.Internalf("no free id after %d draws", maxDraws)
}
