package services

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// QuoteIDSource hands out display-only quote numbers.
type QuoteIDSource interface {
	NextQuoteID() string
}

// RandomQuoteIDs derives a 9-character upper-case quote number from a random
// UUID. Collisions are possible and harmless.
type RandomQuoteIDs struct{}

func (RandomQuoteIDs) NextQuoteID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:9])
}

// SequentialQuoteIDs numbers quotes Prefix000001, Prefix000002, ...
type SequentialQuoteIDs struct {
	Prefix string
	n      atomic.Int64
}

// NewSequentialQuoteIDs returns a counter-backed source starting at 1.
func NewSequentialQuoteIDs(prefix string) *SequentialQuoteIDs {
	return &SequentialQuoteIDs{Prefix: prefix}
}

func (s *SequentialQuoteIDs) NextQuoteID() string {
	return fmt.Sprintf("%s%06d", s.Prefix, s.n.Add(1))
}

// NewQuoteIDSource picks a source by config name ("sequential" or "random").
func NewQuoteIDSource(mode string) QuoteIDSource {
	if strings.EqualFold(strings.TrimSpace(mode), "sequential") {
		return NewSequentialQuoteIDs("Q")
	}
	return RandomQuoteIDs{}
}
