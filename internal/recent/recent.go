// Package recent keeps the most recent distinct search terms, newest first.
package recent

import (
	"context"
	"strings"
	"sync"
)

const DefaultMax = 6

// Storage persists the list between runs.
type Storage interface {
	LoadRecent(ctx context.Context) ([]string, error)
	SaveRecent(ctx context.Context, terms []string) error
	ClearRecent(ctx context.Context) error
}

type List struct {
	storage Storage
	max     int

	mu    sync.Mutex
	terms []string
}

// New returns an empty list; call Load to read persisted terms.
func New(storage Storage, max int) *List {
	if max <= 0 {
		max = DefaultMax
	}
	return &List{storage: storage, max: max, terms: []string{}}
}

// Load replaces the in-memory list with the stored one. Storage failures
// leave the list empty.
func (l *List) Load(ctx context.Context) {
	terms, err := l.storage.LoadRecent(ctx)
	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil || terms == nil {
		l.terms = []string{}
		return
	}
	l.terms = normalize(terms, l.max)
}

func (l *List) Terms() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.terms...)
}

// Save records term. Blank terms are ignored. The in-memory list is updated
// even when persisting fails; the error is returned for logging.
func (l *List) Save(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	l.mu.Lock()
	l.terms = Push(l.terms, l.max, term)
	next := append([]string{}, l.terms...)
	l.mu.Unlock()
	return l.storage.SaveRecent(ctx, next)
}

func (l *List) Clear(ctx context.Context) error {
	l.mu.Lock()
	l.terms = []string{}
	l.mu.Unlock()
	return l.storage.ClearRecent(ctx)
}

// Push puts term at the front of list, drops earlier copies of it and
// truncates to max. list is not modified.
func Push(list []string, max int, term string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, term)
	for _, t := range list {
		if t != term {
			out = append(out, t)
		}
	}
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// normalize cleans a stored list: blanks and repeats are dropped, first
// occurrence wins.
func normalize(terms []string, max int) []string {
	out := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) == max {
			break
		}
	}
	return out
}
