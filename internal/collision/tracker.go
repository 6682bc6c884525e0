// Package collision tracks field-name-to-token assignments and detects
// hash collisions between distinct names, for tokenname.MustBeDistinct.
// Adapted from the teacher's per-blob metric-ID collision tracker, moved
// from encode-time detection (a metric hash colliding with another metric
// already written into the same blob) to schema-definition-time detection
// (two field names in the same schema hashing to the same token).
package collision

import "github.com/scottkmaxwell/tokenstream/errs"

// Tracker tracks field names and the tokens they hash to, flagging any
// case where two distinct names produced the same token.
type Tracker struct {
	byToken      map[uint64]string
	names        []string
	hasCollision bool
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{byToken: make(map[uint64]string)}
}

// Track records name under its token. It returns errs.ErrInvalidFieldName
// for an empty name and errs.ErrFieldAlreadyTracked if name was already
// tracked. A hash collision between two distinct names is not an error
// here - it is recorded via HasCollision for the caller to act on (spec
// tokenname.MustBeDistinct panics on it; a less strict caller could choose
// to ignore it).
func (t *Tracker) Track(name string, token uint64) error {
	if name == "" {
		return errs.ErrInvalidFieldName
	}

	for _, tracked := range t.names {
		if tracked == name {
			return errs.ErrFieldAlreadyTracked
		}
	}

	if existing, exists := t.byToken[token]; exists {
		if existing == name {
			return errs.ErrFieldAlreadyTracked
		}

		t.hasCollision = true
	}

	t.byToken[token] = name
	t.names = append(t.names, name)

	return nil
}

// HasCollision reports whether any two tracked names produced the same
// token.
func (t *Tracker) HasCollision() bool { return t.hasCollision }

// Names returns the tracked names in the order Track was called.
func (t *Tracker) Names() []string { return t.names }

// Count returns the number of tracked names.
func (t *Tracker) Count() int { return len(t.names) }

// Reset clears all tracked state while retaining the underlying
// allocations, for reuse across repeated schema-definition checks.
func (t *Tracker) Reset() {
	for k := range t.byToken {
		delete(t.byToken, k)
	}
	t.names = t.names[:0]
	t.hasCollision = false
}
