// Package tokenname assigns wire tokens from symbolic field names, rather
// than requiring every schema author to hand-pick a small integer. Grounded
// on internal/hash's xxHash64 name-to-ID pattern, adapted from "hash a
// metric name to a lookup key" to "hash a field name to a wire token".
package tokenname

import (
	"fmt"
	"strings"

	"github.com/scottkmaxwell/tokenstream/internal/collision"
	"github.com/scottkmaxwell/tokenstream/internal/hash"
	"github.com/scottkmaxwell/tokenstream/stream"
)

// noTokenBit is the top bit of a token. stream.NoToken has every bit set,
// so clearing this bit from a hash guarantees a hashed token never
// collides with the reserved "no token" value.
const noTokenBit = uint64(1) << 63

// Of hashes name into a stream.Token with xxHash64, clearing the top bit so
// the result can never equal stream.NoToken and so hashed tokens are easy
// to pick out from small hand-assigned ordinals in a hex dump.
func Of(name string) stream.Token {
	return stream.Token(hash.ID(name) &^ noTokenBit)
}

// MustBeDistinct panics if any two names in names hash to the same token.
// Intended for use in a package init or a test, catching an accidental
// collision at schema-definition time rather than at decode time.
func MustBeDistinct(names ...string) {
	tracker := collision.NewTracker()
	for _, name := range names {
		if err := tracker.Track(name, uint64(Of(name))); err != nil {
			panic(fmt.Sprintf("tokenname: %v: %q", err, name))
		}
	}

	if tracker.HasCollision() {
		panic(fmt.Sprintf("tokenname: collision among names: %s", strings.Join(tracker.Names(), ", ")))
	}
}
