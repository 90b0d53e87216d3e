package listquery

import (
	"strings"
	"time"
)

// Key is a comparable sort key, either numeric or textual. Comparison is
// three-way so equal keys stay in their pre-sort relative order under a
// stable sort instead of being treated as greater.
type Key struct {
	num  float64
	str  string
	text bool
}

// NumKey builds a numeric key (counts, prices).
func NumKey(n float64) Key {
	return Key{num: n}
}

// TimeKey builds a numeric key from a timestamp.
func TimeKey(t time.Time) Key {
	return Key{num: float64(t.UnixMilli())}
}

// TextKey builds a case-insensitive lexicographic key.
func TextKey(s string) Key {
	return Key{str: strings.ToLower(s), text: true}
}

// Compare returns -1, 0 or 1. Numeric and textual keys never mix within
// one sort; when they do, numeric orders first.
func (k Key) Compare(o Key) int {
	if k.text != o.text {
		if !k.text {
			return -1
		}
		return 1
	}
	if k.text {
		return strings.Compare(k.str, o.str)
	}
	switch {
	case k.num < o.num:
		return -1
	case k.num > o.num:
		return 1
	}
	return 0
}
