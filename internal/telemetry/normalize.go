package telemetry

import "strings"

// IDPlaceholder replaces identifier segments in normalized paths.
const IDPlaceholder = ":id"

const objectIDLen = 24

// NormalizePath collapses every 24-character hexadecimal segment into
// IDPlaceholder. Shorter ids, UUIDs and anything else are left as they are.
func NormalizePath(raw string) string {
	if len(raw) < objectIDLen {
		return raw
	}

	segments := strings.Split(raw, "/")
	changed := false
	for i, seg := range segments {
		if isObjectID(seg) {
			segments[i] = IDPlaceholder
			changed = true
		}
	}
	if !changed {
		return raw
	}
	return strings.Join(segments, "/")
}

func isObjectID(seg string) bool {
	if len(seg) != objectIDLen {
		return false
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

type PathMemo interface {
	Get(raw string) (string, bool)
	Set(raw, normalized string)
}

// Normalizer memoizes NormalizePath. A nil memo disables caching.
type Normalizer struct {
	memo PathMemo
}

func NewNormalizer(memo PathMemo) *Normalizer {
	return &Normalizer{memo: memo}
}

func (n *Normalizer) Normalize(raw string) string {
	if n == nil || n.memo == nil {
		return NormalizePath(raw)
	}
	if v, ok := n.memo.Get(raw); ok {
		return v
	}
	v := NormalizePath(raw)
	n.memo.Set(raw, v)
	return v
}
