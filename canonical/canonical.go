package canonical

import (
	"strings"

	"github.com/hupe1980/wildmap/core"
	"golang.org/x/text/unicode/norm"
)

const (
	// Separator joins the positions of a row id.
	Separator = "\u001F"
	// WildcardMarker stands in for a wildcarded position of a row id.
	WildcardMarker = "\u001E"

	reserved = Separator + WildcardMarker
)

// Options configures a Canonicalizer.
type Options struct {
	// NormalizeUnicode applies NFC normalization after trimming so composed
	// and decomposed spellings of the same text compare equal.
	NormalizeUnicode bool
}

// Canonicalizer turns raw strings into validated keys, queries and row ids.
// The zero value is ready to use. It holds no mutable state and is safe for
// concurrent use.
//
// Trimming removes Unicode white space only; the reserved bytes U+001E and
// U+001F are kept, so " \u001Fa" is rejected rather than read as "a".
type Canonicalizer struct {
	opts Options
}

// New returns a Canonicalizer configured by the given option functions.
func New(optFns ...func(o *Options)) *Canonicalizer {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Canonicalizer{opts: opts}
}

// Key validates the arguments of a write in parameter order and returns the
// trimmed key and value. The first rejected parameter is reported as a
// *core.ArgumentError; nothing is returned for the others.
func (c *Canonicalizer) Key(k1, k2, k3, value string) (core.Key, string, error) {
	var parts [core.Arity]string
	for i, raw := range [core.Arity]string{k1, k2, k3} {
		s, err := c.strict(raw, core.KeyParams[i])
		if err != nil {
			return core.Key{}, "", err
		}
		parts[i] = s
	}

	v, err := c.strict(value, core.ParamValue)
	if err != nil {
		return core.Key{}, "", err
	}

	return core.Key{K1: parts[0], K2: parts[1], K3: parts[2]}, v, nil
}

// Query normalizes the positions of a lookup. Blank positions become
// wildcards. Query never fails.
func (c *Canonicalizer) Query(k1, k2, k3 string) core.Query {
	var parts [core.Arity]*string
	for i, raw := range [core.Arity]string{k1, k2, k3} {
		s := c.normalize(raw)
		if s == "" {
			continue
		}
		parts[i] = &s
	}
	return core.NewQuery(parts[0], parts[1], parts[2])
}

func (c *Canonicalizer) normalize(s string) string {
	s = strings.TrimSpace(s)
	if c.opts.NormalizeUnicode && s != "" {
		s = norm.NFC.String(s)
	}
	return s
}

func (c *Canonicalizer) strict(raw string, p core.Param) (string, error) {
	s := c.normalize(raw)
	if s == "" {
		return "", core.NewArgumentError(p, core.ReasonBlank)
	}
	if p != core.ParamValue && ContainsReserved(s) {
		return "", core.NewArgumentError(p, core.ReasonReserved)
	}
	return s, nil
}

// ContainsReserved reports whether s contains the separator or the wildcard
// marker.
func ContainsReserved(s string) bool {
	return strings.ContainsAny(s, reserved)
}
