// Package canonical validates and normalizes raw key strings and renders the
// canonical row ids the index stores values under.
//
// Writes are strict: every component and the value must be non-blank after
// trimming, and must not contain the reserved separator or wildcard marker
// bytes. Reads are lenient: a blank position becomes a wildcard and no input is
// ever rejected.
//
// Row id layout (3 positions, fixed order):
//
//	<pos1> US <pos2> US <pos3>
//
// where US is U+001F (unit separator) and a wildcarded position holds U+001E
// (record separator).
package canonical
