// Package subset expands a composite key into the row ids of every
// combination of fixed and wildcarded positions (the power set of positions)
// and memoizes that expansion per key.
//
// Storing each entry under all 2^3 = 8 row ids makes every wildcard lookup a
// single map read, at the cost of eight appends per write.
package subset
