// Package cli implements the wildq command line tool: it loads YAML datasets
// into a fresh wildcard index and answers exact and wildcard queries against
// it, in text or JSON.
package cli
