package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/hupe1980/wildmap/core"
	"github.com/hupe1980/wildmap/index"
	"github.com/hupe1980/wildmap/logging"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Error codes for CLI error responses.
const (
	ErrCodeGeneric  = "E001" // Generic/unknown error
	ErrCodeNoData   = "E002" // No dataset given
	ErrCodeNotFound = "E003" // Dataset file not found
	ErrCodeParse    = "E004" // Dataset is not valid YAML
	ErrCodeArity    = "E005" // Entry does not have exactly three keys
	ErrCodeRejected = "E006" // Entry rejected by the index
)

// LoadError represents an error that occurred while loading datasets.
type LoadError struct {
	Code    string
	Message string
	File    string
	Entry   int // 1-based, 0 when the error is not tied to an entry
	Err     error
}

func (e *LoadError) Error() string {
	switch {
	case e.File != "" && e.Entry > 0:
		return fmt.Sprintf("%s: entry %d: %s: %s", e.File, e.Entry, e.Code, e.Message)
	case e.File != "":
		return fmt.Sprintf("%s: %s: %s", e.File, e.Code, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// Dataset is the on-disk format of a dataset file:
//
//	entries:
//	  - keys: [Honda, Civic, Blue]
//	    value: "123"
type Dataset struct {
	Path    string         `yaml:"-"`
	Entries []DatasetEntry `yaml:"entries"`
}

// DatasetEntry is one value stored under a 3-part key.
type DatasetEntry struct {
	Keys  []string `yaml:"keys"`
	Value string   `yaml:"value"`
}

// ParseDataset decodes a dataset from r. An empty document is an empty
// dataset. Unknown fields are rejected.
func ParseDataset(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	ds := &Dataset{}
	if err := dec.Decode(ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return ds, nil
}

// LoadDatasets parses every path concurrently. The result keeps the order of
// paths so entries are inserted deterministically.
func LoadDatasets(ctx context.Context, paths []string) ([]*Dataset, error) {
	if len(paths) == 0 {
		return nil, &LoadError{Code: ErrCodeNoData, Message: "no dataset given (use --data)"}
	}

	out := make([]*Dataset, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ds, err := loadDataset(path)
			if err != nil {
				return err
			}
			out[i] = ds
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func loadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("dataset not found: %s", path), File: path, Err: err}
		}
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("opening dataset: %v", err), File: path, Err: err}
	}
	defer f.Close()

	ds, err := ParseDataset(f)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("parsing dataset: %v", err), File: path, Err: err}
	}
	ds.Path = path

	for i, e := range ds.Entries {
		if len(e.Keys) != core.Arity {
			return nil, &LoadError{
				Code:    ErrCodeArity,
				Message: fmt.Sprintf("expected %d keys, got %d", core.Arity, len(e.Keys)),
				File:    path,
				Entry:   i + 1,
			}
		}
	}

	return ds, nil
}

// LoadOptions controls how datasets are turned into an index.
type LoadOptions struct {
	Config      index.Config
	Logger      logging.Logger
	SkipInvalid bool // count rejected entries instead of failing
}

// LoadSummary describes a completed load.
type LoadSummary struct {
	Files    int
	Entries  int
	Rejected int
}

// BuildIndex creates a fresh index and puts every entry of datasets into it,
// file by file in order.
func BuildIndex(datasets []*Dataset, opts LoadOptions) (*index.Index, LoadSummary, error) {
	ix := index.New(func(o *index.Options) {
		o.Config = opts.Config
		if opts.Logger != nil {
			o.Logger = opts.Logger
		}
	})

	summary := LoadSummary{Files: len(datasets)}
	for _, ds := range datasets {
		for i, e := range ds.Entries {
			summary.Entries++
			err := ix.Put(e.Keys[0], e.Keys[1], e.Keys[2], e.Value)
			if err == nil {
				continue
			}
			if opts.SkipInvalid && errors.Is(err, core.ErrInvalidArgument) {
				summary.Rejected++
				continue
			}
			return nil, summary, &LoadError{Code: ErrCodeRejected, Message: err.Error(), File: ds.Path, Entry: i + 1, Err: err}
		}
	}

	return ix, summary, nil
}

// newLogger returns the diagnostics logger of a command run. Without
// --verbose everything is discarded.
func newLogger(opts *RootOptions, formatter *OutputFormatter) *logging.IndexLogger {
	if !opts.Verbose {
		return logging.NewLogger(&logging.LoggerConfig{Level: logging.LogLevelError, Format: "text", Output: io.Discard})
	}

	level, _ := logging.ParseLevel(opts.LogLevel)
	return logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    "text",
		Output:    formatter.GetErrWriter(),
		Component: "wildq",
	})
}

// openIndex is the shared load path of all commands.
func openIndex(ctx context.Context, opts *RootOptions, formatter *OutputFormatter, logger *logging.IndexLogger) (*index.Index, LoadSummary, error) {
	done := logger.StartTimer("load")

	datasets, err := LoadDatasets(ctx, opts.Data)
	if err != nil {
		return nil, LoadSummary{}, err
	}

	ix, summary, err := BuildIndex(datasets, LoadOptions{
		Config: index.Config{
			Shards:           index.DefaultConfig.Shards,
			NormalizeUnicode: opts.NormalizeUnicode,
		},
		Logger:      logger,
		SkipInvalid: opts.SkipInvalid,
	})
	if err != nil {
		return nil, summary, err
	}

	done()
	formatter.VerboseLog("Loaded %d entries from %d file(s), %d rejected", summary.Entries, summary.Files, summary.Rejected)
	return ix, summary, nil
}
