package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// StatsResult is the payload of the stats command.
type StatsResult struct {
	Files        int   `json:"files"`
	Entries      int   `json:"entries"`
	Rows         int   `json:"rows"`
	CachedKeys   int   `json:"cached_keys"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	PutsAccepted int64 `json:"puts_accepted"`
	PutsRejected int64 `json:"puts_rejected"`
}

// String renders the result for text output.
func (r StatsResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "files: %d\n", r.Files)
	fmt.Fprintf(&b, "entries: %d\n", r.Entries)
	fmt.Fprintf(&b, "rows: %d\n", r.Rows)
	fmt.Fprintf(&b, "cached_keys: %d\n", r.CachedKeys)
	fmt.Fprintf(&b, "cache_hits: %d\n", r.CacheHits)
	fmt.Fprintf(&b, "cache_misses: %d\n", r.CacheMisses)
	fmt.Fprintf(&b, "puts_accepted: %d\n", r.PutsAccepted)
	fmt.Fprintf(&b, "puts_rejected: %d\n", r.PutsRejected)
	return b.String()
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stats",
		Short:         "Print statistics of the index built from the datasets",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd)
		},
	}

	return cmd
}

func runStats(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	start := time.Now()
	logger := newLogger(opts, formatter)

	ix, summary, err := openIndex(cmd.Context(), opts, formatter, logger)
	if err != nil {
		return formatter.fail(err)
	}

	st := ix.Stats()
	logger.LogPerformance("stats", time.Since(start), map[string]any{
		"files":       summary.Files,
		"entries":     summary.Entries,
		"rows":        st.Rows,
		"cached_keys": st.CachedKeys,
	})

	return formatter.Success(StatsResult{
		Files:        summary.Files,
		Entries:      summary.Entries,
		Rows:         st.Rows,
		CachedKeys:   st.CachedKeys,
		CacheHits:    st.CacheHits,
		CacheMisses:  st.CacheMisses,
		PutsAccepted: st.PutsAccepted,
		PutsRejected: st.PutsRejected,
	})
}
