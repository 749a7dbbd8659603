package cli

import (
	"fmt"
	"strings"

	"github.com/hupe1980/wildmap/core"
	"github.com/spf13/cobra"
)

// QueryResult is the payload of the query command.
type QueryResult struct {
	Query  [core.Arity]string `json:"query"`
	Values []string           `json:"values"`
	Count  int                `json:"count"`
}

// String renders the result for text output.
func (r QueryResult) String() string {
	var b strings.Builder

	display := make([]string, 0, core.Arity)
	for _, q := range r.Query {
		if q == "" {
			q = "*"
		}
		display = append(display, q)
	}

	fmt.Fprintf(&b, "query: %s\n", strings.Join(display, " | "))
	fmt.Fprintf(&b, "matches: %d\n", r.Count)
	for _, v := range r.Values {
		fmt.Fprintf(&b, "  %s\n", v)
	}
	return b.String()
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [key1] [key2] [key3]",
		Short: "Query the loaded datasets",
		Long: `Query the loaded datasets by a 3-part key.

Missing positions, and positions given as "-" or "*", match every value.
Matches are printed in insertion order.`,
		Example: `  wildq query Honda --data vehicles.yaml
  wildq query - Civic Blue --data vehicles.yaml --format json`,
		Args:          cobra.MaximumNArgs(core.Arity),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runQuery(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	ix, _, err := openIndex(cmd.Context(), opts, formatter, newLogger(opts, formatter))
	if err != nil {
		return formatter.fail(err)
	}

	q := queryArgs(args)
	values := ix.Get(q[0], q[1], q[2])

	for i := range q {
		q[i] = strings.TrimSpace(q[i])
	}

	return formatter.Success(QueryResult{Query: q, Values: values, Count: len(values)})
}

// queryArgs maps positional arguments to query positions. Absent, "-" and
// "*" arguments become wildcards.
func queryArgs(args []string) [core.Arity]string {
	var q [core.Arity]string
	for i := range q {
		if i >= len(args) {
			continue
		}
		switch a := strings.TrimSpace(args[i]); a {
		case "-", "*":
		default:
			q[i] = args[i]
		}
	}
	return q
}
