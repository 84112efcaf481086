package genomatch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/moiseyalaev/Genome-Matcher/internal/matcher"
)

// Output is a struct containing the results of a query.
type Output struct {
	// Query is the fragment or the name of the query genome
	Query string `json:"query"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// Exact is whether mismatches were disallowed
	Exact bool `json:"exact"`

	// Matches of a fragment query, one per genome
	Matches []matcher.DNAMatch `json:"matches,omitempty"`

	// Related genomes of a related genome query
	Related []matcher.GenomeMatch `json:"related,omitempty"`
}

// newOutput stamps an Output with the current time and the seconds since start.
func newOutput(query string, exact bool, start time.Time) *Output {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	return &Output{
		Query: query,
		Time: fmt.Sprintf(
			"%d/%02d/%02d %02d:%02d:%02d",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		),
		Execution: time.Since(start).Seconds(),
		Exact:     exact,
	}
}

// write writes the output as JSON to filename, or as a table to stdout if filename is empty.
func write(filename string, o *Output) ([]byte, error) {
	if filename == "" {
		return nil, writeTable(os.Stdout, o)
	}

	output, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize the output: %v", err)
	}

	if err = os.WriteFile(filename, output, 0644); err != nil {
		return nil, fmt.Errorf("failed to write the output: %v", err)
	}
	return output, nil
}

// writeTable writes a tab-aligned table of matches or related genomes.
func writeTable(out io.Writer, o *Output) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	switch {
	case o.Matches != nil:
		fmt.Fprintln(w, "genome\tposition\tlength")
		for _, m := range o.Matches {
			fmt.Fprintf(w, "%s\t%d\t%d\n", m.Genome, m.Position, m.Length)
		}
	case o.Related != nil:
		fmt.Fprintln(w, "genome\tpercent")
		for _, r := range o.Related {
			fmt.Fprintf(w, "%s\t%.2f%%\n", r.Genome, r.Percent)
		}
	default:
		fmt.Fprintf(w, "no matches for %s\n", o.Query)
	}

	return w.Flush()
}
