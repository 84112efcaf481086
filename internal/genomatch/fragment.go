package genomatch

import (
	"fmt"
	"time"

	"github.com/moiseyalaev/Genome-Matcher/config"
	"github.com/spf13/cobra"
)

// FragmentCmd takes a cobra command (with its flags) and runs Fragment
func FragmentCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)

	if _, err := Fragment(flags, conf); err != nil {
		stderr.Fatalf("failed to find %s: %v", flags.fragment, err)
	}
}

// Fragment indexes the databases and finds the genomes containing the fragment.
// The output is written to the flags' out file, or to stdout
func Fragment(flags *Flags, conf *config.Config) (*Output, error) {
	start := time.Now()

	if flags.fragment == "" {
		return nil, fmt.Errorf("no fragment to search for")
	}

	m, err := loadMatcher(flags.dbs, conf)
	if err != nil {
		return nil, err
	}

	minLength := flags.minLength
	if minLength == 0 {
		minLength = m.MinimumSearchLength()
	}

	matches, err := m.FindFragment(flags.fragment, minLength, flags.exact)
	if err != nil {
		return nil, err
	}

	output := newOutput(flags.fragment, flags.exact, start)
	output.Matches = matches

	if _, err = write(flags.out, output); err != nil {
		return nil, err
	}
	return output, nil
}
