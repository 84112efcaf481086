package genomatch

import (
	"context"
	"time"

	"github.com/moiseyalaev/Genome-Matcher/config"
	"github.com/spf13/cobra"
)

// RelatedCmd takes a cobra command (with its flags) and runs Related
func RelatedCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)

	if _, err := Related(cmd.Context(), flags, conf); err != nil {
		stderr.Fatalf("failed to find genomes related to %s: %v", flags.in, err)
	}
}

// Related indexes the databases and ranks their genomes by the share of the
// query genome's fragments they contain. Only the first genome in the flags'
// input file is queried
func Related(ctx context.Context, flags *Flags, conf *config.Config) (*Output, error) {
	start := time.Now()

	query, err := loadQuery(flags.in)
	if err != nil {
		return nil, err
	}

	m, err := loadMatcher(flags.dbs, conf)
	if err != nil {
		return nil, err
	}

	related, err := m.FindRelatedGenomes(
		ctx,
		query,
		conf.FragmentMatchLength,
		flags.exact,
		conf.MatchPercentThreshold,
	)
	if err != nil {
		return nil, err
	}

	output := newOutput(query.Name(), flags.exact, start)
	output.Related = related

	if _, err = write(flags.out, output); err != nil {
		return nil, err
	}
	return output, nil
}
