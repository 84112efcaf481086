package genomatch

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/moiseyalaev/Genome-Matcher/config"
	"github.com/moiseyalaev/Genome-Matcher/internal/matcher"
	"github.com/spf13/cobra"
)

// IndexCmd takes a cobra command (with its flags) and runs Index
func IndexCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)

	stats, err := Index(flags, conf)
	if err != nil {
		stderr.Fatalf("failed to index %v: %v", flags.dbs, err)
	}

	fmt.Printf("genomes:   %s\n", humanize.Comma(int64(stats.Genomes)))
	fmt.Printf("bases:     %s\n", humanize.Comma(int64(stats.Bases)))
	fmt.Printf("fragments: %s (%d bp)\n", humanize.Comma(int64(stats.Fragments)), conf.MinSearchLength)
	fmt.Printf("nodes:     %s\n", humanize.Comma(int64(stats.Nodes)))
}

// Index builds the index of every genome in the databases and returns its size
func Index(flags *Flags, conf *config.Config) (matcher.Stats, error) {
	start := time.Now()

	m, err := loadMatcher(flags.dbs, conf)
	if err != nil {
		return matcher.Stats{}, err
	}

	stats := m.Stats()
	stderr.Printf("indexed %s genomes in %s\n", humanize.Comma(int64(stats.Genomes)), time.Since(start))
	return stats, nil
}
