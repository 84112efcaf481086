// Package genomatch runs the genomatch commands: it loads genome libraries,
// indexes them and writes the results of fragment and related genome queries.
package genomatch

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/moiseyalaev/Genome-Matcher/config"
	"github.com/moiseyalaev/Genome-Matcher/internal/genome"
	"github.com/moiseyalaev/Genome-Matcher/internal/matcher"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra Flags like "in", "out", "dbs", etc that are used by multiple commands.
type Flags struct {
	// the FASTA file with the query genome
	in string

	// the name of the file to write the output to, stdout if empty
	out string

	// FASTA files with the library of genomes to index
	dbs []string

	// the fragment to search for
	fragment string

	// the minimum length of a fragment match, defaults to the minimum search length
	minLength int

	// whether to disallow a single mismatch
	exact bool
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in, out, fragment string, dbs []string, minLength int, exact bool) *Flags {
	return &Flags{
		in:        in,
		out:       out,
		dbs:       dbs,
		fragment:  fragment,
		minLength: minLength,
		exact:     exact,
	}
}

// parseCmdFlags gathers the in path, out path, etc from a cobra cmd object
// returns Flags and a Config struct for the genomatch commands.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	var err error
	fs := &Flags{}
	c := config.New()

	flags := cmd.Flags()
	if flags.Lookup("in") != nil {
		if fs.in, err = flags.GetString("in"); err != nil {
			stderr.Fatal(err)
		}
	}

	if flags.Lookup("out") != nil {
		if fs.out, err = flags.GetString("out"); err != nil {
			stderr.Fatal(err)
		}
	}

	dbs, err := flags.GetString("dbs")
	if err != nil || dbs == "" {
		cmd.Help()
		stderr.Fatal("no genome databases passed with --dbs")
	}
	fs.dbs = splitList(dbs)

	if flags.Lookup("exact") != nil {
		if fs.exact, err = flags.GetBool("exact"); err != nil {
			stderr.Fatal(err)
		}
	}

	if flags.Lookup("min-length") != nil {
		if fs.minLength, err = flags.GetInt("min-length"); err != nil {
			stderr.Fatal(err)
		}
	}

	if len(args) > 0 {
		fs.fragment = args[0]
	}

	return fs, c
}

// splitList separates a comma or space separated list of paths.
func splitList(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

// loadMatcher indexes every genome in the databases.
func loadMatcher(dbs []string, c *config.Config) (*matcher.Matcher, error) {
	m, err := matcher.New(c.MinSearchLength)
	if err != nil {
		return nil, err
	}
	m.SetWorkers(c.Workers)

	var library []*genome.Genome
	for _, db := range dbs {
		genomes, err := genome.Load(db)
		if err != nil {
			return nil, fmt.Errorf("failed to load genomes from %s: %v", db, err)
		}
		if len(genomes) == 0 {
			stderr.Printf("warning: no genomes in %s\n", db)
		}
		library = append(library, genomes...)
	}

	var bar *pb.ProgressBar
	if c.Progress {
		bar = pb.StartNew(len(library))
		defer bar.Finish()
	}

	for _, g := range library {
		if err := m.AddGenome(g); err != nil {
			return nil, fmt.Errorf("failed to index %s: %v", g.Name(), err)
		}
		if bar != nil {
			bar.Increment()
		}
	}

	return m, nil
}

// loadQuery reads the first genome of a FASTA file.
func loadQuery(in string) (*genome.Genome, error) {
	genomes, err := genome.Load(in)
	if err != nil {
		return nil, err
	}
	if len(genomes) == 0 {
		return nil, fmt.Errorf("no genomes in %s", in)
	}

	if len(genomes) > 1 {
		stderr.Printf(
			"warning: %d genomes were in %s. Only querying with the first: %s\n",
			len(genomes),
			in,
			genomes[0].Name(),
		)
	}
	return genomes[0], nil
}
