// Package cmd is for command line interactions with the genomatch application
package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/moiseyalaev/Genome-Matcher/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "genomatch",
	Short: `Index a library of genomes to find where DNA fragments occur in them,
exactly or with one mismatch, and which genomes are related to a query genome`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	config.SetDefaults(viper.GetViper())

	// settings is an optional parameter for a settings file (that overrides the defaults)
	RootCmd.PersistentFlags().StringP("settings", "s", "", "YAML settings file")
	RootCmd.PersistentFlags().IntP("min-search-length", "k", config.DefaultMinSearchLength, "length of the fragments in the index")
	RootCmd.PersistentFlags().IntP("workers", "w", 0, "fragments matched in parallel (0 is one per CPU)")
	RootCmd.PersistentFlags().BoolP("progress", "p", false, "show a progress bar while indexing")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("min-search-length", RootCmd.PersistentFlags().Lookup("min-search-length"))
	viper.BindPFlag("workers", RootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("progress", RootCmd.PersistentFlags().Lookup("progress"))
}
