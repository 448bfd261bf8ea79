package main

import (
	"github.com/gostonefire/chainhashmap"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDemoCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample scenario: inserts, a collision, an update and a failed search (honours --capacity and --hash only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.configPath != "" {
				return errors.New("demo does not read a configuration file, use --capacity and --hash")
			}

			capacity := opts.capacity
			if capacity == 0 {
				capacity = conf.DefaultCapacity
			}

			hashTable, _, err := chainhashmap.NewHashTableByName(capacity, opts.hashAlgorithm)
			if err != nil {
				return errors.Wrap(err, "create hash table")
			}

			runDemo(cmd.OutOrStdout(), hashTable)
			opts.logger.Debug("demo finished", zap.Int64("records", hashTable.Stat(false).Records))

			return nil
		},
	}
}

func newLookupCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup NAME...",
		Short: "Load contacts from the configuration file and look up names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.loadConfig()
			if err != nil {
				return err
			}

			hashTable, err := opts.newTable(config)
			if err != nil {
				return err
			}

			var missing int
			for _, name := range args {
				contact, found := hashTable.Search(name)
				printSearchResult(cmd.OutOrStdout(), name, contact, found)
				if !found {
					missing++
				}
			}
			opts.logger.Debug("lookup finished", zap.Int("names", len(args)), zap.Int("missing", missing))

			return nil
		},
	}
}

func newDumpCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Load contacts from the configuration file and print every bucket with statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.loadConfig()
			if err != nil {
				return err
			}

			hashTable, err := opts.newTable(config)
			if err != nil {
				return err
			}

			printTable(cmd.OutOrStdout(), hashTable.Dump())
			printStat(cmd.OutOrStdout(), hashTable.Stat(false))

			return nil
		},
	}
}
