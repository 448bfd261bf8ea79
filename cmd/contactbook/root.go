package main

import (
	"github.com/gostonefire/chainhashmap"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"strings"
)

type options struct {
	configPath    string
	capacity      int64
	hashAlgorithm string
	debug         bool

	fs     afero.Fs
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	return newCommand(afero.NewOsFs())
}

// newCommand - Returns the command tree reading configuration files from fs
func newCommand(fs afero.Fs) *cobra.Command {
	opts := &options{fs: fs}

	cmd := &cobra.Command{
		Use:          "contactbook",
		Short:        "Contact book backed by a fixed size separate chaining hash table",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			opts.logger, err = newLogger(opts.debug)
			return errors.Wrap(err, "create logger")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to JSON configuration file (comments allowed)")
	flags.Int64Var(&opts.capacity, "capacity", 0, "number of buckets, overrides the configuration file")
	flags.StringVar(&opts.hashAlgorithm, "hash", "", "hash algorithm, one of "+strings.Join(chainhashmap.HashAlgorithmNames(), ", "))
	flags.BoolVar(&opts.debug, "debug", false, "enable development logging")

	cmd.AddCommand(
		newDemoCommand(opts),
		newLookupCommand(opts),
		newDumpCommand(opts),
	)

	return cmd
}

// newLogger - Returns a development logger when debug is set, otherwise a production logger that only
// reports warnings and errors
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// loadConfig - Reads the configuration file and applies flag overrides
func (o *options) loadConfig() (config conf.Config, err error) {
	config, err = conf.Load(o.fs, o.configPath)
	if err != nil {
		return
	}

	if o.capacity != 0 {
		config.Capacity = o.capacity
	}
	if o.hashAlgorithm != "" {
		config.HashAlgorithm = o.hashAlgorithm
	}

	err = config.Validate()

	return
}

// newTable - Creates a hash table from config and inserts the configured contacts
func (o *options) newTable(config conf.Config) (hashTable *chainhashmap.HashTable, err error) {
	hashTable, info, err := chainhashmap.NewHashTableByName(config.Capacity, config.HashAlgorithm)
	if err != nil {
		err = errors.Wrap(err, "create hash table")
		return
	}

	o.logger.Debug("hash table created",
		zap.Int64("buckets", info.NumberOfBuckets),
		zap.String("algorithm", config.HashAlgorithm),
		zap.Bool("internalAlgorithm", info.InternalAlgorithm),
	)

	for _, c := range config.Contacts {
		hashTable.Insert(c.Name, c.Number)
	}

	o.logger.Debug("contacts loaded",
		zap.Int("contacts", len(config.Contacts)),
		zap.Int64("buckets", info.NumberOfBuckets),
	)

	return
}
