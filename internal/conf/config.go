package conf

import (
	"encoding/json"
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/internal/model"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// DefaultCapacity - Number of buckets used when no capacity is configured
const DefaultCapacity int64 = 10

// Config - Configuration for a contact book hash table
//   - Capacity is the fixed number of buckets
//   - HashAlgorithm is the name of a built-in hash algorithm
//   - Contacts are inserted in the given order when the table is populated
type Config struct {
	Capacity      int64           `json:"capacity"`
	HashAlgorithm string          `json:"hash_algorithm"`
	Contacts      []model.Contact `json:"contacts"`
}

type contactEntry struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

type configFile struct {
	Capacity      int64          `json:"capacity"`
	HashAlgorithm string         `json:"hash_algorithm"`
	Contacts      []contactEntry `json:"contacts"`
}

// Default - Returns a Config with default values and no contacts
func Default() Config {
	return Config{
		Capacity:      DefaultCapacity,
		HashAlgorithm: hash.Default,
	}
}

// Load - Reads a JSON configuration file, comments and trailing commas are allowed.
// Missing values are set to defaults, and an empty path returns the defaults without touching fs.
//   - fs is the file system to read from
//   - path is the path to the configuration file
func Load(fs afero.Fs, path string) (config Config, err error) {
	config = Default()
	if path == "" {
		return
	}

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		err = errors.Wrap(err, "read config")
		return
	}

	var cf configFile
	err = json.Unmarshal(jsonc.ToJSON(content), &cf)
	if err != nil {
		err = errors.Wrap(err, "decode config")
		return
	}

	if cf.Capacity != 0 {
		config.Capacity = cf.Capacity
	}
	if cf.HashAlgorithm != "" {
		config.HashAlgorithm = cf.HashAlgorithm
	}
	for _, c := range cf.Contacts {
		config.Contacts = append(config.Contacts, model.Contact{Name: c.Name, Number: c.Number})
	}

	err = config.Validate()
	if err != nil {
		err = errors.Wrapf(err, "config %s", path)
	}

	return
}

// Validate - Checks that capacity is positive and that the hash algorithm is known
func (C Config) Validate() error {
	if C.Capacity <= 0 {
		return fmt.Errorf("capacity must be a positive value higher than 0 (zero), got %d", C.Capacity)
	}
	if !hash.IsKnown(C.HashAlgorithm) {
		return fmt.Errorf("unknown hash algorithm %q, available: %v", C.HashAlgorithm, hash.Names())
	}

	return nil
}
