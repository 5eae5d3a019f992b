package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/postboard/internal/flagx"
)

// parseFlags populates Config from -s, -d, -l and -p. Only those flags are
// parsed so -c/-config and unknown flags do not interfere. -d applies to
// the driver chosen after -s is taken into account.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-l", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "storage driver (sqlite, postgres, badger, s3, memory)")
	location := fs.String("d", "", "storage location: sqlite file, postgres DSN, badger dir or s3 bucket")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.CredentialsMode, "p", cfg.CredentialsMode, "credentials mode (plain, bcrypt)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *location != "" {
		cfg.SetLocation(*location)
	}
}
