package config

import (
	"flag"
	"os"

	"bookstore/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   directory holding the persisted store files
//
// The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components (the -c/-config flags belong to the JSON layer).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory holding the store files")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
