package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/termvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Only -s, -l and -cost are looked at; the rest of args is filtered out with
// flagx.FilterArgs so the config-file flag does not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-s", "-l", "-cost"})

	fs := flag.NewFlagSet("termvault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the credential store file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "path of the log file")
	fs.IntVar(&cfg.BcryptCost, "cost", cfg.BcryptCost, "bcrypt cost factor")

	return fs.Parse(filtered)
}
