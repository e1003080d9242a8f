package config

import (
	"flag"
	"os"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   database DSN (file path for SQLite, postgres:// URL for PostgreSQL)
//	-l string   log level (debug|info|warn|error)
//	-f string   log format (text|json)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so the JSON-config flags pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text|json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
