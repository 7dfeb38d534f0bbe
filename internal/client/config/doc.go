// Package config loads runtime configuration for the termvault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional TOML file selected with -c or -config (see parseTOML).
//     A missing file is created with the defaults.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   path of the credential store file
//	-l string   path of the log file
//	-cost int   bcrypt cost factor
//
// # TOML schema
//
//	store_path  = "users.toml"
//	log_file    = "termvault.log"
//	bcrypt_cost = 10
package config
