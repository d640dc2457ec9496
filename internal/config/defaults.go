// Package config provides configuration loading and defaults for discordstats.
package config

// DefaultArchive is the archive read when no path is given on the command line.
const DefaultArchive = "chat_logs/archive.json"

// DefaultConfigDir is the default location for discordstats configuration.
const DefaultConfigDir = "~/.config/discordstats"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color:    true,
	BarWidth: 20,
}
