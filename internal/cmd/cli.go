// Package cmd contains the kong command tree for the keywire binary.
package cmd

// LogConfig holds the logging flags shared by all commands.
type LogConfig struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"KEYWIRE_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of stdout/stderr" env:"KEYWIRE_LOG_FILE"`
	RawFile string `help:"Write raw report/serial hex dumps to this file" env:"KEYWIRE_LOG_RAW_FILE"`
}

// CLI is the root command tree parsed by kong.
type CLI struct {
	ConfigFile string    `name:"config" help:"Path to a configuration file" env:"KEYWIRE_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`

	Bridge  Bridge        `cmd:"" default:"withargs" help:"Run the keyboard-to-serial bridge"`
	Config  ConfigCommand `cmd:"" help:"Configuration helpers"`
	Version Version       `cmd:"" help:"Print version information"`
}
