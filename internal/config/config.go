// Package config declares the kong command-line surface.
package config

import "github.com/maschinekit/maschine/internal/cmd"

// LogConfig holds the logging flags shared by all commands.
type LogConfig struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"MASCHINE_LOG_LEVEL"`
	File    string `help:"Write logs to this file in addition to stderr" env:"MASCHINE_LOG_FILE"`
	RawFile string `help:"Write raw HID report hex dumps to this file" env:"MASCHINE_LOG_RAW_FILE"`
}

// CLI is the root command structure parsed by kong.
type CLI struct {
	Log    LogConfig `embed:"" prefix:"log."`
	Config string    `help:"Path to a configuration file" env:"MASCHINE_CONFIG"`

	Jam       cmd.Jam           `cmd:"" help:"Run the interactive demo loop on a connected controller"`
	Fontgen   cmd.Fontgen       `cmd:"" help:"Convert a bitmap glyph grid into a Go font table"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file utilities"`
}
