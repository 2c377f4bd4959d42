// Package config defines the scankey command line and the options that can
// be loaded from config files.
package config

import (
	"github.com/Alia5/scankey/internal/cmd"
	"github.com/Alia5/scankey/internal/log"
)

// CLI is the root command.
type CLI struct {
	ConfigFile string     `name:"config" help:"Path to a JSON, YAML or TOML config file" type:"path" env:"SCANKEY_CONFIG"`
	Log        log.Config `embed:"" prefix:"log."`

	Decode  cmd.Decode        `cmd:"" help:"Decode PC scancodes into key events"`
	Layouts cmd.Layouts       `cmd:"" help:"Inspect keyboard layouts"`
	Config  cmd.ConfigCommand `cmd:"" help:"Manage configuration files"`
}
