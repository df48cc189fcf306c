package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

type VersionFlag bool

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(serviceName + ": " + serviceVersion)
	os.Exit(0)
	return nil
}

// Flags supplied to cli.
type Flags struct {
	Version    VersionFlag `name:"version" help:"Print version information and quit"`
	Datasource string      `help:"Path to the datasource file" optional:"" type:"path"`
	Database   string      `help:"Path to the database file" optional:"" type:"path"`
	Log        *LogConfig  `embed:"" prefix:"log-"`
	Update     UpdateCmd   `cmd:"" help:"Refresh the vendor database from the datasource"`
	Random     RandomCmd   `cmd:"" help:"Generate a random MAC address"`
	Search     SearchCmd   `cmd:"" help:"Search the vendor database by vendor name"`
	Upgrade    UpgradeCmd  `cmd:"" help:"Check for a new release and apply it"`
}

var flags *Flags

// Parse the supplied flags.
func ParseFlags() *kong.Context {
	flags = new(Flags)

	ctx := kong.Parse(flags,
		kong.Name(serviceName),
		kong.Description(serviceDescription),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	return ctx
}
