// Package main defines the CLI structure using kong.
package main

// CLI is the flag surface. Pointer-typed flags distinguish "given on
// the command line" from "use the config file value".
type CLI struct {
	Trace string `arg:"" help:"Trace JSON path (states, triangles, or a bare array)." type:"existingfile"`

	Scale     *float64 `short:"s" help:"World scaling factor applied to every coordinate."`
	Delay     *float64 `short:"d" help:"Seconds between animated frames."`
	Skip      *int     `help:"Sampling stride over the state sequence; 1 plays every state."`
	Static    bool     `help:"Render only the final state."`
	MaxWidth  *int     `name:"max-width" help:"Surface width cap in cells."`
	MaxHeight *int     `name:"max-height" help:"Surface height cap in cells."`

	Plain  bool   `help:"Plain ANSI frames instead of the interactive viewer."`
	PNG    string `name:"png" help:"Render the played path to a PNG file instead of the terminal." type:"path"`
	Config string `help:"Config file path (default: user config dir)." type:"path"`
}
