package main

import (
	"context"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"traceview/internal/canvas"
	"traceview/internal/config"
	"traceview/internal/playback"
	"traceview/internal/surface"
	"traceview/internal/term"
	"traceview/internal/trace"
	"traceview/internal/tui"
)

func main() {
	var cli CLI
	ktx := kong.Parse(&cli,
		kong.Name("traceview"),
		kong.Description("Replays a recorded motion trace as an animated path in the terminal."),
	)
	ktx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	applyFlags(&cfg, cli)

	states, err := trace.Load(cli.Trace)
	if err != nil {
		return err
	}
	bounds := trace.ComputeBounds(states, cfg.Playback.Scale)

	opts := playback.Options{
		Scale:      cfg.Playback.Scale,
		Delay:      time.Duration(cfg.Playback.Delay * float64(time.Second)),
		Skip:       cfg.Playback.Skip,
		StaticOnly: cfg.Playback.Static,
	}

	if cli.PNG != "" {
		return renderPNG(cli.PNG, states, bounds, opts, cfg.Canvas)
	}

	// The interactive viewer needs a terminal and only animates; static
	// and piped runs go through the plain renderer.
	if cli.Plain || cfg.Playback.Static || !term.IsTerminal() {
		cols, rows := term.Size()
		geom := surface.Fit(cols, rows, cfg.Surface.MaxWidth, cfg.Surface.MaxHeight)
		d := playback.New(states, bounds, geom, opts)
		sink := term.NewSink(os.Stdout, term.Style{Trail: cfg.Style.Trail, Cursor: cfg.Style.Cursor})
		return playback.Run(context.Background(), d, sink)
	}

	m := tui.New(cli.Trace, states, bounds, cfg, opts)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// renderPNG replays the trace headlessly, with no pacing, into the
// vector canvas and flushes the final frame on top so the end position
// is always drawn even when the stride would have skipped it.
func renderPNG(path string, states trace.Trace, bounds trace.Bounds, opts playback.Options, c config.Canvas) error {
	opts.Delay = 0
	opts.StaticOnly = false
	geom := surface.Geometry{Width: c.Width, Height: c.Height}
	d := playback.New(states, bounds, geom, opts)
	sink := canvas.NewSink(path, bounds, c.Width, c.Height)
	if err := playback.Run(context.Background(), d, sink); err != nil {
		return err
	}
	if err := sink.Flush(d.Final()); err != nil {
		return err
	}
	return sink.Close()
}

func applyFlags(cfg *config.Config, cli *CLI) {
	if cli.Scale != nil {
		cfg.Playback.Scale = *cli.Scale
	}
	if cli.Delay != nil {
		cfg.Playback.Delay = *cli.Delay
	}
	if cli.Skip != nil {
		cfg.Playback.Skip = *cli.Skip
	}
	if cli.Static {
		cfg.Playback.Static = true
	}
	if cli.MaxWidth != nil {
		cfg.Surface.MaxWidth = *cli.MaxWidth
	}
	if cli.MaxHeight != nil {
		cfg.Surface.MaxHeight = *cli.MaxHeight
	}
}
