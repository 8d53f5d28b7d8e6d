package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alkime/musicslider/internal/audio"
	"github.com/alkime/musicslider/internal/config"
	"github.com/alkime/musicslider/internal/logger"
	"github.com/alkime/musicslider/internal/player"
	"github.com/alkime/musicslider/internal/tui"
	"github.com/alkime/musicslider/internal/tui/components/musicslider"
	"github.com/alkime/musicslider/pkg/uictl"
	tea "github.com/charmbracelet/bubbletea"
)

// CLI defines the musicslider command structure.
type CLI struct {
	Play    PlayCmd    `cmd:"" default:"withargs" help:"Play a track with a draggable position slider"`
	Render  RenderCmd  `cmd:"" help:"Print a single slider frame"`
	Devices DevicesCmd `cmd:"" help:"List available playback devices"`
}

// PlayCmd is the default command that runs the player TUI.
type PlayCmd struct {
	Title    string        `arg:"" optional:"" default:"Untitled" help:"Track title"`
	Duration time.Duration `flag:"" default:"3m30s" help:"Track length"`
	Audio    bool          `flag:"" help:"Play a generated tone through the default audio device"`
	Tone     float64       `flag:"" default:"440" help:"Tone frequency in Hz (with --audio)"`
	Width    int           `flag:"" help:"Slider width in columns (0 follows the terminal)"`
}

// Run executes the play command.
func (c *PlayCmd) Run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	transport, err := c.transport(ctx)
	if err != nil {
		return err
	}
	defer transport.Close(ctx)

	slog.Info("starting player", "title", c.Title, "duration", transport.Duration(), "audio", c.Audio)

	p := tea.NewProgram(
		tui.New(ctx, tui.Config{
			Cancel:        cancel,
			Title:         c.Title,
			Transport:     transport,
			Width:         c.Width,
			SliderOptions: sliderOptions(cfg),
		}),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run player TUI: %w", err)
	}

	return nil
}

func (c *PlayCmd) transport(ctx context.Context) (player.Transport, error) {
	if !c.Audio {
		return player.NewClock(c.Duration), nil
	}

	conf := audio.DefaultDeviceConfig()

	tr, err := player.NewTone(ctx, audio.NewDevice(conf), conf, c.Tone, c.Duration)
	if err != nil {
		return nil, fmt.Errorf("failed to start audio playback: %w", err)
	}

	return tr, nil
}

// RenderCmd prints one slider frame to stdout.
type RenderCmd struct {
	Value  float64 `flag:"" default:"10" help:"Current value"`
	Total  float64 `flag:"" default:"100" help:"Range upper bound"`
	Width  int     `flag:"" default:"40" help:"Width in columns"`
	Height float64 `flag:"" default:"6" help:"Track thickness"`
}

// Run executes the render command.
func (c *RenderCmd) Run(cfg *config.Config) error {
	return c.render(os.Stdout, cfg)
}

func (c *RenderCmd) render(w io.Writer, cfg *config.Config) error {
	opts := append(sliderOptions(cfg),
		musicslider.WithWidth(c.Width),
		musicslider.WithHeight(uictl.NewConstant(c.Height)),
	)

	s := musicslider.New(uictl.NewConstant(c.Value), c.Total, func(float64) {}, opts...)
	if _, err := fmt.Fprintln(w, s.View()); err != nil {
		return fmt.Errorf("failed to write slider: %w", err)
	}

	return nil
}

// DevicesCmd lists available playback devices.
type DevicesCmd struct{}

// Run executes the devices command.
func (dcmd *DevicesCmd) Run() error {
	adev := audio.NewDevice(nil)

	devices, err := adev.EnumerateDevices(context.Background())
	if err != nil {
		return fmt.Errorf("failed to enumerate audio devices: %w", err)
	}

	for _, dev := range devices {
		def := ""
		if dev.IsDefault {
			def = " (default)"
		}

		fmt.Printf("%s%s\n", dev.Name, def)

		for _, f := range dev.Formats {
			fmt.Printf("  %s\n", f)
		}
	}

	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	_, closer, err := logger.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("musicslider"),
		kong.Description("A draggable playback position slider for the terminal."),
		kong.Bind(cfg),
	)

	err = ctx.Run()
	if err != nil {
		closer.Close()
	}
	ctx.FatalIfErrorf(err)
}
