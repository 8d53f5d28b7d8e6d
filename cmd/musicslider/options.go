package main

import (
	"github.com/alkime/musicslider/internal/config"
	"github.com/alkime/musicslider/internal/tui/components/musicslider"
	"github.com/alkime/musicslider/internal/tui/style"
	"github.com/charmbracelet/lipgloss"
)

// sliderOptions applies the configured appearance overrides.
func sliderOptions(cfg *config.Config) []musicslider.Option {
	var opts []musicslider.Option

	if c := cfg.Slider.IndicatorColor; c != "" {
		opts = append(opts, musicslider.WithIndicatorColor(lipgloss.Color(c)))
	}

	if c := cfg.Slider.BackgroundColor; c != "" {
		opts = append(opts, musicslider.WithBackgroundColor(lipgloss.Color(c)))
	}

	if k := cfg.Slider.Knob; k != "" {
		knob := style.Knob.Render(k)
		opts = append(opts, musicslider.WithKnob(func() string { return knob }))
	}

	return opts
}
