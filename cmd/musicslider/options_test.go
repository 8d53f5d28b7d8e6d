package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alkime/musicslider/internal/config"
	"github.com/alkime/musicslider/internal/tui/components/musicslider"
	"github.com/alkime/musicslider/pkg/uictl"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestSliderOptions_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sliderOptions(&config.Config{}))
}

func TestSliderOptions_Overrides(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Slider: config.SliderConfig{
		IndicatorColor:  "#ff0000",
		BackgroundColor: "240",
		Knob:            "◆",
	}}

	opts := sliderOptions(cfg)
	assert.Len(t, opts, 3)

	opts = append(opts, musicslider.WithWidth(10))
	s := musicslider.New(uictl.NewConstant(0.0), 100, func(float64) {}, opts...)

	assert.Equal(t, "◆"+strings.Repeat("▂", 9), s.View())
}

func TestRenderCmd_Output(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  RenderCmd
		want string
	}{
		{
			name: "ten percent",
			cmd:  RenderCmd{Value: 10, Total: 100, Width: 20, Height: 6},
			want: "▂●" + strings.Repeat("▂", 18) + "\n",
		},
		{
			name: "zero total renders an empty track",
			cmd:  RenderCmd{Value: 10, Total: 0, Width: 20, Height: 6},
			want: "●" + strings.Repeat("▂", 19) + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, tt.cmd.render(&buf, &config.Config{}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
