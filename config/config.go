package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/allape/bongocat/bongo/input"
	"github.com/allape/bongocat/envar"
	"github.com/allape/gogger"
	"github.com/pelletier/go-toml/v2"
)

var l = gogger.New("config")

const DefaultConfigPath = "bongocat.toml"

type InputDriverType string

const (
	InputDesktop InputDriverType = "desktop"
	InputDummy   InputDriverType = "dummy"
)

type SurfaceDriverType string

const (
	SurfaceDesktop  SurfaceDriverType = "desktop"
	SurfaceHeadless SurfaceDriverType = "headless"
)

type Window struct {
	Width  int      `toml:"width"`
	Height int      `toml:"height"`
	Offset int      `toml:"offset"`
	TPS    int      `toml:"tps"`
	Hints  HintsTag `toml:"hints"`
}

type Opacity struct {
	Min  float32 `toml:"min"`
	Step float32 `toml:"step"`
}

type Input struct {
	Type    InputDriverType `toml:"type"`
	QuitKey string          `toml:"quit_key"`
	Seed    int64           `toml:"seed"`
	// Global listens for keys and buttons system wide, desktop driver only
	Global bool `toml:"global"`

	// MonitorWidth and MonitorHeight only apply to the dummy driver
	MonitorWidth  int `toml:"monitor_width"`
	MonitorHeight int `toml:"monitor_height"`
	// Ext carries dummy driver schedules, e.g. key_every:"30" click_every:"45" fail_every:"0" period:"240"
	Ext TagString `toml:"ext"`
}

type Surface struct {
	Type   SurfaceDriverType `toml:"type"`
	Dir    string            `toml:"dir"`
	Frames int               `toml:"frames"`
}

type Debug struct {
	Label bool `toml:"label"`
}

type Config struct {
	Window  Window  `toml:"window"`
	Opacity Opacity `toml:"opacity"`
	Input   Input   `toml:"input"`
	Surface Surface `toml:"surface"`
	Debug   Debug   `toml:"debug"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  360,
			Height: 240,
			Offset: 50,
			TPS:    60,
			Hints:  `skip_taskbar:"true" hide_titlebar:"false" visible_on_all_workspaces:"false" shadow:"false"`,
		},
		Opacity: Opacity{
			Min:  input.DefaultMinOpacity,
			Step: input.DefaultOpacityStep,
		},
		Input: Input{
			Type:    InputDesktop,
			QuitKey: string(input.DefaultQuitKey),
			Global:  true,
		},
		Surface: Surface{
			Type: SurfaceDesktop,
			Dir:  "frames",
		},
	}
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps: %d", c.Window.TPS)
	}
	if c.Opacity.Min < 0 || c.Opacity.Min > 1 {
		return fmt.Errorf("opacity min out of range: %v", c.Opacity.Min)
	}
	if c.Opacity.Step <= 0 {
		return fmt.Errorf("opacity step must be positive: %v", c.Opacity.Step)
	}
	if c.Input.Type == InputDesktop && c.Surface.Type != SurfaceDesktop {
		return errors.New("desktop input requires the desktop surface")
	}
	if _, err := c.Window.Hints.Get(); err != nil {
		return fmt.Errorf("window hints: %w", err)
	}
	return nil
}

func (c Config) InputOptions() input.Options {
	return input.Options{
		MinOpacity:  c.Opacity.Min,
		OpacityStep: c.Opacity.Step,
		QuitKey:     input.Key(c.Input.QuitKey),
	}
}

// Path picks the config file from the first argument, then the environment.
func Path(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return envar.Getenv(envar.BongocatConfig, DefaultConfigPath)
}

func GetConfig() (Config, error) {
	return Load(Path(os.Args))
}

// Load reads configFile over the defaults. A missing file yields the defaults.
func Load(configFile string) (Config, error) {
	config := Default()

	l.Info().Println("reading config file:", configFile)

	configData, err := os.ReadFile(configFile)
	if errors.Is(err, os.ErrNotExist) {
		l.Warn().Println("config file not found, using defaults")
		return config, nil
	} else if err != nil {
		return config, err
	}

	err = toml.Unmarshal(configData, &config)
	if err != nil {
		return config, err
	}

	err = config.Validate()
	if err != nil {
		return config, err
	}

	l.Verbose().Println("use config:", config)

	return config, nil
}
