// Package config loads selplot settings from a YAML file and SELPLOT_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/meshsel/selplot/pkg/selplot"
	"github.com/meshsel/selplot/pkg/selplot/output"
)

// EnvPrefix prefixes every environment variable, e.g. SELPLOT_HEADER_ROW.
const EnvPrefix = "SELPLOT"

// Config represents the complete selplot configuration.
type Config struct {
	HeaderRow       int    `yaml:"header_row" envconfig:"HEADER_ROW" validate:"min=0"`
	Sheet           string `yaml:"sheet" envconfig:"SHEET"`
	TitlePattern    string `yaml:"title_pattern" envconfig:"TITLE_PATTERN"`
	OnTitleMismatch string `yaml:"on_title_mismatch" envconfig:"ON_TITLE_MISMATCH" validate:"oneof=placeholder warn fail"`
	OnLoadError     string `yaml:"on_load_error" envconfig:"ON_LOAD_ERROR" validate:"oneof=abort skip"`
	Concurrency     int    `yaml:"concurrency" envconfig:"CONCURRENCY" validate:"min=0"`

	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`

	Presets map[string]PresetOverride `yaml:"presets" ignored:"true" validate:"dive"`
	Charts  []ChartJob                `yaml:"charts" ignored:"true" validate:"dive"`
	Batches []BatchJob                `yaml:"batches" ignored:"true" validate:"dive"`
}

// OutputConfig controls what is written besides the HTML file.
type OutputConfig struct {
	Open            bool          `yaml:"open" envconfig:"OPEN"`
	SpecJSON        bool          `yaml:"spec_json" envconfig:"SPEC_JSON"`
	PNG             bool          `yaml:"png" envconfig:"PNG"`
	ChromePath      string        `yaml:"chrome_path" envconfig:"CHROME_PATH"`
	SnapshotTimeout time.Duration `yaml:"snapshot_timeout" envconfig:"SNAPSHOT_TIMEOUT" validate:"min=0"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose" envconfig:"VERBOSE"`
}

// ChartJob renders one chart per input file.
type ChartJob struct {
	Preset string   `yaml:"preset" validate:"required"`
	Inputs []string `yaml:"inputs" validate:"required,min=1,dive,required"`
	// Output is only valid with a single input. Otherwise each chart is
	// written next to its input.
	Output string `yaml:"output"`
}

// BatchJob renders one combined figure of catch-share/selection pairs.
type BatchJob struct {
	Title            string   `yaml:"title"`
	CatchShare       []string `yaml:"catch_share" validate:"required,min=1,dive,required"`
	Selection        []string `yaml:"selection" validate:"required,min=1,dive,required"`
	CatchSharePreset string   `yaml:"catch_share_preset"`
	SelectionPreset  string   `yaml:"selection_preset"`
	Output           string   `yaml:"output" validate:"required"`
}

// PresetOverride replaces parts of a built-in preset's axes.
type PresetOverride struct {
	X     *AxisOverride `yaml:"x"`
	Left  *AxisOverride `yaml:"left"`
	Right *AxisOverride `yaml:"right"`
}

// AxisOverride holds the axis settings that differ between figures.
type AxisOverride struct {
	Domain []float64 `yaml:"domain" validate:"omitempty,len=2"`
	Values []float64 `yaml:"values"`
	Title  *string   `yaml:"title"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HeaderRow:       1,
		OnTitleMismatch: string(selplot.TitleWarn),
		OnLoadError:     string(selplot.LoadErrorAbort),
		Output: OutputConfig{
			Open:            true,
			SnapshotTimeout: output.DefaultSnapshotTimeout,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is not empty) and the environment, in increasing precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadEnvFile exports the KEY=value pairs of a dotenv file into the process
// environment. Variables already set keep their values.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, selplot.ErrFileNotFound)
		}
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// loadFromFile overlays the YAML file at path onto cfg.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, selplot.ErrFileNotFound)
		}
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

var validate = validator.New()

// Validate checks field constraints and preset names.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	for name := range c.Presets {
		if _, err := selplot.PresetByName(name); err != nil {
			return fmt.Errorf("presets: %w", err)
		}
	}
	for i, job := range c.Charts {
		if _, err := selplot.PresetByName(job.Preset); err != nil {
			return fmt.Errorf("charts[%d]: %w", i, err)
		}
		if job.Output != "" && len(job.Inputs) > 1 {
			return fmt.Errorf("charts[%d]: output requires a single input, got %d", i, len(job.Inputs))
		}
	}
	for i, job := range c.Batches {
		for _, name := range []string{job.CatchSharePreset, job.SelectionPreset} {
			if name == "" {
				continue
			}
			if _, err := selplot.PresetByName(name); err != nil {
				return fmt.Errorf("batches[%d]: %w", i, err)
			}
		}
	}
	return nil
}

// Options converts the configuration into chart build options.
func (c *Config) Options(logger *slog.Logger) selplot.Options {
	header := c.HeaderRow
	return selplot.Options{
		HeaderRow:    &header,
		Sheet:        c.Sheet,
		TitlePattern: c.TitlePattern,
		TitlePolicy:  selplot.TitlePolicy(c.OnTitleMismatch),
		OnLoadError:  selplot.LoadErrorPolicy(c.OnLoadError),
		Concurrency:  c.Concurrency,
		Logger:       logger,
	}
}

// Preset returns the named built-in preset with any configured overrides.
func (c *Config) Preset(name string) (selplot.Preset, error) {
	p, err := selplot.PresetByName(name)
	if err != nil {
		return selplot.Preset{}, err
	}
	o, ok := c.Presets[name]
	if !ok {
		return p, nil
	}
	o.X.apply(&p.Chart.X)
	o.Left.apply(&p.Chart.Left)
	o.Right.apply(&p.Chart.Right)
	return p, nil
}
