package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ccollicutt/fixtures/pkg/config"
	"github.com/ccollicutt/fixtures/pkg/output"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// Options holds flags shared by every command.
type Options struct {
	ConfigPath string
	BaseDir    string
	Output     string
	Verbose    bool
	Quiet      bool
	Color      bool
}

// AddFlags registers the shared flags on fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigPath, "config", "c", "", "Configuration file (default: "+config.DefaultBaseDir+"/ with no remote)")
	fs.StringVar(&o.BaseDir, "base-dir", "", "Directory holding fixtures (overrides config)")
	fs.StringVarP(&o.Output, "output", "o", "text", "Output format (text|json)")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "Show fixture headers, line counts and timing")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "Summary only, no values")
	fs.BoolVar(&o.Color, "color", false, "Colorize text output")
}

// loadConfig reads the config file if one was given, then applies flag overrides.
func (o *Options) loadConfig(ctx context.Context) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if o.ConfigPath != "" {
		cfg, err = config.Load(ctx, o.ConfigPath)
	} else {
		cfg, err = config.FromEnvironment()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if o.BaseDir != "" {
		cfg.BaseDir = o.BaseDir
	}

	return cfg, nil
}

func (o *Options) formatter() (output.Formatter, error) {
	return output.NewFormatter(o.Output, output.FormatOptions{
		Verbose: o.Verbose,
		Quiet:   o.Quiet,
		Color:   o.Color,
	})
}

// describeSource returns a short label for report metadata.
func describeSource(cfg *config.Config) string {
	switch cfg.Source {
	case config.SourceHTTP:
		return "http:" + cfg.Remote.URL
	case config.SourceChain:
		return "chain:" + cfg.BaseDir + "," + cfg.Remote.URL
	default:
		return "dir:" + cfg.BaseDir
	}
}
