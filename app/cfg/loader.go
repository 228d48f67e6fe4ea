package cfg

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/findabatherapy/citygen/app/census"
	"github.com/findabatherapy/citygen/app/generator"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	// Input configuration
	InputPath string `long:"input" short:"i" env:"CITYGEN_INPUT" default:"/tmp/census_cities.csv" description:"Census population estimates CSV export"`
	Encoding  string `long:"encoding" env:"CITYGEN_ENCODING" default:"latin1" choice:"latin1" choice:"utf8" description:"Character encoding of the input file"`
	RulesFile string `long:"rules" env:"CITYGEN_RULES" description:"YAML file overriding the built-in filter and naming rules (optional)"`

	// Output configuration
	OutputPath string `long:"output" short:"o" env:"CITYGEN_OUTPUT" default:"src/lib/data/cities.ts" description:"Generated source file"`
	Format     string `long:"format" short:"f" env:"CITYGEN_FORMAT" default:"ts" choice:"ts" choice:"go" description:"Generated source language"`
	GoPackage  string `long:"go-package" env:"CITYGEN_GO_PACKAGE" default:"cities" description:"Package clause used when --format=go"`
	SQLitePath string `long:"sqlite" env:"CITYGEN_SQLITE" description:"Also write the dataset to this SQLite file (optional)"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses os.Args and the environment. It returns nil, nil when help was
// requested.
func Load() (*Cfg, error) {
	return LoadArgs(nil)
}

// LoadArgs is Load with explicit arguments; nil means os.Args[1:].
func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	var err error
	if args == nil {
		_, err = parser.Parse()
	} else {
		_, err = parser.ParseArgs(args)
	}
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		InputPath:  raw.InputPath,
		Encoding:   raw.Encoding,
		RulesFile:  raw.RulesFile,
		OutputPath: raw.OutputPath,
		Format:     raw.Format,
		GoPackage:  raw.GoPackage,
		SQLitePath: raw.SQLitePath,
		Debug:      raw.Debug,
		Version:    GetVersion(),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Cfg) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return fmt.Errorf("input path is required")
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return fmt.Errorf("output path is required")
	}
	if !slices.Contains([]string{generator.FormatTypeScript, generator.FormatGo}, cfg.Format) {
		return fmt.Errorf("unsupported format: %s", cfg.Format)
	}
	if !slices.Contains([]string{census.EncodingLatin1, census.EncodingUTF8}, cfg.Encoding) {
		return fmt.Errorf("unsupported encoding: %s", cfg.Encoding)
	}
	if cfg.Format == generator.FormatGo && !isIdentifier(cfg.GoPackage) {
		return fmt.Errorf("invalid Go package name: %q", cfg.GoPackage)
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
