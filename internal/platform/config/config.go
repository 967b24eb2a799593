// internal/platform/config/config.go
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"flatsource/internal/core/domain"
	"flatsource/internal/platform/errors"
	"flatsource/internal/platform/ui"
	"flatsource/internal/platform/validator"
)

// Environment variables read by Load.
const (
	EnvConfig    = "FLATSOURCE_CONFIG"
	EnvRoot      = "FLATSOURCE_ROOT"
	EnvDest      = "FLATSOURCE_DEST"
	EnvInExt     = "FLATSOURCE_IN_EXT"
	EnvOutExt    = "FLATSOURCE_OUT_EXT"
	EnvExclude   = "FLATSOURCE_EXCLUDE"
	EnvDryRun    = "FLATSOURCE_DRY_RUN"
	EnvGitIgnore = "FLATSOURCE_GITIGNORE"
	EnvUI        = "FLATSOURCE_UI"
	EnvVerbose   = "FLATSOURCE_VERBOSE"
)

// Flags that take several values.
const (
	flagInExt   = "in-ext"
	flagOutExt  = "out-ext"
	flagExclude = "exclude"
)

var multiValueFlags = map[string]bool{
	"--" + flagInExt:   true,
	"--" + flagOutExt:  true,
	"--" + flagExclude: true,
}

type Config struct {
	// Run
	Root       string   `yaml:"root"`
	Dest       string   `yaml:"dest"`
	InputExts  []string `yaml:"in_ext"`
	OutputExts []string `yaml:"out_ext"`
	Excludes   []string `yaml:"exclude"`
	DryRun     bool     `yaml:"dry_run"`
	GitIgnore  bool     `yaml:"gitignore"`

	// Presentation
	UI      string `yaml:"ui"`
	Verbose bool   `yaml:"verbose"`

	// Command line only
	ConfigPath   string `yaml:"-"`
	PrintVersion bool   `yaml:"-"`
	PrintHelp    bool   `yaml:"-"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Root: ".",
		UI:   string(ui.UIModePTerm),
	}
}

// flagValues receives parsed flags; only flags the user set are applied.
type flagValues struct {
	root       string
	dest       string
	inExts     []string
	outExts    []string
	excludes   []string
	dryRun     bool
	gitIgnore  bool
	ui         string
	verbose    bool
	configPath string
	version    bool
	help       bool
}

func newFlagSet(def Config) (*pflag.FlagSet, *flagValues) {
	v := &flagValues{}
	fs := pflag.NewFlagSet("flatsource", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVar(&v.root, "root", def.Root, "Root directory to scan")
	fs.StringVar(&v.dest, "dest", def.Dest, "Flat destination directory")
	fs.StringSliceVar(&v.inExts, flagInExt, nil, "Input extensions to collect")
	fs.StringSliceVar(&v.outExts, flagOutExt, nil, "Output extensions, paired with --in-ext by position")
	fs.StringArrayVar(&v.excludes, flagExclude, nil, "Directory name globs to skip")
	fs.BoolVar(&v.dryRun, "dry-run", false, "Simulate without writing anything")
	fs.BoolVar(&v.gitIgnore, "gitignore", false, "Also skip paths ignored by <root>/.gitignore")
	fs.StringVar(&v.ui, "ui", def.UI, "Output style: pterm, plain or quiet")
	fs.BoolVar(&v.verbose, "verbose", false, "Debug logging on stderr")
	fs.StringVar(&v.configPath, "config", "", "YAML configuration file")
	fs.BoolVarP(&v.version, "version", "v", false, "Print version and exit")
	fs.BoolVarP(&v.help, "help", "h", false, "Show this help message")

	return fs, v
}

// Load builds the configuration from defaults, the YAML file, FLATSOURCE_*
// variables and args, each layer overriding the previous one.
// Errors are usage errors (see errors.ExitCode).
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	fs, v := newFlagSet(cfg)
	if err := fs.Parse(expandMultiValueFlags(args)); err != nil {
		return cfg, errors.Invalid(err)
	}
	if rest := fs.Args(); len(rest) > 0 {
		return cfg, errors.Invalid(errors.Errorf("unexpected argument %q", rest[0]))
	}

	if v.help {
		cfg.PrintHelp = true
		return cfg, nil
	}
	if v.version {
		cfg.PrintVersion = true
		return cfg, nil
	}

	cfg.ConfigPath = v.configPath
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = getenv(EnvConfig, "")
	}
	if cfg.ConfigPath != "" {
		if err := loadFromFile(&cfg, cfg.ConfigPath); err != nil {
			return cfg, err
		}
	}

	loadFromEnv(&cfg)
	applyFlags(&cfg, fs, v)
	normalize(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFromFile overlays the YAML file at path on cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Errorf("%w: read %s: %w", errors.ErrConfigFile, path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Errorf("%w: parse %s: %w", errors.ErrConfigFile, path, err)
	}
	return nil
}

// loadFromEnv overlays FLATSOURCE_* variables on cfg.
func loadFromEnv(cfg *Config) {
	if v := getenv(EnvRoot, ""); v != "" {
		cfg.Root = v
	}
	if v := getenv(EnvDest, ""); v != "" {
		cfg.Dest = v
	}
	if v := getenv(EnvInExt, ""); v != "" {
		cfg.InputExts = splitList(v)
	}
	if v := getenv(EnvOutExt, ""); v != "" {
		cfg.OutputExts = splitList(v)
	}
	if v := getenv(EnvExclude, ""); v != "" {
		cfg.Excludes = splitPatterns(v)
	}
	if v := getenv(EnvDryRun, ""); v != "" {
		cfg.DryRun = parseBool(v)
	}
	if v := getenv(EnvGitIgnore, ""); v != "" {
		cfg.GitIgnore = parseBool(v)
	}
	if v := getenv(EnvUI, ""); v != "" {
		cfg.UI = v
	}
	if v := getenv(EnvVerbose, ""); v != "" {
		cfg.Verbose = parseBool(v)
	}
}

// applyFlags copies the flags the user actually set.
func applyFlags(cfg *Config, fs *pflag.FlagSet, v *flagValues) {
	if fs.Changed("root") {
		cfg.Root = v.root
	}
	if fs.Changed("dest") {
		cfg.Dest = v.dest
	}
	if fs.Changed(flagInExt) {
		cfg.InputExts = v.inExts
	}
	if fs.Changed(flagOutExt) {
		cfg.OutputExts = v.outExts
	}
	if fs.Changed(flagExclude) {
		cfg.Excludes = dropEmpty(v.excludes)
	}
	if fs.Changed("dry-run") {
		cfg.DryRun = v.dryRun
	}
	if fs.Changed("gitignore") {
		cfg.GitIgnore = v.gitIgnore
	}
	if fs.Changed("ui") {
		cfg.UI = v.ui
	}
	if fs.Changed("verbose") {
		cfg.Verbose = v.verbose
	}
}

// expandMultiValueFlags rewrites "--in-ext js css" into
// "--in-ext=js --in-ext=css" so a flag can take several space separated
// values. Values end at the next token starting with "-".
func expandMultiValueFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if !multiValueFlags[arg] {
			out = append(out, arg)
			continue
		}

		j := i + 1
		for ; j < len(args) && !strings.HasPrefix(args[j], "-"); j++ {
			out = append(out, arg+"="+args[j])
		}
		if j == i+1 {
			if arg == "--"+flagExclude {
				// zero patterns is valid and clears the list
				out = append(out, arg+"=")
			} else {
				// let the parser report the missing value
				out = append(out, arg)
			}
		}
		i = j - 1
	}
	return out
}

func normalize(c *Config) {
	c.Root = strings.TrimSpace(c.Root)
	if c.Root == "" {
		c.Root = "."
	}
	c.Dest = strings.TrimSpace(c.Dest)
	c.InputExts = trimAll(c.InputExts)
	c.OutputExts = trimAll(c.OutputExts)
	c.Excludes = trimAll(c.Excludes)
	c.UI = strings.ToLower(strings.TrimSpace(c.UI))
	if c.UI == "" {
		c.UI = string(ui.UIModePTerm)
	}
}

// Validate reports the first configuration problem as an invalid input error.
func (c Config) Validate() error {
	if err := c.ToRunConfig().Validate(); err != nil {
		return errors.Invalid(err)
	}

	for _, group := range []struct {
		flag string
		exts []string
	}{
		{flagInExt, c.InputExts},
		{flagOutExt, c.OutputExts},
	} {
		for _, ext := range group.exts {
			if !validator.IsExtensionToken(ext) {
				return errors.Invalid(errors.Errorf("--%s: invalid extension %q", group.flag, ext))
			}
		}
	}

	for _, p := range c.Excludes {
		if !validator.IsGlobPattern(p) {
			return errors.Errorf("%w: --%s %q", errors.ErrInvalidPattern, flagExclude, p)
		}
	}

	if _, ok := ui.ParseUIMode(c.UI); !ok {
		return errors.Invalid(errors.Errorf("--ui: unknown mode %q", c.UI))
	}
	return nil
}

// Warnings lists settings that are valid but probably not what the user meant.
func (c Config) Warnings() []string {
	var warnings []string
	for _, ext := range c.InputExts {
		if validator.IsCompoundExtension(ext) {
			warnings = append(warnings, fmt.Sprintf(
				"--%s %q has several dots; files are matched on their last extension only", flagInExt, ext))
		}
	}
	return warnings
}

// UIMode returns the presenter mode. Invalid names fall back to pterm.
func (c Config) UIMode() ui.UIMode {
	mode, ok := ui.ParseUIMode(c.UI)
	if !ok {
		return ui.UIModePTerm
	}
	return mode
}

// ToRunConfig returns the run description used by the migrator.
func (c Config) ToRunConfig() domain.RunConfig {
	return domain.RunConfig{
		Root:         c.Root,
		Dest:         c.Dest,
		InputExts:    c.InputExts,
		OutputExts:   c.OutputExts,
		Excludes:     c.Excludes,
		DryRun:       c.DryRun,
		UseGitIgnore: c.GitIgnore,
	}
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

// splitList splits on commas and whitespace, dropping empty entries.
func splitList(v string) []string {
	return strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// splitPatterns splits like splitList but keeps separators inside a
// bracket class, so "[a,b]" stays one pattern.
func splitPatterns(v string) []string {
	var out []string
	var cur strings.Builder
	// class holds the text since the opening "[", empty outside a class.
	class := ""
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range v {
		switch {
		case class != "":
			cur.WriteRune(r)
			if r == ']' && class != "[" && class != "[!" {
				class = ""
			} else {
				class += string(r)
			}
		case r == '[':
			cur.WriteRune(r)
			class = "["
		case r == ',' || r == ' ' || r == '\t':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

func dropEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
