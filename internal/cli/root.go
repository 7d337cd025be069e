// Package cli wires the mailgrep command line to the matcher and the
// grep engine.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/charliek/mailgrep/internal/config"
	"github.com/charliek/mailgrep/internal/constants"
	"github.com/charliek/mailgrep/internal/domain"
	"github.com/charliek/mailgrep/internal/grep"
	"github.com/charliek/mailgrep/internal/match"
)

// Version is set during build
var Version = "dev"

// errNoMatch signals the no-lines-matched exit status. It is never
// printed.
var errNoMatch = errors.New("no lines matched")

// fieldFlags holds the raw flag values for one email field.
type fieldFlags struct {
	contains    string
	notContains string
	matches     string
}

type options struct {
	configPath    string
	preset        string
	minEmails     int
	maxEmails     int
	ignoreCase    bool
	invert        bool
	countOnly     bool
	maxCount      int
	lineNumbers   bool
	colorMode     string
	inputEncoding string
	fields        map[domain.Field]*fieldFlags
}

// NewRootCmd builds the mailgrep root command.
func NewRootCmd() *cobra.Command {
	opts := &options{fields: make(map[domain.Field]*fieldFlags)}

	cmd := &cobra.Command{
		Use:   "mailgrep [flags] [file ...]",
		Short: "Print lines containing email addresses that match criteria",
		Long: `mailgrep is a line-oriented filter that prints lines containing email
addresses. Lines can be required to carry a minimum or maximum number of
addresses, and each address part (address, user, host, name, comment)
can be filtered by substring or regular expression.

Input is read from the given files in order, or from standard input when
no files are given. Files that cannot be opened are skipped with a
warning on stderr.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.SetVersionTemplate("mailgrep version {{.Version}}\n")

	flags := cmd.Flags()
	flags.IntVar(&opts.minEmails, "min-emails", constants.DefaultMinEmails,
		"minimum number of emails a line must contain (negative disables)")
	flags.IntVar(&opts.maxEmails, "max-emails", constants.DefaultMaxEmails,
		"maximum number of emails a line may contain (negative disables)")
	flags.BoolVarP(&opts.ignoreCase, "ignore-case", "i", false,
		"case-insensitive contains and matches predicates")
	flags.BoolVarP(&opts.invert, "invert", "v", false,
		"print lines that do not match")
	flags.BoolVarP(&opts.countOnly, "count", "c", false,
		"print only the number of matching lines")
	flags.IntVarP(&opts.maxCount, "max-count", "m", 0,
		"stop after this many matching lines (0 = unlimited)")
	flags.BoolVarP(&opts.lineNumbers, "line-number", "n", false,
		"prefix each line with its line number")
	flags.StringVar(&opts.colorMode, "color", "auto",
		"highlight matches: auto, always, or never")
	flags.StringVar(&opts.inputEncoding, "input-encoding", "",
		"decode input from this charset (e.g. latin1)")
	flags.StringVar(&opts.configPath, "config", "",
		"config file (default: mailgrep.yaml if present)")
	flags.StringVar(&opts.preset, "preset", "",
		"apply a named criteria preset from the config file")
	registerFieldFlags(flags, opts)

	return cmd
}

// registerFieldFlags adds the three criteria flags for every email field.
func registerFieldFlags(flags *pflag.FlagSet, opts *options) {
	for _, f := range domain.Fields() {
		ff := &fieldFlags{}
		opts.fields[f] = ff
		name := string(f)
		flags.StringVar(&ff.contains, name+"-contains", "",
			fmt.Sprintf("require an email whose %s contains this string", name))
		flags.StringVar(&ff.notContains, name+"-not-contains", "",
			fmt.Sprintf("require an email whose %s does not contain this string", name))
		flags.StringVar(&ff.matches, name+"-matches", "",
			fmt.Sprintf("require an email whose %s matches this regular expression", name))
	}
}

// Execute runs the root command and returns the process exit code:
// 0 when at least one line matched, 1 when none did, 2 on usage or
// configuration errors.
func Execute() int {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err == nil {
		return constants.ExitMatch
	}
	if errors.Is(err, errNoMatch) {
		return constants.ExitNoMatch
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return constants.ExitError
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	criteria, err := buildCriteria(cmd, opts, cfg)
	if err != nil {
		return err
	}

	matcher, err := match.NewMatcher(criteria)
	if err != nil {
		return err
	}

	enc, err := lookupEncoding(opts.inputEncoding)
	if err != nil {
		return err
	}

	color, err := colorEnabled(cmd, opts, cfg)
	if err != nil {
		return err
	}

	warn := func(name string, err error) {
		fmt.Fprintf(cmd.ErrOrStderr(), "mailgrep: %s: %v\n", name, err)
	}
	src := grep.NewFileSource(args, cmd.InOrStdin(), warn, enc)

	numbers := opts.lineNumbers
	if !cmd.Flags().Changed("line-number") && cfg != nil {
		numbers = cfg.LineNumbers
	}
	printer := NewPrinter(cmd.OutOrStdout(), color, numbers)

	engine := grep.NewEngine(grep.Options{
		Invert:    opts.invert,
		CountOnly: opts.countOnly,
		MaxCount:  opts.maxCount,
	}, matcher.MatchLine, printer)

	matched, err := engine.Run(src)
	if err != nil {
		return err
	}
	if matched == 0 {
		return errNoMatch
	}
	return nil
}

// loadConfig loads the explicit --config path, or a config file found in
// the standard locations. Running without any config file is fine; a
// config file that exists but fails to load is a fatal error.
func loadConfig(opts *options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.FindConfigFile()
		if path == "" {
			return nil, nil
		}
	}
	return config.Load(path)
}

// buildCriteria layers the preset (if any) over the defaults, then
// explicit flags over the preset.
func buildCriteria(cmd *cobra.Command, opts *options, cfg *config.Config) (domain.Criteria, error) {
	criteria := domain.NewCriteria()

	if opts.preset != "" {
		if cfg == nil {
			return criteria, fmt.Errorf("%w: %q (no config file)", domain.ErrUnknownPreset, opts.preset)
		}
		preset, err := cfg.Preset(opts.preset)
		if err != nil {
			return criteria, err
		}
		preset.Apply(&criteria)
	}

	flags := cmd.Flags()
	if flags.Changed("min-emails") {
		criteria.MinEmails = opts.minEmails
	}
	if flags.Changed("max-emails") {
		criteria.MaxEmails = opts.maxEmails
	}
	if flags.Changed("ignore-case") {
		criteria.IgnoreCase = opts.ignoreCase
	}

	for f, ff := range opts.fields {
		fc := criteria.Fields[f]
		if ff.contains != "" {
			fc.Contains = ff.contains
		}
		if ff.notContains != "" {
			fc.NotContains = ff.notContains
		}
		if ff.matches != "" {
			fc.Matches = ff.matches
		}
		criteria.Fields[f] = fc
	}

	return criteria, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEncoding, name)
	}
	return enc, nil
}

// colorEnabled resolves the color mode: explicit flag, then config, then
// "auto", which enables color only when stdout is a terminal.
func colorEnabled(cmd *cobra.Command, opts *options, cfg *config.Config) (bool, error) {
	mode := opts.colorMode
	if !cmd.Flags().Changed("color") && cfg != nil && cfg.Color != "" {
		mode = cfg.Color
	}

	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if f, ok := cmd.OutOrStdout().(*os.File); ok {
			return isatty.IsTerminal(f.Fd()), nil
		}
		return false, nil
	default:
		return false, fmt.Errorf("%w: color: must be auto, always, or never, got %q",
			domain.ErrInvalidConfig, mode)
	}
}
