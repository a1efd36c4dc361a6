package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/larynjahor/brackets/internal/config"
	"github.com/larynjahor/brackets/logging"
	"github.com/larynjahor/brackets/pkg"
	"github.com/larynjahor/brackets/pkg/bracket"
	"github.com/larynjahor/brackets/pkg/checker"
	"github.com/larynjahor/brackets/pkg/env"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	format     string
	workers    int
	exts       []string
	debug      bool

	cfg  config.Config
	logs io.Closer
	fs   afero.Fs
}

func newRootCmd() *cobra.Command {
	a := &app{
		fs: afero.NewReadOnlyFs(afero.NewOsFs()),
	}

	root := &cobra.Command{
		Use:   "brackets",
		Short: "Check that round, square and curly brackets are balanced",

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.logs.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default: nearest "+config.FileName+")")
	flags.StringVarP(&a.format, "format", "f", "", "output format: text or json")
	flags.IntVarP(&a.workers, "workers", "w", 0, "files checked in parallel (default: GOMAXPROCS)")
	flags.StringSliceVarP(&a.exts, "ext", "e", nil, "file extensions to check in directories (default: all)")
	flags.BoolVar(&a.debug, "debug", false, "verbose logging")

	root.AddCommand(a.matchCmd(), a.checkCmd())

	return root
}

// setup resolves the config from file, environment and flags, in increasing
// precedence.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	e, err := env.New().Parse(os.Environ())
	if err != nil {
		return err
	}

	path := a.configPath
	if path == "" {
		path = e.Config.OrEmpty()
	}

	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path, _ = config.Find(wd)
		}
	}

	cfg := config.Default()
	if path != "" {
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}

	e.Apply(&cfg)

	flags := cmd.Flags()

	if flags.Changed("format") {
		cfg.Format = a.format
	}

	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}

	if flags.Changed("ext") {
		cfg.Extensions = a.exts
	}

	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logs = logging.Auto(cfg.Debug)

	slog.Debug(
		"loaded config",
		slog.String("path", path),
		slog.String("format", cfg.Format),
		slog.Int("workers", cfg.Workers),
		slog.Any("extensions", cfg.Extensions),
	)

	return nil
}

func (a *app) validator() (*bracket.Validator, error) {
	pairing, err := a.cfg.Pairing()
	if err != nil {
		return nil, err
	}

	return bracket.NewValidator(pairing), nil
}

type matchResult struct {
	Valid   bool             `json:"valid"`
	Failure *bracket.Failure `json:"failure,omitempty"`
}

func (a *app) matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match [text...]",
		Short: "Check the arguments, or stdin when there are none",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")

			if len(args) == 0 {
				content, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}

				input = string(content)
			}

			v, err := a.validator()
			if err != nil {
				return err
			}

			res := matchResult{Valid: true}

			if failure, ok := v.Check(input).Get(); ok {
				res = matchResult{Valid: false, Failure: &failure}
			}

			switch a.cfg.Format {
			case config.FormatJSON:
				err = json.NewEncoder(cmd.OutOrStdout()).Encode(res)
			default:
				_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Valid)
				if err == nil && res.Failure != nil {
					_, err = fmt.Fprintln(cmd.ErrOrStderr(), res.Failure)
				}
			}

			if err != nil {
				return err
			}

			if !res.Valid {
				return pkg.ErrUnbalanced
			}

			return nil
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>...",
		Short: "Check files, walking directories recursively",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}

			v, err := a.validator()
			if err != nil {
				return err
			}

			targets := make([]string, 0, len(args))

			for _, arg := range args {
				abs, err := filepath.Abs(arg)
				if err != nil {
					return err
				}

				targets = append(targets, rootRelative(abs))
			}

			c := checker.New(
				afero.NewIOFS(afero.NewBasePathFs(a.fs, "/")),
				v,
				checker.WithWorkers(a.cfg.Workers),
				checker.WithExtensions(a.cfg.Extensions...),
			)

			report, err := c.Do(cmd.Context(), targets)
			if err != nil {
				return err
			}

			for i := range report.Files {
				report.Files[i].Path = displayPath(wd, report.Files[i].Path)
			}

			switch a.cfg.Format {
			case config.FormatJSON:
				err = report.WriteJSON(cmd.OutOrStdout())
			default:
				err = report.WriteText(cmd.OutOrStdout())
			}

			if err != nil {
				return err
			}

			if !report.Valid() {
				return pkg.ErrUnbalanced
			}

			return nil
		},
	}
}

// rootRelative turns an absolute OS path into a path inside the filesystem
// rooted at "/".
func rootRelative(abs string) string {
	p := strings.TrimPrefix(filepath.ToSlash(abs), "/")
	if p == "" {
		return "."
	}

	return p
}

func displayPath(wd string, p string) string {
	abs := filepath.FromSlash("/" + p)

	rel, err := filepath.Rel(wd, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}

	return rel
}
