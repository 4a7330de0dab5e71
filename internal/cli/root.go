// Package cli implements the knightpaths command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/knightpaths/board"
	"github.com/katalvlaran/knightpaths/internal/config"
	"github.com/katalvlaran/knightpaths/internal/observability"
	"github.com/katalvlaran/knightpaths/knight"
	"github.com/katalvlaran/knightpaths/render"
)

// ErrMissingSquares is returned when a square is missing and stdin is not a terminal.
var ErrMissingSquares = errors.New("cli: --start and --end are required")

// Option customizes the root command.
type Option func(*app)

// WithPrompter replaces the interactive square prompt.
func WithPrompter(p Prompter) Option {
	return func(a *app) { a.prompt = p }
}

// WithTerminal overrides terminal detection for stdin.
func WithTerminal(isTerminal func() bool) Option {
	return func(a *app) { a.isTerminal = isTerminal }
}

type app struct {
	v          *viper.Viper
	cfg        config.Config
	logger     *zap.Logger
	prompt     Prompter
	isTerminal func() bool

	cfgFile string
	verbose bool
	start   string
	end     string
	output  string
	formats []string
}

func newApp(opts ...Option) *app {
	a := &app{
		v:          viper.New(),
		logger:     fallbackLogger(observability.Stderr()),
		prompt:     promptSquares,
		isTerminal: stdinIsTerminal,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewRootCommand builds the knightpaths command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	return newApp(opts...).command()
}

// Execute runs knightpaths and returns the process exit code.
func Execute(ctx context.Context) int {
	a := newApp()
	cmd := a.command()
	if err := cmd.ExecuteContext(ctx); err != nil {
		a.logger.Error("command failed", zap.Error(err))
		_ = observability.Sync(a.logger)
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Error.Render("Error: "+err.Error()))
		return 1
	}
	return 0
}

// fallbackLogger reports failures that happen before configuration is loaded.
func fallbackLogger(w zapcore.WriteSyncer) *zap.Logger {
	return observability.NewLogger(config.LoggerConfig{
		Level:       "info",
		Format:      "console",
		ServiceName: "knightpaths",
	}, w)
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knightpaths",
		Short: "Enumerate every shortest knight path between two squares",
		Long: `knightpaths finds all minimum-length knight paths between two squares of
a standard 8x8 chessboard and writes them as a Graphviz graph, a PNG board
and an animated GIF (or JSON, YAML and text reports).`,
		Example: `  knightpaths -s e4 -e h7
  knightpaths -s a1 -e h8 -f png -f json -o corner
  knightpaths paths -s b1 -e c3 --format yaml
  knightpaths distances d4`,
		Version:           Version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = observability.Sync(a.logger) },
		RunE:              a.runRoot,
	}
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./knightpaths.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&a.start, "start", "s", "", "start square, e.g. e4")
	pf.StringVarP(&a.end, "end", "e", "", "end square, e.g. h7")

	f := cmd.Flags()
	f.StringVarP(&a.output, "output", "o", "", "output base name (default from config)")
	f.StringSliceVarP(&a.formats, "format", "f", nil, "output formats: dot, png, gif, json, yaml, txt (repeatable)")

	cmd.AddCommand(a.pathsCommand(), a.distancesCommand(), versionCommand())
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logger.Level = "debug"
	}
	a.cfg = cfg
	a.logger = observability.NewLogger(cfg.Logger, zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())))
	a.logger.Debug("configuration loaded",
		zap.String("file", a.v.ConfigFileUsed()),
		zap.String("command", cmd.Name()),
	)
	return nil
}

func (a *app) runRoot(cmd *cobra.Command, _ []string) error {
	formats, err := a.outputFormats()
	if err != nil {
		return err
	}
	ps, err := a.enumerate(cmd.Context())
	if err != nil {
		return err
	}

	name := a.output
	if name == "" {
		name = a.cfg.Output.Name
	}
	files, err := render.Files(cmd.Context(), ps, filepath.Join(a.cfg.Output.Dir, name), formats, a.renderOptions())
	if err != nil {
		return err
	}
	a.logger.Info("artifacts written", zap.Strings("files", files))
	return writeSummary(cmd.OutOrStdout(), ps, files)
}

// enumerate resolves the squares, prompting when allowed, and returns the sorted PathSet.
func (a *app) enumerate(ctx context.Context) (knight.PathSet, error) {
	start, end := a.start, a.end
	if start == "" || end == "" {
		if !a.isTerminal() {
			return knight.PathSet{}, ErrMissingSquares
		}
		if err := a.prompt(ctx, &start, &end); err != nil {
			return knight.PathSet{}, fmt.Errorf("cli: prompt: %w", err)
		}
	}

	from, err := board.ParseSquare(start)
	if err != nil {
		return knight.PathSet{}, fmt.Errorf("start: %w", err)
	}
	to, err := board.ParseSquare(end)
	if err != nil {
		return knight.PathSet{}, fmt.Errorf("end: %w", err)
	}

	ps, err := knight.New(knight.WithLogger(a.logger)).Enumerate(from, to)
	if err != nil {
		return knight.PathSet{}, err
	}
	ps.Sort()
	return ps, nil
}

func (a *app) outputFormats() ([]render.Format, error) {
	names := a.formats
	if len(names) == 0 {
		names = a.cfg.Output.Formats
	}
	formats := make([]render.Format, 0, len(names))
	for _, n := range names {
		f, err := render.ParseFormat(n)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

func (a *app) renderOptions() render.Options {
	return render.Options{
		SquareSize: a.cfg.Render.SquareSize,
		FrameDelay: a.cfg.Render.FrameDelay,
		ShowLabels: a.cfg.Render.ShowLabels,
	}
}

func writeSummary(w io.Writer, ps knight.PathSet, files []string) error {
	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("Found %d shortest path(s) from %v to %v", ps.Len(), ps.Start, ps.End)))
	b.WriteString(styles.Muted.Render(fmt.Sprintf(" (%d move(s))", ps.Moves())))
	b.WriteByte('\n')
	for i, p := range ps.Paths {
		fmt.Fprintf(&b, "%3d. %s\n", i+1, styles.Path.Render(p.String()))
	}
	if len(files) > 0 {
		b.WriteString(styles.Muted.Render("Wrote " + strings.Join(files, ", ")))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
