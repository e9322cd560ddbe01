package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/envctl/internal/version"
	"github.com/arthur-debert/envctl/pkg/config"
	"github.com/arthur-debert/envctl/pkg/environ"
	"github.com/arthur-debert/envctl/pkg/errors"
	"github.com/arthur-debert/envctl/pkg/launcher"
	"github.com/arthur-debert/envctl/pkg/logging"
	"github.com/arthur-debert/envctl/pkg/pathset"
	"github.com/arthur-debert/envctl/pkg/ui/styles"
)

// App holds the collaborators a run talks to.
type App struct {
	Env      environ.Accessor
	Launcher launcher.Launcher
	Stdout   io.Writer
	Stderr   io.Writer
}

// DefaultApp wires the real process environment and standard streams.
func DefaultApp() *App {
	return &App{
		Env:      environ.OS{},
		Launcher: launcher.NewExec(),
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

type options struct {
	verbosity  int
	prepend    []string
	append     []string
	remove     []string
	value      string
	configFile string
	noConfig   bool

	// command is the exec tail: name followed by its arguments.
	command []string
}

// NewRootCmd creates and returns the root command
func NewRootCmd(app *App) *cobra.Command {
	return newRootCmd(app, &options{})
}

func newRootCmd(app *App, opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    validateArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(app.Stderr, opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.noConfig && opts.configFile != "" {
				return errors.New(errors.ErrInvalidInput, MsgConfigConflict)
			}
			variable := ""
			if len(args) == 1 {
				variable = args[0]
			}
			return run(cmd, app, opts, variable)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.SetOut(app.Stdout)
	rootCmd.SetErr(app.Stderr)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionTemplate, version.Commit, version.Date))
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrInvalidInput, MsgInvalidArgs)
	})

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)

	flags := rootCmd.Flags()
	flags.StringArrayVarP(&opts.append, "append", "a", nil, MsgFlagAppend)
	flags.StringArrayVarP(&opts.prepend, "prepend", "p", nil, MsgFlagPrepend)
	flags.StringArrayVarP(&opts.remove, "remove", "r", nil, MsgFlagRemove)
	flags.StringVar(&opts.value, "value", "", MsgFlagValue)
	flags.StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	flags.BoolVar(&opts.noConfig, "no-config", false, MsgFlagNoConfig)

	return rootCmd
}

func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.Newf(errors.ErrInvalidInput, MsgTooManyArgs, len(args), args)
	}
	if len(args) == 1 && !environ.ValidName(args[0]) {
		return errors.Newf(errors.ErrInvalidInput, MsgInvalidVariable, args[0])
	}
	return nil
}

// run merges the variable and either prints it or hands it to the command.
func run(cmd *cobra.Command, app *App, opts *options, variable string) error {
	logger := logging.GetLogger("cli")

	cfg, err := config.Load(config.Options{
		File:         opts.configFile,
		SkipUserFile: opts.noConfig,
	})
	if err != nil {
		return err
	}
	if variable == "" {
		variable = cfg.Variable
	}

	current := environ.Get(app.Env, variable)
	if cmd.Flags().Changed("value") {
		current = opts.value
	}

	req := cfg.RulesFor(variable).Request(current, opts.prepend, opts.append, opts.remove)

	done := logging.LogOperationStart(logger, "merge")
	merged := pathset.Merge(req)
	done()

	logger.Info().
		Str("config", cfg.Source).
		Str("variable", variable).
		Str("before", current).
		Str("after", merged).
		Strs("remove", req.Remove.Sorted()).
		Msg("Merged variable")

	if len(opts.command) == 0 {
		return pathset.Write(app.Stdout, merged)
	}

	name, args := opts.command[0], opts.command[1:]
	logging.LogCommand(name, args)
	return app.Launcher.Run(cmd.Context(), launcher.Command{
		Name: name,
		Args: args,
		Env:  environ.With(app.Env.Environ(), variable, merged),
	})
}

// Execute parses args and runs envctl once.
func Execute(ctx context.Context, app *App, args []string) error {
	_, err := execute(ctx, app, args)
	return err
}

func execute(ctx context.Context, app *App, args []string) (*cobra.Command, error) {
	opts := &options{}
	rootCmd := newRootCmd(app, opts)

	head, tail, found := splitExec(args, rootCmd.Flags(), rootCmd.PersistentFlags())
	if found {
		if len(tail) == 0 {
			return rootCmd, errors.New(errors.ErrInvalidInput, MsgMissingCommand)
		}
		opts.command = tail
	}

	rootCmd.SetArgs(head)
	return rootCmd, rootCmd.ExecuteContext(ctx)
}

// Main runs envctl, reports any failure on app.Stderr and returns the exit
// status for the process.
func Main(ctx context.Context, app *App, args []string) int {
	rootCmd, err := execute(ctx, app, args)
	if err == nil {
		return errors.ExitOK
	}

	// The child already reported its own failure.
	if errors.IsErrorCode(err, errors.ErrChildExit) {
		log.Debug().Err(err).Msg("Child process failed")
		return errors.ExitCode(err)
	}

	fmt.Fprintln(app.Stderr, styles.Render(app.Stderr, "Error", MsgErrorPrefix+err.Error()))
	if errors.IsErrorCode(err, errors.ErrInvalidInput) {
		fmt.Fprintln(app.Stderr)
		fmt.Fprint(app.Stderr, rootCmd.UsageString())
	}
	return errors.ExitCode(err)
}
