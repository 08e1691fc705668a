package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"todo/internal/config"
)

// annotationUsesAPI marks commands that need storage opened before they run.
const annotationUsesAPI = "todo/uses-api"

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd      *cobra.Command
	config   *config.Config
	opener   Opener
	uiRunner UIRunner
	out      io.Writer

	app      *App
	closeAPI func() error
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, opener Opener) *RootCommand {
	root := &RootCommand{
		config: cfg,
		opener: opener,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A local, single-user task list",
		Long: `todo keeps a short list of tasks on this machine.

FEATURES:
  • Add, edit, complete and delete tasks
  • Live statistics after every change
  • Export to JSON, CSV or YAML
  • Interactive terminal UI with a remembered dark/light theme

EXAMPLES:
  todo add "Buy milk"                 # Add a task
  todo edit 1 "Buy oat milk"          # Rename task 1
  todo toggle 1                       # Mark task 1 done (or not done)
  todo delete 2                       # Delete task 2
  todo list open                      # Show tasks not yet done
  todo output format=yaml > todo.yml  # Export everything
  todo ui                             # Interactive mode

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TODO_DB_DIR                   Database directory (default: ~/.todo)
    TODO_DB_FILENAME              Database filename (default: todo.db)
    TODO_DB_QUERY_TIMEOUT         Query timeout (default: 10s)
    TODO_DB_WRITE_TIMEOUT         Write timeout (default: 5s)
    TODO_TIME_DISPLAY_FORMAT      Absolute time format (default: 2006-01-02 15:04)
    TODO_DISPLAY_RELATIVE_TIME    Show "3 hours ago" style times (default: true)
    TODO_VALIDATION_TITLE_MAX     Maximum title length (default: 500)
    TODO_APP_TIMEOUT              Per-command timeout (default: 60s)
    TODO_APP_VERBOSE              Show error codes (default: false)
    TODO_OUTPUT_DEFAULT_FORMAT    Default export format (default: json)
    TODO_LOG_LEVEL                Log level (default: warn)
    TODO_LOG_FORMAT               Log format, text or json (default: text)
    TODO_DEBUG                    Enable debug logging when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.applyFlagOverrides(cmd); err != nil {
				return err
			}
			if cmd.Annotations[annotationUsesAPI] != "true" {
				return nil
			}
			return root.openAPI(cmd.Context())
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command and releases storage afterwards
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx as the parent of every command context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if closeErr := r.close(); closeErr != nil && err == nil {
		err = fmt.Errorf("failed to close storage: %w", closeErr)
	}
	return err
}

// SetArgs overrides the arguments cobra parses
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetOutput redirects command output
func (r *RootCommand) SetOutput(w io.Writer) {
	r.out = w
	r.cmd.SetOut(w)
	r.cmd.SetErr(w)
}

// SetUIRunner replaces the interactive session started by the ui command
func (r *RootCommand) SetUIRunner(run UIRunner) {
	r.uiRunner = run
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.String("time-format", "", "Time display format (overrides TODO_TIME_DISPLAY_FORMAT)")
	flags.Bool("relative-time", true, "Show relative creation times (overrides TODO_DISPLAY_RELATIVE_TIME)")
	flags.Int("title-max-length", 0, "Maximum task title length (overrides TODO_VALIDATION_TITLE_MAX)")
	flags.Duration("app-timeout", 0, "Per-command timeout (overrides TODO_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Show error codes (overrides TODO_APP_VERBOSE)")
	flags.String("output-format", "", "Default export format (overrides TODO_OUTPUT_DEFAULT_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := r.apiCommand(&cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Long:  "Add a new task. All arguments are joined into the title; surrounding whitespace is trimmed.",
		Args:  cobra.MinimumNArgs(1),
	}, func(app *App) handler { return NewAddCommand(app) })

	editCmd := r.apiCommand(&cobra.Command{
		Use:   "edit <id> [title]",
		Short: "Rename a task",
		Args:  cobra.MinimumNArgs(2),
	}, func(app *App) handler { return NewEditCommand(app) })

	toggleCmd := r.apiCommand(&cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Mark a task done, or not done",
		Args:    cobra.ExactArgs(1),
	}, func(app *App) handler { return NewToggleCommand(app) })

	deleteCmd := r.apiCommand(&cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Long:    "Delete a task. This happens immediately and cannot be undone.",
		Args:    cobra.ExactArgs(1),
	}, func(app *App) handler { return NewDeleteCommand(app) })

	listCmd := r.apiCommand(&cobra.Command{
		Use:       "list [all|open|done]",
		Short:     "List tasks",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"all", "open", "done"},
	}, func(app *App) handler { return NewListCommand(app) })

	statsCmd := r.apiCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show task counts",
		Args:  cobra.NoArgs,
	}, func(app *App) handler { return NewStatsCommand(app) })

	outputCmd := r.apiCommand(&cobra.Command{
		Use:   "output format=json|csv|yaml",
		Short: "Export tasks in the specified format",
		Long: `Export tasks, stats and theme.

Supported formats:
  json - indented JSON document
  csv  - one row per task
  yaml - YAML document

Example:
  todo output format=csv > tasks.csv`,
		Args: cobra.MaximumNArgs(1),
	}, func(app *App) handler { return NewOutputCommand(app) })

	themeCmd := r.apiCommand(&cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light", "toggle"},
	}, func(app *App) handler { return NewThemeCommand(app) })

	uiCmd := &cobra.Command{
		Use:         "ui",
		Short:       "Start the interactive terminal UI",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationUsesAPI: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Interactive sessions are not bound by the command timeout.
			return NewUICommand(r.app, r.uiRunner).Execute(cmd.Context(), args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		editCmd,
		toggleCmd,
		deleteCmd,
		listCmd,
		statsCmd,
		outputCmd,
		themeCmd,
		uiCmd,
	)
}

type handler interface {
	Execute(ctx context.Context, args []string) error
}

// apiCommand wires cmd to a handler built once storage is open
func (r *RootCommand) apiCommand(cmd *cobra.Command, build func(app *App) handler) *cobra.Command {
	cmd.Annotations = map[string]string{annotationUsesAPI: "true"}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(c.Context(), r.getAppTimeout())
		defer cancel()

		return build(r.app).Execute(ctx, args)
	}
	return cmd
}

// openAPI builds the App for this invocation
func (r *RootCommand) openAPI(ctx context.Context) error {
	if r.opener == nil {
		return fmt.Errorf("no storage configured")
	}

	apiInstance, closeFn, err := r.opener(ctx, r.config)
	if err != nil {
		return NewErrorHandler(r.config.Application.Verbose).Handle("open task list", err)
	}

	r.closeAPI = closeFn
	r.app = NewApp(apiInstance, r.config, r.out)
	return nil
}

func (r *RootCommand) close() error {
	if r.closeAPI == nil {
		return nil
	}
	closeFn := r.closeAPI
	r.closeAPI = nil
	return closeFn()
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// applyFlagOverrides folds explicitly set flags into the configuration
func (r *RootCommand) applyFlagOverrides(cmd *cobra.Command) error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("time-format") {
		v, _ := flags.GetString("time-format")
		overrides.TimeFormat = &v
	}
	if flags.Changed("relative-time") {
		v, _ := flags.GetBool("relative-time")
		overrides.RelativeTime = &v
	}
	if flags.Changed("title-max-length") {
		v, _ := flags.GetInt("title-max-length")
		overrides.TitleMaxLength = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("output-format") {
		v, _ := flags.GetString("output-format")
		overrides.OutputDefaultFormat = &v
	}

	if err := config.ApplyOverrides(r.config, overrides); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
