package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"organizer/internal/api"
	"organizer/internal/app"
	"organizer/internal/config"
	"organizer/internal/export"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	loader  *config.Loader
	env     config.Environment
	now     func() time.Time
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	config  *config.Config
	runtime *app.App
	app     *App
	errors  *ErrorHandler
}

// RootOption configures the root command
type RootOption func(*RootCommand)

// WithStreams sets the streams commands read from and write to
func WithStreams(in io.Reader, out, errOut io.Writer) RootOption {
	return func(r *RootCommand) {
		r.in, r.out, r.errOut = in, out, errOut
	}
}

// WithEnvironment selects where the data is kept
func WithEnvironment(env config.Environment) RootOption {
	return func(r *RootCommand) { r.env = env }
}

// WithLoader sets the configuration loader
func WithLoader(loader *config.Loader) RootOption {
	return func(r *RootCommand) { r.loader = loader }
}

// WithClock sets the source of the current time
func WithClock(now func() time.Time) RootOption {
	return func(r *RootCommand) { r.now = now }
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(opts ...RootOption) *RootCommand {
	root := &RootCommand{
		loader: config.NewLoader(),
		env:    config.Production,
		now:    time.Now,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		errors: NewErrorHandler(),
	}
	for _, opt := range opts {
		opt(root)
	}

	root.cmd = &cobra.Command{
		Use:   "org",
		Short: "A personal organizer for classes, work, events and workouts",
		Long: `org keeps seven lists of tasks and events, a weekly workout plan and the
record of completed workouts, and shows them as a month calendar and a
day agenda.

LISTS:
  exams          📚 Prova        (faculdade)
  videoLessons   🎬 Vídeo-aula   (faculdade, watch list, not on the agenda)
  assignments    📝 Entrega      (faculdade)
  meetings       💼 Reunião      (trabalho)
  workTasks      ⚡ Trabalho     (trabalho)
  gjMeetings     🙌 GJ           (gj)
  outrosEventos  📅 Outros       (outros)
  Kebab-case aliases work too: video-lessons, work-tasks, gj-meetings, outros.

EXAMPLES:
  org add exams "Calc Final" --date 15/03/2024 --time 08:00 --urgent
  org add video-lessons "Limits" --link https://example.com/limits
  org list                               # Every list
  org day amanhã                         # Tomorrow's agenda
  org calendar 03/2024                   # Month grid
  org done exams <id>                    # Toggle completion
  org workout set --name "Treino A" --day "Segunda=07:00 Push" --day "Quarta=07:00 Pull"
  org workout done                       # Mark today's workout as done
  org export --format xlsx --out organizer.xlsx

DATES:
  DD/MM/YYYY, YYYY-MM-DD, today, tomorrow, yesterday, hoje, amanhã

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > .env file > defaults

    ORG_DATA_DIR          Data directory (default: ~/.organizer)
    ORG_DB_FILENAME       Database filename (default: organizer.db)
    ORG_STORAGE_KEY       Key the snapshot is stored under (default: camilaOrganization)
    ORG_WRITE_TIMEOUT     Write timeout (default: 5s)
    ORG_WEEK_START        First day of the week (default: sunday)
    ORG_PROJECTION_DAYS   Days the workout plan is projected on calendars (default: 30)
    ORG_TIMEZONE          Time zone for dates (default: Local)
    ORG_DATE_FORMAT       Date display format (default: 02/01/2006)
    ORG_COLOR             Coloured output (default: true)
    ORG_LOG_LEVEL         Log level (default: warn)
    ORG_LOG_FORMAT        console or json (default: console)
    ORG_LOG_FILE          Log to this file instead of stderr
    ORG_APP_TIMEOUT       Command timeout (default: 30s)
    ORG_VERBOSE           Verbose logging (default: false)
    ORG_DEBUG             Debug logging when set
    ORG_ENV               development, testing or production (default: production)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd.Context())
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()
	return root
}

// Execute runs the command line args and returns a user-facing error
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	r.cmd.SetIn(r.in)
	r.cmd.SetOut(r.out)
	r.cmd.SetErr(r.errOut)

	err := r.cmd.ExecuteContext(ctx)
	if err != nil && r.runtime != nil && r.errors.ShouldLog(err) {
		r.runtime.Logger.Error().Err(err).Str("code", r.errors.GetErrorCode(err)).Msg("command failed")
	}
	if closeErr := r.close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		return r.errors.HandleSimple(err)
	}
	return nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("data-dir", "", "Data directory (overrides ORG_DATA_DIR)")
	flags.String("db-filename", "", "Database filename (overrides ORG_DB_FILENAME)")
	flags.Duration("write-timeout", 0, "Write timeout (overrides ORG_WRITE_TIMEOUT)")

	flags.String("week-start", "", "First day of the week (overrides ORG_WEEK_START)")
	flags.Int("projection-days", 0, "Workout projection window in days (overrides ORG_PROJECTION_DAYS)")
	flags.String("timezone", "", "Time zone (overrides ORG_TIMEZONE)")

	flags.String("date-format", "", "Date display format (overrides ORG_DATE_FORMAT)")
	flags.Bool("no-color", false, "Disable coloured output (overrides ORG_COLOR)")

	flags.String("log-level", "", "Log level (overrides ORG_LOG_LEVEL)")
	flags.String("log-format", "", "Log format, console or json (overrides ORG_LOG_FORMAT)")
	flags.String("log-file", "", "Log file (overrides ORG_LOG_FILE)")

	flags.Duration("app-timeout", 0, "Command timeout (overrides ORG_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Verbose logging (overrides ORG_VERBOSE)")
}

// getConfigOverrides collects the flags that were set on the command line
func (r *RootCommand) getConfigOverrides() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	o := &config.ConfigOverrides{}

	if flags.Changed("data-dir") {
		v, _ := flags.GetString("data-dir")
		o.DataDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		o.DBFilename = &v
	}
	if flags.Changed("write-timeout") {
		v, _ := flags.GetDuration("write-timeout")
		o.WriteTimeout = &v
	}
	if flags.Changed("week-start") {
		v, _ := flags.GetString("week-start")
		o.WeekStart = &v
	}
	if flags.Changed("projection-days") {
		v, _ := flags.GetInt("projection-days")
		o.ProjectionDays = &v
	}
	if flags.Changed("timezone") {
		v, _ := flags.GetString("timezone")
		o.Timezone = &v
	}
	if flags.Changed("date-format") {
		v, _ := flags.GetString("date-format")
		o.DateFormat = &v
	}
	if flags.Changed("no-color") {
		v, _ := flags.GetBool("no-color")
		color := !v
		o.Color = &color
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		o.LogLevel = &v
	}
	if flags.Changed("log-format") {
		v, _ := flags.GetString("log-format")
		o.LogFormat = &v
	}
	if flags.Changed("log-file") {
		v, _ := flags.GetString("log-file")
		o.LogFile = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		o.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		o.Verbose = &v
	}
	return o
}

// setup loads the configuration and opens the organizer before a command runs
func (r *RootCommand) setup(ctx context.Context) error {
	cfg, err := r.loader.LoadWithOverrides(r.getConfigOverrides())
	if err != nil {
		return err
	}
	r.config = cfg

	runtime, err := app.New(ctx, cfg, app.Options{Env: r.env, Stderr: r.errOut, Now: r.now})
	if err != nil {
		return err
	}
	r.runtime = runtime
	r.app = NewApp(runtime.API, cfg,
		WithOutput(r.out),
		WithInput(r.in),
		WithLogger(runtime.Logger),
	)
	return nil
}

func (r *RootCommand) close() error {
	if r.runtime == nil {
		return nil
	}
	err := r.runtime.Close()
	r.runtime = nil
	return err
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// Command is implemented by every command handler
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// run executes a handler under the application timeout. Handlers are built
// lazily since the App only exists once the configuration is loaded.
func (r *RootCommand) run(cmd *cobra.Command, args []string, build func(*App) Command) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
	defer cancel()
	return build(r.app).Execute(ctx, args)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.addCommand(),
		r.editCommand(),
		r.removeCommand(),
		r.doneCommand(),
		r.clearCommand(),
		r.listCommand(),
		r.dayCommand(),
		r.calendarCommand(),
		r.statsCommand(),
		r.overdueCommand(),
		r.workoutCommand(),
		r.exportCommand(),
	)
}

func (r *RootCommand) addCommand() *cobra.Command {
	var opts AddOptions
	cmd := &cobra.Command{
		Use:   "add <list> <text>",
		Short: "Add a task to a list",
		Long: `Add a task to one of the seven lists.

Examples:
  org add exams "Calc Final" --date 15/03/2024 --time 08:00 --urgent
  org add meetings "Sprint review" --date amanhã --link https://meet.example.com/abc`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(a *App) Command { return NewAddCommand(a, opts) })
		},
	}
	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "Date (DD/MM/YYYY, YYYY-MM-DD, today, amanhã...)")
	cmd.Flags().StringVarP(&opts.Time, "time", "t", "", "Time of day (HH:MM), needs --date")
	cmd.Flags().StringVarP(&opts.Link, "link", "l", "", "Link (absolute URL)")
	cmd.Flags().BoolVarP(&opts.Urgent, "urgent", "u", false, "Mark as urgent")
	return cmd
}

func (r *RootCommand) editCommand() *cobra.Command {
	var (
		text, date, clock, link string
		urgent, completed       bool
	)
	cmd := &cobra.Command{
		Use:   "edit <list> <id>",
		Short: "Change fields of a task",
		Long: `Change the fields given as flags. Pass an empty --date, --time or --link
to clear that field.

Examples:
  org edit exams 1b2c --date 20/03/2024
  org edit meetings 1b2c --time ""
  org edit workTasks 1b2c --urgent=false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update api.TaskUpdate
			flags := cmd.Flags()
			if flags.Changed("text") {
				update.Text = &text
			}
			if flags.Changed("date") {
				update.Date = &date
			}
			if flags.Changed("time") {
				update.Time = &clock
			}
			if flags.Changed("link") {
				update.Link = &link
			}
			if flags.Changed("urgent") {
				update.Urgent = &urgent
			}
			if flags.Changed("completed") {
				update.Completed = &completed
			}
			return r.run(cmd, args, func(a *App) Command { return NewEditCommand(a, update) })
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "New text")
	cmd.Flags().StringVarP(&date, "date", "d", "", "New date, empty to remove the date")
	cmd.Flags().StringVarP(&clock, "time", "t", "", "New time (HH:MM), empty to remove it")
	cmd.Flags().StringVarP(&link, "link", "l", "", "New link, empty to remove it")
	cmd.Flags().BoolVarP(&urgent, "urgent", "u", false, "Urgent flag")
	cmd.Flags().BoolVar(&completed, "completed", false, "Completed flag")
	return cmd
}

func (r *RootCommand) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <list> <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(a *App) Command { return NewRemoveCommand(a) })
		},
	}
}

func (r *RootCommand) doneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done <list> <id>",
		Short: "Toggle a task between done and pending",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(a *App) Command { return NewDoneCommand(a) })
		},
	}
}

func (r *RootCommand) clearCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear <list>",
		Short: "Remove every task of a list",
		Long:  "Remove every task of a list. You are asked to confirm unless --yes is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(a *App) Command { return NewClearCommand(a, yes) })
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (r *RootCommand) listCommand() *cobra.Command {
	var opts ListOptions
	cmd := &cobra.Command{
		Use:     "list [list]",
		Aliases: []string{"ls"},
		Short:   "Show tasks",
		Long: `Show the tasks of one list, or of every list.

Examples:
  org list                  # Every list
  org list exams --pending  # Exams not done yet
  org list --search calc    # Tasks whose text or link mentions "calc"
  org list meetings --from hoje --to 31/03/2024`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(a *App) Command { return NewListCommand(a, opts) })
		},
	}
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Only tasks whose text or link contains this")
	cmd.Flags().StringVar(&opts.From, "from", "", "Only tasks due on or after this date")
	cmd.Flags().StringVar(&opts.To, "to", "", "Only tasks due on or before this date")
	cmd.Flags().BoolVarP(&opts.Pending, "pending", "p", false, "Hide completed tasks")
	return cmd
}

func (r *RootCommand) dayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "day [date]",
		Short: "Show the agenda of a day",
		Long: `Show the tasks and the workout of a day, today by default.

Examples:
  org day
  org day amanhã
  org day 15/03/2024`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(a *App) Command { return NewDayCommand(a) })
		},
	}
}

func (r *RootCommand) calendarCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "calendar [month]",
		Aliases: []string{"cal"},
		Short:   "Show a month calendar",
		Long: `Show a month grid with the days that have events, coloured by category.
The month is MM/YYYY, YYYY-MM or MM; the current month by default.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(a *App) Command { return NewCalendarCommand(a) })
		},
	}
}

func (r *RootCommand) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show pending, overdue and weekly workout counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(a *App) Command { return NewStatsCommand(a) })
		},
	}
}

func (r *RootCommand) overdueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "Show overdue tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(a *App) Command { return NewOverdueCommand(a) })
		},
	}
}

func (r *RootCommand) workoutCommand() *cobra.Command {
	workout := &cobra.Command{
		Use:   "workout",
		Short: "Manage the weekly workout plan",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the workout plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(a *App) Command { return NewWorkoutShowCommand(a) })
		},
	}

	var setOpts WorkoutSetOptions
	set := &cobra.Command{
		Use:   "set",
		Short: "Save the workout plan",
		Long: `Save the workout plan. Each --day is "<weekday>=[HH:MM] exercises" with
weekdays Segunda, Terça, Quarta, Quinta, Sexta, Sábado, Domingo. Days not
given are rest days, unless --merge keeps them from the current plan.

Example:
  org workout set --name "Treino A" --day "Segunda=07:00 Push" --day "Quarta=07:00 Pull"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(a *App) Command { return NewWorkoutSetCommand(a, setOpts) })
		},
	}
	set.Flags().StringVarP(&setOpts.Name, "name", "n", "", "Plan name (required)")
	set.Flags().StringArrayVar(&setOpts.Days, "day", nil, `Training day, "<weekday>=[HH:MM] exercises"`)
	set.Flags().BoolVar(&setOpts.Merge, "merge", false, "Keep days of the current plan that are not given")

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the workout plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(a *App) Command { return NewWorkoutClearCommand(a, yes) })
		},
	}
	clearCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	done := &cobra.Command{
		Use:   "done [date]",
		Short: "Toggle the workout of a day between done and not done",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(a *App) Command { return NewWorkoutDoneCommand(a) })
		},
	}

	workout.AddCommand(show, set, clearCmd, done)
	return workout
}

func (r *RootCommand) exportCommand() *cobra.Command {
	opts := ExportOptions{Format: string(export.FormatCSV)}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export everything as CSV, JSON or XLSX",
		Long: `Export every list and the workout plan.

Formats:
  csv   one row per task
  json  the stored snapshot
  xlsx  one sheet per list plus the workout plan

Examples:
  org export > tasks.csv
  org export --format xlsx --out organizer.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(a *App) Command { return NewExportCommand(a, opts) })
		},
	}
	cmd.Flags().StringVarP(&opts.Format, "format", "f", opts.Format, fmt.Sprintf("Output format %v", export.Formats))
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write to this file instead of standard output")
	return cmd
}
