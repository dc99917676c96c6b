package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nonsonwune/course_generator/app"
	"github.com/nonsonwune/course_generator/config"
	"github.com/nonsonwune/course_generator/logger"
	"github.com/nonsonwune/course_generator/models"
	"github.com/nonsonwune/course_generator/store"
	"github.com/nonsonwune/course_generator/tocgen"
)

type options struct {
	description string
	subject     string
	level       string
	provider    string
	model       string
	dbDriver    string
	dbPath      string
	noInput     bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "course-generator",
		Short:         "Generate a course table of contents with an LLM and save it",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.description, "description", "", "course description (env COURSE_DESCRIPTION)")
	f.StringVar(&opts.subject, "subject", "", "course subject (env COURSE_SUBJECT)")
	f.StringVar(&opts.level, "level", "", "course level, e.g. Beginner/Intermediate/Advanced (env COURSE_LEVEL)")
	f.StringVar(&opts.provider, "provider", "", "completion provider: openai or gemini (env AI_PROVIDER)")
	f.StringVar(&opts.model, "model", "", "model identifier (env AI_MODEL)")
	f.StringVar(&opts.dbDriver, "db-driver", "", "database driver: sqlite3 or postgres (env DB_DRIVER)")
	f.StringVar(&opts.dbPath, "db", "", "sqlite database file (env DB_PATH)")
	f.BoolVar(&opts.noInput, "no-input", false, "never prompt for missing course details")

	return cmd
}

func run(ctx context.Context, opts options) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	applyFlags(cfg, opts)

	log := logger.New(cfg.Env, cfg.LogLevel)
	if envErr != nil {
		log.Debug().Msg("no .env file found")
	}

	var prompter *app.Prompter
	if !opts.noInput && isatty.IsTerminal(os.Stdin.Fd()) {
		prompter = app.NewPrompter(os.Stdin, os.Stdout)
	}

	color.Cyan("Welcome to the Course Chapter Generator!")
	input := app.CollectInput(models.CourseInput{
		Description: cfg.CourseDescription,
		Subject:     cfg.CourseSubject,
		Level:       cfg.CourseLevel,
	}, prompter)
	if err := app.ValidateInput(input); err != nil {
		return err
	}

	dsn, err := cfg.DataSourceName()
	if err != nil {
		return err
	}
	courses, err := store.NewCourseStore(cfg.DBDriver, dsn)
	if err != nil {
		return err
	}

	gen, err := tocgen.NewGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	if closer, ok := gen.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	log.Debug().Str("provider", cfg.AIProvider).Str("db_driver", cfg.DBDriver).Msg("starting generation")

	_, err = app.New(gen, courses, os.Stdout, log).Run(ctx, input)
	return err
}

func applyFlags(cfg *config.Config, opts options) {
	overrides := []struct {
		flag string
		dst  *string
	}{
		{opts.description, &cfg.CourseDescription},
		{opts.subject, &cfg.CourseSubject},
		{opts.level, &cfg.CourseLevel},
		{opts.provider, &cfg.AIProvider},
		{opts.model, &cfg.AIModel},
		{opts.dbDriver, &cfg.DBDriver},
		{opts.dbPath, &cfg.DBPath},
	}
	for _, o := range overrides {
		if o.flag != "" {
			*o.dst = o.flag
		}
	}
}
