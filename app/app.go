package app

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"

	"github.com/nonsonwune/course_generator/models"
	"github.com/nonsonwune/course_generator/tocgen"
)

// Store is the write-only persistence used by App
type Store interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, course models.Course) (models.Course, error)
}

type App struct {
	generator tocgen.Generator
	store     Store
	out       io.Writer
	log       zerolog.Logger
}

func New(generator tocgen.Generator, store Store, out io.Writer, log zerolog.Logger) *App {
	return &App{generator: generator, store: store, out: out, log: log}
}

// Run validates the input, generates the table of contents, prints it and
// saves the course. The first error ends the run.
func (a *App) Run(ctx context.Context, in models.CourseInput) (models.Course, error) {
	if err := ValidateInput(in); err != nil {
		return models.Course{}, err
	}

	if err := a.store.EnsureSchema(ctx); err != nil {
		return models.Course{}, fmt.Errorf("prepare database: %w", err)
	}

	color.New(color.FgCyan).Fprintln(a.out, "\nGenerating the table of contents...")
	a.log.Debug().Str("subject", in.Subject).Str("level", in.Level).Msg("requesting table of contents")

	toc, err := a.generator.Generate(ctx, in.Description, in.Subject, in.Level)
	if err != nil {
		return models.Course{}, fmt.Errorf("generate table of contents: %w", err)
	}

	color.New(color.FgYellow).Fprintln(a.out, "\nTable of Contents:")
	fmt.Fprintln(a.out, toc)

	saved, err := a.store.Insert(ctx, models.Course{
		Description:     in.Description,
		Subject:         in.Subject,
		Level:           in.Level,
		TableOfContents: toc,
	})
	if err != nil {
		return models.Course{}, fmt.Errorf("save course: %w", err)
	}
	a.log.Info().Int64("id", saved.ID).Msg("course saved")

	a.displaySaved(saved)
	color.New(color.FgGreen).Fprintln(a.out, "\nCourse details saved to the database!")
	return saved, nil
}

func (a *App) displaySaved(c models.Course) {
	fmt.Fprintln(a.out)
	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"ID", "Subject", "Level", "Saved At"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.Append([]string{
		strconv.FormatInt(c.ID, 10),
		c.Subject,
		c.Level,
		c.Timestamp.Format("2006-01-02 15:04:05"),
	})
	table.Render()
}
