package app

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/nonsonwune/course_generator/models"
	"github.com/nonsonwune/course_generator/store"
)

func init() {
	color.NoColor = true
}

type fakeGenerator struct {
	calls int
	got   [3]string
	toc   string
	err   error
}

func (f *fakeGenerator) Generate(_ context.Context, description, subject, level string) (string, error) {
	f.calls++
	f.got = [3]string{description, subject, level}
	return f.toc, f.err
}

type fakeStore struct {
	schemaCalls int
	inserted    []models.Course
	schemaErr   error
	insertErr   error
}

func (f *fakeStore) EnsureSchema(context.Context) error {
	f.schemaCalls++
	return f.schemaErr
}

func (f *fakeStore) Insert(_ context.Context, c models.Course) (models.Course, error) {
	if f.insertErr != nil {
		return models.Course{}, f.insertErr
	}
	c.ID = int64(len(f.inserted) + 1)
	c.Timestamp = time.Now()
	f.inserted = append(f.inserted, c)
	return c, nil
}

var pythonCourse = models.CourseInput{
	Description: "Intro to Python programming",
	Subject:     "Python",
	Level:       "Beginner",
}

func TestRunEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course_generator.db")
	s, err := store.NewCourseStore("sqlite3", path)
	if err != nil {
		t.Fatalf("NewCourseStore returned error: %v", err)
	}
	gen := &fakeGenerator{toc: "1. Variables\n2. Loops\n3. Functions"}
	var out bytes.Buffer

	before := time.Now().Round(0)
	saved, err := New(gen, s, &out, zerolog.Nop()).Run(context.Background(), pythonCourse)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if gen.got != [3]string{"Intro to Python programming", "Python", "Beginner"} {
		t.Errorf("generator args = %v", gen.got)
	}
	if saved.ID != 1 {
		t.Errorf("ID = %d, want 1", saved.ID)
	}
	if saved.Description != pythonCourse.Description || saved.Subject != "Python" || saved.Level != "Beginner" ||
		saved.TableOfContents != "1. Variables\n2. Loops\n3. Functions" {
		t.Errorf("saved = %+v", saved)
	}
	if saved.Timestamp.Before(before) {
		t.Errorf("Timestamp %v before call time %v", saved.Timestamp, before)
	}

	printed := out.String()
	for _, want := range []string{
		"Generating the table of contents...",
		"Table of Contents:",
		"1. Variables\n2. Loops\n3. Functions",
		"Course details saved to the database!",
	} {
		if !strings.Contains(printed, want) {
			t.Errorf("output missing %q:\n%s", want, printed)
		}
	}
}

func TestRunMissingInputSkipsGenerator(t *testing.T) {
	testCases := []struct {
		name  string
		input models.CourseInput
		field string
	}{
		{name: "no description", input: models.CourseInput{Subject: "Python", Level: "Beginner"}, field: "description"},
		{name: "no subject", input: models.CourseInput{Description: "d", Level: "Beginner"}, field: "subject"},
		{name: "no level", input: models.CourseInput{Description: "d", Subject: "Python"}, field: "level"},
		{name: "blank level", input: models.CourseInput{Description: "d", Subject: "Python", Level: "  \t"}, field: "level"},
		{name: "nothing", input: models.CourseInput{}, field: "description, subject, level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &fakeGenerator{toc: "unused"}
			st := &fakeStore{}

			_, err := New(gen, st, &bytes.Buffer{}, zerolog.Nop()).Run(context.Background(), tc.input)
			if !errors.Is(err, ErrMissingInput) {
				t.Fatalf("Run() error = %v, want ErrMissingInput", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q does not name %q", err, tc.field)
			}
			if gen.calls != 0 {
				t.Errorf("generator calls = %d, want 0", gen.calls)
			}
			if st.schemaCalls != 0 || len(st.inserted) != 0 {
				t.Errorf("store touched: schema=%d inserted=%d", st.schemaCalls, len(st.inserted))
			}
		})
	}
}

func TestRunGeneratorErrorIsFatal(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("401 unauthorized")}
	st := &fakeStore{}

	_, err := New(gen, st, &bytes.Buffer{}, zerolog.Nop()).Run(context.Background(), pythonCourse)
	if err == nil || !strings.Contains(err.Error(), "generate table of contents") {
		t.Fatalf("Run() error = %v", err)
	}
	if len(st.inserted) != 0 {
		t.Errorf("inserted %d rows after generator failure", len(st.inserted))
	}
}

func TestRunStoreErrors(t *testing.T) {
	boom := errors.New("disk I/O error")

	t.Run("schema", func(t *testing.T) {
		gen := &fakeGenerator{toc: "1. Intro"}
		_, err := New(gen, &fakeStore{schemaErr: boom}, &bytes.Buffer{}, zerolog.Nop()).Run(context.Background(), pythonCourse)
		if !errors.Is(err, boom) {
			t.Fatalf("Run() error = %v, want %v", err, boom)
		}
		if gen.calls != 0 {
			t.Errorf("generator calls = %d, want 0", gen.calls)
		}
	})

	t.Run("insert", func(t *testing.T) {
		gen := &fakeGenerator{toc: "1. Intro"}
		var out bytes.Buffer
		_, err := New(gen, &fakeStore{insertErr: boom}, &out, zerolog.Nop()).Run(context.Background(), pythonCourse)
		if !errors.Is(err, boom) || !strings.Contains(err.Error(), "save course") {
			t.Fatalf("Run() error = %v", err)
		}
		if strings.Contains(out.String(), "saved to the database") {
			t.Error("confirmation printed after failed insert")
		}
	})
}

func TestRunPrintsOutputVerbatim(t *testing.T) {
	gen := &fakeGenerator{toc: "1. Intro\n2. Basics"}
	var out bytes.Buffer

	saved, err := New(gen, &fakeStore{}, &out, zerolog.Nop()).Run(context.Background(), pythonCourse)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if saved.TableOfContents != "1. Intro\n2. Basics" {
		t.Errorf("TableOfContents = %q", saved.TableOfContents)
	}
	if !strings.Contains(out.String(), "Table of Contents:\n1. Intro\n2. Basics\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
