package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nonsonwune/course_generator/migrations"
	"github.com/nonsonwune/course_generator/models"
)

// CourseStore appends generated courses to the courses table. It keeps no
// open connection; every operation opens the database and closes it again.
type CourseStore struct {
	driver string
	dsn    string
	now    func() time.Time
}

// NewCourseStore creates a store for the given database/sql driver name
// ("sqlite3" or "postgres") and data source.
func NewCourseStore(driver, dsn string) (*CourseStore, error) {
	switch driver {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	if dsn == "" {
		return nil, fmt.Errorf("empty data source for driver %s", driver)
	}
	return &CourseStore{driver: driver, dsn: dsn, now: time.Now}, nil
}

func (s *CourseStore) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(s.driver, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the courses table when it is missing.
func (s *CourseStore) EnsureSchema(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return migrations.InitSchema(ctx, db, s.driver)
}

// Insert stores a new course row. The id and timestamp of the given course
// are ignored and assigned here; the stored row is returned.
func (s *CourseStore) Insert(ctx context.Context, course models.Course) (models.Course, error) {
	db, err := s.open(ctx)
	if err != nil {
		return models.Course{}, err
	}
	defer db.Close()

	course.Timestamp = s.now()

	switch s.driver {
	case "postgres":
		query := `
			INSERT INTO courses (description, subject, level, table_of_contents, timestamp)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`
		err = db.QueryRowContext(ctx, query,
			course.Description, course.Subject, course.Level, course.TableOfContents, course.Timestamp,
		).Scan(&course.ID)
		if err != nil {
			return models.Course{}, fmt.Errorf("insert course: %w", err)
		}
	default:
		query := `
			INSERT INTO courses (description, subject, level, table_of_contents, timestamp)
			VALUES (?, ?, ?, ?, ?)`
		res, err := db.ExecContext(ctx, query,
			course.Description, course.Subject, course.Level, course.TableOfContents, course.Timestamp,
		)
		if err != nil {
			return models.Course{}, fmt.Errorf("insert course: %w", err)
		}
		if course.ID, err = res.LastInsertId(); err != nil {
			return models.Course{}, fmt.Errorf("read course id: %w", err)
		}
	}

	return course, nil
}
