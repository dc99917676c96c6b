package models

import "time"

// Course represents a row of the courses table
type Course struct {
	ID              int64     `db:"id" json:"id"`
	Description     string    `db:"description" json:"description"`
	Subject         string    `db:"subject" json:"subject"`
	Level           string    `db:"level" json:"level"`
	TableOfContents string    `db:"table_of_contents" json:"table_of_contents"`
	Timestamp       time.Time `db:"timestamp" json:"timestamp"`
}

// CourseInput holds the caller supplied details a table of contents is generated from
type CourseInput struct {
	Description string `json:"description" validate:"required,notblank"`
	Subject     string `json:"subject" validate:"required,notblank"`
	Level       string `json:"level" validate:"required,notblank"`
}
