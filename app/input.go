package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nonsonwune/course_generator/models"
)

// ErrMissingInput is returned when a required course field is absent or blank.
var ErrMissingInput = errors.New("missing required input")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidateInput reports every missing course field in a single ErrMissingInput error.
func ValidateInput(in models.CourseInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	seen := make(map[string]bool)
	for _, fe := range verrs {
		if seen[fe.Field()] {
			continue
		}
		seen[fe.Field()] = true
		fields = append(fields, fe.Field())
	}
	return fmt.Errorf("%w: %s", ErrMissingInput, strings.Join(fields, ", "))
}

// Prompter asks the user for course fields that were not supplied up front
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *Prompter) ask(label string) string {
	fmt.Fprint(p.out, label)
	if p.scanner.Scan() {
		return p.scanner.Text()
	}
	return ""
}

// CollectInput fills the course input from the preset values first, prompting
// only for fields that are still empty. A nil prompter disables prompting.
func CollectInput(preset models.CourseInput, p *Prompter) models.CourseInput {
	in := preset
	if p == nil {
		return in
	}

	if strings.TrimSpace(in.Description) == "" {
		in.Description = p.ask("Enter the course description: ")
	}
	if strings.TrimSpace(in.Subject) == "" {
		in.Subject = p.ask("Enter the course subject: ")
	}
	if strings.TrimSpace(in.Level) == "" {
		in.Level = p.ask("Enter the course level (Beginner/Intermediate/Advanced): ")
	}
	return in
}
