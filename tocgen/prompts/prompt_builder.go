package prompts

import (
	"fmt"
)

// BuildTableOfContentsPrompt creates the user message asking for a course table of contents.
// Values are substituted verbatim.
func BuildTableOfContentsPrompt(description, subject, level string) string {
	return fmt.Sprintf(`Create a table of contents for a course with the following details:
Description: %s
Subject: %s
Level: %s`, description, subject, level)
}
