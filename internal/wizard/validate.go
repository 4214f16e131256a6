package wizard

import (
	"regexp"
	"strings"
)

// emailPattern is a deliberately permissive heuristic: something, an "@",
// something, a dot, something. Full RFC validation is not the goal.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

var nonDigits = regexp.MustCompile(`\D`)

// Validate checks the contact details field by field. Every rule runs
// independently, so a single call reports all failing fields at once.
// An empty result means the details are acceptable.
func Validate(d ContactDetails) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required"
	}

	if strings.TrimSpace(d.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(d.Email) {
		errs["email"] = "Email is invalid"
	}

	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if len(nonDigits.ReplaceAllString(d.Phone, "")) != 10 {
		errs["phone"] = "Phone number must be 10 digits"
	}

	// Notes are always accepted, including empty.

	return errs
}
