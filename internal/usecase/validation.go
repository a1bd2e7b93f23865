package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// local@domain.tld
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Company) == "" {
		errs = append(errs, ValidationError{"company", "is required"})
	}

	if input.Stage != "" && !entity.Stage(input.Stage).Valid() {
		errs = append(errs, ValidationError{"stage", "must be NEW, CONTACTED, CONVERTED or LOST"})
	}

	if input.NextFollowUp != "" {
		if _, err := parseTimestamp(input.NextFollowUp); err != nil {
			errs = append(errs, ValidationError{"nextFollowUp", "must be a valid date/time"})
		}
	}

	return errs
}

func ValidateUpdateLeadInput(input UpdateLeadInput) []ValidationError {
	var errs []ValidationError

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		errs = append(errs, ValidationError{"name", "must not be empty"})
	}

	if input.Email != nil {
		if strings.TrimSpace(*input.Email) == "" {
			errs = append(errs, ValidationError{"email", "must not be empty"})
		} else if !isValidEmail(*input.Email) {
			errs = append(errs, ValidationError{"email", "is invalid"})
		}
	}

	if input.Company != nil && strings.TrimSpace(*input.Company) == "" {
		errs = append(errs, ValidationError{"company", "must not be empty"})
	}

	if input.Stage != nil && !entity.Stage(*input.Stage).Valid() {
		errs = append(errs, ValidationError{"stage", "must be NEW, CONTACTED, CONVERTED or LOST"})
	}

	if input.NextFollowUp != nil && *input.NextFollowUp != "" {
		if _, err := parseTimestamp(*input.NextFollowUp); err != nil {
			errs = append(errs, ValidationError{"nextFollowUp", "must be a valid date/time"})
		}
	}

	return errs
}

func ValidateAddConversationInput(input AddConversationInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.LeadID) == "" {
		errs = append(errs, ValidationError{"leadId", "is required"})
	}

	if input.Type == "" {
		errs = append(errs, ValidationError{"type", "is required"})
	} else if !entity.ConversationType(input.Type).Valid() {
		errs = append(errs, ValidationError{"type", "must be email, call, linkedin, meeting or other"})
	}

	if strings.TrimSpace(input.Content) == "" {
		errs = append(errs, ValidationError{"content", "is required"})
	}

	if input.Reminder != "" {
		if _, err := parseTimestamp(input.Reminder); err != nil {
			errs = append(errs, ValidationError{"reminder", "must be a valid date/time"})
		}
	}

	return errs
}

func ValidateUpdateConversationInput(input UpdateConversationInput) []ValidationError {
	var errs []ValidationError

	if input.Type != nil && !entity.ConversationType(*input.Type).Valid() {
		errs = append(errs, ValidationError{"type", "must be email, call, linkedin, meeting or other"})
	}

	if input.Content != nil && strings.TrimSpace(*input.Content) == "" {
		errs = append(errs, ValidationError{"content", "must not be empty"})
	}

	if input.Reminder != nil && *input.Reminder != "" {
		if _, err := parseTimestamp(*input.Reminder); err != nil {
			errs = append(errs, ValidationError{"reminder", "must be a valid date/time"})
		}
	}

	return errs
}

// timestampLayouts covers the datetime-local and ISO strings the front end
// sends for reminders and follow-ups.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// validationFailed surfaces the first failing field, matching the API error
// contract.
func validationFailed(errs []ValidationError) error {
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: errs[0].Error(),
	}
}
