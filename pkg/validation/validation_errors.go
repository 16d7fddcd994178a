package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"UserID":            "User",
	"WorkerID":          "Worker",
	"ContractorID":      "Contractor",
	"SenderID":          "Sender",
	"ReceiverID":        "Receiver",
	"Name":              "Name",
	"Email":             "Email",
	"Phone":             "Phone number",
	"Bio":               "Bio",
	"ProfilePhoto":      "Profile photo",
	"Skills":            "Skills",
	"Certifications":    "Certifications",
	"HourlyRate":        "Hourly rate",
	"Experience":        "Years of experience",
	"CompanyName":       "Company name",
	"YearsInBusiness":   "Years in business",
	"Website":           "Website",
	"CoverNote":         "Cover note",
	"ProposedRate":      "Proposed rate",
	"AvailableFrom":     "Available from",
	"Status":            "Status",
	"Progress":          "Progress",
	"Deadline":          "Deadline",
	"Content":           "Message",
	"SkillsRequired":    "Required skills",
	"RequiredWorkers":   "Required workers",
	"InsuranceProvider": "Insurance provider",
	"LicenseNumber":     "License number",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Message joins formatted validation errors into one line.
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.StructField())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(param), ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, digits, spaces and . ' - / & ( ) ,", label)
	case "valid_phone":
		return fmt.Sprintf("%s must be 7-15 digits, optionally starting with +", label)
	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji or symbols", label)
	case "skill_list":
		return fmt.Sprintf("%s entries must be non-empty text up to %d characters", label, maxSkillLength)
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", label, getFieldLabel(param))
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
