package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/cf-ip-updater/src/internal/hashing"
	"github.com/maksimkurb/cf-ip-updater/src/internal/render"
	"github.com/maksimkurb/cf-ip-updater/src/internal/utils"
)

var (
	markerRegexp = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", e.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "url":
		return "must be a valid URL"
	case "render_mode":
		return fmt.Sprintf("must be '%s' or '%s'", render.ModePlain, render.ModePortRules)
	case "fingerprint":
		return fmt.Sprintf("must be '%s' or '%s'", hashing.ConventionLines, hashing.ConventionConcat)
	case "port":
		return "must be a port number (1-65535) or 0 to disable port rules"
	case "marker":
		return "must consist only of letters, digits, '.', '_' and '-'"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // For targets: the target path
	FieldPath string // Dot-notation field path (e.g., "general.sources", "target.0.mode")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("port", validatePort); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("marker", validateMarker); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("render_mode", validateRenderMode); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("fingerprint", validateFingerprint); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: port number, or "0" meaning no port filtering
func validatePort(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == render.DisabledPort || utils.IsValidPort(value)
}

// Custom validator: block marker, embedded verbatim in "### <marker> BLOCK START ###"
func validateMarker(fl validator.FieldLevel) bool {
	return markerRegexp.MatchString(fl.Field().String())
}

func validateRenderMode(fl validator.FieldLevel) bool {
	switch render.Mode(fl.Field().String()) {
	case render.ModePlain, render.ModePortRules:
		return true
	}
	return false
}

func validateFingerprint(fl validator.FieldLevel) bool {
	switch hashing.Convention(fl.Field().String()) {
	case hashing.ConventionLines, hashing.ConventionConcat:
		return true
	}
	return false
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	if validatorErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
