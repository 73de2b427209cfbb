package config

import (
	"fmt"

	"github.com/maksimkurb/cf-ip-updater/src/internal/render"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
		return validationErrors
	}

	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
	}

	if c.Reload != nil && c.Reload.Enabled && c.Reload.Command == "" {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "reload.command",
			Message:   "reload requested but reload command is not set",
		})
	}

	if len(c.Targets) == 0 {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "target",
			Message:   "configuration must contain at least one target",
		})
	} else {
		validationErrors = append(validationErrors, c.validateTargets()...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateTargets() ValidationErrors {
	var validationErrors ValidationErrors

	seenPaths := make(map[string]bool)

	for i, target := range c.Targets {
		itemName := target.Path
		if itemName == "" {
			itemName = fmt.Sprintf("target[%d]", i)
		}

		if err := validate.Struct(target); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("target.%d", i), itemName)...)
		}

		if target.Path != "" {
			if seenPaths[target.Path] {
				validationErrors = append(validationErrors, ValidationError{
					ItemName:  itemName,
					FieldPath: "path",
					Message:   fmt.Sprintf("duplicate target path: %s", target.Path),
				})
			}
			seenPaths[target.Path] = true
		}

		if target.Raw && render.Mode(target.Mode) == render.ModePortRules {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "mode",
				Message:   "raw targets can only hold the plain IP list",
			})
		}

		if len(target.Ports) > 1 {
			for _, port := range target.Ports {
				if port == render.DisabledPort {
					validationErrors = append(validationErrors, ValidationError{
						ItemName:  itemName,
						FieldPath: "ports",
						Message:   "port 0 disables port rules and cannot be combined with other ports",
					})
					break
				}
			}
		}
	}

	return validationErrors
}
