package provisioning

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ValidationError represents a launch option validation error or warning.
type ValidationError struct {
	Field    string // Option that failed validation
	Message  string // Human-readable error message
	Severity string // "error" or "warning"
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", ve.Severity, ve.Field, ve.Message)
}

// IsError returns true if this is an error (not a warning).
func (ve ValidationError) IsError() bool {
	return ve.Severity == "error"
}

// ValidationPhase implements the Phase interface for pre-flight validation.
type ValidationPhase struct{}

// NewValidationPhase creates a new validation phase.
func NewValidationPhase() *ValidationPhase {
	return &ValidationPhase{}
}

// Name implements the Phase interface.
func (vp *ValidationPhase) Name() string {
	return "validation"
}

// Provision implements the Phase interface.
func (vp *ValidationPhase) Provision(ctx *Context) error {
	var errs []string
	for _, ve := range Validate(ctx) {
		if ve.IsError() {
			errs = append(errs, ve.Error())
			continue
		}
		ctx.Observer.Event(Event{
			Type:     EventValidationWarning,
			Phase:    vp.Name(),
			Resource: ve.Field,
			Message:  ve.Message,
		})
	}

	if len(errs) > 0 {
		return fmt.Errorf("launch options are invalid:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Validate checks the context's options and dependencies and returns any
// errors or warnings.
func Validate(ctx *Context) []ValidationError {
	var errs []ValidationError
	opts := ctx.Options

	if opts == nil {
		return []ValidationError{{Field: "options", Message: "no launch options", Severity: "error"}}
	}
	if ctx.Cloud == nil {
		errs = append(errs, ValidationError{Field: "cloud", Message: "no cloud client configured", Severity: "error"})
	}
	if ctx.Catalog == nil {
		errs = append(errs, ValidationError{Field: "catalog", Message: "no instance catalog configured", Severity: "error"})
	}

	// --- Required options ---

	if opts.Image == "" {
		errs = append(errs, ValidationError{
			Field:    "image",
			Message:  "image name is required",
			Severity: "error",
		})
	}

	if opts.InstanceType == "" {
		errs = append(errs, ValidationError{
			Field:    "instance_type",
			Message:  "instance type is required (e.g., 'm4.large')",
			Severity: "error",
		})
	}

	// --- Values ---

	if opts.UserDataB64 != "" {
		if _, err := base64.StdEncoding.DecodeString(opts.UserDataB64); err != nil {
			errs = append(errs, ValidationError{
				Field:    "user_data_b64",
				Message:  fmt.Sprintf("user data is not valid base64: %v", err),
				Severity: "error",
			})
		}
	}

	if opts.RootVolumeSize != nil && *opts.RootVolumeSize == 0 {
		errs = append(errs, ValidationError{
			Field:    "root_volume_size",
			Message:  "root volume size must be greater than 0",
			Severity: "error",
		})
	}

	if opts.Price != nil {
		if *opts.Price <= 0 {
			errs = append(errs, ValidationError{
				Field:    "price",
				Message:  "price must be greater than 0",
				Severity: "error",
			})
		} else if !opts.Spot {
			errs = append(errs, ValidationError{
				Field:    "price",
				Message:  "price is ignored for on-demand launches",
				Severity: "warning",
			})
		}
	}

	// --- Recommendations ---

	if opts.Key == "" {
		errs = append(errs, ValidationError{
			Field:    "key",
			Message:  "no key pair configured, instances will not accept SSH keys",
			Severity: "warning",
		})
	}

	if opts.Subnet != "" && opts.Placement != "" {
		errs = append(errs, ValidationError{
			Field:    "placement",
			Message:  "placement is ignored when the subnet is found",
			Severity: "warning",
		})
	}

	return errs
}
