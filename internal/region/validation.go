package region

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"paralympics-api/pkg/model"
)

// Field names as they appear in the JSON schema
const (
	FieldNOC    = "NOC"
	FieldRegion = "region"
	FieldNotes  = "notes"
)

// Rules applied to each schema field
const (
	nocRules    = "required,len=3,alpha,uppercase"
	regionRules = "required,max=255"
	notesRules  = "max=2000"
)

var validate = validator.New()

// ValidationError lists the offending fields of a request body
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	if message == "" {
		return
	}
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// ValidateCreate checks a create request and returns the region to insert.
// Omitted or null notes become the empty string.
func ValidateCreate(req model.RegionCreateRequest) (model.Region, error) {
	verr := &ValidationError{}
	verr.add(FieldNOC, validateNOC(req.NOC))
	verr.add(FieldRegion, validateRegionName(req.Region))
	verr.add(FieldNotes, validateNotes(req.Notes))
	if err := verr.orNil(); err != nil {
		return model.Region{}, err
	}

	region := model.Region{
		NOC:    *req.NOC,
		Region: strings.TrimSpace(*req.Region),
	}
	if req.Notes != nil {
		region.Notes = *req.Notes
	}
	return region, nil
}

// ValidateUpdate checks the fields present in a partial update.
// Absent fields are left alone, but a supplied region must not be blank.
func ValidateUpdate(req model.RegionUpdateRequest) error {
	verr := &ValidationError{}
	if req.Region != nil {
		verr.add(FieldRegion, validateRegionName(req.Region))
	}
	verr.add(FieldNotes, validateNotes(req.Notes))
	return verr.orNil()
}

func validateNOC(noc *string) string {
	if noc == nil {
		return "missing data for required field"
	}
	return checkField(*noc, nocRules)
}

func validateRegionName(name *string) string {
	if name == nil {
		return "missing data for required field"
	}
	return checkField(strings.TrimSpace(*name), regionRules)
}

func validateNotes(notes *string) string {
	if notes == nil {
		return ""
	}
	return checkField(*notes, notesRules)
}

// checkField runs the validator rules against one value and turns the
// first failure into a message for the client
func checkField(value, rules string) string {
	err := validate.Var(value, rules)
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return "must not be blank"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "alpha", "uppercase":
		return "must contain only uppercase letters"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
