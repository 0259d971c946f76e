package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/gestionski/skistation/internal/pkg/helpers"
)

// Validation rule tags usable in `binding:` struct tags
const (
	TagPersonName = "personname"
	TagHireDate   = "hiredate"
)

// Validation rule patterns
var (
	// Calendar date, YYYY-MM-DD
	DatePattern = `^\d{4}-\d{2}-\d{2}$`

	// Name validation max length
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Date *regexp.Regexp
}{
	Date: regexp.MustCompile(DatePattern),
}

// StringValidation checks a single string value
type StringValidation struct {
	Value    string
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	if !v.Required && v.Value == "" {
		return true
	}

	if v.MaxLen > 0 && len([]rune(v.Value)) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// IsPersonName reports whether s has at least one non-space character
// and at most NameMaxLength characters
func IsPersonName(s string) bool {
	return strings.TrimSpace(s) != "" && NewStringValidation(s).WithMaxLength(NameMaxLength).Validate()
}

// IsHireDate reports whether s is a YYYY-MM-DD calendar date that is not after today
func IsHireDate(s string, today time.Time) bool {
	if !NewStringValidation(s).WithPattern(CompiledPatterns.Date).Validate() {
		return false
	}
	d, err := helpers.ParseDate(s)
	if err != nil {
		return false
	}
	return !d.After(helpers.TruncateToDate(today))
}

// RegisterRules adds the custom tags to v. now decides what "today" is for hire dates.
func RegisterRules(v *validator.Validate, now func() time.Time) error {
	if now == nil {
		now = time.Now
	}

	if err := v.RegisterValidation(TagPersonName, func(fl validator.FieldLevel) bool {
		return IsPersonName(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register %s rule: %w", TagPersonName, err)
	}

	if err := v.RegisterValidation(TagHireDate, func(fl validator.FieldLevel) bool {
		return IsHireDate(fl.Field().String(), now())
	}); err != nil {
		return fmt.Errorf("failed to register %s rule: %w", TagHireDate, err)
	}

	return nil
}

// RegisterWithGin installs the custom rules on gin's default binding validator
func RegisterWithGin(now func() time.Time) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return RegisterRules(v, now)
}
