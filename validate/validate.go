// Package validate holds the declarative field schemas applied by the proxy
// routes before anything is forwarded upstream. Each entity declares an
// ordered rule list; violations produce the structured {message, field}
// error shape the dashboard forms rely on.
package validate

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

type Kind int

const (
	String Kind = iota
	// Number accepts a JSON number or a numeric string and requires it to
	// be >= 0. Forms post goal amounts as strings.
	Number
	URL
	DateYMD
	TimeHM
)

type Rule struct {
	Field    string
	Label    string
	Required bool
	Kind     Kind
}

type Schema []Rule

// FieldError is the only structured error shape in the system.
type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

func (e *FieldError) Error() string { return e.Message }

// Create applies every rule in order and reports the first violation.
func (s Schema) Create(body map[string]any) *FieldError {
	for _, r := range s {
		if err := r.check(body); err != nil {
			return err
		}
	}
	return nil
}

// Update validates only the fields present in the body; partial payloads
// are the contract for PATCH.
func (s Schema) Update(body map[string]any) *FieldError {
	for _, r := range s {
		if _, ok := body[r.Field]; !ok {
			continue
		}
		if err := r.check(body); err != nil {
			return err
		}
	}
	return nil
}

func (r Rule) check(body map[string]any) *FieldError {
	v, present := body[r.Field]

	if r.Kind == Number {
		if !present && !r.Required {
			return nil
		}
		n, ok := NumberValue(v)
		if !ok || n < 0 {
			return &FieldError{
				Message: fmt.Sprintf("%s is required and must be a number >= 0", r.Label),
				Field:   r.Field,
			}
		}
		return nil
	}

	s, isString := v.(string)
	if !present || !isString || s == "" {
		// Optional fields may be absent or blank, but a present
		// non-string value is still a shape violation.
		if !r.Required && (!present || (isString && s == "")) {
			return nil
		}
		return &FieldError{
			Message: fmt.Sprintf("%s is required and must be a string", r.Label),
			Field:   r.Field,
		}
	}

	switch r.Kind {
	case URL:
		if !ValidURL(s) {
			return &FieldError{
				Message: fmt.Sprintf("%s must be a valid URL address", r.Field),
				Field:   r.Field,
			}
		}
	case DateYMD:
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return &FieldError{
				Message: fmt.Sprintf("%s must be a valid date in YYYY-MM-DD format", r.Field),
				Field:   r.Field,
			}
		}
	case TimeHM:
		if _, err := time.Parse("15:04", s); err != nil {
			return &FieldError{
				Message: fmt.Sprintf("%s must be a valid time in HH:MM format", r.Field),
				Field:   r.Field,
			}
		}
	}
	return nil
}

// NumberValue extracts a float from a JSON number or numeric string.
func NumberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func ValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
