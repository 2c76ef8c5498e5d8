// Package validation checks request DTOs against their `validate` struct tags.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Error lists every failed field constraint
type Error struct {
	Fields []FieldError
}

// FieldError is one failed constraint
type FieldError struct {
	Field string
	Rule  string
	Param string
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		if f.Param != "" {
			parts[i] = fmt.Sprintf("%s: must satisfy %s=%s", f.Field, f.Rule, f.Param)
		} else {
			parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Rule)
		}
	}
	return strings.Join(parts, "; ")
}

// Struct validates v. It returns nil, *Error, or an error for unsupported input.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, len(verrs))}
	for i, fe := range verrs {
		out.Fields[i] = FieldError{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		}
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
