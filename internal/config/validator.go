package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/anka/patrimony-planner/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// structValidator applies the validate tags of the domain records
type structValidator struct {
	v *validator.Validate
}

func newStructValidator() *structValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report yaml field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Range tags on decimals compare their float value
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	return &structValidator{v: v}
}

// Struct validates s and reports the first failing field as a configuration error
func (sv *structValidator) Struct(s any) error {
	err := sv.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &domain.Error{Kind: domain.KindConfiguration, Message: "invalid portfolio", Err: err}
	}

	fe := verrs[0]
	return domain.ConfigurationError("%s: %s", fieldPath(fe.Namespace()), describe(fe))
}

// fieldPath drops the root type from a validator namespace
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %v", fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}
