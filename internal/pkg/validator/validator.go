// Package validator wires go-playground struct tags into echo and into
// config loading, reporting failures as InvalidArgument errors.
package validator

import (
	"sort"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

var (
	once     sync.Once
	validate *playground.Validate
)

func instance() *playground.Validate {
	once.Do(func() {
		validate = playground.New(playground.WithRequiredStructEnabled())
	})
	return validate
}

// Struct validates v against its `validate` tags
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "validation failed")
	}

	vb := errors.NewValidationBuilder()
	names := make([]string, 0, len(fieldErrs))
	byName := make(map[string]playground.FieldError, len(fieldErrs))
	for _, fe := range fieldErrs {
		ns := trimRoot(fe.Namespace())
		names = append(names, ns)
		byName[ns] = fe
	}
	sort.Strings(names)
	for _, ns := range names {
		fe := byName[ns]
		if fe.Param() != "" {
			vb.Fieldf(ns, "failed %s=%s", fe.Tag(), fe.Param())
			continue
		}
		vb.Fieldf(ns, "failed %s", fe.Tag())
	}
	return vb.Build()
}

// trimRoot drops the top-level type name from a field namespace
func trimRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// EchoValidator adapts Struct to echo.Validator
type EchoValidator struct{}

// Validate implements echo.Validator
func (EchoValidator) Validate(i any) error {
	return Struct(i)
}

// New returns a validator for echo.Echo.Validator
func New() echo.Validator {
	return EchoValidator{}
}
