package sanitize

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	roleNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{0,63}$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("color_value", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return color.IsHex(s) || tokens.LooksLikeReference(s)
		})

		_ = v.RegisterValidation("role_name", func(fl validator.FieldLevel) bool {
			return roleNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// validateDocument returns one error per failed rule.
func validateDocument(doc *theme.Document) []error {
	err := validatorInstance().Struct(doc)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []error{themeerrors.NewSanitizeError("theme", err.Error(), themeerrors.ErrInvalidInput)}
	}

	out := make([]error, 0, len(ves))
	for _, fe := range ves {
		field := wireFieldName(fe)
		out = append(out, themeerrors.NewSanitizeError(field, ruleMessage(fe), themeerrors.ErrInvalidInput))
	}
	return out
}

// wireFieldName turns "Document.colors[primary]" into "colors.primary".
func wireFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	return strings.ReplaceAll(ns, "]", "")
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "color_value":
		return fmt.Sprintf("%q is neither a 6-digit hex colour nor a token reference", fe.Value())
	case "role_name":
		return fmt.Sprintf("%q is not a valid colour role name", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
