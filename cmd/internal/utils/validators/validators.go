package validators

import (
	"reflect"
	"stickynotes/cmd/internal/domain/entity"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// New returns a validator with every custom tag used by the request
// contracts already registered.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	Register(validate)
	return validate
}

func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("notblank", NotBlank)
	_ = validate.RegisterValidation("category", IsCategory)
	_ = validate.RegisterValidation("priority", IsPriority)

	// Report JSON names ("search_query"), not Go field names, in errors.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

// NotBlank rejects strings made only of whitespace. Pointers are expected to
// be dereferenced already (use it after omitnil).
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		log.Warnf("validator 'notblank' applied to non-string type: %s", field.Kind().String())
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

func IsCategory(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return entity.Category(field.String()).IsValid()
}

func IsPriority(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return entity.Priority(field.String()).IsValid()
}
