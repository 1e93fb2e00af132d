// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"reflect"
	"regexp"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
)

// OTPCodeLength - длина одноразового кода входа.
const OTPCodeLength = 6

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	otpCodeRegex = regexp.MustCompile(`^\d{6}$`)
	permRegex    = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// EchoValidator - обертка для echo.Validator.
type EchoValidator struct {
	validator *validator.Validate
}

func (cv *EchoValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New собирает валидатор со всеми нашими правилами.
func New() (*EchoValidator, error) {
	v := validator.New()
	registerNullTypes(v)
	if err := RegisterCustomValidations(v); err != nil {
		return nil, err
	}
	return &EchoValidator{validator: v}, nil
}

// RegisterCustomValidations регистрирует кастомные теги.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}
	if err := v.RegisterValidation("otp_code", isOTPCode); err != nil {
		return err
	}
	if err := v.RegisterValidation("permission_name", isPermissionName); err != nil {
		return err
	}
	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func isOTPCode(fl validator.FieldLevel) bool {
	return otpCodeRegex.MatchString(fl.Field().String())
}

// isPermissionName - имена прав вида can_view_users.
func isPermissionName(fl validator.FieldLevel) bool {
	return permRegex.MatchString(fl.Field().String())
}

// registerNullTypes учит валидатор смотреть внутрь null.String / null.Time.
func registerNullTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.String); ok && val.Valid {
			return val.String
		}
		return nil
	}, null.String{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Time); ok && val.Valid {
			return val.Time
		}
		return nil
	}, null.Time{})
}
