package utils

import (
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	RegisterCustomValidators(Validate)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterCustomValidators(v)
	}
}

func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterValidation("strongpassword", StrongPasswordRule)
	v.RegisterValidation("personname", PersonNameRule)
}

func StrongPasswordRule(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String())
}

func PersonNameRule(fl validator.FieldLevel) bool {
	return ValidateName(fl.Field().String())
}

// ValidatePassword enforces the registration password policy:
// at least 12 characters with at least one lowercase letter, one
// uppercase letter, one digit and one symbol.
func ValidatePassword(password string) bool {
	if len(password) < 12 {
		return false
	}

	hasLower := false
	hasUpper := false
	hasNumber := false
	hasSpecial := false

	for _, char := range password {
		switch {
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	return hasLower && hasUpper && hasNumber && hasSpecial
}

// ValidateName allows letters and whitespace only, and rejects
// whitespace-only values.
func ValidateName(name string) bool {
	if name == "" {
		return false
	}

	hasLetter := false
	for _, char := range name {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsSpace(char):
		default:
			return false
		}
	}

	return hasLetter
}
