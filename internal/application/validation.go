package application

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// MaxFieldLength caps recipe names and individual ingredient names.
const MaxFieldLength = 50

// RecipeInput is the user-supplied part of a recipe, before an ID and a
// difficulty are attached.
type RecipeInput struct {
	Name        string   `field:"name" validate:"required,max=50,recipename"`
	CookingTime int      `field:"cooking_time" validate:"gt=0"`
	Ingredients []string `field:"ingredients" validate:"required,min=1,dive,required,max=50,ingredient"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the recipe tags registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := f.Tag.Get("field"); name != "" {
				return name
			}
			return f.Name
		})
		// Registration only fails for an empty tag or a nil func.
		_ = validate.RegisterValidation("recipename", func(fl validator.FieldLevel) bool {
			return IsRecipeName(fl.Field().String())
		})
		_ = validate.RegisterValidation("ingredient", func(fl validator.FieldLevel) bool {
			return IsIngredientName(fl.Field().String())
		})
	})
	return validate
}

// IsRecipeName reports whether s holds only letters, digits and spaces, with
// at least one non-space character.
func IsRecipeName(s string) bool {
	return onlyRunes(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

// IsIngredientName reports whether s holds only letters and spaces, with at
// least one letter.
func IsIngredientName(s string) bool {
	return onlyRunes(s, unicode.IsLetter)
}

func onlyRunes(s string, allowed func(rune) bool) bool {
	found := false
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if !allowed(r) {
			return false
		}
		found = true
	}
	return found
}

// ValidateRecipe checks a recipe input against the field rules and returns
// the first failure as a *ValidationError.
func ValidateRecipe(in RecipeInput) error {
	err := Validator().Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "recipe", Message: err.Error()}
	}
	return translate(fieldErrs[0])
}

// translate converts a validator.FieldError into a ValidationError with a
// message fit for a prompt.
func translate(fe validator.FieldError) *ValidationError {
	field := fe.Field()
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	display := formatFieldName(field)

	var msg string
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Slice {
			msg = "at least one ingredient is required"
		} else {
			msg = fmt.Sprintf("%s is required", display)
		}
	case "min":
		msg = "at least one ingredient is required"
	case "max":
		msg = fmt.Sprintf("%s cannot exceed %s characters", display, fe.Param())
	case "gt":
		msg = fmt.Sprintf("%s must be a positive number", display)
	case "recipename":
		msg = fmt.Sprintf("%s may contain only letters, digits and spaces", display)
	case "ingredient":
		msg = fmt.Sprintf("ingredient %q may contain only letters and spaces", fe.Value())
	default:
		msg = fmt.Sprintf("%s is invalid", display)
	}

	return &ValidationError{Field: field, Message: msg}
}

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// ValidateID checks that a recipe ID could have been assigned by a store.
func ValidateID(id int64) error {
	if id <= 0 {
		return &ValidationError{
			Field:   "id",
			Message: fmt.Sprintf("invalid recipe ID: %d", id),
		}
	}
	return nil
}

// formatFieldName converts field keys to words for error messages
// (e.g., "cooking_time" -> "cooking time")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"name":         "recipe name",
		"cooking_time": "cooking time",
		"ingredients":  "ingredients",
		"id":           "recipe ID",
		"selection":    "selection",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
