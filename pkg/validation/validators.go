package validation

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"go-marketplace-backend/pkg/optional"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	// E164-like phone: optional +, digits 7-15 length, separators stripped first
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

const maxSkillLength = 100

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("skill_list", SkillList)

	// PATCH payloads: validate the carried value, skip absent/null fields
	v.RegisterCustomTypeFunc(optionalValue[string], optional.Value[string]{})
	v.RegisterCustomTypeFunc(optionalValue[int], optional.Value[int]{})
	v.RegisterCustomTypeFunc(optionalValue[float64], optional.Value[float64]{})
	v.RegisterCustomTypeFunc(optionalValue[[]string], optional.Value[[]string]{})
}

func optionalValue[T any](field reflect.Value) interface{} {
	if o, ok := field.Interface().(optional.Value[T]); ok && o.Present() {
		return o.Value
	}
	return nil
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	stripped := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(val)
	return phoneRegex.MatchString(stripped)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	return noEmoji(fl.Field().String())
}

func noEmoji(val string) bool {
	for _, r := range val {
		// Supplementary planes are mostly emoji/symbols
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// SkillList validates worker skills and certifications: no blank entries,
// bounded length, no emoji.
func SkillList(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < field.Len(); i++ {
		item := field.Index(i)
		if item.Kind() != reflect.String {
			return false
		}
		s := strings.TrimSpace(item.String())
		if s == "" || len(s) > maxSkillLength || !noEmoji(s) {
			return false
		}
	}
	return true
}
