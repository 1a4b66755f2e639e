// Package names validates the display names of houses and campaigns.
package names

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Tag is the struct validation tag checked by Check.
const Tag = "clubname"

const (
	MinLen = 4
	MaxLen = 32
)

var (
	ErrTooLong               = fmt.Errorf("name cannot be longer than %d bytes", MaxLen)
	ErrTooShort              = fmt.Errorf("name cannot be shorter than %d bytes", MinLen)
	ErrStartsWithPunctuation = errors.New("name starts with punctuation")
	ErrStartsWithWhitespace  = errors.New("name starts with whitespace")
	ErrEndsWithWhitespace    = errors.New("name ends with whitespace")
	ErrConsecutiveWhitespace = errors.New("consecutive whitespace found")
	ErrInvalidCharacter      = errors.New("invalid character in name")
)

const (
	allowedSymbols   = `.,!?:;()[]{}'"-_@#$%&*+=<>/\|~^`
	asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Check returns the first rule s violates. The empty string is accepted;
// callers that need a name mark the field required.
func Check(s string) error {
	if s == "" {
		return nil
	}
	if len(s) > MaxLen {
		return ErrTooLong
	}
	if len(s) < MinLen {
		return ErrTooShort
	}
	runes := []rune(s)
	if strings.ContainsRune(asciiPunctuation, runes[0]) {
		return ErrStartsWithPunctuation
	}
	if runes[0] == ' ' {
		return ErrStartsWithWhitespace
	}
	if runes[len(runes)-1] == ' ' {
		return ErrEndsWithWhitespace
	}

	prevSpace := false
	for _, r := range runes {
		if r == ' ' {
			if prevSpace {
				return ErrConsecutiveWhitespace
			}
			prevSpace = true
			continue
		}
		prevSpace = false
		if r > 0xFFFF || unicode.IsControl(r) || !allowed(r) {
			return ErrInvalidCharacter
		}
	}
	return nil
}

func allowed(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || strings.ContainsRune(allowedSymbols, r)
}

// Register installs the name rule on v under Tag.
func Register(v *validator.Validate) error {
	return v.RegisterValidation(Tag, func(fl validator.FieldLevel) bool {
		return Check(fl.Field().String()) == nil
	})
}

// NewValidator returns a validator with the name rule installed.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := Register(v); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", Tag, err))
	}
	return v
}
