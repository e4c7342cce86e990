package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// similarChars are visually ambiguous and can be excluded on request.
	similarChars = "il1Lo0O"

	MinLength = 4
	MaxLength = 50
)

var (
	ErrLengthTooShort   = errors.New("password length must be at least 4")
	ErrLengthTooLong    = errors.New("password length must be at most 50")
	ErrNoCharacterTypes = errors.New("at least one character type must be selected")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length         int
	Uppercase      bool
	Lowercase      bool
	Numbers        bool
	Symbols        bool
	ExcludeSimilar bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Generate creates a random password from the union of the selected character
// sets. Every position is drawn independently and uniformly using crypto/rand.
// With ExcludeSimilar set, draws landing on a visually ambiguous character are
// discarded and retried, so the distribution over the remaining characters
// stays uniform.
func Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	var pool string
	if opts.Uppercase {
		pool += uppercaseChars
	}
	if opts.Lowercase {
		pool += lowercaseChars
	}
	if opts.Numbers {
		pool += numberChars
	}
	if opts.Symbols {
		pool += symbolChars
	}

	if pool == "" {
		return "", ErrNoCharacterTypes
	}

	var sb strings.Builder
	sb.Grow(opts.Length)

	for sb.Len() < opts.Length {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		if opts.ExcludeSimilar && strings.IndexByte(similarChars, ch) >= 0 {
			continue
		}
		sb.WriteByte(ch)
	}

	return sb.String(), nil
}

// randChar picks a uniformly random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
