package validation

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// NIMTag is the binding tag for student identifiers
	NIMTag = "nim"

	// NIMPattern accepts letters, digits, dots and dashes
	NIMPattern = `^[A-Za-z0-9.\-]+$`

	// NIMMaxLength matches the width of mahasiswa.nim
	NIMMaxLength = 32
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	NIM *regexp.Regexp
}{
	NIM: regexp.MustCompile(NIMPattern),
}

var registerOnce sync.Once

// ValidNIM reports whether value, after trimming surrounding whitespace, is a
// usable student identifier
func ValidNIM(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > NIMMaxLength {
		return false
	}
	return CompiledPatterns.NIM.MatchString(value)
}

func validateNIM(fl validator.FieldLevel) bool {
	return ValidNIM(fl.Field().String())
}

// RegisterRules adds the custom rules to gin's validator engine. It is safe to
// call more than once.
func RegisterRules() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation(NIMTag, validateNIM)
	})
	return err
}
