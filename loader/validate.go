package loader

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validator decides whether a parsed key is acceptable. It is stateless
// and owned by its loader for the loader's entire lifetime.
type Validator func(key string) bool

// AcceptAll accepts every key. It is the default when no validator is
// configured.
func AcceptAll(string) bool { return true }

// Allowed accepts only the listed keys.
func Allowed(keys ...string) Validator {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return func(key string) bool {
		_, ok := set[key]
		return ok
	}
}

// Pattern accepts keys matching the regular expression. It panics if the
// expression does not compile, like regexp.MustCompile.
func Pattern(expr string) Validator {
	re := regexp.MustCompile(expr)
	return re.MatchString
}

var ruleValidate = validator.New()

// Rule accepts keys that satisfy a go-playground/validator tag, for
// example "alphanum" or "hostname_rfc1123".
func Rule(tag string) Validator {
	return func(key string) bool {
		return ruleValidate.Var(key, tag) == nil
	}
}
