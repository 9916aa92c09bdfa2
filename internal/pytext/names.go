package pytext

import "regexp"

// The naming predicates are anchored prefix matches, not whole-string
// matches. A name like "FooBar_x" passes IsCamelCase and "good_name2extra"
// passes IsSnakeCase; the unchecked suffix is accepted on purpose.

// camelRe matches an upper-case letter, a lower-case run, an optional
// second upper-case letter, and another lower-case run.
var camelRe = regexp.MustCompile(`^[A-Z][a-z]+[A-Z]?[a-z]+`)

// snakeRe matches up to two leading underscores, a lower-case run, then an
// optional digit, underscore, lower-case letter and digit.
var snakeRe = regexp.MustCompile(`^_{0,2}[a-z]+[0-9]?_?[a-z]?[0-9]?`)

// IsCamelCase reports whether name starts like a CamelCase identifier.
func IsCamelCase(name string) bool {
	return camelRe.MatchString(name)
}

// IsSnakeCase reports whether name starts like a snake_case identifier.
func IsSnakeCase(name string) bool {
	return snakeRe.MatchString(name)
}
