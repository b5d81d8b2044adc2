package http

import (
	"strings"
)

// tokenChars are the punctuation characters allowed in a product token.
const tokenChars = "!#$%&'*+-.^_`|~"

// UserAgentBuilder composes a User-Agent header value from product tokens.
type UserAgentBuilder struct {
	products []string
}

// NewUserAgentBuilder returns a new UserAgentBuilder.
func NewUserAgentBuilder() *UserAgentBuilder {
	return &UserAgentBuilder{}
}

// AddProduct adds the product as `name/version`, or `name` when version is
// empty. Characters not allowed in a token are replaced by `-`.
func (u *UserAgentBuilder) AddProduct(name, version string) {
	if len(name) == 0 {
		return
	}
	product := token(name)
	if len(version) != 0 {
		product += "/" + token(version)
	}
	u.products = append(u.products, product)
}

// AddRaw adds value as is, such as the user agent of the application.
// Empty values are skipped.
func (u *UserAgentBuilder) AddRaw(value string) {
	if value = strings.TrimSpace(value); len(value) != 0 {
		u.products = append(u.products, value)
	}
}

// Build returns the User-Agent value. May be called multiple times.
func (u *UserAgentBuilder) Build() string {
	return strings.Join(u.products, " ")
}

func token(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
			return r
		case strings.ContainsRune(tokenChars, r):
			return r
		default:
			return '-'
		}
	}, s)
}
