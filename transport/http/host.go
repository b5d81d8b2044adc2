package http

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ValidateEndpointHost returns an error when host, with an optional port, is
// not a valid RFC 3986 host. A trailing dot is allowed.
func ValidateEndpointHost(host string) error {
	hostname, port := host, ""
	var problems []string

	if strings.Contains(host, ":") {
		var err error
		if hostname, port, err = net.SplitHostPort(host); err != nil {
			return fmt.Errorf("invalid endpoint host %q, %w", host, err)
		}
		if !ValidPortNumber(port) {
			problems = append(problems, fmt.Sprintf("port must be in range [0-65535], got %q", port))
		}
	}

	switch n := len(hostname); {
	case n == 0:
		problems = append(problems, "host must not be empty")
	case n > 255:
		problems = append(problems, fmt.Sprintf("host must be at most 255 characters, got %d", n))
	default:
		for _, label := range strings.Split(strings.TrimSuffix(hostname, "."), ".") {
			if !ValidHostLabel(label) {
				problems = append(problems, fmt.Sprintf("invalid host label %q", label))
			}
		}
	}

	if len(problems) != 0 {
		return fmt.Errorf("invalid endpoint host %q, %s", host, strings.Join(problems, ", "))
	}
	return nil
}

// ValidPortNumber returns whether port is a valid RFC 3986 port.
func ValidPortNumber(port string) bool {
	i, err := strconv.Atoi(port)
	return err == nil && i >= 0 && i <= 65535
}

// ValidHostLabel returns whether label matches [a-zA-Z0-9-]{1,63} without a
// leading or trailing dash.
func ValidHostLabel(label string) bool {
	if l := len(label); l == 0 || l > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, r := range label {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
