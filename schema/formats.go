package schema

import (
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// formats is the named-predicate registry backing the "format" keyword
// (§6.4). Each predicate enforces the exact acceptance rule the
// specification lists; none of these are approximations of a generic
// RFC grammar.
var formats = map[string]func(string) bool{
	"date":      isDate,
	"time":      isTime,
	"date-time": isDateTime,
	"hostname":  isHostname,
	"email":     isEmail,
	"ipv4":      isIPv4,
	"ipv6":      isIPv6,
	"uuid":      isUUID,
	"url":       isURL,
	"identifier": isIdentifier,
}

func isDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func isTime(s string) bool {
	body := s
	switch {
	case strings.HasSuffix(body, "Z"):
		body = body[:len(body)-1]
	case len(body) >= 6 && (body[len(body)-6] == '+' || body[len(body)-6] == '-'):
		offset := body[len(body)-5:]
		body = body[:len(body)-6]
		if !isValidOffset(offset) {
			return false
		}
	}
	return isValidClock(body)
}

func isValidOffset(offset string) bool {
	if len(offset) != 5 || offset[2] != ':' {
		return false
	}
	h, err1 := strconv.Atoi(offset[0:2])
	m, err2 := strconv.Atoi(offset[3:5])
	return err1 == nil && err2 == nil && h >= 0 && h <= 23 && m >= 0 && m <= 59
}

func isValidClock(s string) bool {
	if len(s) != 8 || s[2] != ':' || s[5] != ':' {
		return false
	}
	h, err1 := strconv.Atoi(s[0:2])
	m, err2 := strconv.Atoi(s[3:5])
	sec, err3 := strconv.Atoi(s[6:8])
	return err1 == nil && err2 == nil && err3 == nil &&
		h >= 0 && h <= 23 && m >= 0 && m <= 59 && sec >= 0 && sec <= 59
}

func isDateTime(s string) bool {
	idx := strings.IndexByte(s, 'T')
	if idx < 0 {
		return false
	}
	return isDate(s[:idx]) && isTime(s[idx+1:])
}

func isHostname(s string) bool {
	if s == "" || len(s) > 253 {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	labels := strings.Split(s, ".")
	for _, label := range labels {
		if !isHostnameLabel(label) {
			return false
		}
	}
	return true
}

func isHostnameLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, r := range label {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
			return false
		}
	}
	return true
}

func isEmail(s string) bool {
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if len([]rune(local)) > 63 {
		return false
	}
	if local[0] == '.' || local[0] == '@' || local[0] == ' ' || strings.HasSuffix(local, ".") {
		return false
	}
	if strings.ContainsAny(local, "@ ") {
		return false
	}
	if strings.HasSuffix(domain, ".") {
		return false
	}
	return isHostname(domain)
}

func isIPv4(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if len(p) == 0 || len(p) > 3 {
			return false
		}
		if len(p) > 1 && p[0] == '0' {
			return false
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return false
			}
		}
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > 255 {
			return false
		}
	}
	return true
}

var ipv6Re = regexp.MustCompile(`^[0-9A-Fa-f:.]+$`)

// isIPv6 validates s as a 2-8 hextet IPv6 literal with at most one "::"
// abbreviation and an optional trailing IPv4 tail, deferring the actual
// hextet/grouping arithmetic to net.ParseIP, which already implements
// those rules.
func isIPv6(s string) bool {
	if !strings.Contains(s, ":") || !ipv6Re.MatchString(s) {
		return false
	}
	if strings.Count(s, "::") > 1 {
		return false
	}
	return net.ParseIP(s) != nil
}

var uuidRe = regexp.MustCompile(`^[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12}$`)

func isUUID(s string) bool {
	if !uuidRe.MatchString(s) {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func isURL(s string) bool {
	if len(s) > 2048 {
		return false
	}
	body := ""
	switch {
	case strings.HasPrefix(s, "https://"):
		body = s[len("https://"):]
	case strings.HasPrefix(s, "http://"):
		body = s[len("http://"):]
	default:
		return false
	}
	if body == "" {
		return false
	}
	for _, r := range s {
		if r < 0x21 || r > 0x7e {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		alnum := r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_'
		digit := r >= '0' && r <= '9'
		if i == 0 {
			if !alnum {
				return false
			}
		} else if !alnum && !digit {
			return false
		}
	}
	return true
}
