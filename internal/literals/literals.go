// Package literals decodes the text of string, number and color tokens.
package literals

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Be-ing/sixtyfps/internal/types"
)

// UnescapeString decodes a string literal token. A literal starts with `"`
// (or `}` when it continues a template) and ends with `"` (or `\{` when a
// template placeholder follows). Supported escapes are \n \t \r \\ \" \{
// and \u{hex}. Raw newlines are rejected.
func UnescapeString(lit string) (string, bool) {
	if strings.ContainsRune(lit, '\n') {
		return "", false
	}
	switch {
	case strings.HasPrefix(lit, `"`), strings.HasPrefix(lit, "}"):
		lit = lit[1:]
	default:
		return "", false
	}
	switch {
	case strings.HasSuffix(lit, `\{`):
		lit = lit[:len(lit)-2]
	case strings.HasSuffix(lit, `"`):
		lit = lit[:len(lit)-1]
	default:
		return "", false
	}
	if !strings.ContainsRune(lit, '\\') {
		return lit, true
	}
	var b strings.Builder
	b.Grow(len(lit))
	for i := 0; i < len(lit); i++ {
		c := lit[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(lit) {
			return "", false
		}
		switch lit[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\', '"', '{', '}':
			b.WriteByte(lit[i])
		case 'u':
			if i+1 >= len(lit) || lit[i+1] != '{' {
				return "", false
			}
			end := strings.IndexByte(lit[i:], '}')
			if end < 0 {
				return "", false
			}
			code, err := strconv.ParseUint(lit[i+2:i+end], 16, 32)
			if err != nil || !utf8.ValidRune(rune(code)) {
				return "", false
			}
			b.WriteRune(rune(code))
			i += end
		default:
			return "", false
		}
	}
	return b.String(), true
}

var errNoDigits = errors.New("missing digits")

// ParseNumber splits a number literal such as `12.5px` into its value
// and unit. Unitless numbers are Float32-typed by the caller.
func ParseNumber(lit string) (float64, types.Unit, error) {
	end := 0
	for end < len(lit) {
		c := lit[end]
		if (c >= '0' && c <= '9') || c == '.' {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, types.UnitNone, fmt.Errorf("invalid number literal '%s': %w", lit, errNoDigits)
	}
	value, err := strconv.ParseFloat(lit[:end], 64)
	if err != nil {
		return 0, types.UnitNone, fmt.Errorf("invalid number literal '%s'", lit)
	}
	suffix := lit[end:]
	unit, ok := types.ParseUnit(suffix)
	if !ok {
		return 0, types.UnitNone, fmt.Errorf("invalid unit '%s'", suffix)
	}
	return value, unit, nil
}

// ParseColor decodes #rgb, #rgba, #rrggbb and #rrggbbaa into a 0xAARRGGBB value.
func ParseColor(lit string) (uint32, bool) {
	s := strings.TrimSpace(lit)
	if !strings.HasPrefix(s, "#") {
		return 0, false
	}
	hexStr := s[1:]
	for _, c := range hexStr {
		if !isHex(c) {
			return 0, false
		}
	}
	var r, g, b, a uint32
	a = 0xff
	var err error
	switch len(hexStr) {
	case 8:
		_, err = fmt.Sscanf(hexStr, "%02x%02x%02x%02x", &r, &g, &b, &a)
	case 6:
		_, err = fmt.Sscanf(hexStr, "%02x%02x%02x", &r, &g, &b)
	case 4:
		_, err = fmt.Sscanf(hexStr, "%1x%1x%1x%1x", &r, &g, &b, &a)
		r, g, b, a = r*0x11, g*0x11, b*0x11, a*0x11
	case 3:
		_, err = fmt.Sscanf(hexStr, "%1x%1x%1x", &r, &g, &b)
		r, g, b = r*0x11, g*0x11, b*0x11
	default:
		return 0, false
	}
	if err != nil {
		return 0, false
	}
	return a<<24 | r<<16 | g<<8 | b, true
}

func isHex(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
