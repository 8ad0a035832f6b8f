package bigint

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// verbBase maps a fmt verb to a textual base, or 0 for verbs this type does
// not support. Only the lowercase hex verb exists, matching the type's
// lowercase-only alphabet.
func verbBase(verb rune) int {
	switch verb {
	case 'b':
		return 2
	case 'o':
		return 8
	case 'd', 's', 'v':
		return 10
	case 'x':
		return 16
	}
	return 0
}

func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}

// Format implements fmt.Formatter. It accepts the verbs 'b' (binary), 'o'
// (octal), 'd' (decimal), 'x' (hexadecimal), plus 's' and 'v'. The '#' flag
// requests a base prefix ("0" for octal, "0x" for hexadecimal); '+' and ' '
// control the sign of non-negative values; width with '-' or '0' pads as in
// package fmt. The sign character always precedes the prefix.
func (x *BigInt) Format(s fmt.State, verb rune) {
	base := verbBase(verb)
	if base == 0 {
		fmt.Fprintf(s, "%%!%c(bigint.BigInt=%s)", verb, x.String())
		return
	}
	if x == nil {
		fmt.Fprint(s, "<nil>")
		return
	}

	sign := ""
	switch {
	case x.Sign() < 0:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	prefix := ""
	if s.Flag('#') {
		switch base {
		case 8:
			prefix = "0"
		case 16:
			prefix = "0x"
		}
	}

	digits, _ := new(BigInt).Abs(x).Text(base, false)

	var left, zeroes, right int
	length := len(sign) + len(prefix) + len(digits)
	if width, ok := s.Width(); ok && length < width {
		switch d := width - length; {
		case s.Flag('-'):
			right = d
		case s.Flag('0'):
			zeroes = d
		default:
			left = d
		}
	}

	writeMultiple(s, " ", left)
	writeMultiple(s, sign, 1)
	writeMultiple(s, prefix, 1)
	writeMultiple(s, "0", zeroes)
	writeMultiple(s, digits, 1)
	writeMultiple(s, " ", right)
}

// Scan implements fmt.Scanner. It accepts the same verbs as Format,
// consuming one whitespace-delimited token: an optional leading sign is
// stripped, then any base prefix for the verb's base, the rest is parsed in
// that base, and the sign is reapplied.
func (z *BigInt) Scan(s fmt.ScanState, verb rune) error {
	base := verbBase(verb)
	if base == 0 {
		return errors.Errorf("bad verb %%%c for BigInt.Scan", verb)
	}
	tok, err := s.Token(true, nil)
	if err != nil {
		return err
	}
	str := string(tok)
	neg := strings.HasPrefix(str, "-")
	if neg {
		str = str[1:]
	}
	switch base {
	case 16:
		str = strings.TrimPrefix(str, "0x")
	case 8:
		if len(str) > 1 {
			str = strings.TrimPrefix(str, "0")
		}
	}
	if _, err := z.SetString(str, base); err != nil {
		return err
	}
	if neg {
		z.Neg(z)
	}
	return nil
}
