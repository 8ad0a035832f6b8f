package bigint

import (
	"github.com/pkg/errors"
)

// MinBase and MaxBase bound the textual bases accepted by SetString and
// Text.
const (
	MinBase = 2
	MaxBase = 36
)

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// charToDigit maps '0'-'9' to 0-9 and 'a'-'z' to 10-35, or -1 for anything
// else. Uppercase letters are not digits; the lowercase-only alphabet is a
// deliberate policy of this type.
func charToDigit(ch byte) int64 {
	switch {
	case ch >= '0' && ch <= '9':
		return int64(ch - '0')
	case ch >= 'a' && ch <= 'z':
		return int64(ch-'a') + 10
	}
	return -1
}

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return errors.Wrapf(ErrInvalidBase, "base %d", base)
	}
	return nil
}

// NewFromString allocates and returns a new BigInt set to the value of s
// interpreted in the given base.
func NewFromString(s string, base int) (*BigInt, error) {
	return new(BigInt).SetString(s, base)
}

// SetString sets z to the value of s interpreted in the given base and
// returns z. base must be in [MinBase, MaxBase]. s may start with a '-' at
// index 0 only; every other character must map to a digit below base, or an
// *InvalidDigitError carrying the offending index is returned. An empty s
// sets z to zero.
func (z *BigInt) SetString(s string, base int) (*BigInt, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	for i := 0; i < len(s); i++ {
		if i == 0 && s[0] == '-' {
			continue
		}
		if d := charToDigit(s[i]); d < 0 || d >= int64(base) {
			return nil, &InvalidDigitError{Char: s[i], Index: i}
		}
	}
	// Scan from the tail, keeping a running positional multiplier.
	acc := new(BigInt)
	power := New(1)
	scaled := new(BigInt)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '-' {
			continue
		}
		acc.Add(acc, mulWord(scaled, power, charToDigit(s[i])))
		mulWord(power, power, int64(base))
	}
	if len(s) > 0 && s[0] == '-' {
		acc.Neg(acc)
	}
	return z.Set(acc), nil
}

// Text renders x in the given base. If showBase is set, octal output gets a
// "0" marker and hexadecimal a "0x" marker, placed after any '-' sign.
// base must be in [MinBase, MaxBase].
func (x *BigInt) Text(base int, showBase bool) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}
	var buf []byte
	if x.Sign() == 0 {
		buf = append(buf, '0')
	}
	temp := new(BigInt).Abs(x)
	div := New(int64(base))
	var q, t BigInt
	for temp.Sign() != 0 {
		if _, err := q.Quo(temp, div); err != nil {
			return "", err
		}
		mulWord(&t, &q, int64(base))
		t.Sub(temp, &t)
		d, err := t.Int64()
		if err != nil {
			return "", err
		}
		buf = append(buf, digitAlphabet[d])
		temp.Set(&q)
	}
	// Everything below is appended reversed; one final reversal produces
	// the most-significant-first text.
	if showBase {
		switch base {
		case 8:
			buf = append(buf, '0')
		case 16:
			buf = append(buf, 'x', '0')
		}
	}
	if x.Sign() < 0 {
		buf = append(buf, '-')
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return string(buf), nil
}

// String renders x in base 10.
func (x *BigInt) String() string {
	if x == nil {
		return "<nil>"
	}
	s, _ := x.Text(10, false)
	return s
}
