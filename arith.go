package bigint

import (
	"fortio.org/safecast"
	"github.com/pkg/errors"
)

// Add sets z to the sum x+y and returns z.
//
// The carry loop only ever works on a non-negative x whose magnitude is at
// least y's: other cases commute the operands or factor the sign out first.
// y's limbs enter the sum through their signed view, so mixed-sign addition
// is subtraction carried out on plain non-negative limb arithmetic.
func (z *BigInt) Add(x, y *BigInt) *BigInt {
	if cmpAbs(x, y) < 0 {
		return z.Add(y, x)
	}
	if x.Sign() < 0 {
		z.Add(new(BigInt).Neg(x), new(BigInt).Neg(y))
		return z.Neg(z)
	}
	ys := int64(y.Sign())
	var digits []int64
	var carry int64
	for i := 0; i < len(x.digits) || carry != 0; i++ {
		d := carry
		if i < len(x.digits) {
			d += x.digits[i]
		}
		if i < len(y.digits) {
			d += ys * y.digits[i]
		}
		limb := ((d % internalBase) + internalBase) % internalBase
		digits = append(digits, limb)
		carry = (d - limb) / internalBase
	}
	z.digits = digits
	z.neg = false
	z.removeZeroes()
	return z
}

// Sub sets z to the difference x-y and returns z. It is defined as
// x + (-y), with a negative-x fast path through -((-x) + y).
func (z *BigInt) Sub(x, y *BigInt) *BigInt {
	if x.Sign() < 0 {
		z.Add(new(BigInt).Neg(x), y)
		return z.Neg(z)
	}
	return z.Add(x, new(BigInt).Neg(y))
}

// mulWord sets z to x*w for a single non-negative limb w in [0, 1e9] and
// returns z. The result keeps x's sign. Each step fits an int64: the limb
// product is below 1e18 and the carry below 1e9.
func mulWord(z, x *BigInt, w int64) *BigInt {
	neg := x.neg
	var digits []int64
	var carry int64
	for i := 0; i < len(x.digits) || carry != 0; i++ {
		d := carry
		if i < len(x.digits) {
			d += x.digits[i] * w
		}
		digits = append(digits, d%internalBase)
		carry = d / internalBase
	}
	z.digits = digits
	z.neg = false
	z.removeZeroes()
	if len(z.digits) > 0 {
		z.neg = neg
	}
	return z
}

// Mul sets z to the product x*y and returns z. The sign of the result is
// the XOR of the operand signs; the magnitude is schoolbook: scale x by
// each limb of y, shift by the limb's position, accumulate.
func (z *BigInt) Mul(x, y *BigInt) *BigInt {
	if x.Sign() < 0 {
		z.Mul(new(BigInt).Neg(x), y)
		return z.Neg(z)
	}
	if y.Sign() < 0 {
		z.Mul(x, new(BigInt).Neg(y))
		return z.Neg(z)
	}
	acc := new(BigInt)
	scaled := new(BigInt)
	for i := 0; i < len(y.digits); i++ {
		mulWord(scaled, x, y.digits[i])
		scaled.shiftLimbs(i)
		acc.Add(acc, scaled)
	}
	return z.Set(acc)
}

// guessDigit finds the unique quotient limb q in [0, 1e9) with
// q*y <= rem < (q+1)*y, by bisection. Both operands are non-negative and
// rem < y*1e9, so the half-open bracket [lo, hi) holds throughout.
func guessDigit(rem, y *BigInt) int64 {
	lo, hi := int64(0), int64(internalBase)
	var probe BigInt
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if cmpAbs(mulWord(&probe, y, mid), rem) > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// Quo sets z to the quotient x/y, truncated toward zero, and returns z.
// It returns an error wrapping ErrDivisionByZero if y is zero, for any x.
//
// The positive/positive case is long division: limbs of x are fed most
// significant first into a trailing remainder, and each quotient limb is
// found by guessDigit. Quotient limbs accumulate most significant first
// and are reversed once at the end.
func (z *BigInt) Quo(x, y *BigInt) (*BigInt, error) {
	if y.Sign() == 0 {
		return nil, errors.Wrap(ErrDivisionByZero, "Quo")
	}
	if x.Sign() < 0 {
		if _, err := z.Quo(new(BigInt).Neg(x), y); err != nil {
			return nil, err
		}
		return z.Neg(z), nil
	}
	if y.Sign() < 0 {
		if _, err := z.Quo(x, new(BigInt).Neg(y)); err != nil {
			return nil, err
		}
		return z.Neg(z), nil
	}
	quo := make([]int64, 0, len(x.digits))
	rem := new(BigInt)
	scaled := new(BigInt)
	for i := len(x.digits) - 1; i >= 0; i-- {
		rem.pushLow(x.digits[i])
		d := guessDigit(rem, y)
		quo = append(quo, d)
		rem.Sub(rem, mulWord(scaled, y, d))
	}
	for l, r := 0, len(quo)-1; l < r; l, r = l+1, r-1 {
		quo[l], quo[r] = quo[r], quo[l]
	}
	z.digits = quo
	z.neg = false
	z.removeZeroes()
	return z, nil
}

// Rem sets z to the remainder x - (x/y)*y and returns z. The remainder
// takes the sign of x, consistent with truncated division.
func (z *BigInt) Rem(x, y *BigInt) (*BigInt, error) {
	q, err := new(BigInt).Quo(x, y)
	if err != nil {
		return nil, err
	}
	var t BigInt
	t.Mul(q, y)
	return z.Sub(x, &t), nil
}

// QuoRem sets z to the truncated quotient x/y and r to the remainder
// x - (x/y)*y, and returns the pair (z, r).
func (z *BigInt) QuoRem(x, y, r *BigInt) (*BigInt, *BigInt, error) {
	q, err := new(BigInt).Quo(x, y)
	if err != nil {
		return nil, nil, err
	}
	var t BigInt
	t.Mul(q, y)
	r.Sub(x, &t)
	z.Set(q)
	return z, r, nil
}

// ModUint32 returns the non-negative remainder of x modulo m, in [0, m),
// regardless of x's sign. It returns an error wrapping ErrDivisionByZero
// if m is zero.
func (x *BigInt) ModUint32(m uint32) (uint32, error) {
	if m == 0 {
		return 0, errors.Wrap(ErrDivisionByZero, "ModUint32")
	}
	var r BigInt
	if _, err := r.Rem(x, New(int64(m))); err != nil {
		return 0, err
	}
	v, err := r.Int64()
	if err != nil {
		return 0, err
	}
	v = (v%int64(m) + int64(m)) % int64(m)
	return safecast.Conv[uint32](v)
}

var one = New(1)

// Inc adds one to z in place and returns z.
func (z *BigInt) Inc() *BigInt {
	return z.Add(z, one)
}

// Dec subtracts one from z in place and returns z.
func (z *BigInt) Dec() *BigInt {
	return z.Sub(z, one)
}

// AddInt64 sets z to x+y for a native y, promoted to a BigInt first.
// Addition commutes, so this also covers the native-on-left form.
func (z *BigInt) AddInt64(x *BigInt, y int64) *BigInt {
	var t BigInt
	return z.Add(x, t.SetInt64(y))
}

// SubInt64 sets z to x-y for a native y. The commuted form y-x is the
// negation of the result.
func (z *BigInt) SubInt64(x *BigInt, y int64) *BigInt {
	var t BigInt
	return z.Sub(x, t.SetInt64(y))
}

// MulInt64 sets z to x*y for a native y.
func (z *BigInt) MulInt64(x *BigInt, y int64) *BigInt {
	var t BigInt
	return z.Mul(x, t.SetInt64(y))
}

// QuoInt64 sets z to the truncated quotient x/y for a native y.
func (z *BigInt) QuoInt64(x *BigInt, y int64) (*BigInt, error) {
	var t BigInt
	return z.Quo(x, t.SetInt64(y))
}
