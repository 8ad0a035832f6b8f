package bigint

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// BigInt is an arbitrary-precision signed integer. Its value is:
//
//     (neg ? -1 : 1) * sum(digits[i] * internalBase^i)
//
// digits holds base-1e9 limbs, least significant first, with no trailing
// zero limbs; zero is an empty slice and is never negative. The zero value
// of BigInt is ready to use and represents 0.
type BigInt struct {
	digits []int64
	neg    bool
}

// internalBase is the limb radix. It is chosen so the product of two limbs
// fits in an int64 (1e9 * 1e9 = 1e18 < 2^63), keeping every carry loop free
// of overflow.
const internalBase = 1_000_000_000

// New allocates and returns a new BigInt set to x.
func New(x int64) *BigInt {
	return new(BigInt).SetInt64(x)
}

// SetInt64 sets z to x and returns z.
func (z *BigInt) SetInt64(x int64) *BigInt {
	z.neg = x < 0
	z.digits = z.digits[:0]
	// Limbs are peeled off without negating x first, so math.MinInt64 needs
	// no special case.
	for x != 0 {
		d := x % internalBase
		if d < 0 {
			d = -d
		}
		z.digits = append(z.digits, d)
		x /= internalBase
	}
	if len(z.digits) == 0 {
		z.neg = false
	}
	return z
}

// Set sets z to the value of x and returns z. The limb storage is deep
// copied: z and x never alias, so this is the copy operation of the type.
// There is no move; an owner that wants to give a value away copies it and
// resets its own instance with SetInt64(0).
func (z *BigInt) Set(x *BigInt) *BigInt {
	if z != x {
		z.digits = append(z.digits[:0], x.digits...)
		z.neg = x.neg
	}
	return z
}

// Sign returns:
//
//   -1 if x <  0
//    0 if x == 0
//   +1 if x >  0
//
func (x *BigInt) Sign() int {
	if len(x.digits) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Abs sets z to |x| and returns z.
func (z *BigInt) Abs(x *BigInt) *BigInt {
	z.Set(x)
	z.neg = false
	return z
}

// Neg sets z to -x and returns z. Negating zero is a no-op.
func (z *BigInt) Neg(x *BigInt) *BigInt {
	z.Set(x)
	if len(z.digits) > 0 {
		z.neg = !z.neg
	}
	return z
}

// NumDigits returns the number of base-1e9 limbs in x. Zero has none.
func (x *BigInt) NumDigits() int {
	return len(x.digits)
}

var (
	bigMaxInt64 = New(math.MaxInt64)
	bigMinInt64 = New(math.MinInt64)
)

// Int64 returns the int64 representation of x. It returns an error wrapping
// ErrInt64Range if x cannot be represented in an int64.
func (x *BigInt) Int64() (int64, error) {
	if x.Cmp(bigMaxInt64) > 0 || x.Cmp(bigMinInt64) < 0 {
		return 0, errors.Wrap(ErrInt64Range, "Int64")
	}
	// Accumulate on the negative side; |math.MinInt64| is not an int64.
	var v int64
	for i := len(x.digits) - 1; i >= 0; i-- {
		v = v*internalBase - x.digits[i]
	}
	if !x.neg {
		v = -v
	}
	return v, nil
}

func (x *BigInt) GoString() string {
	return fmt.Sprintf(`{Digits: %v, Negative: %t}`, x.digits, x.neg)
}

// removeZeroes trims trailing (most-significant) zero limbs, restoring
// canonical form. A magnitude trimmed to nothing is canonical zero.
func (z *BigInt) removeZeroes() {
	i := len(z.digits)
	for i > 0 && z.digits[i-1] == 0 {
		i--
	}
	z.digits = z.digits[:i]
	if len(z.digits) == 0 {
		z.neg = false
	}
}

// pushLow inserts d as the new least-significant limb, shifting the
// magnitude up one position.
func (z *BigInt) pushLow(d int64) {
	z.digits = append(z.digits, 0)
	copy(z.digits[1:], z.digits)
	z.digits[0] = d
	z.removeZeroes()
}

// shiftLimbs multiplies z by internalBase^n by prepending n zero limbs.
func (z *BigInt) shiftLimbs(n int) {
	if n == 0 || len(z.digits) == 0 {
		return
	}
	z.digits = append(make([]int64, n), z.digits...)
}
