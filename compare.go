package bigint

// cmpAbs compares the magnitudes of x and y, ignoring sign. Both operands
// must be canonical: the limb-count comparison is only valid with no
// trailing zero limbs.
func cmpAbs(x, y *BigInt) int {
	if len(x.digits) != len(y.digits) {
		if len(x.digits) < len(y.digits) {
			return -1
		}
		return 1
	}
	for i := len(x.digits) - 1; i >= 0; i-- {
		if x.digits[i] != y.digits[i] {
			if x.digits[i] < y.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares x and y and returns:
//
//   -1 if x <  y
//    0 if x == y
//   +1 if x >  y
//
// Sign is the primary key (negative < zero < positive); equal signs fall
// through to a magnitude comparison.
func (x *BigInt) Cmp(y *BigInt) int {
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	r := cmpAbs(x, y)
	if xs < 0 {
		r = -r
	}
	return r
}

// CmpInt64 compares x against a native integer, which is promoted to a
// BigInt first. The commuted comparison y <op> x is -x.CmpInt64(y).
func (x *BigInt) CmpInt64(y int64) int {
	var t BigInt
	return x.Cmp(t.SetInt64(y))
}
