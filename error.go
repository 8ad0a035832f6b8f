// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package bigint

import (
	"fmt"

	"github.com/pkg/errors"
)

// Failure sentinels. Operations wrap these with call-site context; use
// errors.Cause to match them.
var (
	// ErrDivisionByZero is returned when the divisor of a division or
	// remainder operation is zero, whatever the dividend.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidBase is returned for a textual base outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("invalid base")
	// ErrInt64Range is returned by Int64 when the value does not fit.
	ErrInt64Range = errors.New("int64 out of range")
)

// InvalidDigitError reports a character of a parsed string that is not a
// valid digit in the requested base.
type InvalidDigitError struct {
	Char  byte
	Index int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %q at index %d", e.Char, e.Index)
}

// ErrBigInt performs operations on big integers and collects errors during
// operations. If an error is already set, the operation is skipped. Designed
// to be used for many operations in a row, with a single error check at the
// end.
type ErrBigInt struct {
	Err error
}

// Add performs z.Add(x, y).
func (e *ErrBigInt) Add(z, x, y *BigInt) {
	if e.Err != nil {
		return
	}
	z.Add(x, y)
}

// Sub performs z.Sub(x, y).
func (e *ErrBigInt) Sub(z, x, y *BigInt) {
	if e.Err != nil {
		return
	}
	z.Sub(x, y)
}

// Mul performs z.Mul(x, y).
func (e *ErrBigInt) Mul(z, x, y *BigInt) {
	if e.Err != nil {
		return
	}
	z.Mul(x, y)
}

// Neg performs z.Neg(x).
func (e *ErrBigInt) Neg(z, x *BigInt) {
	if e.Err != nil {
		return
	}
	z.Neg(x)
}

// Abs performs z.Abs(x).
func (e *ErrBigInt) Abs(z, x *BigInt) {
	if e.Err != nil {
		return
	}
	z.Abs(x)
}

// Quo performs z.Quo(x, y).
func (e *ErrBigInt) Quo(z, x, y *BigInt) {
	if e.Err != nil {
		return
	}
	_, e.Err = z.Quo(x, y)
}

// Rem performs z.Rem(x, y).
func (e *ErrBigInt) Rem(z, x, y *BigInt) {
	if e.Err != nil {
		return
	}
	_, e.Err = z.Rem(x, y)
}

// Cmp returns 0 if Err is set. Otherwise returns x.Cmp(y).
func (e *ErrBigInt) Cmp(x, y *BigInt) int {
	if e.Err != nil {
		return 0
	}
	return x.Cmp(y)
}

// Int64 returns 0 if Err is set. Otherwise returns x.Int64().
func (e *ErrBigInt) Int64(x *BigInt) int64 {
	if e.Err != nil {
		return 0
	}
	var v int64
	v, e.Err = x.Int64()
	return v
}

// SetString performs z.SetString(s, base).
func (e *ErrBigInt) SetString(z *BigInt, s string, base int) {
	if e.Err != nil {
		return
	}
	_, e.Err = z.SetString(s, base)
}

// Text returns "" if Err is set. Otherwise returns x.Text(base, showBase).
func (e *ErrBigInt) Text(x *BigInt, base int, showBase bool) string {
	if e.Err != nil {
		return ""
	}
	var s string
	s, e.Err = x.Text(base, showBase)
	return s
}
