// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fixed

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/ajroetker/go-ml/internal/assert"
	"golang.org/x/exp/constraints"
)

// Format fixes the binary exponent of a Number: the represented value is
// raw × 2^Exponent(). Formats are zero-size types so that the exponent is
// part of the Number's type.
type Format interface {
	Exponent() int
}

// Frac4, Frac8 and Frac16 carry 4, 8 and 16 fractional bits.
type (
	Frac4  struct{}
	Frac8  struct{}
	Frac16 struct{}
)

func (Frac4) Exponent() int  { return -4 }
func (Frac8) Exponent() int  { return -8 }
func (Frac16) Exponent() int { return -16 }

// Number is a scaled integer with representation R and format F.
type Number[R constraints.Integer, F Format] struct {
	raw R
}

// Predefined signed 32-bit formats.
type (
	// Fixed has 16 integral and 16 fractional bits.
	Fixed = Number[int32, Frac16]
	// Fixed28_4 has 28 integral and 4 fractional bits.
	Fixed28_4 = Number[int32, Frac4]
	// Fixed24_8 has 24 integral and 8 fractional bits.
	Fixed24_8 = Number[int32, Frac8]
)

// ErrFormatRange is matched by errors describing a format whose exponent
// leaves no integral bits in its representation.
var ErrFormatRange = errors.New("fixed: representation cannot hold integral part")

// FormatError reports an unusable representation/exponent pair.
type FormatError struct {
	Bits     int
	Exponent int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("fixed: %d-bit representation with exponent %d has no integral bits", e.Bits, e.Exponent)
}

func (e *FormatError) Unwrap() error { return ErrFormatRange }

func exponent[F Format]() int {
	var f F
	return f.Exponent()
}

func bitsOf[R constraints.Integer]() int {
	var r R
	return int(unsafe.Sizeof(r)) * 8
}

func isSigned[R constraints.Integer]() bool {
	var zero R
	return ^zero < zero
}

// ValidateFormat checks that R can hold at least one integral bit at the
// exponent of F. IntegralPart and Round on an invalid format would always
// yield zero.
func ValidateFormat[R constraints.Integer, F Format]() error {
	bits, e := bitsOf[R](), exponent[F]()
	if bits <= -(e + 1) {
		return &FormatError{Bits: bits, Exponent: e}
	}
	return nil
}

// FromRaw returns the Number whose representation is raw.
func FromRaw[R constraints.Integer, F Format](raw R) Number[R, F] {
	return Number[R, F]{raw: raw}
}

// FromInt returns the Number representing i. The caller keeps i within
// range of the format.
func FromInt[R constraints.Integer, F Format](i int) Number[R, F] {
	e := exponent[F]()
	if e <= 0 {
		return Number[R, F]{raw: R(i) << -e}
	}
	return Number[R, F]{raw: R(i) >> e}
}

// FromFloat converts v, truncating toward zero to the nearest representable
// value. Values outside the range of the format are unspecified.
func FromFloat[R constraints.Integer, F Format](v float64) Number[R, F] {
	return Number[R, F]{raw: R(math.Trunc(math.Ldexp(v, -exponent[F]())))}
}

// Raw returns the underlying integer.
func (n Number[R, F]) Raw() R { return n.raw }

// Exponent returns the binary exponent of n's format.
func (n Number[R, F]) Exponent() int { return exponent[F]() }

func (n Number[R, F]) Add(m Number[R, F]) Number[R, F] { return Number[R, F]{raw: n.raw + m.raw} }
func (n Number[R, F]) Sub(m Number[R, F]) Number[R, F] { return Number[R, F]{raw: n.raw - m.raw} }
func (n Number[R, F]) Neg() Number[R, F]               { return Number[R, F]{raw: -n.raw} }

// Mul multiplies in 64 bits and shifts the product back into format F.
func (n Number[R, F]) Mul(m Number[R, F]) Number[R, F] {
	e := exponent[F]()
	if isSigned[R]() {
		p := int64(n.raw) * int64(m.raw)
		if e < 0 {
			return Number[R, F]{raw: R(p >> -e)}
		}
		return Number[R, F]{raw: R(p << e)}
	}
	p := uint64(n.raw) * uint64(m.raw)
	if e < 0 {
		return Number[R, F]{raw: R(p >> -e)}
	}
	return Number[R, F]{raw: R(p << e)}
}

// Compare returns -1, 0 or +1.
func (n Number[R, F]) Compare(m Number[R, F]) int {
	switch {
	case n.raw < m.raw:
		return -1
	case n.raw > m.raw:
		return 1
	default:
		return 0
	}
}

func (n Number[R, F]) Equal(m Number[R, F]) bool { return n.raw == m.raw }
func (n Number[R, F]) Less(m Number[R, F]) bool  { return n.raw < m.raw }

// Sign returns -1, 0 or +1 according to the sign of n.
func (n Number[R, F]) Sign() int {
	var zero R
	switch {
	case n.raw < zero:
		return -1
	case n.raw > zero:
		return 1
	default:
		return 0
	}
}

// Float32 returns ToFloat(n).
func (n Number[R, F]) Float32() float32 { return ToFloat(n) }

// Float64 returns raw × 2^E.
func (n Number[R, F]) Float64() float64 {
	return math.Ldexp(float64(n.raw), exponent[F]())
}

func (n Number[R, F]) String() string {
	return fmt.Sprintf("%g", n.Float64())
}

// Convert changes the format of n by shifting its representation. Moving to
// fewer fractional bits rounds toward negative infinity.
func Convert[G Format, R constraints.Integer, F Format](n Number[R, F]) Number[R, G] {
	d := exponent[F]() - exponent[G]()
	if d >= 0 {
		return Number[R, G]{raw: n.raw << d}
	}
	return Number[R, G]{raw: n.raw >> -d}
}

// IntegralPart returns floor(n) for n >= 0 and -floor(-n) for n < 0, so
// negative non-integers move toward zero.
func IntegralPart[R constraints.Integer, F Format](n Number[R, F]) int {
	assertFormat[R, F]()
	e := exponent[F]()
	if e >= 0 {
		return int(n.raw) << e
	}
	var zero R
	if isSigned[R]() && n.raw < zero {
		return -int((-n.raw) >> -e)
	}
	return int(n.raw >> -e)
}

// Round rounds to the nearest integer with ties away from zero, matching
// math.Round.
func Round[R constraints.Integer, F Format](n Number[R, F]) int {
	half := halfOf[R, F]()
	var zero R
	if isSigned[R]() && n.raw < zero {
		return -IntegralPart(Number[R, F]{raw: -n.raw + half})
	}
	return IntegralPart(Number[R, F]{raw: n.raw + half})
}

// halfOf returns the representation of 0.5, or 0 when F has no fractional
// bits.
func halfOf[R constraints.Integer, F Format]() R {
	e := exponent[F]()
	if e >= 0 {
		return 0
	}
	return R(1) << (-e - 1)
}

// ToFloat returns raw / raw(1) in single precision. Exact for values whose
// representation fits in 24 bits.
func ToFloat[R constraints.Integer, F Format](n Number[R, F]) float32 {
	e := exponent[F]()
	if e >= 0 {
		return float32(n.raw) * float32(uint64(1)<<e)
	}
	return float32(n.raw) / float32(uint64(1)<<-e)
}

// TruncateUnchecked clears the lowest bits of n's representation. It is only
// meaningful for non-negative n.
func TruncateUnchecked[R constraints.Integer, F Format](n Number[R, F], bits int) Number[R, F] {
	assert.Precondition(bits >= 0, "truncate by %d bits", bits)
	return Number[R, F]{raw: (n.raw >> bits) << bits}
}

func assertFormat[R constraints.Integer, F Format]() {
	if assert.Enabled {
		if err := ValidateFormat[R, F](); err != nil {
			panic(err)
		}
	}
}
