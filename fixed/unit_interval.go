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

// Package fixed provides fixed-point number types.
//
// UnitInterval[T] encodes the closed interval [0,1] in an unsigned integer
// where the maximum value of T stands for 1. Number[R, F] is a general
// scaled integer: the represented value is raw × 2^E with E given by the
// format F. The helpers IntegralPart, Round, ToFloat and TruncateUnchecked
// operate on any Number whose format passes ValidateFormat.
package fixed

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// UnitInterval is a fixed-point value in [0,1] backed by T. The zero value
// represents 0.
//
// Add and Sub work on the raw encodings and do not check for overflow.
type UnitInterval[T constraints.Unsigned] struct {
	data T
}

// Fixed32 is the 32-bit unit interval type.
type Fixed32 = UnitInterval[uint32]

// unitOne is the encoding of 1.
func unitOne[T constraints.Unsigned]() T {
	return ^T(0)
}

// unitHalf is the encoding of 0.5.
func unitHalf[T constraints.Unsigned]() T {
	return ^T(0) / 2
}

// scaleUnit returns floor(v * one) with the product rounded to float32.
// The encodings of 1 for 32- and 64-bit T round up to 2^bits as floats;
// narrower encodings are exact, so the top of their range ends one step
// below one (254 for uint8).
func scaleUnit[T constraints.Unsigned](v float32) T {
	return T(v * float32(unitOne[T]()))
}

// NewUnitInterval encodes v after clamping it to [0,1]. NaN encodes as 0.
func NewUnitInterval[T constraints.Unsigned](v float32) UnitInterval[T] {
	switch {
	case v > 1:
		v = 1
	case v >= 0:
	default:
		// negative or NaN
		v = 0
	}
	if v < 0.5 {
		return UnitInterval[T]{data: scaleUnit[T](v)}
	}
	return UnitInterval[T]{data: scaleUnit[T](v-0.5) + unitHalf[T]()}
}

// NewUnitIntervalUnclamped encodes v, which the caller guarantees to lie in
// [0,1]. Values outside that range produce an unspecified encoding.
//
// Unlike NewUnitInterval, 0.5 itself takes the direct branch and encodes as
// half+1.
func NewUnitIntervalUnclamped[T constraints.Unsigned](v float32) UnitInterval[T] {
	if v <= 0.5 {
		return UnitInterval[T]{data: scaleUnit[T](v)}
	}
	return UnitInterval[T]{data: scaleUnit[T](v-0.5) + unitHalf[T]()}
}

// Wrap returns the value whose encoding is raw.
func Wrap[T constraints.Unsigned](raw T) UnitInterval[T] {
	return UnitInterval[T]{data: raw}
}

// Unwrap returns the encoding of x.
func Unwrap[T constraints.Unsigned](x UnitInterval[T]) T {
	return x.data
}

// UnitZero, UnitHalf and UnitOne return the encodings of 0, 0.5 and 1.
func UnitZero[T constraints.Unsigned]() UnitInterval[T] { return UnitInterval[T]{} }
func UnitHalf[T constraints.Unsigned]() UnitInterval[T] { return Wrap(unitHalf[T]()) }
func UnitOne[T constraints.Unsigned]() UnitInterval[T]  { return Wrap(unitOne[T]()) }

// Raw returns the encoding of x.
func (x UnitInterval[T]) Raw() T { return x.data }

// Add returns the sum of the encodings. Overflow wraps.
func (x UnitInterval[T]) Add(y UnitInterval[T]) UnitInterval[T] {
	return UnitInterval[T]{data: x.data + y.data}
}

// Sub returns the difference of the encodings. Underflow wraps.
func (x UnitInterval[T]) Sub(y UnitInterval[T]) UnitInterval[T] {
	return UnitInterval[T]{data: x.data - y.data}
}

func (x UnitInterval[T]) Equal(y UnitInterval[T]) bool        { return x.data == y.data }
func (x UnitInterval[T]) Less(y UnitInterval[T]) bool         { return x.data < y.data }
func (x UnitInterval[T]) LessEqual(y UnitInterval[T]) bool    { return x.data <= y.data }
func (x UnitInterval[T]) Greater(y UnitInterval[T]) bool      { return x.data > y.data }
func (x UnitInterval[T]) GreaterEqual(y UnitInterval[T]) bool { return x.data >= y.data }

// Compare returns -1, 0 or +1 depending on whether x is less than, equal to
// or greater than y.
func (x UnitInterval[T]) Compare(y UnitInterval[T]) int {
	switch {
	case x.data < y.data:
		return -1
	case x.data > y.data:
		return 1
	default:
		return 0
	}
}

// Float32 returns an approximation of x. Intended for display only: the
// conversion is not an inverse of NewUnitInterval.
func (x UnitInterval[T]) Float32() float32 {
	return float32(x.data) / float32(unitOne[T]())
}

// Float64 is like Float32 with double precision.
func (x UnitInterval[T]) Float64() float64 {
	return float64(x.data) / float64(unitOne[T]())
}

func (x UnitInterval[T]) String() string {
	return fmt.Sprintf("%g", x.Float64())
}

// UnitToFloat returns x.Float32().
func UnitToFloat[T constraints.Unsigned](x UnitInterval[T]) float32 {
	return x.Float32()
}
