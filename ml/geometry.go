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

package ml

import "github.com/ajroetker/go-ml/vec"

// Plane is the plane a*x + b*y + c*z + d = 0 stored as (a, b, c, d).
// The zero value is degenerate; use DefaultPlane for the plane with a zero
// normal and d = 1.
type Plane struct {
	Coeffs Vec4
}

func DefaultPlane() Plane {
	return Plane{Coeffs: OriginVec4()}
}

func NewPlane(a, b, c, d float32) Plane {
	return Plane{Coeffs: NewVec4(a, b, c, d)}
}

// PlaneFromNormal builds the plane with normal n and offset d.
func PlaneFromNormal(n vec.Vec3, d float32) Plane {
	return Plane{Coeffs: Vec4FromVec3W(n, d)}
}

// Normal returns (a, b, c).
func (p Plane) Normal() vec.Vec3 {
	return p.Coeffs.XYZ()
}

// Distance returns the signed distance from pt to the plane, positive on
// the side the normal points to. The normal need not be unit length.
func (p Plane) Distance(pt vec.Vec3) float32 {
	n := p.Normal()
	return (n.Dot(pt) + p.Coeffs.W) / n.Length()
}

// Linear is a vector type a Line can be built over.
type Linear[T any] interface {
	Lerpable[T]
	Sub(o T) T
}

// Line is the parametric line Pos + Dir*t.
type Line[T Linear[T]] struct {
	Pos, Dir T
}

// CreateLine returns the line through p1 and p2, with p1 at t = 0 and p2 at
// t = 1.
func CreateLine[T Linear[T]](p1, p2 T) Line[T] {
	return Line[T]{Pos: p1, Dir: p2.Sub(p1)}
}

// EvaluateAt returns the point at parameter t.
func (l Line[T]) EvaluateAt(t float32) T {
	return l.Pos.Add(l.Dir.Scale(t))
}
