/*
 * geometry.go, part of gomol.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chem

import (
	"math"

	v3 "github.com/rmera/gomol/v3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerances used by Geometry.AlmostEqual.
const (
	AbsTol = 1e-8
	RelTol = 1e-5
)

// Geometry is an ordered set of atoms with cartesian coordinates, in Angstrom.
// The ith atom of a Geometry becomes the atom with key i in its connectivity graph.
// A Geometry can't be changed after it is built.
type Geometry struct {
	symbols []Element
	coords  *v3.Matrix //nil for an empty geometry, as gonum can't have 0-row matrices
}

// NewGeometry returns a geometry with the given symbols and coordinates, in Angstrom.
// Each element of coords must have exactly 3 finite components.
func NewGeometry(symbols []string, coords [][]float64) (*Geometry, error) {
	if len(symbols) != len(coords) {
		return nil, newError(ErrLengthMismatch, "NewGeometry", "%d symbols, %d coordinates", len(symbols), len(coords))
	}
	G := &Geometry{symbols: make([]Element, len(symbols))}
	for i, s := range symbols {
		if !IsSymbol(s) {
			return nil, newError(ErrInvalidElement, "NewGeometry", "atom %d has unsupported symbol %q", i, s)
		}
		G.symbols[i] = Element(StandardCase(s))
	}
	if len(coords) == 0 {
		return G, nil
	}
	data := make([]float64, 0, 3*len(coords))
	for i, c := range coords {
		if len(c) != 3 {
			return nil, newError(ErrInvalidCoordinate, "NewGeometry", "atom %d has %d coordinates, need 3", i, len(c))
		}
		data = append(data, c...)
	}
	m, err := v3.NewMatrix(data)
	if err != nil {
		return nil, newError(ErrInvalidCoordinate, "NewGeometry", "%s", err.Error())
	}
	if !m.Finite() {
		return nil, newError(ErrInvalidCoordinate, "NewGeometry", "non-finite coordinates")
	}
	G.coords = m
	return G, nil
}

// GeometryFromElements is like NewGeometry, but takes symbols and coordinates
// as Symbols and Coordinates return them.
func GeometryFromElements(symbols []Element, coords [][3]float64) (*Geometry, error) {
	syms := make([]string, len(symbols))
	for i, s := range symbols {
		syms[i] = string(s)
	}
	xyz := make([][]float64, len(coords))
	for i, c := range coords {
		xyz[i] = []float64{c[0], c[1], c[2]}
	}
	G, err := NewGeometry(syms, xyz)
	return G, errDecorate(err, "GeometryFromElements")
}

// GeometryFromBohr is like NewGeometry, but coords are given in Bohr.
func GeometryFromBohr(symbols []string, coords [][]float64) (*Geometry, error) {
	conv := make([][]float64, len(coords))
	for i, c := range coords {
		conv[i] = make([]float64, len(c))
		for j, v := range c {
			conv[i][j] = v * Bohr2A
		}
	}
	G, err := NewGeometry(symbols, conv)
	return G, errDecorate(err, "GeometryFromBohr")
}

// Len returns the number of atoms in G.
func (G *Geometry) Len() int {
	return len(G.symbols)
}

// Symbols returns the atomic symbols of G, in order.
func (G *Geometry) Symbols() []Element {
	ret := make([]Element, len(G.symbols))
	copy(ret, G.symbols)
	return ret
}

// Coordinates returns the coordinates of the atoms of G, in order.
func (G *Geometry) Coordinates() [][3]float64 {
	ret := make([][3]float64, len(G.symbols))
	for i := range ret {
		ret[i] = G.coords.Vec(i)
	}
	return ret
}

// Coord returns the coordinates of the ith atom. Panics if i is out of range.
func (G *Geometry) Coord(i int) [3]float64 {
	if i < 0 || i >= G.Len() {
		panic(v3.ErrIndexOutOfRange)
	}
	return G.coords.Vec(i)
}

// Matrix returns a copy of the coordinates of G, or nil if G is empty.
func (G *Geometry) Matrix() *v3.Matrix {
	if G.coords == nil {
		return nil
	}
	return G.coords.Clone()
}

// Distance returns the distance between atoms i and j.
func (G *Geometry) Distance(i, j int) float64 {
	return G.coords.Dist(i, j)
}

// AlmostEqual returns true if G and O have the same symbols, in the same order, and
// each coordinate a of G and the matching b of O satisfy |a-b| <= AbsTol + RelTol*|b|.
// The tolerance is relative to O, so the comparison is not symmetric.
func (G *Geometry) AlmostEqual(O *Geometry) bool {
	if G.Len() != O.Len() {
		return false
	}
	for i, s := range G.symbols {
		if O.symbols[i] != s {
			return false
		}
	}
	for i := 0; i < G.Len(); i++ {
		a := G.coords.RawRowView(i)
		b := O.coords.RawRowView(i)
		for j := range a {
			if !scalar.EqualWithinAbs(a[j], b[j], AbsTol+RelTol*math.Abs(b[j])) {
				return false
			}
		}
	}
	return true
}
