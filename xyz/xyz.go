/*
 * xyz.go, part of gomol.
 *
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

// Package xyz reads and writes cartesian geometries as text: bare blocks of
// "symbol x y z" lines, and XYZ files (atom count, comment line, block).
// Coordinates are in Angstrom.
package xyz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	chem "github.com/rmera/gomol"
)

// ErrFormat is wrapped by every error caused by ill-formed text.
var ErrFormat = errors.New("ill-formed xyz text")

type block struct {
	Lines []*line `parser:"( EOL | @@ )*"`
}

type line struct {
	Pos    lexer.Position
	Symbol string    `parser:"@Symbol"`
	Coords []float64 `parser:"@Float @Float @Float"`
}

var xyzLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Symbol", Pattern: `[A-Za-z]{1,2}`},
	{Name: "Float", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "EOL", Pattern: `(\r?\n)+`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

var parseBlock = participle.MustBuild[block](
	participle.Lexer(xyzLexer),
)

// String returns the geometry as lines of "symbol x y z".
func String(geo *chem.Geometry) string {
	syms := geo.Symbols()
	xyzs := geo.Coordinates()
	lines := make([]string, len(syms))
	for i, s := range syms {
		c := xyzs[i]
		lines[i] = fmt.Sprintf("%-2s %20.12f %20.12f %20.12f", s, c[0], c[1], c[2])
	}
	return strings.Join(lines, "\n")
}

// FromString reads a geometry from lines of "symbol x y z". Empty lines are ignored.
func FromString(geostr string) (*chem.Geometry, error) {
	b, err := parseBlock.ParseString("", geostr)
	if err != nil {
		return nil, errors.Wrap(ErrFormat, err.Error())
	}
	syms := make([]string, len(b.Lines))
	xyzs := make([][]float64, len(b.Lines))
	prev := 0
	for i, l := range b.Lines {
		if l.Pos.Line == prev {
			return nil, errors.Wrapf(ErrFormat, "line %d has more than one atom", l.Pos.Line)
		}
		prev = l.Pos.Line
		syms[i] = l.Symbol
		xyzs[i] = l.Coords
	}
	geo, err := chem.NewGeometry(syms, xyzs)
	if err != nil {
		return nil, errors.Wrap(err, "xyz.FromString")
	}
	return geo, nil
}

// DXYZString returns the geometry in the XYZ file format: the number of atoms, the
// comment line, and the geometry. comment can't contain a newline.
func DXYZString(geo *chem.Geometry, comment string) (string, error) {
	if strings.ContainsAny(comment, "\r\n") {
		return "", errors.Wrap(ErrFormat, "the comment line can't contain a newline")
	}
	return fmt.Sprintf("%d\n%s\n%s", geo.Len(), comment, String(geo)), nil
}

// FromDXYZString reads a geometry in the XYZ file format. It returns the geometry
// and the comment line. Lines after the declared number of atoms are ignored.
func FromDXYZString(dxyz string) (*chem.Geometry, string, error) {
	lines := strings.Split(strings.ReplaceAll(dxyz, "\r\n", "\n"), "\n")
	natoms, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || natoms < 0 {
		return nil, "", errors.Wrapf(ErrFormat, "first line %q is not an atom count", lines[0])
	}
	if len(lines) < natoms+2 {
		return nil, "", errors.Wrapf(ErrFormat, "%d atoms declared, only %d lines", natoms, len(lines))
	}
	comment := lines[1]
	geo, err := FromString(strings.Join(lines[2:natoms+2], "\n"))
	if err != nil {
		return nil, "", err
	}
	if geo.Len() != natoms {
		return nil, "", errors.Wrapf(ErrFormat, "%d atoms declared, %d read", natoms, geo.Len())
	}
	return geo, comment, nil
}
