/*
 * atomicdata.go, part of gomol.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

import "strings"

// Element is the standard-case symbol of a supported element ("C", "Cl").
type Element string

// The supported elements.
const (
	H  Element = "H"
	He Element = "He"
	C  Element = "C"
	N  Element = "N"
	O  Element = "O"
	S  Element = "S"
	F  Element = "F"
	Cl Element = "Cl"
	Ne Element = "Ne"
	Ar Element = "Ar"
)

var symbols = []Element{H, He, C, N, O, S, F, Cl, Ne, Ar}

// The tables are keyed by the upper-case symbol, so lookups are case-insensitive.

var symbolValence = map[string]int{
	"H": 1, "HE": 0,
	"C":  4,
	"N":  3,
	"O":  2, "S": 2,
	"F": 1, "CL": 1,
	"NE": 0, "AR": 0,
}

var symbolNuclearCharge = map[string]int{
	"H": 1, "HE": 2,
	"C":  6,
	"N":  7,
	"O":  8, "S": 16,
	"F": 9, "CL": 17,
	"NE": 10, "AR": 18,
}

var symbolLonePairs = map[string]int{
	"H": 0, "HE": 1,
	"C":  0,
	"N":  1,
	"O":  2, "S": 2,
	"F": 3, "CL": 3,
	"NE": 4, "AR": 4,
}

// Symbols returns the supported elements.
func Symbols() []Element {
	ret := make([]Element, len(symbols))
	copy(ret, symbols)
	return ret
}

// StandardCase returns sym with the first letter capitalized and the rest in
// lower case ("CL" -> "Cl"). It does not check that sym is a supported element.
func StandardCase(sym string) string {
	sym = strings.TrimSpace(sym)
	if sym == "" {
		return sym
	}
	return strings.ToUpper(sym[:1]) + strings.ToLower(sym[1:])
}

// IsSymbol returns true if sym (in any case) is a supported element.
func IsSymbol(sym string) bool {
	_, ok := symbolValence[strings.ToUpper(strings.TrimSpace(sym))]
	return ok
}

// ParseElement returns the Element for sym, which may be given in any case.
func ParseElement(sym string) (Element, error) {
	if !IsSymbol(sym) {
		return "", newError(ErrUnknownElement, "ParseElement", "%q", sym)
	}
	return Element(StandardCase(sym)), nil
}

func lookup(table map[string]int, sym, caller string) (int, error) {
	v, ok := table[strings.ToUpper(strings.TrimSpace(sym))]
	if !ok {
		return 0, newError(ErrUnknownElement, caller, "%q", sym)
	}
	return v, nil
}

// Valence returns the bonding valence of the element sym.
func Valence(sym string) (int, error) {
	return lookup(symbolValence, sym, "Valence")
}

// NuclearCharge returns the nuclear charge (atomic number) of the element sym.
func NuclearCharge(sym string) (int, error) {
	return lookup(symbolNuclearCharge, sym, "NuclearCharge")
}

// LonePairCount returns the number of lone pairs of the element sym.
func LonePairCount(sym string) (int, error) {
	return lookup(symbolLonePairs, sym, "LonePairCount")
}
