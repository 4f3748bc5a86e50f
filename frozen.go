/*
 * frozen.go, part of gomol.
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
	"strconv"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// FrozenAtom is an atom record together with its key.
type FrozenAtom struct {
	Key  int
	Atom Atom
}

// FrozenBond is a bond record together with its key.
type FrozenBond struct {
	Key  BondKey
	Bond Bond
}

// Frozen is the canonical form of a Graph: atoms sorted by key and bonds sorted
// by their (A, B) keys. Two graphs with the same atoms and bonds have equal Frozen
// forms regardless of the order in which they were built.
type Frozen struct {
	Atoms []FrozenAtom
	Bonds []FrozenBond
}

// Frozen returns the canonical form of G.
func (G *Graph) Frozen() Frozen {
	atree := redblacktree.NewWith(utils.IntComparator)
	for k, a := range G.atoms {
		atree.Put(k, a)
	}
	btree := redblacktree.NewWith(bondKeyComparator)
	for k, b := range G.bonds {
		btree.Put(k, b)
	}
	F := Frozen{Atoms: make([]FrozenAtom, 0, atree.Size()), Bonds: make([]FrozenBond, 0, btree.Size())}
	it := atree.Iterator()
	for it.Next() {
		F.Atoms = append(F.Atoms, FrozenAtom{Key: it.Key().(int), Atom: it.Value().(Atom)})
	}
	it = btree.Iterator()
	for it.Next() {
		F.Bonds = append(F.Bonds, FrozenBond{Key: it.Key().(BondKey), Bond: it.Value().(Bond)})
	}
	return F
}

func bondKeyComparator(a, b interface{}) int {
	return CompareBondKeys(a.(BondKey), b.(BondKey))
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// CompareBondKeys orders bond keys by their smallest atom key, then by the largest.
func CompareBondKeys(a, b BondKey) int {
	a = NewBondKey(a.A, a.B)
	b = NewBondKey(b.A, b.B)
	if c := compareInts(a.A, b.A); c != 0 {
		return c
	}
	return compareInts(a.B, b.B)
}

// CompareParities puts Unset before any set value, and False before True.
func CompareParities(a, b Parity) int {
	rank := func(p Parity) int {
		switch p {
		case Unset:
			return 0
		case False:
			return 1
		case True:
			return 2
		}
		return 3 + int(p) //invalid parities can't be in a graph, this just keeps the order total.
	}
	return compareInts(rank(a), rank(b))
}

// CompareAtoms orders atom records by symbol, implicit hydrogens and parity, in that order.
func CompareAtoms(a, b Atom) int {
	if c := strings.Compare(string(a.Symbol), string(b.Symbol)); c != 0 {
		return c
	}
	if c := compareInts(a.ImplicitHydrogens, b.ImplicitHydrogens); c != 0 {
		return c
	}
	return CompareParities(a.Parity, b.Parity)
}

// CompareBonds orders bond records by order, then parity.
func CompareBonds(a, b Bond) int {
	if c := compareInts(a.Order, b.Order); c != 0 {
		return c
	}
	return CompareParities(a.Parity, b.Parity)
}

// Compare defines a total order on frozen graphs. It returns -1, 0 or 1
// if F sorts before, equal to, or after O.
func (F Frozen) Compare(O Frozen) int {
	for i := 0; i < len(F.Atoms) && i < len(O.Atoms); i++ {
		if c := compareInts(F.Atoms[i].Key, O.Atoms[i].Key); c != 0 {
			return c
		}
		if c := CompareAtoms(F.Atoms[i].Atom, O.Atoms[i].Atom); c != 0 {
			return c
		}
	}
	if c := compareInts(len(F.Atoms), len(O.Atoms)); c != 0 {
		return c
	}
	for i := 0; i < len(F.Bonds) && i < len(O.Bonds); i++ {
		if c := CompareBondKeys(F.Bonds[i].Key, O.Bonds[i].Key); c != 0 {
			return c
		}
		if c := CompareBonds(F.Bonds[i].Bond, O.Bonds[i].Bond); c != 0 {
			return c
		}
	}
	return compareInts(len(F.Bonds), len(O.Bonds))
}

// Equal returns true if F and O represent the same graph.
func (F Frozen) Equal(O Frozen) bool {
	return F.Compare(O) == 0
}

func paritySymbol(p Parity) byte {
	switch p {
	case False:
		return '-'
	case True:
		return '+'
	}
	return '.'
}

// Key returns a string that identifies the graph. Two frozen forms have the same key if
// and only if they are Equal, so the key can be used in maps and as a database key.
// The format is "key:symbol:implicitH:parity;..." for the atoms, then "/", then
// "a-b:order:parity;..." for the bonds. Parities are written '.', '-' and '+'.
func (F Frozen) Key() string {
	var b strings.Builder
	for i, a := range F.Atoms {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(a.Key))
		b.WriteByte(':')
		b.WriteString(string(a.Atom.Symbol))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(a.Atom.ImplicitHydrogens))
		b.WriteByte(':')
		b.WriteByte(paritySymbol(a.Atom.Parity))
	}
	b.WriteByte('/')
	for i, bo := range F.Bonds {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(bo.Key.A))
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(bo.Key.B))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(bo.Bond.Order))
		b.WriteByte(':')
		b.WriteByte(paritySymbol(bo.Bond.Parity))
	}
	return b.String()
}

func (F Frozen) String() string {
	return F.Key()
}
