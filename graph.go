/*
 * graph.go, part of gomol.
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
	"fmt"
	"sort"
)

/**Note: A Graph is a value. No method here changes its receiver: the "setters"
 * return a new Graph with its own maps. This means a Graph can be read from many
 * goroutines without any locking, and that keeping a reference to an old Graph
 * is always safe.**/

// Parity is a stereo parity: unset, false or true.
// The zero value is Unset.
type Parity int8

const (
	Unset Parity = iota
	False
	True
)

// ParityOf returns the Parity corresponding to b.
func ParityOf(b bool) Parity {
	if b {
		return True
	}
	return False
}

// Valid returns true if P is one of Unset, False or True.
func (P Parity) Valid() bool {
	return P >= Unset && P <= True
}

// Bool returns the value of the parity, and whether it is set at all.
func (P Parity) Bool() (value, ok bool) {
	return P == True, P == True || P == False
}

func (P Parity) String() string {
	switch P {
	case Unset:
		return "unset"
	case False:
		return "false"
	case True:
		return "true"
	}
	return fmt.Sprintf("Parity(%d)", int8(P))
}

// Atom is the record kept for each atom in a Graph.
type Atom struct {
	Symbol            Element
	ImplicitHydrogens int //hydrogens attached to this atom but not present in the graph
	Parity            Parity
}

// BondKey identifies a bond by its two atom keys. Bonds are not directional,
// so a BondKey is always kept with A < B. Use NewBondKey to build one.
type BondKey struct {
	A, B int
}

// NewBondKey returns the key of the bond between atoms i and j, in any order.
func NewBondKey(i, j int) BondKey {
	if i > j {
		i, j = j, i
	}
	return BondKey{A: i, B: j}
}

// Atoms returns the two atom keys of the bond, smallest first.
func (K BondKey) Atoms() [2]int {
	K = NewBondKey(K.A, K.B)
	return [2]int{K.A, K.B}
}

// Contains returns true if the atom with key k is one of the ends of the bond.
func (K BondKey) Contains(k int) bool {
	return K.A == k || K.B == k
}

// Other returns the key of the atom at the other end of the bond from k.
// Panics if k is not one of the ends of the bond.
func (K BondKey) Other(k int) int {
	switch k {
	case K.A:
		return K.B
	case K.B:
		return K.A
	}
	panic(fmt.Sprintf("Trying to cross bond %v from atom %d, which is not in the bond", K, k)) //programming error.
}

func (K BondKey) String() string {
	return fmt.Sprintf("%d-%d", K.A, K.B)
}

// Bond is the record kept for each bond in a Graph.
type Bond struct {
	Order  int
	Parity Parity
}

// Graph is a molecular graph: atoms keyed by caller-assigned non-negative integers,
// and bonds keyed by the unordered pair of their atom keys.
type Graph struct {
	atoms map[int]Atom
	bonds map[BondKey]Bond
}

// GraphData contains everything needed to build a graph in one go with FromData.
// Only Symbols is mandatory. The other maps, if given, must only refer to atoms
// in Symbols and bonds in Bonds, respectively.
type GraphData struct {
	Symbols           map[int]string
	Bonds             []BondKey
	ImplicitHydrogens map[int]int
	AtomParities      map[int]Parity
	BondOrders        map[BondKey]int
	BondParities      map[BondKey]Parity
}

// EmptyGraph returns a graph with no atoms and no bonds.
func EmptyGraph() *Graph {
	return &Graph{atoms: make(map[int]Atom), bonds: make(map[BondKey]Bond)}
}

// FromData builds a graph from the data in d.
func FromData(d GraphData) (*Graph, error) {
	G, err := EmptyGraph().AddAtoms(d.Symbols, d.ImplicitHydrogens, d.AtomParities)
	if err != nil {
		return nil, errDecorate(err, "FromData")
	}
	G, err = G.AddBonds(d.Bonds, d.BondOrders, d.BondParities)
	if err != nil {
		return nil, errDecorate(err, "FromData")
	}
	return G, nil
}

// FromAtomsAndBonds builds a graph from complete atom and bond records.
// The records are validated just like in AddAtoms and AddBonds, and each bond
// can only be given once.
func FromAtomsAndBonds(atoms map[int]Atom, bonds map[BondKey]Bond) (*Graph, error) {
	bonds, err := canonicalBondMap("FromAtomsAndBonds", bonds)
	if err != nil {
		return nil, err
	}
	d := GraphData{
		Symbols:           make(map[int]string, len(atoms)),
		ImplicitHydrogens: make(map[int]int, len(atoms)),
		AtomParities:      make(map[int]Parity, len(atoms)),
		Bonds:             make([]BondKey, 0, len(bonds)),
		BondOrders:        make(map[BondKey]int, len(bonds)),
		BondParities:      make(map[BondKey]Parity, len(bonds)),
	}
	for k, a := range atoms {
		d.Symbols[k] = string(a.Symbol)
		d.ImplicitHydrogens[k] = a.ImplicitHydrogens
		d.AtomParities[k] = a.Parity
	}
	for k, b := range bonds {
		d.Bonds = append(d.Bonds, k)
		d.BondOrders[k] = b.Order
		d.BondParities[k] = b.Parity
	}
	G, err := FromData(d)
	return G, errDecorate(err, "FromAtomsAndBonds")
}

// clone returns a copy of G with its own maps.
func (G *Graph) clone() *Graph {
	ret := &Graph{atoms: make(map[int]Atom, len(G.atoms)), bonds: make(map[BondKey]Bond, len(G.bonds))}
	for k, v := range G.atoms {
		ret.atoms[k] = v
	}
	for k, v := range G.bonds {
		ret.bonds[k] = v
	}
	return ret
}

func checkAtomValues(caller string, key int, sym string, nh int, par Parity) (Atom, error) {
	if key < 0 {
		return Atom{}, newError(ErrInvalidAtom, caller, "atom key %d is negative", key)
	}
	if !IsSymbol(sym) {
		return Atom{}, newError(ErrInvalidAtom, caller, "atom %d has unsupported symbol %q", key, sym)
	}
	if nh < 0 {
		return Atom{}, newError(ErrInvalidAtom, caller, "atom %d has a negative implicit hydrogen count (%d)", key, nh)
	}
	if !par.Valid() {
		return Atom{}, newError(ErrInvalidAtom, caller, "atom %d has invalid stereo parity %v", key, par)
	}
	return Atom{Symbol: Element(StandardCase(sym)), ImplicitHydrogens: nh, Parity: par}, nil
}

func checkBondValues(caller string, key BondKey, order int, par Parity) (Bond, error) {
	if order < 1 {
		return Bond{}, newError(ErrInvalidBond, caller, "bond %v has order %d, must be at least 1", key, order)
	}
	if !par.Valid() {
		return Bond{}, newError(ErrInvalidBond, caller, "bond %v has invalid stereo parity %v", key, par)
	}
	return Bond{Order: order, Parity: par}, nil
}

// AddAtoms returns a new graph with the atoms in symbols added to those of G.
// implicitH and parities are optional (nil is fine), missing entries default to
// 0 implicit hydrogens and Unset parity. It is an error to add an atom whose key is
// already present in G.
func (G *Graph) AddAtoms(symbols map[int]string, implicitH map[int]int, parities map[int]Parity) (*Graph, error) {
	for _, k := range sortedIntKeys(implicitH) {
		if _, ok := symbols[k]; !ok {
			return nil, newError(ErrInvalidAtom, "AddAtoms", "implicit hydrogen count given for atom %d, which is not being added", k)
		}
	}
	for _, k := range sortedIntKeys(parities) {
		if _, ok := symbols[k]; !ok {
			return nil, newError(ErrInvalidAtom, "AddAtoms", "stereo parity given for atom %d, which is not being added", k)
		}
	}
	ret := G.clone()
	for _, k := range sortedIntKeys(symbols) {
		if _, ok := G.atoms[k]; ok {
			return nil, newError(ErrDuplicateAtomKey, "AddAtoms", "atom %d is already in the graph", k)
		}
		a, err := checkAtomValues("AddAtoms", k, symbols[k], implicitH[k], parities[k])
		if err != nil {
			return nil, err
		}
		ret.atoms[k] = a
	}
	return ret, nil
}

// AddBonds returns a new graph with the bonds in keys added to those of G.
// orders and parities are optional, missing entries default to order 1 and Unset parity.
// Both atoms of every bond must already be in G. Adding a bond that is already in G
// replaces its record. A bond can appear only once in orders and in parities, in
// either atom order.
func (G *Graph) AddBonds(keys []BondKey, orders map[BondKey]int, parities map[BondKey]Parity) (*Graph, error) {
	inkeys := make(map[BondKey]bool, len(keys))
	for _, k := range keys {
		inkeys[NewBondKey(k.A, k.B)] = true
	}
	nord, err := canonicalBondMap("AddBonds", orders)
	if err != nil {
		return nil, err
	}
	for _, k := range sortedBondKeys(nord) {
		if !inkeys[k] {
			return nil, newError(ErrInvalidBond, "AddBonds", "order given for bond %v, which is not being added", k)
		}
	}
	npar, err := canonicalBondMap("AddBonds", parities)
	if err != nil {
		return nil, err
	}
	for _, k := range sortedBondKeys(npar) {
		if !inkeys[k] {
			return nil, newError(ErrInvalidBond, "AddBonds", "stereo parity given for bond %v, which is not being added", k)
		}
	}
	ret := G.clone()
	for _, k := range keys {
		c := NewBondKey(k.A, k.B)
		if c.A == c.B {
			return nil, newError(ErrInvalidBond, "AddBonds", "atom %d can't be bonded to itself", c.A)
		}
		for _, at := range c.Atoms() {
			if _, ok := G.atoms[at]; !ok {
				return nil, newError(ErrUnknownAtomReference, "AddBonds", "bond %v references atom %d, which is not in the graph", c, at)
			}
		}
		order, ok := nord[c]
		if !ok {
			order = 1
		}
		b, err := checkBondValues("AddBonds", c, order, npar[c])
		if err != nil {
			return nil, err
		}
		ret.bonds[c] = b
	}
	return ret, nil
}

// Len returns the number of atoms in G.
func (G *Graph) Len() int {
	return len(G.atoms)
}

// BondCount returns the number of bonds in G.
func (G *Graph) BondCount() int {
	return len(G.bonds)
}

// Atoms returns the atoms of G. The map is a copy, changing it does not affect G.
func (G *Graph) Atoms() map[int]Atom {
	ret := make(map[int]Atom, len(G.atoms))
	for k, v := range G.atoms {
		ret[k] = v
	}
	return ret
}

// Bonds returns the bonds of G. The map is a copy, changing it does not affect G.
func (G *Graph) Bonds() map[BondKey]Bond {
	ret := make(map[BondKey]Bond, len(G.bonds))
	for k, v := range G.bonds {
		ret[k] = v
	}
	return ret
}

// Atom returns the atom with key k, and whether it is in G.
func (G *Graph) Atom(k int) (Atom, bool) {
	a, ok := G.atoms[k]
	return a, ok
}

// Bond returns the bond with key k, and whether it is in G.
func (G *Graph) Bond(k BondKey) (Bond, bool) {
	b, ok := G.bonds[NewBondKey(k.A, k.B)]
	return b, ok
}

// AtomKeys returns the atom keys of G in ascending order.
func (G *Graph) AtomKeys() []int {
	return sortedIntKeys(G.atoms)
}

// BondKeys returns the bond keys of G, sorted by their first and then their second atom.
func (G *Graph) BondKeys() []BondKey {
	return sortedBondKeys(G.bonds)
}

// AtomSymbols returns the symbol of each atom, by atom key.
func (G *Graph) AtomSymbols() map[int]Element {
	ret := make(map[int]Element, len(G.atoms))
	for k, v := range G.atoms {
		ret[k] = v.Symbol
	}
	return ret
}

// AtomImplicitHydrogenValences returns the implicit hydrogen count of each atom, by atom key.
func (G *Graph) AtomImplicitHydrogenValences() map[int]int {
	ret := make(map[int]int, len(G.atoms))
	for k, v := range G.atoms {
		ret[k] = v.ImplicitHydrogens
	}
	return ret
}

// AtomStereoParities returns the stereo parity of each atom, by atom key.
func (G *Graph) AtomStereoParities() map[int]Parity {
	ret := make(map[int]Parity, len(G.atoms))
	for k, v := range G.atoms {
		ret[k] = v.Parity
	}
	return ret
}

// BondOrders returns the order of each bond, by bond key.
func (G *Graph) BondOrders() map[BondKey]int {
	ret := make(map[BondKey]int, len(G.bonds))
	for k, v := range G.bonds {
		ret[k] = v.Order
	}
	return ret
}

// BondStereoParities returns the stereo parity of each bond, by bond key.
func (G *Graph) BondStereoParities() map[BondKey]Parity {
	ret := make(map[BondKey]Parity, len(G.bonds))
	for k, v := range G.bonds {
		ret[k] = v.Parity
	}
	return ret
}

// SetAtomImplicitHydrogenValences returns a copy of G where the atoms in vals have
// the given implicit hydrogen counts. All keys in vals must be atoms of G.
func (G *Graph) SetAtomImplicitHydrogenValences(vals map[int]int) (*Graph, error) {
	ret := G.clone()
	for _, k := range sortedIntKeys(vals) {
		a, ok := ret.atoms[k]
		if !ok {
			return nil, newError(ErrUnknownKey, "SetAtomImplicitHydrogenValences", "atom %d is not in the graph", k)
		}
		a, err := checkAtomValues("SetAtomImplicitHydrogenValences", k, string(a.Symbol), vals[k], a.Parity)
		if err != nil {
			return nil, err
		}
		ret.atoms[k] = a
	}
	return ret, nil
}

// SetAtomStereoParities returns a copy of G where the atoms in vals have the given
// stereo parities. All keys in vals must be atoms of G.
func (G *Graph) SetAtomStereoParities(vals map[int]Parity) (*Graph, error) {
	ret := G.clone()
	for _, k := range sortedIntKeys(vals) {
		a, ok := ret.atoms[k]
		if !ok {
			return nil, newError(ErrUnknownKey, "SetAtomStereoParities", "atom %d is not in the graph", k)
		}
		a, err := checkAtomValues("SetAtomStereoParities", k, string(a.Symbol), a.ImplicitHydrogens, vals[k])
		if err != nil {
			return nil, err
		}
		ret.atoms[k] = a
	}
	return ret, nil
}

// SetBondOrders returns a copy of G where the bonds in vals have the given orders.
// All keys in vals must be bonds of G, each given only once.
func (G *Graph) SetBondOrders(vals map[BondKey]int) (*Graph, error) {
	vals, err := canonicalBondMap("SetBondOrders", vals)
	if err != nil {
		return nil, err
	}
	ret := G.clone()
	for _, k := range sortedBondKeys(vals) {
		b, ok := ret.bonds[k]
		if !ok {
			return nil, newError(ErrUnknownKey, "SetBondOrders", "bond %v is not in the graph", k)
		}
		b, err := checkBondValues("SetBondOrders", k, vals[k], b.Parity)
		if err != nil {
			return nil, err
		}
		ret.bonds[k] = b
	}
	return ret, nil
}

// SetBondStereoParities returns a copy of G where the bonds in vals have the given
// stereo parities. All keys in vals must be bonds of G, each given only once.
func (G *Graph) SetBondStereoParities(vals map[BondKey]Parity) (*Graph, error) {
	vals, err := canonicalBondMap("SetBondStereoParities", vals)
	if err != nil {
		return nil, err
	}
	ret := G.clone()
	for _, k := range sortedBondKeys(vals) {
		b, ok := ret.bonds[k]
		if !ok {
			return nil, newError(ErrUnknownKey, "SetBondStereoParities", "bond %v is not in the graph", k)
		}
		b, err := checkBondValues("SetBondStereoParities", k, b.Order, vals[k])
		if err != nil {
			return nil, err
		}
		ret.bonds[k] = b
	}
	return ret, nil
}

// WithoutBondOrders returns a copy of G with every bond order set to 1, i.e.
// the maximum-spin graph with no pi bonds.
func (G *Graph) WithoutBondOrders() *Graph {
	ret := G.clone()
	for k, b := range ret.bonds {
		b.Order = 1
		ret.bonds[k] = b
	}
	return ret
}

// WithoutStereoParities returns a copy of G with every atom and bond parity unset.
func (G *Graph) WithoutStereoParities() *Graph {
	ret := G.clone()
	for k, a := range ret.atoms {
		a.Parity = Unset
		ret.atoms[k] = a
	}
	for k, b := range ret.bonds {
		b.Parity = Unset
		ret.bonds[k] = b
	}
	return ret
}

// Equal returns true if G and O have the same atoms and bonds, with the same records.
func (G *Graph) Equal(O *Graph) bool {
	return G.Frozen().Equal(O.Frozen())
}

func (G *Graph) String() string {
	return G.Frozen().String()
}

//Some internal convenience functions.

func sortedIntKeys[V any](m map[int]V) []int {
	ret := make([]int, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Ints(ret)
	return ret
}

// canonicalBondMap returns a copy of m with every key in canonical (A < B) form.
// It is an error for two keys of m to name the same bond, e.g. {0,1} and {1,0}.
func canonicalBondMap[V any](caller string, m map[BondKey]V) (map[BondKey]V, error) {
	ret := make(map[BondKey]V, len(m))
	for _, k := range sortedBondKeys(m) {
		c := NewBondKey(k.A, k.B)
		if _, ok := ret[c]; ok {
			return nil, newError(ErrInvalidBond, caller, "bond %v is given more than once", c)
		}
		ret[c] = m[k]
	}
	return ret, nil
}

func sortedBondKeys[V any](m map[BondKey]V) []BondKey {
	ret := make([]BondKey, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool { return CompareBondKeys(ret[i], ret[j]) < 0 })
	return ret
}
