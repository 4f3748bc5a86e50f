/*
 * valence.go, part of gomol.
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

import "sort"

// AtomNeighborKeys returns, in ascending order, the keys of the atoms bonded to atom k.
func (G *Graph) AtomNeighborKeys(k int) []int {
	ret := make([]int, 0, 4)
	for b := range G.bonds {
		if b.Contains(k) {
			ret = append(ret, b.Other(k))
		}
	}
	sort.Ints(ret)
	return ret
}

// AtomBondValences returns, for each atom, the number of implicit hydrogens plus the
// sum of the orders of its bonds.
func (G *Graph) AtomBondValences() map[int]int {
	ret := make(map[int]int, len(G.atoms))
	for k, a := range G.atoms {
		ret[k] = a.ImplicitHydrogens
	}
	for k, b := range G.bonds {
		ret[k.A] += b.Order
		ret[k.B] += b.Order
	}
	return ret
}

// AtomUnsaturatedValences returns, for each atom, its element's valence minus its
// bond valence (see AtomBondValences). Negative values mean the atom is over-bonded.
func (G *Graph) AtomUnsaturatedValences() (map[int]int, error) {
	bv := G.AtomBondValences()
	ret := make(map[int]int, len(bv))
	for k, a := range G.atoms {
		v, err := Valence(string(a.Symbol))
		if err != nil {
			return nil, errDecorate(err, "AtomUnsaturatedValences")
		}
		ret[k] = v - bv[k]
	}
	return ret, nil
}

// Formula returns the number of atoms of each element in G, counting implicit hydrogens.
func (G *Graph) Formula() map[Element]int {
	ret := make(map[Element]int)
	for _, a := range G.atoms {
		ret[a.Symbol]++
		if a.ImplicitHydrogens > 0 {
			ret[H] += a.ImplicitHydrogens
		}
	}
	return ret
}
