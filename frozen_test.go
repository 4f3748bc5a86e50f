/*
 * frozen_test.go, part of gomol.
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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrozenOrderIndependent(Te *testing.T) {
	A, err := FromData(GraphData{
		Symbols: map[int]string{3: "O", 1: "C", 2: "H"},
		Bonds:   []BondKey{{3, 1}, {2, 1}},
	})
	require.NoError(Te, err)
	B, err := EmptyGraph().AddAtoms(map[int]string{2: "h"}, nil, nil)
	require.NoError(Te, err)
	B, err = B.AddAtoms(map[int]string{1: "C", 3: "O"}, nil, nil)
	require.NoError(Te, err)
	B, err = B.AddBonds([]BondKey{{1, 2}, {1, 3}}, nil, nil)
	require.NoError(Te, err)

	FA, FB := A.Frozen(), B.Frozen()
	assert.Equal(Te, FA, FB)
	assert.Equal(Te, 0, FA.Compare(FB))
	assert.Equal(Te, FA.Key(), FB.Key())
	assert.Equal(Te, "1:C:0:.;2:H:0:.;3:O:0:./1-2:1:.;1-3:1:.", FA.Key())
	assert.Equal(Te, []int{1, 2, 3}, []int{FA.Atoms[0].Key, FA.Atoms[1].Key, FA.Atoms[2].Key})
	assert.Equal(Te, FA.Key(), A.String())
}

func TestFrozenDistinguishes(Te *testing.T) {
	G := vinylChloride(Te)
	variants := []*Graph{G, G.WithoutBondOrders()}
	g, err := G.SetAtomStereoParities(map[int]Parity{1: True})
	require.NoError(Te, err)
	variants = append(variants, g)
	g, err = G.SetAtomStereoParities(map[int]Parity{1: False})
	require.NoError(Te, err)
	variants = append(variants, g)
	g, err = G.SetAtomImplicitHydrogenValences(map[int]int{2: 1})
	require.NoError(Te, err)
	variants = append(variants, g)
	keys := make(map[string]bool)
	for i, v := range variants {
		keys[v.Frozen().Key()] = true
		for j, w := range variants {
			assert.Equal(Te, i == j, v.Equal(w), "%d vs %d", i, j)
		}
	}
	assert.Len(Te, keys, len(variants))
}

func TestFrozenOrder(Te *testing.T) {
	assert.Equal(Te, -1, CompareParities(Unset, False))
	assert.Equal(Te, -1, CompareParities(False, True))
	assert.Equal(Te, 1, CompareParities(True, Unset))
	assert.Equal(Te, 0, CompareParities(True, True))
	assert.Equal(Te, 0, CompareBondKeys(BondKey{1, 2}, BondKey{2, 1}))
	assert.Equal(Te, -1, CompareBondKeys(BondKey{1, 9}, BondKey{3, 2}))
	assert.Equal(Te, -1, CompareAtoms(Atom{Symbol: C}, Atom{Symbol: C, Parity: False}))
	assert.Equal(Te, 1, CompareBonds(Bond{Order: 2}, Bond{Order: 1, Parity: True}))

	G := vinylChloride(Te)
	unset := G.Frozen()
	g, err := G.SetAtomStereoParities(map[int]Parity{0: False})
	require.NoError(Te, err)
	f := g.Frozen()
	g, err = G.SetAtomStereoParities(map[int]Parity{0: True})
	require.NoError(Te, err)
	t := g.Frozen()
	fs := []Frozen{t, unset, f}
	sort.Slice(fs, func(i, j int) bool { return fs[i].Compare(fs[j]) < 0 })
	assert.Equal(Te, []Frozen{unset, f, t}, fs)

	empty := EmptyGraph().Frozen()
	assert.Equal(Te, -1, empty.Compare(unset))
	assert.Equal(Te, "/", empty.Key())
}
