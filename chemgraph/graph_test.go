/*
 * graph_test.go, part of gomol.
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

package chemgraph

import (
	"testing"

	chem "github.com/rmera/gomol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cyclopropane (atoms 0-2) plus a separate water molecule (atoms 10-12)
// and a lone argon (20).
func testGraph(Te *testing.T) *chem.Graph {
	g, err := chem.FromData(chem.GraphData{
		Symbols:           map[int]string{0: "C", 1: "C", 2: "C", 10: "O", 11: "H", 12: "H", 20: "Ar"},
		Bonds:             []chem.BondKey{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 0}, {A: 10, B: 11}, {A: 12, B: 10}},
		ImplicitHydrogens: map[int]int{0: 2, 1: 2, 2: 2},
	})
	require.NoError(Te, err)
	return g
}

func TestTopology(Te *testing.T) {
	g := testGraph(Te)
	T := New(g)
	assert.Equal(Te, 7, T.Nodes().Len())
	assert.True(Te, T.HasEdgeBetween(0, 2))
	assert.False(Te, T.HasEdgeBetween(0, 10))
	w, ok := T.Weight(10, 11)
	assert.True(Te, ok)
	assert.Equal(Te, 1.0, w)
	assert.Same(Te, g, T.Molecule())
}

func TestFragments(Te *testing.T) {
	assert.Equal(Te, [][]int{{0, 1, 2}, {10, 11, 12}, {20}}, Fragments(testGraph(Te)))
	assert.Nil(Te, Fragments(chem.EmptyGraph()))
}

func TestRings(Te *testing.T) {
	assert.Equal(Te, [][]int{{0, 1, 2}}, Rings(testGraph(Te)))
	noring, err := chem.FromData(chem.GraphData{
		Symbols: map[int]string{0: "C", 1: "C", 2: "C"},
		Bonds:   []chem.BondKey{{A: 0, B: 1}, {A: 1, B: 2}},
	})
	require.NoError(Te, err)
	assert.Nil(Te, Rings(noring))
}

func TestShortestPath(Te *testing.T) {
	g, err := chem.FromData(chem.GraphData{
		Symbols:    map[int]string{0: "C", 1: "C", 2: "C", 3: "C", 4: "O"},
		Bonds:      []chem.BondKey{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}, {A: 0, B: 3}},
		BondOrders: map[chem.BondKey]int{{A: 0, B: 3}: 3},
	})
	require.NoError(Te, err)
	//the triple bond must not make the direct path look longer.
	assert.Equal(Te, []int{0, 3}, ShortestPath(g, 0, 3))
	assert.Equal(Te, []int{1}, ShortestPath(g, 1, 1))
	assert.Nil(Te, ShortestPath(g, 0, 4))
	assert.Nil(Te, ShortestPath(g, 0, 99))
}
