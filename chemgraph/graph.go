/*
 * graph.go, part of gomol.
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

// Package chemgraph exposes goMol molecular graphs as gonum graphs, so the
// algorithms in gonum.org/v1/gonum/graph can be used on them.
package chemgraph

import (
	"math"
	"sort"

	chem "github.com/rmera/gomol"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Topology implements gonum's graph.Undirected and graph.WeightedUndirected
// interfaces. Node IDs are the atom keys, and edge weights are the bond orders.
// A Topology is a snapshot: it doesn't follow later versions of the graph it was built from.
type Topology struct {
	*simple.WeightedUndirectedGraph
	mol *chem.Graph
}

// New builds a Topology from mol.
func New(mol *chem.Graph) *Topology {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, k := range mol.AtomKeys() {
		g.AddNode(simple.Node(int64(k)))
	}
	for k, b := range mol.Bonds() {
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(int64(k.A)), T: simple.Node(int64(k.B)), W: float64(b.Order)})
	}
	return &Topology{WeightedUndirectedGraph: g, mol: mol}
}

// Molecule returns the graph T was built from.
func (T *Topology) Molecule() *chem.Graph {
	return T.mol
}

// hops hides the weights of a topology, so path searches count bonds
// instead of adding up bond orders.
type hops struct {
	graph.Undirected
}

func keys(nodes []graph.Node) []int {
	ret := make([]int, len(nodes))
	for i, n := range nodes {
		ret[i] = int(n.ID())
	}
	return ret
}

func sortFragments(frags [][]int) [][]int {
	for _, f := range frags {
		sort.Ints(f)
	}
	sort.Slice(frags, func(i, j int) bool { return frags[i][0] < frags[j][0] })
	return frags
}

// Fragments returns the atom keys of each connected fragment of mol. The keys in each
// fragment are sorted, and fragments are sorted by their smallest key.
func Fragments(mol *chem.Graph) [][]int {
	if mol.Len() == 0 {
		return nil
	}
	cc := topo.ConnectedComponents(New(mol))
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		ret = append(ret, keys(c))
	}
	return sortFragments(ret)
}

// Rings returns the atom keys of each ring in a cycle basis of mol, i.e. a set of rings from
// which any ring in mol can be built. The keys in each ring are sorted.
func Rings(mol *chem.Graph) [][]int {
	cycles := topo.UndirectedCyclesIn(New(mol))
	ret := make([][]int, 0, len(cycles))
	for _, c := range cycles {
		if len(c) > 1 && c[0].ID() == c[len(c)-1].ID() {
			c = c[:len(c)-1] //the first node is repeated at the end.
		}
		ret = append(ret, keys(c))
	}
	if len(ret) == 0 {
		return nil
	}
	return sortFragments(ret)
}

// ShortestPath returns the keys of the atoms in a shortest path (fewest bonds) from
// atom from to atom to, both included. It returns nil if either atom is not in mol, or
// if there is no path between them.
func ShortestPath(mol *chem.Graph, from, to int) []int {
	T := New(mol)
	if T.Node(int64(from)) == nil || T.Node(int64(to)) == nil {
		return nil
	}
	sh := path.DijkstraFrom(simple.Node(int64(from)), hops{T})
	p, _ := sh.To(int64(to))
	if len(p) == 0 {
		return nil
	}
	return keys(p)
}
