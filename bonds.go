/*
 * bonds.go, part of gomol.
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

import "fmt"

// BondCutoffs are the distances, in Angstrom, under which two atoms are considered bonded.
// XH is used when at least one of the atoms is a hydrogen, XY otherwise.
type BondCutoffs struct {
	XY float64 `yaml:"xy" json:"xy" validate:"gt=0"`
	XH float64 `yaml:"xh" json:"xh" validate:"gt=0"`
}

// DefaultBondCutoffs returns the cutoffs used by ConnectivityGraph.
func DefaultBondCutoffs() BondCutoffs {
	return BondCutoffs{XY: XYBondMax, XH: XHBondMax}
}

// Validate returns an error if any cutoff is not a positive number.
func (B BondCutoffs) Validate() error {
	if !(B.XY > 0) || !(B.XH > 0) {
		return newError(ErrInvalidCutoff, "BondCutoffs.Validate", "cutoffs must be positive, got XY=%v XH=%v", B.XY, B.XH)
	}
	return nil
}

// ConnectivityGraph returns the graph of the atoms in geo with bonds assigned
// by the default distance cutoffs. See ConnectivityGraphWithCutoffs.
func ConnectivityGraph(geo *Geometry) *Graph {
	G, err := ConnectivityGraphWithCutoffs(geo, DefaultBondCutoffs())
	if err != nil {
		panic(fmt.Sprintf("ConnectivityGraph: can't build graph from a valid geometry: %s", err.Error())) //can't happen
	}
	return G
}

// ConnectivityGraphWithCutoffs returns the graph of the atoms in geo, where the atom at
// position i in geo gets the key i, and two atoms are bonded if their distance is strictly
// smaller than the corresponding cutoff. All bonds have order 1, all atoms have 0 implicit
// hydrogens, and all parities are unset.
// It checks every pair of atoms, which is fine for molecules but
// not thought for macromolecules.
func ConnectivityGraphWithCutoffs(geo *Geometry, cutoffs BondCutoffs) (*Graph, error) {
	if err := cutoffs.Validate(); err != nil {
		return nil, errDecorate(err, "ConnectivityGraphWithCutoffs")
	}
	tot := geo.Len()
	syms := make(map[int]string, tot)
	for i, s := range geo.symbols {
		syms[i] = string(s)
	}
	bonds := make([]BondKey, 0, tot)
	for i := 0; i < tot; i++ {
		for j := i + 1; j < tot; j++ {
			cut := cutoffs.XY
			if geo.symbols[i] == H || geo.symbols[j] == H {
				cut = cutoffs.XH
			}
			if geo.Distance(i, j) < cut {
				bonds = append(bonds, NewBondKey(i, j))
			}
		}
	}
	G, err := EmptyGraph().AddAtoms(syms, nil, nil)
	if err != nil {
		return nil, errDecorate(err, "ConnectivityGraphWithCutoffs")
	}
	G, err = G.AddBonds(bonds, nil, nil)
	if err != nil {
		return nil, errDecorate(err, "ConnectivityGraphWithCutoffs")
	}
	return G, nil
}

// ConnectivityGraphAndCoordinates returns the connectivity graph of geo together with
// the coordinates of each atom, keyed like the atoms in the graph.
func ConnectivityGraphAndCoordinates(geo *Geometry) (*Graph, map[int][3]float64) {
	coords := make(map[int][3]float64, geo.Len())
	for i, c := range geo.Coordinates() {
		coords[i] = c
	}
	return ConnectivityGraph(geo), coords
}
