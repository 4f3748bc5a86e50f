/*
 * doc.go, part of gomol.
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

/*
Package chem is the main package of the goMol library. It provides the molecular graph
(atoms and bonds with their implicit hydrogens, bond orders and stereo parities),
cartesian geometries, and the derivation of a connectivity graph from a geometry.


	**goMol Capabilities**


    Builds molecular graphs incrementally (AddAtoms, AddBonds) or in one shot (FromData),
	validating every atom and bond at insertion time.

    Graphs are values: every setter (SetBondOrders, SetAtomStereoParities...) returns a new
	graph and leaves the receiver untouched, so graphs can be shared between goroutines freely.

    Computes a canonical, order-independent form of a graph (Frozen), which can be compared,
	sorted and used as a map or database key (see the catalog package).

    Infers connectivity from a cartesian geometry using element-pair distance cutoffs.

    Hands graphs and coordinates to external identifier engines (InChI, SMILES) and
	takes geometries from external embedding engines through the Identifier and Embedder
	interfaces.

Coordinates are kept in a v3.Matrix, a Nx3 matrix based on gonum's mat.Dense.
The xyz package reads and writes geometries as text, chemgraph exposes graphs to gonum's
graph algorithms, and chemjson serializes graphs and geometries.
*/
package chem
