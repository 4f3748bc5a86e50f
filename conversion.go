/*
 * conversion.go, part of gomol.
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

package chem

//This provides useful conversion factors and other constants

//Conversions
const (
	A2Bohr = 1.8897259886
	Bohr2A = 1 / 1.8897259886
)

// Distance cutoffs for bond inference, in Angstrom.
// They are the x2z cutoffs, which are given in Bohr.
const (
	XYBondMax = 3.5 * Bohr2A //any pair not involving hydrogen
	XHBondMax = 2.5 * Bohr2A //pairs where at least one atom is hydrogen
)
