/*
 * interfaces.go, part of gomol.
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

import "context"

// Identifier is an external cheminformatics engine that turns a graph into a line
// identifier (InChI, SMILES). coords, if not nil, gives the cartesian coordinates of
// each atom, by atom key, so the engine can derive stereochemistry from them.
type Identifier interface {
	Identify(ctx context.Context, g *Graph, coords map[int][3]float64) (string, error)
}

// Embedder is an external engine that builds a 3D structure (including
// hydrogens) for the molecule given by an identifier string.
type Embedder interface {
	Embed(ctx context.Context, identifier string) (*Geometry, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call adds the given string (a function name, maybe with some info as "FunctionName: Extra info") and returns the resulting slice. An empty string just returns the current slice.
}

// checkIdentify returns an error if geo or id are missing.
func checkIdentify(caller string, geo *Geometry, id Identifier) error {
	if id == nil {
		return newError(ErrIdentifier, caller, "no identifier engine given")
	}
	if geo == nil {
		return newError(ErrIdentifier, caller, "no geometry given")
	}
	return nil
}

// InChI returns the identifier of the connectivity graph of geo, without stereochemistry.
// A nil geo or id gives an error.
func InChI(ctx context.Context, geo *Geometry, id Identifier) (string, error) {
	if err := checkIdentify("InChI", geo, id); err != nil {
		return "", err
	}
	ich, err := id.Identify(ctx, ConnectivityGraph(geo), nil)
	if err != nil {
		return "", wrapError(ErrIdentifier, err, "InChI", "identifying connectivity graph")
	}
	return ich, nil
}

// StereoInChI returns the identifier of the connectivity graph of geo, passing the
// coordinates along so the engine can assign stereochemistry.
// A nil geo or id gives an error.
func StereoInChI(ctx context.Context, geo *Geometry, id Identifier) (string, error) {
	if err := checkIdentify("StereoInChI", geo, id); err != nil {
		return "", err
	}
	g, coords := ConnectivityGraphAndCoordinates(geo)
	ich, err := id.Identify(ctx, g, coords)
	if err != nil {
		return "", wrapError(ErrIdentifier, err, "StereoInChI", "identifying graph with coordinates")
	}
	return ich, nil
}

// GeometryFromIdentifier asks emb for a structure of the molecule ident.
// It is an error for emb to be nil, or to return no geometry.
func GeometryFromIdentifier(ctx context.Context, ident string, emb Embedder) (*Geometry, error) {
	if emb == nil {
		return nil, newError(ErrIdentifier, "GeometryFromIdentifier", "no embedding engine given")
	}
	geo, err := emb.Embed(ctx, ident)
	if err != nil {
		return nil, wrapError(ErrIdentifier, err, "GeometryFromIdentifier", "embedding %q", ident)
	}
	if geo == nil {
		return nil, newError(ErrIdentifier, "GeometryFromIdentifier", "embedding %q returned no geometry", ident)
	}
	return geo, nil
}
