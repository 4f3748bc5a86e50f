/*
 * interfaces_test.go, part of gomol.
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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine records what it is given and returns canned answers.
type fakeEngine struct {
	graph  *Graph
	coords map[int][3]float64
	ident  string
	geo    *Geometry
	err    error
}

func (f *fakeEngine) Identify(ctx context.Context, g *Graph, coords map[int][3]float64) (string, error) {
	f.graph, f.coords = g, coords
	return f.ident, f.err
}

func (f *fakeEngine) Embed(ctx context.Context, identifier string) (*Geometry, error) {
	f.ident = identifier
	return f.geo, f.err
}

func TestInChI(Te *testing.T) {
	geo := chlorofluoroethylene(Te)
	eng := &fakeEngine{ident: "InChI=1S/C2H2ClF/c3-1-2-4/h1-2H"}
	ich, err := InChI(context.Background(), geo, eng)
	require.NoError(Te, err)
	assert.Equal(Te, eng.ident, ich)
	assert.True(Te, eng.graph.Equal(ConnectivityGraph(geo)))
	assert.Nil(Te, eng.coords)

	ich, err = StereoInChI(context.Background(), geo, eng)
	require.NoError(Te, err)
	assert.Equal(Te, eng.ident, ich)
	assert.Len(Te, eng.coords, 6)
	assert.Equal(Te, geo.Coord(3), eng.coords[3])
}

func TestIdentifierFailure(Te *testing.T) {
	geo := chlorofluoroethylene(Te)
	cause := errors.New("engine crashed")
	eng := &fakeEngine{err: cause}
	_, err := InChI(context.Background(), geo, eng)
	assert.True(Te, errors.Is(err, ErrIdentifier))
	assert.True(Te, errors.Is(err, cause))
	_, err = StereoInChI(context.Background(), geo, eng)
	assert.True(Te, errors.Is(err, ErrIdentifier))
	assert.Contains(Te, err.Error(), "engine crashed")
}

func TestGeometryFromIdentifier(Te *testing.T) {
	geo := chlorofluoroethylene(Te)
	eng := &fakeEngine{geo: geo}
	got, err := GeometryFromIdentifier(context.Background(), "FC=CCl", eng)
	require.NoError(Te, err)
	assert.Same(Te, geo, got)
	assert.Equal(Te, "FC=CCl", eng.ident)

	eng = &fakeEngine{}
	_, err = GeometryFromIdentifier(context.Background(), "FC=CCl", eng)
	assert.True(Te, errors.Is(err, ErrIdentifier))
	eng = &fakeEngine{err: context.Canceled}
	_, err = GeometryFromIdentifier(context.Background(), "FC=CCl", eng)
	assert.True(Te, errors.Is(err, ErrIdentifier))
	assert.True(Te, errors.Is(err, context.Canceled))
}

func TestMissingEngine(Te *testing.T) {
	ctx := context.Background()
	geo := chlorofluoroethylene(Te)
	eng := &fakeEngine{ident: "InChI=1S/C2H2ClF/c3-1-2-4/h1-2H"}
	var err error
	assert.NotPanics(Te, func() { _, err = InChI(ctx, geo, nil) })
	assert.True(Te, errors.Is(err, ErrIdentifier), "got %v", err)
	assert.NotPanics(Te, func() { _, err = StereoInChI(ctx, geo, nil) })
	assert.True(Te, errors.Is(err, ErrIdentifier), "got %v", err)
	assert.NotPanics(Te, func() { _, err = InChI(ctx, nil, eng) })
	assert.True(Te, errors.Is(err, ErrIdentifier), "got %v", err)
	assert.NotPanics(Te, func() { _, err = StereoInChI(ctx, nil, eng) })
	assert.True(Te, errors.Is(err, ErrIdentifier), "got %v", err)
	assert.Nil(Te, eng.graph)
	var got *Geometry
	assert.NotPanics(Te, func() { got, err = GeometryFromIdentifier(ctx, "FC=CCl", nil) })
	assert.Nil(Te, got)
	assert.True(Te, errors.Is(err, ErrIdentifier), "got %v", err)
}
