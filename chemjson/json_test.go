/*
 * json_test.go, part of gomol.
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

package chemjson

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	chem "github.com/rmera/gomol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vinylGraph(Te *testing.T) *chem.Graph {
	g, err := chem.FromData(chem.GraphData{
		Symbols:           map[int]string{0: "C", 1: "C", 2: "Cl"},
		Bonds:             []chem.BondKey{{A: 0, B: 1}, {A: 1, B: 2}},
		ImplicitHydrogens: map[int]int{0: 2, 1: 1},
		BondOrders:        map[chem.BondKey]int{{A: 0, B: 1}: 2},
		BondParities:      map[chem.BondKey]chem.Parity{{A: 0, B: 1}: chem.False},
		AtomParities:      map[int]chem.Parity{2: chem.True},
	})
	require.NoError(Te, err)
	return g
}

func TestGraphRoundTrip(Te *testing.T) {
	g := vinylGraph(Te)
	data, err := MarshalGraph(g)
	require.NoError(Te, err)
	g2, err := UnmarshalGraph(data)
	require.NoError(Te, err)
	assert.True(Te, g.Equal(g2), "got %s, want %s", g2, g)
}

func TestParityEncoding(Te *testing.T) {
	J := FromGraph(vinylGraph(Te))
	require.Len(Te, J.Atoms, 3)
	assert.Nil(Te, J.Atoms[0].Parity)
	require.NotNil(Te, J.Atoms[2].Parity)
	assert.True(Te, *J.Atoms[2].Parity)
	require.Len(Te, J.Bonds, 2)
	assert.Equal(Te, [2]int{0, 1}, J.Bonds[0].Atoms)
	require.NotNil(Te, J.Bonds[0].Parity)
	assert.False(Te, *J.Bonds[0].Parity)
	assert.Nil(Te, J.Bonds[1].Parity)
}

func TestStream(Te *testing.T) {
	g := vinylGraph(Te)
	geo, err := chem.NewGeometry([]string{"H", "H"}, [][]float64{{0, 0, 0}, {0, 0, 0.74}})
	require.NoError(Te, err)
	var buf bytes.Buffer
	require.Nil(Te, EncodeGraph(g, &buf))
	require.Nil(Te, EncodeGeometry(geo, &buf))
	require.Nil(Te, EncodeGraph(chem.EmptyGraph(), &buf))
	stream := bufio.NewReader(&buf)
	g2, jerr := DecodeGraph(stream)
	require.Nil(Te, jerr)
	assert.True(Te, g.Equal(g2))
	geo2, jerr := DecodeGeometry(stream)
	require.Nil(Te, jerr)
	assert.True(Te, geo.AlmostEqual(geo2))
	empty, jerr := DecodeGraph(stream)
	require.Nil(Te, jerr)
	assert.Equal(Te, 0, empty.Len())
	_, jerr = DecodeGraph(stream)
	assert.NotNil(Te, jerr)
}

func TestDecodeValidates(Te *testing.T) {
	for name, doc := range map[string]string{
		"dangling bond":  `{"Atoms":[{"Key":0,"Symbol":"C"}],"Bonds":[{"Atoms":[0,1],"Order":1}]}`,
		"bad symbol":     `{"Atoms":[{"Key":0,"Symbol":"Xx"}],"Bonds":[]}`,
		"duplicate atom": `{"Atoms":[{"Key":0,"Symbol":"C"},{"Key":0,"Symbol":"N"}],"Bonds":[]}`,
		"zero order":     `{"Atoms":[{"Key":0,"Symbol":"C"},{"Key":1,"Symbol":"C"}],"Bonds":[{"Atoms":[0,1],"Order":0}]}`,
		"repeated bond":  `{"Atoms":[{"Key":0,"Symbol":"C"},{"Key":1,"Symbol":"C"}],"Bonds":[{"Atoms":[0,1],"Order":1},{"Atoms":[1,0],"Order":2}]}`,
	} {
		_, jerr := DecodeGraph(bufio.NewReader(strings.NewReader(doc)))
		assert.NotNil(Te, jerr, name)
	}
	_, err := UnmarshalGraph([]byte(`{"Atoms":[{"Key":0,"Symbol":"C"}],"Bonds":[{"Atoms":[0,1],"Order":1}]}`))
	assert.True(Te, errors.Is(err, chem.ErrUnknownAtomReference), "got %v", err)
	_, jerr := DecodeGeometry(bufio.NewReader(strings.NewReader(`{"Symbols":["C"],"Coords":[[0,0]]}`)))
	require.NotNil(Te, jerr)
	assert.True(Te, errors.Is(jerr, chem.ErrInvalidCoordinate))
	assert.Contains(Te, string(jerr.Marshal()), `"Function":"Geometry.Geometry"`)
	assert.Equal(Te, []string{"Geometry.Geometry", "DecodeGeometry"}, jerr.Decorate(""))
}
