/*
 * catalog_test.go, part of gomol.
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

package catalog

import (
	"errors"
	"testing"

	chem "github.com/rmera/gomol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func ethene(Te *testing.T, bonds []chem.BondKey) *chem.Graph {
	g, err := chem.FromData(chem.GraphData{
		Symbols:           map[int]string{0: "C", 1: "C"},
		Bonds:             bonds,
		ImplicitHydrogens: map[int]int{0: 2, 1: 2},
		BondOrders:        map[chem.BondKey]int{chem.NewBondKey(0, 1): 2},
	})
	require.NoError(Te, err)
	return g
}

func TestPutGet(Te *testing.T) {
	C, err := Open(Options{InMemory: true, CacheSize: 2, Logger: zaptest.NewLogger(Te, zaptest.Level(zap.WarnLevel))})
	require.NoError(Te, err)
	defer C.Close()
	g := ethene(Te, []chem.BondKey{{A: 0, B: 1}})
	key, added, err := C.Put(g)
	require.NoError(Te, err)
	assert.True(Te, added)
	assert.Equal(Te, Key(g), key)
	//same graph, built with the bond the other way around.
	key2, added, err := C.Put(ethene(Te, []chem.BondKey{{A: 1, B: 0}}))
	require.NoError(Te, err)
	assert.False(Te, added)
	assert.Equal(Te, key, key2)
	n, err := C.Len()
	require.NoError(Te, err)
	assert.Equal(Te, 1, n)
	got, err := C.Get(key)
	require.NoError(Te, err)
	assert.True(Te, g.Equal(got))
	has, err := C.Has(g.WithoutBondOrders())
	require.NoError(Te, err)
	assert.False(Te, has)
	_, err = C.Get("nope")
	assert.True(Te, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestGetFromDisk(Te *testing.T) {
	dir := Te.TempDir()
	C, err := Open(Options{Dir: dir})
	require.NoError(Te, err)
	g := ethene(Te, []chem.BondKey{{A: 0, B: 1}})
	saturated := g.WithoutBondOrders()
	_, _, err = C.Put(g)
	require.NoError(Te, err)
	_, _, err = C.Put(saturated)
	require.NoError(Te, err)
	require.NoError(Te, C.Close())

	C, err = Open(Options{Dir: dir})
	require.NoError(Te, err)
	defer C.Close()
	keys, err := C.Keys()
	require.NoError(Te, err)
	assert.ElementsMatch(Te, []string{Key(g), Key(saturated)}, keys)
	got, err := C.Get(Key(saturated))
	require.NoError(Te, err)
	assert.True(Te, saturated.Equal(got))
	has, err := C.Has(g)
	require.NoError(Te, err)
	assert.True(Te, has)
}

func TestBadOptions(Te *testing.T) {
	_, err := Open(Options{})
	assert.True(Te, errors.Is(err, ErrBadOption))
	_, err = Open(Options{InMemory: true, ReadOnly: true})
	assert.True(Te, errors.Is(err, ErrBadOption))
}
