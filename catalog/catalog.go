/*
 * catalog.go, part of gomol.
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

// Package catalog keeps a set of distinct molecular graphs on disk. Graphs are
// stored under the key of their frozen form, so adding a graph that is already
// in the catalog (even if built in a different order) does nothing.
package catalog

import (
	"runtime"
	"strings"

	"github.com/dgraph-io/badger/v3"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	chem "github.com/rmera/gomol"
	"github.com/rmera/gomol/chemjson"
	"go.uber.org/zap"
)

/***
Catalog database format:

	"g/" + Frozen.Key()  => chemjson graph

Keys are human-readable, so a catalog can be inspected with badger's own tools.
***/

const graphPrefix = "g/"

const defaultCacheSize = 1024

var (
	ErrNotFound  = errors.New("graph not in catalog")
	ErrBadOption = errors.New("bad catalog option")
)

// Options for Open. If Dir is empty, InMemory must be true.
type Options struct {
	Dir       string
	InMemory  bool
	ReadOnly  bool
	CacheSize int         //decoded graphs kept in memory, 0 means a default size
	Logger    *zap.Logger //nil means no logging
}

// Catalog is a db wrapper for a set of molecular graphs.
// It is safe for concurrent use.
type Catalog struct {
	db    *badger.DB
	cache *lru.Cache[string, *chem.Graph]
	log   *zap.Logger
}

// badgerLogger lets badger log through zap.
type badgerLogger struct {
	*zap.SugaredLogger
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}

// Open opens, or creates, the catalog described by opts.
func Open(opts Options) (*Catalog, error) {
	if opts.Dir == "" && !opts.InMemory {
		return nil, errors.Wrap(ErrBadOption, "Dir must be given for an on-disk catalog")
	}
	if opts.InMemory && opts.ReadOnly {
		return nil, errors.Wrap(ErrBadOption, "an in-memory catalog can't be read-only")
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheSize
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	dbOpts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		dbOpts = badger.DefaultOptions("").WithInMemory(true)
	}
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false
	dbOpts.MetricsEnabled = false
	dbOpts.Logger = badgerLogger{log.Named("badger").Sugar()}
	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}
	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrap(err, "catalog.Open")
	}
	cache, err := lru.New[string, *chem.Graph](opts.CacheSize)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "catalog.Open")
	}
	log.Debug("catalog opened", zap.String("dir", opts.Dir), zap.Bool("inMemory", opts.InMemory))
	return &Catalog{db: db, cache: cache, log: log}, nil
}

// Key returns the key under which g is stored.
func Key(g *chem.Graph) string {
	return g.Frozen().Key()
}

// Put adds g to the catalog. It returns the key of g, and whether g was added, i.e. false if
// an equal graph was already there.
func (C *Catalog) Put(g *chem.Graph) (key string, added bool, err error) {
	key = Key(g)
	data, err := chemjson.MarshalGraph(g)
	if err != nil {
		return "", false, errors.Wrap(err, "catalog.Put")
	}
	err = C.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(graphPrefix + key))
		if err == nil {
			return nil
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		added = true
		return txn.Set([]byte(graphPrefix+key), data)
	})
	if err != nil {
		return "", false, errors.Wrapf(err, "catalog.Put: %s", key)
	}
	C.cache.Add(key, g)
	if added {
		C.log.Debug("graph added", zap.String("key", key), zap.Int("atoms", g.Len()), zap.Int("bonds", g.BondCount()))
	}
	return key, added, nil
}

// Get returns the graph stored under key. The error wraps ErrNotFound if there is no such graph.
func (C *Catalog) Get(key string) (*chem.Graph, error) {
	if g, ok := C.cache.Get(key); ok {
		return g, nil
	}
	var g *chem.Graph
	err := C.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(graphPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			g, err = chemjson.UnmarshalGraph(val)
			return err
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.Wrapf(ErrNotFound, "catalog.Get: %s", key)
	}
	if err != nil {
		C.log.Warn("can't read graph", zap.String("key", key), zap.Error(err))
		return nil, errors.Wrapf(err, "catalog.Get: %s", key)
	}
	C.cache.Add(key, g)
	return g, nil
}

// Has returns true if a graph equal to g is in the catalog.
func (C *Catalog) Has(g *chem.Graph) (bool, error) {
	key := Key(g)
	if C.cache.Contains(key) {
		return true, nil
	}
	err := C.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(graphPrefix + key))
		return err
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "catalog.Has")
	}
	return true, nil
}

// Keys returns the keys of all the graphs in the catalog, in badger's (lexicographic) order.
func (C *Catalog) Keys() ([]string, error) {
	var ret []string
	err := C.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(graphPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			ret = append(ret, strings.TrimPrefix(string(it.Item().Key()), graphPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "catalog.Keys")
	}
	return ret, nil
}

// Len returns the number of graphs in the catalog.
func (C *Catalog) Len() (int, error) {
	keys, err := C.Keys()
	return len(keys), err
}

// Close closes the underlying database. The catalog can't be used afterwards.
func (C *Catalog) Close() error {
	C.cache.Purge()
	if err := C.db.Close(); err != nil {
		return errors.Wrap(err, "catalog.Close")
	}
	return nil
}
