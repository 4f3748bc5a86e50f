/*
 * main.go, part of gomol.
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

// geo2graph reads an XYZ file (plain, .gz or .zst), assigns bonds by interatomic
// distances and prints the resulting molecular graph. Optionally, the graph is
// stored in a catalog.
//
// Usage:
//
//	geo2graph [-config file.yaml] [-catalog dir] [-format text|json] [-debug] file.xyz
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	chem "github.com/rmera/gomol"
	"github.com/rmera/gomol/catalog"
	"github.com/rmera/gomol/chemgraph"
	"github.com/rmera/gomol/chemjson"
	"github.com/rmera/gomol/xyz"
	"go.uber.org/zap"
)

func main() {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	for _, a := range os.Args[1:] {
		if a == "-debug" || a == "--debug" {
			zcfg.Level.SetLevel(zap.DebugLevel)
		}
	}
	log, err := zcfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "geo2graph: can't build logger:", err)
		os.Exit(1)
	}
	defer log.Sync()
	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.Error("geo2graph failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, log *zap.Logger) error {
	fs := flag.NewFlagSet("geo2graph", flag.ContinueOnError)
	cfgname := fs.String("config", "", "YAML configuration file")
	catdir := fs.String("catalog", "", "Store the graph in the catalog in this directory (overrides the configuration)")
	format := fs.String("format", "", "Output format, text or json (overrides the configuration)")
	fs.Bool("debug", false, "Print debugging information")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.Errorf("expected exactly one XYZ file, got %d arguments", fs.NArg())
	}
	cfg, err := loadConfig(*cfgname)
	if err != nil {
		return err
	}
	if *catdir != "" {
		cfg.Catalog = *catdir
	}
	if *format != "" {
		cfg.Format = *format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	fname := fs.Arg(0)
	geo, comment, err := xyz.FileRead(fname)
	if err != nil {
		return err
	}
	log.Debug("geometry read", zap.String("file", fname), zap.Int("atoms", geo.Len()))
	g, err := chem.ConnectivityGraphWithCutoffs(geo, cfg.Cutoffs)
	if err != nil {
		return errors.Wrap(err, "assigning bonds")
	}
	log.Debug("bonds assigned", zap.Int("bonds", g.BondCount()), zap.Float64("xy", cfg.Cutoffs.XY), zap.Float64("xh", cfg.Cutoffs.XH))
	switch cfg.Format {
	case "json":
		if jerr := chemjson.EncodeGraph(g, stdout); jerr != nil {
			return jerr
		}
	default:
		if err := printGraph(stdout, g, comment); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	if cfg.Catalog == "" {
		return nil
	}
	cat, err := catalog.Open(catalog.Options{Dir: cfg.Catalog, Logger: log.Named("catalog")})
	if err != nil {
		return err
	}
	key, added, err := cat.Put(g)
	if err != nil {
		cat.Close()
		return err
	}
	log.Info("graph stored", zap.String("catalog", cfg.Catalog), zap.String("key", key), zap.Bool("new", added))
	return cat.Close()
}

// printGraph writes a human-readable description of g to out.
func printGraph(out io.Writer, g *chem.Graph, comment string) error {
	var b strings.Builder
	if comment != "" {
		fmt.Fprintf(&b, "# %s\n", comment)
	}
	fmt.Fprintf(&b, "formula: %s\n", formula(g.Formula()))
	b.WriteString("atoms:\n")
	syms := g.AtomSymbols()
	for _, k := range g.AtomKeys() {
		fmt.Fprintf(&b, "%4d %-2s\n", k, syms[k])
	}
	b.WriteString("bonds:\n")
	orders := g.BondOrders()
	for _, k := range g.BondKeys() {
		fmt.Fprintf(&b, "%4d %4d %d\n", k.A, k.B, orders[k])
	}
	b.WriteString("fragments:\n")
	for _, f := range chemgraph.Fragments(g) {
		fmt.Fprintf(&b, "  %v\n", f)
	}
	_, err := io.WriteString(out, b.String())
	return err
}

// formula returns the formula in Hill order: C first, then H, then the rest alphabetically.
// Without carbon, everything is alphabetical.
func formula(counts map[chem.Element]int) string {
	syms := make([]string, 0, len(counts))
	for s := range counts {
		syms = append(syms, string(s))
	}
	_, carbon := counts[chem.C]
	rank := func(s string) int {
		if !carbon {
			return 2
		}
		switch chem.Element(s) {
		case chem.C:
			return 0
		case chem.H:
			return 1
		}
		return 2
	}
	sort.Slice(syms, func(i, j int) bool {
		ri, rj := rank(syms[i]), rank(syms[j])
		if ri != rj {
			return ri < rj
		}
		return syms[i] < syms[j]
	})
	var b strings.Builder
	for _, s := range syms {
		b.WriteString(s)
		if n := counts[chem.Element(s)]; n > 1 {
			fmt.Fprintf(&b, "%d", n)
		}
	}
	return b.String()
}
