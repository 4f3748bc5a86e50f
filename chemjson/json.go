/*
 * json.go, part of gomol.
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
	"encoding/json"
	"io"
	"strings"

	chem "github.com/rmera/gomol"
)

// A ready-to-serialize container for an atom. A nil Parity means unset.
type Atom struct {
	Key               int
	Symbol            string
	ImplicitHydrogens int   `json:",omitempty"`
	Parity            *bool `json:",omitempty"`
}

// A ready-to-serialize container for a bond. A nil Parity means unset.
type Bond struct {
	Atoms  [2]int
	Order  int
	Parity *bool `json:",omitempty"`
}

// A ready-to-serialize container for a molecular graph.
// Atoms and bonds are kept in the order of the graph's frozen form.
type Graph struct {
	Atoms []Atom
	Bonds []Bond
}

// A ready-to-serialize container for a geometry. Coordinates are in Angstrom.
type Geometry struct {
	Symbols []string
	Coords  [][]float64
}

func parity2json(p chem.Parity) *bool {
	v, ok := p.Bool()
	if !ok {
		return nil
	}
	return &v
}

func json2parity(b *bool) chem.Parity {
	if b == nil {
		return chem.Unset
	}
	return chem.ParityOf(*b)
}

// FromGraph returns the container for g.
func FromGraph(g *chem.Graph) *Graph {
	F := g.Frozen()
	J := &Graph{Atoms: make([]Atom, 0, len(F.Atoms)), Bonds: make([]Bond, 0, len(F.Bonds))}
	for _, a := range F.Atoms {
		J.Atoms = append(J.Atoms, Atom{Key: a.Key, Symbol: string(a.Atom.Symbol), ImplicitHydrogens: a.Atom.ImplicitHydrogens, Parity: parity2json(a.Atom.Parity)})
	}
	for _, b := range F.Bonds {
		J.Bonds = append(J.Bonds, Bond{Atoms: b.Key.Atoms(), Order: b.Bond.Order, Parity: parity2json(b.Bond.Parity)})
	}
	return J
}

// Graph builds the molecular graph in J. The data goes through the same
// validations as any other graph.
func (J *Graph) Graph() (*chem.Graph, error) {
	d := chem.GraphData{
		Symbols:           make(map[int]string, len(J.Atoms)),
		ImplicitHydrogens: make(map[int]int, len(J.Atoms)),
		AtomParities:      make(map[int]chem.Parity, len(J.Atoms)),
		Bonds:             make([]chem.BondKey, 0, len(J.Bonds)),
		BondOrders:        make(map[chem.BondKey]int, len(J.Bonds)),
		BondParities:      make(map[chem.BondKey]chem.Parity, len(J.Bonds)),
	}
	for _, a := range J.Atoms {
		if _, ok := d.Symbols[a.Key]; ok {
			return nil, NewError("Graph.Graph", chem.ErrDuplicateAtomKey)
		}
		d.Symbols[a.Key] = a.Symbol
		d.ImplicitHydrogens[a.Key] = a.ImplicitHydrogens
		d.AtomParities[a.Key] = json2parity(a.Parity)
	}
	for _, b := range J.Bonds {
		k := chem.NewBondKey(b.Atoms[0], b.Atoms[1])
		if _, ok := d.BondOrders[k]; ok {
			return nil, NewError("Graph.Graph", chem.ErrInvalidBond)
		}
		d.Bonds = append(d.Bonds, k)
		d.BondOrders[k] = b.Order
		d.BondParities[k] = json2parity(b.Parity)
	}
	g, err := chem.FromData(d)
	if err != nil {
		return nil, NewError("Graph.Graph", err)
	}
	return g, nil
}

// FromGeometry returns the container for geo.
func FromGeometry(geo *chem.Geometry) *Geometry {
	J := &Geometry{Symbols: make([]string, 0, geo.Len()), Coords: make([][]float64, 0, geo.Len())}
	for _, s := range geo.Symbols() {
		J.Symbols = append(J.Symbols, string(s))
	}
	for _, c := range geo.Coordinates() {
		J.Coords = append(J.Coords, []float64{c[0], c[1], c[2]})
	}
	return J
}

// Geometry builds the geometry in J.
func (J *Geometry) Geometry() (*chem.Geometry, error) {
	geo, err := chem.NewGeometry(J.Symbols, J.Coords)
	if err != nil {
		return nil, NewError("Geometry.Geometry", err)
	}
	return geo, nil
}

// MarshalGraph serializes g.
func MarshalGraph(g *chem.Graph) ([]byte, error) {
	ret, err := json.Marshal(FromGraph(g))
	if err != nil {
		return nil, NewError("MarshalGraph", err)
	}
	return ret, nil
}

// UnmarshalGraph builds a graph from data produced by MarshalGraph.
func UnmarshalGraph(data []byte) (*chem.Graph, error) {
	J := new(Graph)
	if err := json.Unmarshal(data, J); err != nil {
		return nil, NewError("UnmarshalGraph", err)
	}
	g, err := J.Graph()
	if err != nil {
		return nil, err
	}
	return g, nil
}

// EncodeGraph writes g to out as a single line of JSON.
func EncodeGraph(g *chem.Graph, out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return NewError("EncodeGraph", err)
	}
	return nil
}

// DecodeGraph reads one line of JSON from stream and builds the graph it contains.
func DecodeGraph(stream *bufio.Reader) (*chem.Graph, *Error) {
	line, err := readLine(stream)
	if err != nil {
		return nil, NewError("DecodeGraph", err)
	}
	J := new(Graph)
	if err = json.Unmarshal(line, J); err != nil {
		return nil, NewError("DecodeGraph", err)
	}
	g, err := J.Graph()
	if err != nil {
		jerr := err.(*Error)
		jerr.Decorate("DecodeGraph")
		return nil, jerr
	}
	return g, nil
}

// EncodeGeometry writes geo to out as a single line of JSON.
func EncodeGeometry(geo *chem.Geometry, out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(FromGeometry(geo)); err != nil {
		return NewError("EncodeGeometry", err)
	}
	return nil
}

// DecodeGeometry reads one line of JSON from stream and builds the geometry it contains.
func DecodeGeometry(stream *bufio.Reader) (*chem.Geometry, *Error) {
	line, err := readLine(stream)
	if err != nil {
		return nil, NewError("DecodeGeometry", err)
	}
	J := new(Geometry)
	if err = json.Unmarshal(line, J); err != nil {
		return nil, NewError("DecodeGeometry", err)
	}
	geo, err := J.Geometry()
	if err != nil {
		jerr := err.(*Error)
		jerr.Decorate("DecodeGeometry")
		return nil, jerr
	}
	return geo, nil
}

// readLine returns the next line in stream. The last line doesn't need to end in a newline.
func readLine(stream *bufio.Reader) ([]byte, error) {
	line, err := stream.ReadBytes('\n')
	if err == io.EOF && len(line) > 0 {
		return line, nil
	}
	return line, err
}

// An easily JSON-serializable error type.
type Error struct {
	deco     []string
	cause    error
	Function string //which go function gave the error
	Message  string //the error itself
}

// NewError takes an error and the name of the function where it happened, and
// returns a JSON-serializable error. The original error can be retrieved with errors.Is/As.
func NewError(function string, err error) *Error {
	return &Error{Function: function, Message: err.Error(), cause: err, deco: []string{function}}
}

// Error implements the error interface
func (J *Error) Error() string {
	return J.Function + ": " + J.Message
}

// Unwrap returns the error that caused J, if known.
func (J *Error) Unwrap() error {
	return J.cause
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) // Yo, dawg, I heard you like errors...
	}
	return ret
}
