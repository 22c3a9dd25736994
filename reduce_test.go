/*
 * reduce_test.go, part of abitools.
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

package abitools

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

//a fcc primitive silicon cell, in Angstrom.
func siPrimitive() *Structure {
	a := 5.431 / 2
	s, _ := NewStructure(
		[]float64{
			0, a, a,
			a, 0, a,
			a, a, 0,
		},
		[]Site{
			{Frac: [3]float64{0, 0, 0}, Z: 14},
			{Frac: [3]float64{0.25, 0.25, 0.25}, Z: 14},
		})
	return s
}

//a fake symmetry backend that records it was called and hands back a fixed
//primitive cell regardless of its input.
type fixedFinder struct {
	prim   *Structure
	called bool
}

func (f *fixedFinder) PrimitiveStandard(s *Structure) (*Structure, error) {
	f.called = true
	return f.prim, nil
}

func TestReduce(Te *testing.T) {
	finder := &fixedFinder{prim: siPrimitive()}
	red, err := Reduce(siPrimitive(), finder)
	if err != nil {
		Te.Fatal(err)
	}
	if !finder.called {
		Te.Error("symmetry backend was not consulted")
	}
	//rprim rows must be unit vectors
	for i := 0; i < 3; i++ {
		norm := floats.Norm(red.Rprim.RawRowView(i), 2)
		if math.Abs(norm-1.0) > 1e-10 {
			Te.Errorf("rprim row %d has norm %v, want 1", i, norm)
		}
	}
	//acell * rprim must rebuild the Bohr lattice
	want := (5.431 / 2) * math.Sqrt2 * A2Bohr
	for i := 0; i < 3; i++ {
		if math.Abs(red.Acell[i]-want) > 1e-10 {
			Te.Errorf("acell[%d] = %v, want %v", i, red.Acell[i], want)
		}
		for j := 0; j < 3; j++ {
			got := red.Acell[i] * red.Rprim.At(i, j)
			if math.Abs(got-red.Lattice.At(i, j)) > 1e-10 {
				Te.Errorf("acell*rprim[%d,%d] = %v, lattice has %v", i, j, got, red.Lattice.At(i, j))
			}
		}
	}
	if len(red.Typat) != red.Len() {
		Te.Errorf("typat has %d entries for %d sites", len(red.Typat), red.Len())
	}
	for _, t := range red.Typat {
		if t < 1 || t > red.Ntypat() {
			Te.Errorf("typat value %d outside [1, %d]", t, red.Ntypat())
		}
	}
}

//Species numbering must follow ascending atomic number, not the order the
//sites appear in, so the same crystal always produces the same znucl/typat.
func TestReduceSpeciesOrder(Te *testing.T) {
	s, err := NewStructure(
		[]float64{4, 0, 0, 0, 4, 0, 0, 0, 4},
		[]Site{
			{Frac: [3]float64{0, 0, 0}, Z: 8},         //O first in file
			{Frac: [3]float64{0.5, 0.5, 0.5}, Z: 1},   //then H
			{Frac: [3]float64{0.25, 0.25, 0.25}, Z: 8},
		})
	if err != nil {
		Te.Fatal(err)
	}
	red, err := Reduce(s, AsIsFinder{})
	if err != nil {
		Te.Fatal(err)
	}
	if len(red.Znucl) != 2 || red.Znucl[0] != 1 || red.Znucl[1] != 8 {
		Te.Errorf("znucl = %v, want [1 8]", red.Znucl)
	}
	wantTypat := []int{2, 1, 2}
	for i, t := range red.Typat {
		if t != wantTypat[i] {
			Te.Errorf("typat = %v, want %v", red.Typat, wantTypat)
			break
		}
	}
}

func TestReduceSingularLattice(Te *testing.T) {
	s, err := NewStructure(
		[]float64{1, 0, 0, 0, 0, 0, 0, 0, 1}, //second vector has zero length
		[]Site{{Frac: [3]float64{0, 0, 0}, Z: 6}})
	if err != nil {
		Te.Fatal(err)
	}
	_, err = Reduce(s, AsIsFinder{})
	if err == nil {
		Te.Fatal("singular lattice must be rejected, got nil error")
	}
	if _, ok := err.(*StructureError); !ok {
		Te.Errorf("want *StructureError, got %T: %v", err, err)
	}
}
