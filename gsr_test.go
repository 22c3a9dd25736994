/*
 * gsr_test.go, part of abitools.
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

	"gonum.org/v1/gonum/mat"
)

//fakeRecord lets the extraction tests run without touching the filesystem.
type fakeRecord struct {
	energy  float64
	ecutHa  float64
	nkpt    int
	lattice *mat.Dense //Angstrom
}

func (r *fakeRecord) Energy() float64     { return r.energy }
func (r *fakeRecord) Lattice() *mat.Dense { return r.lattice }
func (r *fakeRecord) EcutHa() float64     { return r.ecutHa }
func (r *fakeRecord) NKpt() int           { return r.nkpt }

func cubicRecord(a float64, energy float64) *fakeRecord {
	return &fakeRecord{
		energy:  energy,
		ecutHa:  15.0,
		nkpt:    60,
		lattice: mat.NewDense(3, 3, []float64{a, 0, 0, 0, a, 0, 0, 0, a}),
	}
}

func TestExtractScalars(Te *testing.T) {
	a := 5.431 //Angstrom
	recs := []Record{cubicRecord(a, -8.86), cubicRecord(a*1.01, -8.85)}

	energies, values, err := Extract(recs, KVolume)
	if err != nil {
		Te.Fatal(err)
	}
	if energies[0] != -8.86 || energies[1] != -8.85 {
		Te.Errorf("energies = %v, reported values must pass through untouched", energies)
	}
	ab := a * A2Bohr
	if math.Abs(values[0][0]-ab*ab*ab) > 1e-10*ab*ab*ab {
		Te.Errorf("volume = %v, want %v", values[0][0], ab*ab*ab)
	}

	_, values, err = Extract(recs, KEcut)
	if err != nil {
		Te.Fatal(err)
	}
	if values[0][0] != 15.0 {
		Te.Errorf("ecut = %v Ha, want exactly 15", values[0][0])
	}

	_, values, err = Extract(recs, KNkpt)
	if err != nil {
		Te.Fatal(err)
	}
	if values[1][0] != 60.0 {
		Te.Errorf("nkpt = %v, want 60", values[1][0])
	}
}

func TestExtractVectors(Te *testing.T) {
	a := 5.431
	recs := []Record{cubicRecord(a, -8.86)}

	_, values, err := Extract(recs, KAcell)
	if err != nil {
		Te.Fatal(err)
	}
	if len(values[0]) != 3 {
		Te.Fatalf("acell yields %d values, want 3", len(values[0]))
	}
	for i, v := range values[0] {
		if math.Abs(v-a*A2Bohr) > 1e-10 {
			Te.Errorf("acell[%d] = %v, want %v", i, v, a*A2Bohr)
		}
	}

	_, values, err = Extract(recs, KRprim)
	if err != nil {
		Te.Fatal(err)
	}
	if len(values[0]) != 9 {
		Te.Fatalf("rprim yields %d values, want 9", len(values[0]))
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(values[0][3*i+j]-want) > 1e-12 {
				Te.Errorf("rprim[%d,%d] = %v, want %v", i, j, values[0][3*i+j], want)
			}
		}
	}
}

func TestExtractUnsupported(Te *testing.T) {
	recs := []Record{cubicRecord(5.0, -1.0)}
	energies, values, err := Extract(recs, ParamKind(99))
	if err == nil {
		Te.Fatal("out-of-enumeration kind must be rejected, got nil error")
	}
	if _, ok := err.(*ValidationError); !ok {
		Te.Errorf("want *ValidationError, got %T: %v", err, err)
	}
	if energies != nil || values != nil {
		Te.Error("a rejected kind must not return partial results")
	}
	if _, err := ParseParamKind("foo"); err == nil {
		Te.Error("ParseParamKind must reject 'foo'")
	}
	k, err := ParseParamKind("rprim")
	if err != nil || k != KRprim {
		Te.Errorf("ParseParamKind(rprim) = %v, %v", k, err)
	}
}

func TestScalars(Te *testing.T) {
	flat, err := Scalars([][]float64{{1}, {2}, {3}})
	if err != nil || len(flat) != 3 || flat[2] != 3 {
		Te.Errorf("Scalars = %v, %v", flat, err)
	}
	if _, err := Scalars([][]float64{{1, 2, 3}}); err == nil {
		Te.Error("vector values must be rejected by Scalars")
	}
}
