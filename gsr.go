/*
 * gsr.go, part of abitools.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Record is one ground-state calculation result. How the bytes are parsed
//(text output, netCDF, ...) is the reading layer's business; extraction
//only needs these four accessors.
type Record interface {
	//Energy returns the total energy in Hartree.
	Energy() float64
	//Lattice returns the 3x3 lattice matrix in Angstrom, rows as vectors.
	Lattice() *mat.Dense
	//EcutHa returns the plane-wave cutoff converted to Hartree.
	EcutHa() float64
	//NKpt returns the number of k points.
	NKpt() int
}

//ParamKind selects which quantity Extract derives from each record. The
//enumeration is closed: anything outside it is rejected, never guessed.
type ParamKind int

const (
	KEcut ParamKind = iota //plane-wave cutoff, Hartree (scalar)
	KNkpt                  //k-point count (scalar)
	KVolume                //cell volume, Bohr^3 (scalar)
	KAcell                 //lattice row norms, Bohr (3-vector)
	KRprim                 //unit-normalized lattice rows (3x3, row-major)
)

var paramNames = map[ParamKind]string{
	KEcut:   "ecut",
	KNkpt:   "nkpt",
	KVolume: "volume",
	KAcell:  "acell",
	KRprim:  "rprim",
}

func (k ParamKind) String() string {
	if s, ok := paramNames[k]; ok {
		return s
	}
	return "unknown"
}

//Width returns the number of values the kind yields per record: 1 for the
//scalar kinds, 3 for acell and 9 for rprim.
func (k ParamKind) Width() int {
	switch k {
	case KAcell:
		return 3
	case KRprim:
		return 9
	default:
		return 1
	}
}

//ParseParamKind maps a selector string from the command line to a
//ParamKind. Valid selectors are ecut, nkpt, volume, acell and rprim.
func ParseParamKind(s string) (ParamKind, error) {
	for k, name := range paramNames {
		if s == name {
			return k, nil
		}
	}
	return 0, NewValidationError(
		"unknown parameter '"+s+"'; valid options are ecut, nkpt, volume, acell, rprim",
		"ParseParamKind")
}

//Extract walks the records in the order given and returns, per record, the
//total energy (Hartree, as reported) and the value selected by kind. Scalar
//kinds yield one float per record; KAcell yields 3 (Bohr) and KRprim 9
//(row-major). Lattice-derived kinds convert the record's Angstrom lattice
//to Bohr first. Any kind outside the enumeration is a ValidationError; an
//empty result is never silently returned for it.
func Extract(records []Record, kind ParamKind) (energies []float64, values [][]float64, err error) {
	if _, ok := paramNames[kind]; !ok {
		return nil, nil, NewValidationError("unsupported parameter kind", "Extract")
	}
	energies = make([]float64, 0, len(records))
	values = make([][]float64, 0, len(records))
	for _, rec := range records {
		energies = append(energies, rec.Energy())
		var v []float64
		switch kind {
		case KEcut:
			v = []float64{rec.EcutHa()}
		case KNkpt:
			v = []float64{float64(rec.NKpt())}
		case KVolume:
			v = []float64{mat.Det(bohrLattice(rec))}
		case KAcell:
			lat := bohrLattice(rec)
			v = make([]float64, 3)
			for i := 0; i < 3; i++ {
				v[i] = floats.Norm(lat.RawRowView(i), 2)
			}
		case KRprim:
			lat := bohrLattice(rec)
			v = make([]float64, 0, 9)
			for i := 0; i < 3; i++ {
				row := lat.RawRowView(i)
				norm := floats.Norm(row, 2)
				for j := 0; j < 3; j++ {
					v = append(v, row[j]/norm)
				}
			}
		}
		values = append(values, v)
	}
	return energies, values, nil
}

//Scalars flattens the values of a scalar ParamKind into a plain series for
//fitting. It returns a ValidationError if any element is not of length 1.
func Scalars(values [][]float64) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		if len(v) != 1 {
			return nil, NewValidationError("parameter is not scalar", "Scalars")
		}
		out[i] = v[0]
	}
	return out, nil
}

func bohrLattice(rec Record) *mat.Dense {
	lat := mat.DenseCopyOf(rec.Lattice())
	lat.Scale(A2Bohr, lat)
	return lat
}
