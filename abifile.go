/*
 * abifile.go, part of abitools.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//mweBlock is a canonical, static set of calculation parameters forming a
//minimal working example: pseudopotential placeholder, exchange-correlation
//functional, plane-wave cutoff, a shifted k-point grid, SCF convergence
//settings and output verbosity. It is appended verbatim, never computed.
const mweBlock = `
# Minimal working example parameters
pseudos "pseudos/REPLACE_ME.psp8"
ixc 11
ecut 30.0
kptopt 1
ngkpt 4 4 4
nshiftk 4
shiftk 0.5 0.5 0.5
       0.5 0.0 0.0
       0.0 0.5 0.0
       0.0 0.0 0.5
toldfe 1.0d-10
nstep 100
prtden 1
prtwf 0
`

//WriteAbi serializes red as an ABINIT structure block: a header comment,
//acell (Bohr), rprim, natom, ntypat, znucl, typat and xred, in that order.
//Floats are formatted with CleanFloat at the default tolerance and
//precision. If full is true the canonical minimal-working-example parameter
//block is appended after the structure.
func WriteAbi(w io.Writer, red *ReducedStructure, full bool) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# Abinit crystal structure")
	fmt.Fprintf(bw, "acell %s %s %s  # in Bohr\n",
		CleanFloat(red.Acell[0], CleanTol, CleanPrec),
		CleanFloat(red.Acell[1], CleanTol, CleanPrec),
		CleanFloat(red.Acell[2], CleanTol, CleanPrec))
	fmt.Fprintln(bw, "rprim")
	for i := 0; i < 3; i++ {
		fmt.Fprintf(bw, "  %s %s %s\n",
			CleanFloat(red.Rprim.At(i, 0), CleanTol, CleanPrec),
			CleanFloat(red.Rprim.At(i, 1), CleanTol, CleanPrec),
			CleanFloat(red.Rprim.At(i, 2), CleanTol, CleanPrec))
	}
	fmt.Fprintf(bw, "natom %d\n", red.Len())
	fmt.Fprintf(bw, "ntypat %d\n", red.Ntypat())
	fmt.Fprintf(bw, "znucl %s\n", joinInts(red.Znucl))
	fmt.Fprintf(bw, "typat %s\n", joinInts(red.Typat))
	fmt.Fprintln(bw, "xred")
	for _, site := range red.Sites {
		fmt.Fprintf(bw, "  %s %s %s\n",
			CleanFloat(site.Frac[0], CleanTol, CleanPrec),
			CleanFloat(site.Frac[1], CleanTol, CleanPrec),
			CleanFloat(site.Frac[2], CleanTol, CleanPrec))
	}
	if full {
		bw.WriteString(mweBlock)
	}
	return bw.Flush()
}

//WriteAbiFile writes red to path, creating the parent directory if absent.
//An existing file at path is silently overwritten; callers that need
//idempotent reruns must check for the file themselves.
func WriteAbiFile(path string, red *ReducedStructure, full bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errDecorate(err, "WriteAbiFile")
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errDecorate(err, "WriteAbiFile")
	}
	defer f.Close()
	if err := WriteAbi(f, red, full); err != nil {
		return errDecorate(err, "WriteAbiFile")
	}
	return nil
}

//ReadAbi parses a structure block previously produced by WriteAbi and
//rebuilds the ReducedStructure, reconstructing the Bohr lattice as
//acell[i]*rprim[i] row by row. Only the keywords WriteAbi emits are
//understood; anything after the xred block (such as the appended
//minimal-working-example parameters) is ignored. Atomic numbers per site
//are recovered through znucl and typat.
func ReadAbi(r io.Reader) (*ReducedStructure, error) {
	red := new(ReducedStructure)
	var natom int
	var xred [][3]float64
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(stripComment(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		var err error
		switch fields[0] {
		case "acell":
			if len(fields) < 4 {
				return nil, NewValidationError("acell needs 3 values", "ReadAbi")
			}
			for i := 0; i < 3; i++ {
				if red.Acell[i], err = strconv.ParseFloat(fields[i+1], 64); err != nil {
					return nil, errDecorate(err, "ReadAbi")
				}
			}
		case "rprim":
			if red.Rprim, err = scanMatrix(sc, 3); err != nil {
				return nil, errDecorate(err, "ReadAbi")
			}
		case "natom":
			if natom, err = strconv.Atoi(fields[1]); err != nil {
				return nil, errDecorate(err, "ReadAbi")
			}
		case "ntypat":
			//implied by znucl; the value is checked against it below
		case "znucl":
			if red.Znucl, err = parseInts(fields[1:]); err != nil {
				return nil, errDecorate(err, "ReadAbi")
			}
		case "typat":
			if red.Typat, err = parseInts(fields[1:]); err != nil {
				return nil, errDecorate(err, "ReadAbi")
			}
		case "xred":
			m, err := scanMatrix(sc, natom)
			if err != nil {
				return nil, errDecorate(err, "ReadAbi")
			}
			xred = make([][3]float64, natom)
			for i := 0; i < natom; i++ {
				xred[i] = [3]float64{m.At(i, 0), m.At(i, 1), m.At(i, 2)}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errDecorate(err, "ReadAbi")
	}
	if red.Rprim == nil || natom == 0 || len(xred) != natom ||
		len(red.Typat) != natom || len(red.Znucl) == 0 {
		return nil, NewValidationError("incomplete structure block", "ReadAbi")
	}
	red.Lattice = mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			red.Lattice.Set(i, j, red.Acell[i]*red.Rprim.At(i, j))
		}
	}
	red.Sites = make([]Site, natom)
	for i := range red.Sites {
		t := red.Typat[i]
		if t < 1 || t > len(red.Znucl) {
			return nil, NewValidationError("typat index out of range", "ReadAbi")
		}
		red.Sites[i] = Site{Frac: xred[i], Z: red.Znucl[t-1]}
	}
	return red, nil
}

//ReadAbiFile is ReadAbi on a file path.
func ReadAbiFile(path string) (*ReducedStructure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errDecorate(err, "ReadAbiFile")
	}
	defer f.Close()
	red, err := ReadAbi(f)
	if err != nil {
		return nil, errDecorate(err, "ReadAbiFile")
	}
	return red, nil
}

//scanMatrix reads rows lines of 3 floats each from sc.
func scanMatrix(sc *bufio.Scanner, rows int) (*mat.Dense, error) {
	if rows <= 0 {
		return nil, NewValidationError("matrix block before natom", "scanMatrix")
	}
	m := mat.NewDense(rows, 3, nil)
	for i := 0; i < rows; i++ {
		if !sc.Scan() {
			return nil, NewValidationError("truncated matrix block", "scanMatrix")
		}
		fields := strings.Fields(stripComment(sc.Text()))
		if len(fields) < 3 {
			return nil, NewValidationError("matrix row needs 3 values", "scanMatrix")
		}
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, errDecorate(err, "scanMatrix")
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}

func stripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		return line[:i]
	}
	return line
}

func joinInts(xs []int) string {
	strs := make([]string, len(xs))
	for i, x := range xs {
		strs[i] = strconv.Itoa(x)
	}
	return strings.Join(strs, " ")
}

func parseInts(fields []string) ([]int, error) {
	xs := make([]int, len(fields))
	for i, f := range fields {
		x, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}
