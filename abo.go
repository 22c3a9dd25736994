/*
 * abo.go, part of abitools.
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

//Reading of ABINIT main-output text. Only the variable echo is parsed:
//acell, rprim, ecut, nkpt and etotal. When a keyword is echoed more than
//once (ABINIT echoes the dataset variables before and after the run) the
//last occurrence wins, which is the converged value.

import (
	"bufio"
	"compress/gzip"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/facette/natsort"
	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//AboRecord is a Record parsed from ABINIT main output.
type AboRecord struct {
	filename string
	etotal   float64 //Ha
	ecut     float64 //Ha, as echoed
	nkpt     int
	lattice  *mat.Dense //3x3, Angstrom
}

//Energy returns the total energy in Hartree.
func (R *AboRecord) Energy() float64 { return R.etotal }

//Lattice returns the 3x3 lattice matrix in Angstrom.
func (R *AboRecord) Lattice() *mat.Dense { return R.lattice }

//EcutHa returns the plane-wave cutoff in Hartree.
func (R *AboRecord) EcutHa() float64 { return R.ecut }

//NKpt returns the number of k points.
func (R *AboRecord) NKpt() int { return R.nkpt }

//Filename returns the path the record was read from.
func (R *AboRecord) Filename() string { return R.filename }

//AboRead parses one ABINIT main-output file into an AboRecord. Files ending
//in .gz or .zst are decompressed transparently. The file handle is released
//before returning, on every path.
func AboRead(name string) (*AboRecord, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errDecorate(err, "AboRead")
	}
	defer f.Close()
	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errDecorate(err, "AboRead "+name)
		}
		defer gz.Close()
		r = gz
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, errDecorate(err, "AboRead "+name)
		}
		defer zr.Close()
		r = zr
	}
	rec, err := aboParse(r)
	if err != nil {
		return nil, errDecorate(err, "AboRead "+name)
	}
	rec.filename = name
	return rec, nil
}

func aboParse(r io.Reader) (*AboRecord, error) {
	rec := new(AboRecord)
	var haveEnergy, haveAcell bool
	acell := [3]float64{}
	//rprim defaults to the identity when not echoed, as in ABINIT itself
	rprim := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		var err error
		switch fields[0] {
		case "etotal", "etotal1":
			if rec.etotal, err = parseAboFloat(fields[1]); err != nil {
				return nil, err
			}
			haveEnergy = true
		case "ecut":
			if rec.ecut, err = parseAboFloat(fields[1]); err != nil {
				return nil, err
			}
		case "nkpt":
			if rec.nkpt, err = strconv.Atoi(fields[1]); err != nil {
				return nil, NewValidationError("bad nkpt value '"+fields[1]+"'", "aboParse")
			}
		case "acell":
			if len(fields) < 4 {
				return nil, NewValidationError("acell echo needs 3 values", "aboParse")
			}
			for i := 0; i < 3; i++ {
				if acell[i], err = parseAboFloat(fields[i+1]); err != nil {
					return nil, err
				}
			}
			haveAcell = true
		case "rprim":
			if rprim, err = aboMatrixRows(sc, fields[1:]); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !haveEnergy || !haveAcell {
		return nil, NewValidationError("no etotal/acell echo found; not an ABINIT main output?", "aboParse")
	}
	//acell/rprim are echoed in Bohr; Records carry the lattice in Angstrom
	rec.lattice = mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rec.lattice.Set(i, j, acell[i]*rprim.At(i, j)*Bohr2A)
		}
	}
	return rec, nil
}

//aboMatrixRows reads the 3x3 rprim echo: three floats on the keyword line,
//then two continuation lines of three floats each.
func aboMatrixRows(sc *bufio.Scanner, first []string) (*mat.Dense, error) {
	m := mat.NewDense(3, 3, nil)
	row := first
	for i := 0; i < 3; i++ {
		if len(row) < 3 {
			return nil, NewValidationError("rprim echo row needs 3 values", "aboParse")
		}
		for j := 0; j < 3; j++ {
			v, err := parseAboFloat(row[j])
			if err != nil {
				return nil, err
			}
			m.Set(i, j, v)
		}
		if i < 2 {
			if !sc.Scan() {
				return nil, NewValidationError("truncated rprim echo", "aboParse")
			}
			row = strings.Fields(sc.Text())
		}
	}
	return m, nil
}

//parseAboFloat handles the Fortran exponent markers ABINIT uses (D or d).
func parseAboFloat(s string) (float64, error) {
	s = strings.Replace(strings.Replace(s, "D", "E", 1), "d", "e", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, NewValidationError("bad numeric value '"+s+"'", "aboParse")
	}
	return v, nil
}

//GlobRecords reads every file matching pattern, in natural (numeric-aware)
//filename order, so run-5 sorts before run-40. Each file is logged as it is
//processed.
func GlobRecords(pattern string) ([]Record, error) {
	names, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errDecorate(err, "GlobRecords")
	}
	if len(names) == 0 {
		return nil, NewValidationError("no files match '"+pattern+"'", "GlobRecords")
	}
	natsort.Sort(names)
	records := make([]Record, 0, len(names))
	for _, name := range names {
		log.Printf("Processing: %s", name)
		rec, err := AboRead(name)
		if err != nil {
			return nil, errDecorate(err, "GlobRecords")
		}
		records = append(records, rec)
	}
	return records, nil
}
