/*
 * cif.go, part of abitools.
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

//CIF reading. This handles the subset of the format that crystal-structure
//repositories actually emit for a single data block: the cell parameters
//and one atom_site loop with fractional coordinates. Symmetry operation
//loops are ignored; reducing to a primitive cell is the job of a
//PrimitiveFinder, not of the reader.

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

//CifRead parses a CIF file into a Structure with the lattice in Angstrom.
//Numeric values may carry a standard-uncertainty suffix ("5.431(2)"), which
//is stripped. Site species are taken from _atom_site_type_symbol when
//present, and otherwise from _atom_site_label with trailing digits removed.
func CifRead(cifname string) (*Structure, error) {
	f, err := os.Open(cifname)
	if err != nil {
		return nil, errDecorate(err, "CifRead")
	}
	defer f.Close()
	s, err := cifParse(f)
	if err != nil {
		return nil, errDecorate(err, "CifRead "+cifname)
	}
	return s, nil
}

func cifParse(r io.Reader) (*Structure, error) {
	cell := make(map[string]float64)
	var sites []Site
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "_cell_length_"), strings.HasPrefix(line, "_cell_angle_"):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, NewValidationError("cell parameter without value: "+line, "cifParse")
			}
			v, err := cifFloat(fields[1])
			if err != nil {
				return nil, err
			}
			cell[fields[0]] = v
		case line == "loop_":
			loopSites, err := cifLoop(sc)
			if err != nil {
				return nil, err
			}
			if loopSites != nil {
				sites = loopSites
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	lattice, err := cifLattice(cell)
	if err != nil {
		return nil, err
	}
	if sites == nil {
		return nil, NewValidationError("no atom_site loop found", "cifParse")
	}
	return NewStructure(lattice, sites)
}

//cifLoop consumes one loop_ block. It returns a site list if the loop is an
//atom_site loop with fractional coordinates, and nil otherwise (the block
//is still consumed either way).
func cifLoop(sc *bufio.Scanner) ([]Site, error) {
	var tags []string
	var rows [][]string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line == "loop_" {
			break
		}
		if strings.HasPrefix(line, "_") {
			if len(rows) > 0 {
				break //a new tag after data rows starts the next block
			}
			tags = append(tags, strings.Fields(line)[0])
			continue
		}
		if strings.HasPrefix(line, "data_") || strings.HasPrefix(line, "#") {
			break
		}
		rows = append(rows, strings.Fields(line))
	}
	ix := indexOf(tags, "_atom_site_fract_x")
	iy := indexOf(tags, "_atom_site_fract_y")
	iz := indexOf(tags, "_atom_site_fract_z")
	isym := indexOf(tags, "_atom_site_type_symbol")
	if isym < 0 {
		isym = indexOf(tags, "_atom_site_label")
	}
	if ix < 0 || iy < 0 || iz < 0 || isym < 0 {
		return nil, nil //not an atom_site loop
	}
	sites := make([]Site, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(tags) {
			return nil, NewValidationError("short atom_site row", "cifLoop")
		}
		var site Site
		var err error
		if site.Frac[0], err = cifFloat(row[ix]); err != nil {
			return nil, err
		}
		if site.Frac[1], err = cifFloat(row[iy]); err != nil {
			return nil, err
		}
		if site.Frac[2], err = cifFloat(row[iz]); err != nil {
			return nil, err
		}
		if site.Z, err = SymbolToZ(strings.TrimRight(row[isym], "0123456789")); err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, nil
}

//cifLattice builds the row-major lattice matrix from the six cell
//parameters, with a along x and b in the xy plane (the standard
//crystallographic convention).
func cifLattice(cell map[string]float64) ([]float64, error) {
	for _, k := range []string{"_cell_length_a", "_cell_length_b", "_cell_length_c",
		"_cell_angle_alpha", "_cell_angle_beta", "_cell_angle_gamma"} {
		if _, ok := cell[k]; !ok {
			return nil, NewValidationError("missing cell parameter "+k, "cifLattice")
		}
	}
	a := cell["_cell_length_a"]
	b := cell["_cell_length_b"]
	c := cell["_cell_length_c"]
	alpha := cell["_cell_angle_alpha"] * Deg2Rad
	beta := cell["_cell_angle_beta"] * Deg2Rad
	gamma := cell["_cell_angle_gamma"] * Deg2Rad
	cx := c * math.Cos(beta)
	cy := c * (math.Cos(alpha) - math.Cos(beta)*math.Cos(gamma)) / math.Sin(gamma)
	cz2 := c*c - cx*cx - cy*cy
	if cz2 <= 0 {
		return nil, NewStructureError("cell angles define a degenerate lattice", "cifLattice")
	}
	return []float64{
		a, 0, 0,
		b * math.Cos(gamma), b * math.Sin(gamma), 0,
		cx, cy, math.Sqrt(cz2),
	}, nil
}

//cifFloat parses a CIF numeric value, stripping any "(esd)" suffix.
func cifFloat(s string) (float64, error) {
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, NewValidationError("bad numeric value '"+s+"'", "cifFloat")
	}
	return v, nil
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}
