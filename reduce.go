/*
 * reduce.go, part of abitools.
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
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Lattice rows shorter than this (Bohr) make the cell singular.
const minAcell = 1e-12

//PrimitiveFinder reduces a crystal to a canonical primitive standard cell:
//the returned structure must be periodically equivalent to the input and
//have minimal cell volume. Symmetry detection is outside the scope of this
//library; implementations typically bind a symmetry package such as spglib.
type PrimitiveFinder interface {
	PrimitiveStandard(s *Structure) (*Structure, error)
}

//AsIsFinder is a PrimitiveFinder that assumes its input is already a
//primitive standard cell and returns it unchanged. Useful for workflows
//whose CIF inputs come pre-reduced, and as a stand-in until a symmetry
//backend is wired.
type AsIsFinder struct{}

//PrimitiveStandard returns s itself.
func (AsIsFinder) PrimitiveStandard(s *Structure) (*Structure, error) {
	return s, nil
}

//Reduce brings s to its primitive standard cell using finder and expresses
//the result in the acell/rprim convention, with the lattice converted from
//Angstrom to Bohr. Species are numbered by ascending atomic number, not by
//discovery order, so znucl/typat output is reproducible regardless of how
//the sites are sorted in the source file. Reduce returns a StructureError
//if any primitive lattice vector has (numerically) zero length.
func Reduce(s *Structure, finder PrimitiveFinder) (*ReducedStructure, error) {
	prim, err := finder.PrimitiveStandard(s)
	if err != nil {
		return nil, errDecorate(err, "Reduce")
	}
	red := new(ReducedStructure)
	red.Lattice = mat.DenseCopyOf(prim.Lattice)
	red.Lattice.Scale(A2Bohr, red.Lattice)
	red.Rprim = mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		row := red.Lattice.RawRowView(i)
		norm := floats.Norm(row, 2)
		if norm < minAcell {
			return nil, NewStructureError(
				fmt.Sprintf("singular lattice: vector %d has zero length", i+1), "Reduce")
		}
		red.Acell[i] = norm
		for j := 0; j < 3; j++ {
			red.Rprim.Set(i, j, row[j]/norm)
		}
	}
	red.Sites = make([]Site, len(prim.Sites))
	copy(red.Sites, prim.Sites)
	red.Znucl = uniqueZ(red.Sites)
	red.Typat = make([]int, len(red.Sites))
	for i, site := range red.Sites {
		//uniqueZ guarantees the search succeeds
		red.Typat[i] = sort.SearchInts(red.Znucl, site.Z) + 1
	}
	return red, nil
}

//uniqueZ returns the distinct atomic numbers among the sites, ascending.
func uniqueZ(sites []Site) []int {
	seen := make(map[int]bool)
	var zs []int
	for _, s := range sites {
		if !seen[s.Z] {
			seen[s.Z] = true
			zs = append(zs, s.Z)
		}
	}
	sort.Ints(zs)
	return zs
}
