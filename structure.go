/*
 * structure.go, part of abitools.
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
	"gonum.org/v1/gonum/mat"
)

//Site is one atomic site of a crystal: fractional coordinates with respect
//to the lattice basis, plus the atomic number of the species sitting there.
//Fractional coordinates are periodic; consumers must treat values modulo 1.
type Site struct {
	Frac [3]float64
	Z    int
}

//Structure is a crystal: a 3x3 lattice matrix whose rows are the basis
//vectors, in Angstrom, and an ordered list of atomic sites. A Structure is
//consumed read-only by every function in this library; none of them keeps
//a reference to it or writes through it.
type Structure struct {
	Lattice *mat.Dense //3x3, rows are basis vectors, Angstrom
	Sites   []Site
}

//NewStructure returns a Structure with the given row-major 3x3 lattice
//(Angstrom) and sites. It returns a StructureError if lattice does not
//contain exactly 9 elements, or a nil/empty site list.
func NewStructure(lattice []float64, sites []Site) (*Structure, error) {
	if len(lattice) != 9 {
		return nil, NewStructureError("lattice needs exactly 9 elements", "NewStructure")
	}
	if len(sites) == 0 {
		return nil, NewStructureError("structure needs at least one site", "NewStructure")
	}
	s := new(Structure)
	s.Lattice = mat.NewDense(3, 3, lattice)
	s.Sites = make([]Site, len(sites))
	copy(s.Sites, sites)
	return s, nil
}

//Copy returns a deep copy of the structure.
func (S *Structure) Copy() *Structure {
	n := new(Structure)
	n.Lattice = mat.DenseCopyOf(S.Lattice)
	n.Sites = make([]Site, len(S.Sites))
	copy(n.Sites, S.Sites)
	return n
}

//Len returns the number of sites.
func (S *Structure) Len() int {
	return len(S.Sites)
}

//ReducedStructure is a Structure brought to its primitive standard cell and
//expressed in the acell/rprim convention of ABINIT: Lattice (Bohr) equals,
//row by row, Acell[i] times the unit vector in row i of Rprim. Znucl holds
//the distinct atomic numbers in ascending order and Typat, one entry per
//site, the 1-based index of each site's atomic number within Znucl.
type ReducedStructure struct {
	Lattice *mat.Dense //3x3, Bohr
	Acell   [3]float64 //norms of the lattice rows, Bohr
	Rprim   *mat.Dense //3x3, unit-normalized lattice rows
	Sites   []Site
	Znucl   []int
	Typat   []int
}

//Len returns the number of sites.
func (R *ReducedStructure) Len() int {
	return len(R.Sites)
}

//Ntypat returns the number of distinct species.
func (R *ReducedStructure) Ntypat() int {
	return len(R.Znucl)
}
