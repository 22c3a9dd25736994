/*
 * conversion.go, part of abitools.
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
	"strconv"
)

//This provides conversion factors and "clean" number formatting.

//Conversion factors, CODATA 2014. The Bohr radius must match the value used
//by ASE so that lattices round-trip with Python tooling to the last bit.
const (
	Bohr   = 0.52917721067 //Bohr radius in Angstrom
	A2Bohr = 1 / Bohr
	Bohr2A = Bohr
	H2Ev   = 27.21138602 //Hartree in eV
	Ev2H   = 1 / H2Ev
)

//Angles
const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

//Defaults for CleanFloat, as used by the .abi writer.
const (
	CleanTol  = 1e-14
	CleanPrec = 2
)

//CleanFloat returns a string for x with the given fixed precision (decimal
//digits), snapping anything smaller than tol (in absolute value) to an exact
//zero. This keeps symmetry-imposed zeros in lattice vectors from printing as
//residual noise like 6.12e-17. The decimal separator is always '.',
//regardless of locale, and ties round to even (strconv semantics).
func CleanFloat(x, tol float64, precision int) string {
	if math.Abs(x) < tol {
		x = 0
	}
	return strconv.FormatFloat(x, 'f', precision, 64)
}
