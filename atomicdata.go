/*
 * atomicdata.go, part of abitools.
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

import "strconv"

//A map for assigning atomic numbers to element symbols.
//Elements beyond Pu are not present, as they don't appear in
//crystallographic databases we care about.
var symbolZ = map[string]int{
	"H": 1, "He": 2,
	"Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8, "F": 9, "Ne": 10,
	"Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15, "S": 16, "Cl": 17, "Ar": 18,
	"K": 19, "Ca": 20, "Sc": 21, "Ti": 22, "V": 23, "Cr": 24, "Mn": 25,
	"Fe": 26, "Co": 27, "Ni": 28, "Cu": 29, "Zn": 30, "Ga": 31, "Ge": 32,
	"As": 33, "Se": 34, "Br": 35, "Kr": 36,
	"Rb": 37, "Sr": 38, "Y": 39, "Zr": 40, "Nb": 41, "Mo": 42, "Tc": 43,
	"Ru": 44, "Rh": 45, "Pd": 46, "Ag": 47, "Cd": 48, "In": 49, "Sn": 50,
	"Sb": 51, "Te": 52, "I": 53, "Xe": 54,
	"Cs": 55, "Ba": 56, "La": 57, "Ce": 58, "Pr": 59, "Nd": 60, "Pm": 61,
	"Sm": 62, "Eu": 63, "Gd": 64, "Tb": 65, "Dy": 66, "Ho": 67, "Er": 68,
	"Tm": 69, "Yb": 70, "Lu": 71, "Hf": 72, "Ta": 73, "W": 74, "Re": 75,
	"Os": 76, "Ir": 77, "Pt": 78, "Au": 79, "Hg": 80, "Tl": 81, "Pb": 82,
	"Bi": 83, "Po": 84, "At": 85, "Rn": 86,
	"Fr": 87, "Ra": 88, "Ac": 89, "Th": 90, "Pa": 91, "U": 92, "Np": 93,
	"Pu": 94,
}

//zSymbol is the inverse of symbolZ, built once at init.
var zSymbol = func() map[int]string {
	m := make(map[int]string, len(symbolZ))
	for s, z := range symbolZ {
		m[z] = s
	}
	return m
}()

//SymbolToZ returns the atomic number for an element symbol, or a
//ValidationError if the symbol is unknown. Oxidation-state decorations
//as found in CIF type symbols ("Fe3+", "O2-") are accepted.
func SymbolToZ(symbol string) (int, error) {
	s := trimOxidation(symbol)
	z, ok := symbolZ[s]
	if !ok {
		return 0, NewValidationError("unknown element symbol '"+symbol+"'", "SymbolToZ")
	}
	return z, nil
}

//ZToSymbol returns the element symbol for an atomic number, or a
//ValidationError if the number is outside the known range.
func ZToSymbol(z int) (string, error) {
	s, ok := zSymbol[z]
	if !ok {
		return "", NewValidationError("no element with atomic number "+strconv.Itoa(z), "ZToSymbol")
	}
	return s, nil
}

//trimOxidation strips trailing charge decorations like "3+" or "2-".
func trimOxidation(symbol string) string {
	end := len(symbol)
	for end > 0 {
		c := symbol[end-1]
		if (c >= '0' && c <= '9') || c == '+' || c == '-' {
			end--
			continue
		}
		break
	}
	return symbol[:end]
}
