/*
 * doc.go, part of abitools.
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

/*Package abitools supports ab-initio electronic-structure workflows built
around the ABINIT code. It provides facilities for:

    Reading crystal structures from CIF files.

    Reducing a crystal to its primitive standard cell (through a pluggable
    symmetry backend) and expressing the lattice in the acell/rprim
    convention used by ABINIT input files.

    Writing ABINIT-compatible structure blocks (.abi files), optionally
    with a minimal working set of calculation parameters appended.

    Reading total energies and calculation parameters (ecut, nkpt, volume,
    acell, rprim) back from ABINIT main-output files, including gzip and
    zstd compressed ones.

    Fitting peak-shape functions and equations of state (Lorentzian,
    Murnaghan, Birch-Murnaghan) to energy series in order to recover
    equilibrium parameters such as the equilibrium volume and the bulk
    modulus (subpackage fit).

    Plotting data together with a fitted curve (subpackage abiplot).

Lattices are 3x3 gonum mat.Dense matrices whose rows are the basis vectors.
Unless stated otherwise, structures read from files carry lattices in
Angstrom, while everything written for, or read from, ABINIT is in Bohr.
The conversion constants used here match those of ASE (CODATA 2014), so
values round-trip with Python tooling built on that library.*/
package abitools
