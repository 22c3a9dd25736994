/*
 * models.go, part of abitools.
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

package fit

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

//ModelFunc evaluates a model at x with parameter vector p.
type ModelFunc func(x float64, p []float64) float64

//Lorentzian evaluates a Lorentzian peak at x with p = [a, b, c]:
//a the intensity scaling, b the peak center and c the full width at
//half maximum.
func Lorentzian(x float64, p []float64) float64 {
	a, b, c := p[0], p[1], p[2]
	return (a / math.Pi) * (c / 2) / ((x-b)*(x-b) + (c/2)*(c/2))
}

//Gaussian evaluates a normalized univariate Gaussian at x with
//p = [mu, sigma]: mu the center and sigma the standard deviation.
func Gaussian(x float64, p []float64) float64 {
	mu, sigma := p[0], p[1]
	return math.Exp(-(x-mu)*(x-mu)/(2*sigma*sigma)) / math.Sqrt(2*math.Pi*sigma*sigma)
}

//Murnaghan evaluates the Murnaghan equation of state E(V) with
//p = [V0, E0, B0, B1]: the equilibrium volume, the equilibrium energy, the
//bulk modulus at ambient pressure and its pressure derivative. Volumes in
//Bohr^3, energies in Hartree, B0 in Ha/Bohr^3.
func Murnaghan(v float64, p []float64) float64 {
	v0, e0, b0, b1 := p[0], p[1], p[2], p[3]
	return e0 + b0*v0*((1/(b1*(b1-1)))*math.Pow(v/v0, 1-b1)+v/(b1*v0)-1/(b1-1))
}

//BirchMurnaghan evaluates the third-order Birch-Murnaghan equation of
//state E(V) with p = [V0, E0, B0, B1], in the same units as Murnaghan.
//The Eulerian strain enters through (V0/V)^(2/3) in every term.
func BirchMurnaghan(v float64, p []float64) float64 {
	v0, e0, b0, b1 := p[0], p[1], p[2], p[3]
	eta := math.Pow(v0/v, 2.0/3.0)
	return e0 + (9*v0*b0/16)*(math.Pow(eta-1, 3)*b1+(eta-1)*(eta-1)*(6-4*eta))
}

//Model selects one of the fit models. The enumeration is closed; selectors
//outside it are rejected by ParseModel and Fit.
type Model int

const (
	ModelLorentzian Model = iota
	ModelGaussian
	ModelMurnaghan
	ModelBirchMurnaghan
)

var modelNames = map[Model]string{
	ModelLorentzian:     "lorentzian",
	ModelGaussian:       "gaussian",
	ModelMurnaghan:      "murnaghan",
	ModelBirchMurnaghan: "birch-murnaghan",
}

func (m Model) String() string {
	if s, ok := modelNames[m]; ok {
		return s
	}
	return "unknown"
}

//ParseModel maps a selector string from the command line to a Model.
//Valid selectors: lorentzian, gaussian, murnaghan, birch-murnaghan.
func ParseModel(s string) (Model, error) {
	for m, name := range modelNames {
		if s == name {
			return m, nil
		}
	}
	return 0, &ValidationError{
		message: "unknown fit type '" + s + "'; valid options are lorentzian, gaussian, murnaghan, birch-murnaghan",
		deco:    []string{"ParseModel"},
	}
}

//Func returns the model function, or nil for a Model value outside the
//enumeration.
func (m Model) Func() ModelFunc {
	switch m {
	case ModelLorentzian:
		return Lorentzian
	case ModelGaussian:
		return Gaussian
	case ModelMurnaghan:
		return Murnaghan
	case ModelBirchMurnaghan:
		return BirchMurnaghan
	}
	return nil
}

//NParams returns the length of the model's parameter vector.
func (m Model) NParams() int {
	switch m {
	case ModelLorentzian:
		return 3
	case ModelGaussian:
		return 2
	case ModelMurnaghan, ModelBirchMurnaghan:
		return 4
	}
	return 0
}

//guess derives the initial parameter vector the solver starts from. The
//heuristics seed the peak/equilibrium position from the minimum-energy
//sample, which is what makes the nonlinear solve converge on typical
//energy-vs-parameter scans:
//
//    lorentzian:       [min(y), x[argmin(y)], 1.0]
//    (birch-)murnaghan: [x[argmin(y)], min(y), 0.5, 4.0]
//
//B0 = 0.5 Ha/Bohr^3 and B1 = 4 are rough physical-plausibility seeds. The
//gaussian model has no guess policy defined and yields nil; Fit rejects it
//rather than borrowing another model's heuristic.
func (m Model) guess(x, y []float64) []float64 {
	imin := floats.MinIdx(y)
	switch m {
	case ModelLorentzian:
		return []float64{y[imin], x[imin], 1.0}
	case ModelMurnaghan, ModelBirchMurnaghan:
		return []float64{x[imin], y[imin], 0.5, 4.0}
	}
	return nil
}

//Curve evaluates the model with the given parameters over xs. Handy for
//plotting a fitted curve against the data.
func Curve(m Model, params []float64, xs []float64) []float64 {
	f := m.Func()
	if f == nil {
		return nil
	}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x, params)
	}
	return ys
}
