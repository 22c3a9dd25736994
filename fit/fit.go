/*
 * fit.go, part of abitools.
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

/*Package fit fits peak-shape functions and equations of state to
(parameter, energy) series extracted from ab-initio output, recovering
best-fit parameter vectors and their covariance. The solve is a nonlinear
least-squares minimization delegated to gonum/optimize, seeded with a
per-model initial guess; no retry or re-seeding happens internally, so a
non-converging fit surfaces as a ConvergenceError for the caller to deal
with (usually by supplying better data).*/
package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

//Result is the outcome of one fit invocation. Params has Model.NParams()
//entries in the model's documented order; Cov is the covariance estimate
//for Params, square with the same dimension. A Result is never modified
//after Fit returns it.
type Result struct {
	Model  Model
	Params []float64
	Cov    *mat.Dense
}

//Fit performs a nonlinear least-squares fit of the model to the samples
//(x[i], y[i]) and returns the converged parameter vector together with its
//covariance. The initial guess follows the model's fixed heuristic (see
//Model.guess); models without one, currently gaussian, are rejected with a
//ValidationError, as are selectors outside the enumeration and inconsistent
//or insufficient data. A solver failure is a ConvergenceError.
func Fit(x, y []float64, m Model) (*Result, error) {
	f := m.Func()
	if f == nil {
		return nil, &ValidationError{
			message: "unknown fit model",
			deco:    []string{"Fit"},
		}
	}
	if len(x) != len(y) {
		return nil, &ValidationError{
			message: fmt.Sprintf("x and y length mismatch: %d vs %d", len(x), len(y)),
			deco:    []string{"Fit"},
		}
	}
	if len(x) <= m.NParams() {
		return nil, &ValidationError{
			message: fmt.Sprintf("%s needs more than %d samples, got %d", m, m.NParams(), len(x)),
			deco:    []string{"Fit"},
		}
	}
	p0 := m.guess(x, y)
	if p0 == nil {
		return nil, &ValidationError{
			message: "model '" + m.String() + "' has no initial-guess policy and cannot be fit",
			deco:    []string{"Fit"},
		}
	}
	ssr := func(p []float64) float64 {
		var s float64
		for i := range x {
			r := f(x[i], p) - y[i]
			s += r * r
		}
		return s
	}
	problem := optimize.Problem{Func: ssr}
	//run the simplex down to the noise floor; the covariance estimate is
	//only meaningful at a tight minimum
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{Absolute: 1e-15, Iterations: 200},
	}
	res, err := optimize.Minimize(problem, p0, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, &ConvergenceError{
			message: fmt.Sprintf("%s fit did not converge: %v", m, err),
			deco:    []string{"Fit"},
		}
	}
	if err := res.Status.Err(); err != nil {
		return nil, &ConvergenceError{
			message: fmt.Sprintf("%s fit did not converge: %v", m, err),
			deco:    []string{"Fit"},
		}
	}
	for _, p := range res.X {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, &ConvergenceError{
				message: m.String() + " fit diverged to non-finite parameters",
				deco:    []string{"Fit"},
			}
		}
	}
	cov, err := covariance(f, res.X, x, y, res.F)
	if err != nil {
		return nil, err
	}
	return &Result{Model: m, Params: res.X, Cov: cov}, nil
}

//covariance estimates cov = s^2 (J^T J)^-1, with J the Jacobian of the
//residual vector at the solution (finite differences) and s^2 the residual
//variance SSR/(n-p).
func covariance(f ModelFunc, params, x, y []float64, ssr float64) (*mat.Dense, error) {
	n := len(x)
	np := len(params)
	jac := mat.NewDense(n, np, nil)
	fd.Jacobian(jac, func(dst, p []float64) {
		for i := range x {
			dst[i] = f(x[i], p) - y[i]
		}
	}, params, nil)
	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)
	var inv mat.Dense
	if err := inv.Inverse(&jtj); err != nil {
		return nil, &ConvergenceError{
			message: "covariance estimate failed: " + err.Error(),
			deco:    []string{"covariance"},
		}
	}
	inv.Scale(ssr/float64(n-np), &inv)
	return &inv, nil
}

//ValidationError signals a selector outside the model enumeration or data
//that cannot be fit as supplied.
type ValidationError struct {
	message string
	deco    []string
}

func (err *ValidationError) Error() string {
	return "fit: invalid value: " + err.message
}

//Decorate adds new information to the error.
func (err *ValidationError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//ConvergenceError signals that the solver could not converge from the
//model's initial guess, or that the covariance at the solution is not
//defined. It is retryable by the caller (with better data or another
//model); this package never retries by itself.
type ConvergenceError struct {
	message string
	deco    []string
}

func (err *ConvergenceError) Error() string {
	return "fit: " + err.message
}

//Decorate adds new information to the error.
func (err *ConvergenceError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
