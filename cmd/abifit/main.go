// cmd/abifit/main.go
//Fits a model (lorentzian, gaussian, murnaghan, birch-murnaghan) to the
//energy-vs-parameter series read from ABINIT main-output files, prints the
//best-fit parameters and their covariance, and plots data plus fit.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"abitools"
	"abitools/abiplot"
	"abitools/fit"

	"gonum.org/v1/gonum/mat"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, out, errw io.Writer) int {
	fs := flag.NewFlagSet("abifit", flag.ContinueOnError)
	fs.SetOutput(errw)
	param := fs.String("param", "", "parameter to extract: ecut, volume, nkpt [*]")
	model := fs.String("fit", "", "model to fit: lorentzian, gaussian, murnaghan, birch-murnaghan [*]")
	preview := fs.Bool("preview", false, "write a quick PNG preview instead of a PGF (.tex) figure")
	plotOut := fs.String("plot", "", "plot destination (overrides -preview naming); empty for the default")
	noPlot := fs.Bool("no-plot", false, "skip plotting")
	fs.Usage = func() {
		fmt.Fprintln(errw, "usage: abifit -param PARAM -fit MODEL [-preview] [-plot FILE] [glob]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if *param == "" || *model == "" {
		fs.Usage()
		return 2
	}
	kind, err := abitools.ParseParamKind(*param)
	if err != nil {
		fmt.Fprintf(errw, "abifit: %v\n", err)
		return 2
	}
	m, err := fit.ParseModel(*model)
	if err != nil {
		fmt.Fprintf(errw, "abifit: %v\n", err)
		return 2
	}
	pattern := "*.abo"
	if fs.NArg() > 0 {
		pattern = fs.Arg(0)
	}
	records, err := abitools.GlobRecords(pattern)
	if err != nil {
		fmt.Fprintf(errw, "abifit: %v\n", err)
		return 1
	}
	energies, values, err := abitools.Extract(records, kind)
	if err != nil {
		fmt.Fprintf(errw, "abifit: %v\n", err)
		return 1
	}
	params, err := abitools.Scalars(values)
	if err != nil {
		fmt.Fprintf(errw, "abifit: parameter '%s' is not scalar; fit needs ecut, volume or nkpt\n", kind)
		return 2
	}
	res, err := fit.Fit(params, energies, m)
	if err != nil {
		fmt.Fprintf(errw, "abifit: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Optimal parameters: %v\n", res.Params)
	fmt.Fprintf(out, "Covariance matrix:\n%v\n", mat.Formatted(res.Cov))
	if *noPlot {
		return 0
	}
	grid := abiplot.FitGrid(params, 200)
	cfg := abiplot.Config{Preview: *preview, Out: *plotOut}
	err = abiplot.Plot(cfg, params, energies, grid, fit.Curve(m, res.Params, grid),
		kind.String(), fmt.Sprintf("%s fit", m))
	if err != nil {
		fmt.Fprintf(errw, "abifit: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Plot written to %s\n", cfg.Path())
	return 0
}
