// cmd/abiread/main.go
//Extracts the total energy and one parameter (ecut, volume, nkpt, acell or
//rprim) from ABINIT main-output files and prints both series.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"abitools"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, out, errw io.Writer) int {
	fs := flag.NewFlagSet("abiread", flag.ContinueOnError)
	fs.SetOutput(errw)
	param := fs.String("param", "", "parameter to extract: ecut, volume, nkpt, acell, rprim [*]")
	fs.Usage = func() {
		fmt.Fprintln(errw, "usage: abiread -param PARAM [glob]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if *param == "" {
		fs.Usage()
		return 2
	}
	kind, err := abitools.ParseParamKind(*param)
	if err != nil {
		fmt.Fprintf(errw, "abiread: %v\n", err)
		return 2
	}
	pattern := "*.abo"
	if fs.NArg() > 0 {
		pattern = fs.Arg(0)
	}
	records, err := abitools.GlobRecords(pattern)
	if err != nil {
		fmt.Fprintf(errw, "abiread: %v\n", err)
		return 1
	}
	energies, values, err := abitools.Extract(records, kind)
	if err != nil {
		fmt.Fprintf(errw, "abiread: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, "Energy (Ha):")
	fmt.Fprintln(out, energies)
	fmt.Fprintf(out, "Parameter '%s':\n", kind)
	for _, v := range values {
		fmt.Fprintln(out, v)
	}
	return 0
}
