// cmd/cif2abi/main.go
//Converts a crystal structure in a CIF file to an ABINIT-compatible
//structure block (.abi), reducing to a primitive standard cell on the way.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"abitools"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, out, errw io.Writer) int {
	fs := flag.NewFlagSet("cif2abi", flag.ContinueOnError)
	fs.SetOutput(errw)
	full := fs.String("full", "no", "append the minimal-working-example parameter block: yes or no")
	outdir := fs.String("out", "abi_files", "destination directory for the .abi file")
	fs.Usage = func() {
		fmt.Fprintln(errw, "usage: cif2abi [flags] crystal.cif")
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	var withMWE bool
	switch *full {
	case "yes":
		withMWE = true
	case "no":
	default:
		fmt.Fprintf(errw, "cif2abi: -full must be 'yes' or 'no', got '%s'\n", *full)
		return 2
	}
	cif := fs.Arg(0)
	s, err := abitools.CifRead(cif)
	if err != nil {
		fmt.Fprintf(errw, "cif2abi: %v\n", err)
		return 1
	}
	red, err := abitools.Reduce(s, abitools.AsIsFinder{})
	if err != nil {
		fmt.Fprintf(errw, "cif2abi: %v\n", err)
		return 1
	}
	base := strings.TrimSuffix(filepath.Base(cif), filepath.Ext(cif))
	path := filepath.Join(*outdir, base+".abi")
	if err := abitools.WriteAbiFile(path, red, withMWE); err != nil {
		fmt.Fprintf(errw, "cif2abi: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, path)
	return 0
}
