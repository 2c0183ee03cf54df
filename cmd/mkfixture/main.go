// mkfixture generates deterministic binary fixture files for range-request
// testing. Every byte of a generated blob is a pure function of its offset,
// so a client that fetches bytes [start, end] can verify the slice without
// holding the rest of the file. Names with an HDF5-family extension get the
// HDF5 signature as their first eight bytes.
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/honicky/anndata-duckdb-extension/internal"
)

func main() {
	size := flag.Int64P("size", "s", 1000, "size of the generated file in bytes")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: mkfixture [--size N] <path>...")
		os.Exit(1)
	}
	if *size < 0 {
		fmt.Fprintln(os.Stderr, "size must be non-negative")
		os.Exit(1)
	}

	for _, path := range flag.Args() {
		if err := internal.WriteFixture(path, *size); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d bytes)\n", path, *size)
	}
}
