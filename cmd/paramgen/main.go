// Command paramgen generates the proving and verifying key artifacts for the
// ledger circuits.
//
// Run it with `paramgen [parameter] [network]`, e.g. `paramgen inner testnet2`.
// Artifacts and the metadata manifest are written to the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/dpcnet/paramgen"
)

func main() {
	if err := paramgen.Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
