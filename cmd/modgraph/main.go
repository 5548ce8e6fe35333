// Command modgraph builds modular prime graphs from the command line and
// prints or renders them.
//
//	modgraph graph --primes 3,5,7,11 --exp 6 [--extended] [--format dot]
//	modgraph algebra --primes 3,5,7,11 --exp 6 --other 10
//	modgraph demo
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("modgraph failed", "error", err)
		os.Exit(1)
	}
}
