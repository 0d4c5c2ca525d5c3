// Command frontier solves single-source shortest-path problems from the
// command line using the frontier-reduction engine.
//
//	frontier demo
//	frontier solve graph.yaml --source 0 --verify
//	frontier random --vertices 10000 --prob 0.001 --seed 7
package main

import (
	"os"
)

var version = "dev"

func main() {
	if err := createRootCommand(&Input{}, version).Execute(); err != nil {
		os.Exit(1)
	}
}
