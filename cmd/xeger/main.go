// Command xeger prints random strings matching a regular expression.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-automaton/xeger"
)

func main() {
	pattern := flag.String("re", "", "pattern (required)")
	count := flag.Int("n", 1, "number of strings to generate")
	seed := flag.Int64("seed", 0, "PRNG seed (0 picks a time-based seed)")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: xeger -re <pattern> [-n <count>] [-seed <seed>]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var gen *xeger.Generator
	var err error
	if *seed != 0 {
		gen, err = xeger.NewWithSeed(*pattern, *seed)
	} else {
		gen, err = xeger.New(*pattern)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "xeger: %v\n", err)
		os.Exit(1)
	}

	for _, s := range gen.GenerateN(*count) {
		fmt.Println(s)
	}
}
