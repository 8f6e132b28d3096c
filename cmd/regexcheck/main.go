// Command regexcheck compiles a regular expression to an automaton and
// reports which input lines it accepts.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/go-automaton/automaton"
)

func main() {
	pattern := flag.String("re", "", "pattern (required)")
	text := flag.String("text", "", "single string to check instead of reading stdin")
	quiet := flag.Bool("q", false, "print only accepted lines")
	flags := flag.Int("flags", automaton.All, "regexp syntax flags bitmask")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: regexcheck -re <pattern> [-text <string>] [-q] [-flags <bitmask>]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	re, err := automaton.CompileWithOptions(*pattern, *flags, nil, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "regexcheck: %v\n", err)
		os.Exit(1)
	}

	check := func(line string) {
		ok := re.Accepts(line)
		if *quiet {
			if ok {
				fmt.Println(line)
			}
			return
		}
		if ok {
			fmt.Printf("accept %q\n", line)
		} else {
			fmt.Printf("reject %q\n", line)
		}
	}

	if *text != "" {
		check(*text)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		check(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "regexcheck: reading stdin: %v\n", err)
		os.Exit(1)
	}
}
