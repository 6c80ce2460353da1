// primecount is a command-line front end over the primecount package,
// adapted from anisomorphic-Parallel-Prime-Sieve's main.go: parse x from
// the command line and the thread count from flags, run the computation,
// report elapsed time and the result.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/jgmbenoit/primecount"
)

func main() {
	var (
		nth       = flag.Bool("nth-prime", false, "interpret x as n and print the nth prime")
		threads   = flag.Int("threads", runtime.NumCPU(), "number of threads to use")
		algorithm = flag.String("algorithm", "gourdon", "algorithm: gourdon, delegliserivat, lmo")
		verbose   = flag.Bool("verbose", false, "print progress between waves")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: primecount [flags] x")
		os.Exit(2)
	}
	var x int64
	if _, err := fmt.Sscanf(flag.Arg(0), "%d", &x); err != nil {
		log.Fatalf("primecount: invalid integer %q: %v", flag.Arg(0), err)
	}

	runtime.GOMAXPROCS(*threads)

	start := time.Now()

	if *nth {
		result, err := primecount.NthPrime(x, *threads)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%d\n", result)
		fmt.Fprintln(os.Stderr, time.Since(start))
		return
	}

	opts := primecount.DefaultOptions()
	opts.Threads = *threads
	opts.Verbose = *verbose
	switch *algorithm {
	case "delegliserivat":
		opts.Algorithm = primecount.DelegliseRivat
	case "lmo":
		opts.Algorithm = primecount.LMO
	case "gourdon":
		opts.Algorithm = primecount.Gourdon
	default:
		log.Fatalf("primecount: unknown algorithm %q", *algorithm)
	}

	result, err := primecount.PiWithOptions(x, opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d\n", result)
	fmt.Fprintln(os.Stderr, time.Since(start))
}
