// Command toddcox runs Todd-Coxeter coset enumeration over one of a
// fixed set of Coxeter group families and prints a single CSV line of
// the form "type,arg,n,elapsed_seconds,order" to stdout.
//
// Usage:
//
//	toddcox [-workers N] [-subgens g1,g2,...] [-verify] <type> [arg]
//
//	type: 0=torus(res) 1=H4 2=E6 3=E7 4=E8 5=hypercube(dim)
//	arg:  resolution (type 0) or dimension (type 5); ignored otherwise
//
// Flags must come before the positional arguments; anything after <type>
// is treated as positional and flags placed there are not parsed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/allemangd-uncc/hpc-toddcox/groups"
	"github.com/allemangd-uncc/hpc-toddcox/toddcox"
	"github.com/allemangd-uncc/hpc-toddcox/verify"
)

// logger writes configuration and verification failures to stderr; the
// CSV result line is the only thing ever written to stdout, matching
// a single-line output contract.
var logger = log.New(os.Stderr, "toddcox: ", 0)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("toddcox", flag.ContinueOnError)
	workers := fs.Int("workers", envWorkers(), "parallel workers per Learner pass (0 = NumCPU)")
	subgensFlag := fs.String("subgens", "", "comma-separated subgroup generator indices")
	doVerify := fs.Bool("verify", false, "run post-solve sanity checks before reporting")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) < 1 {
		logger.Println("missing type argument")
		return 1
	}
	tag, err := strconv.Atoi(rest[0])
	if err != nil {
		logger.Printf("invalid type argument %q: %v", rest[0], err)
		return 1
	}

	arg := -1
	if tag == 0 || tag == 5 {
		if len(rest) < 2 {
			logger.Println("this group family requires a second argument")
			return 1
		}
		arg, err = strconv.Atoi(rest[1])
		if err != nil {
			logger.Printf("invalid second argument %q: %v", rest[1], err)
			return 1
		}
	}

	spec, err := groups.FromTag(tag, arg)
	if err != nil {
		logger.Println(err)
		return 1
	}

	subgens, err := parseSubgens(*subgensFlag)
	if err != nil {
		logger.Println(err)
		return 1
	}

	start := time.Now()
	tbl, err := toddcox.Solve(spec, subgens, toddcox.WithWorkers(*workers), toddcox.WithContext(context.Background()))
	elapsed := time.Since(start)
	if err != nil {
		logger.Println(err)
		return 1
	}

	if *doVerify {
		if err := verify.All(tbl, spec, subgens); err != nil {
			logger.Println(err)
			return 3
		}
	}

	fmt.Printf("%d,%d,%d,%f,%d\n", tag, arg, spec.NGens(), elapsed.Seconds(), tbl.Size())
	return 0
}

// parseSubgens parses a comma-separated list of generator indices; an
// empty string yields a nil (trivial-subgroup) slice.
func parseSubgens(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid subgroup generator %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// envWorkers reads TODDCOX_WORKERS as a fallback default for -workers,
// parallelism controls consumed by the worker pool.
func envWorkers() int {
	v := os.Getenv("TODDCOX_WORKERS")
	if v == "" {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 1
	}
	return n
}
