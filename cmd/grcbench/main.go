package main

import (
	"fmt"
	"os"
	"sort"

	flag "github.com/spf13/pflag"

	"github.com/kaimana/grc/internal/logging"
)

var log = logging.DefaultLogger.WithTag("grcbench")

func main() {
	flag.Parse()

	if flagHelp {
		help()
		os.Exit(0)
	}

	if flagVersion {
		version()
		os.Exit(0)
	}

	if flagList {
		for _, name := range workloadNames() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one workload; see --help")
		os.Exit(2)
	}

	cfg := workloadConfig{
		goroutines: flagGoroutines,
		iterations: flagIterations,
		cacheSize:  flagCacheSize,
	}

	run, err := lookupWorkload(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	log.Info("workload %q: goroutines=%d iterations=%d", flag.Arg(0), cfg.goroutines, cfg.iterations)
	if err := run(cfg); err != nil {
		log.Fatalf("workload %q failed: %v", flag.Arg(0), err)
	}
}

func workloadNames() []string {
	var names []string
	for name := range workloads {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
