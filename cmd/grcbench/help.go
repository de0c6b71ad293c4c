package main

import (
	"fmt"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"
)

var (
	flagGoroutines int
	flagIterations int
	flagCacheSize  int
	flagList       bool
	flagHelp       bool
	flagVersion    bool
)

func init() {
	flag.IntVarP(&flagGoroutines, "goroutines", "g", 4, "Number of worker goroutines")
	flag.IntVarP(&flagIterations, "iterations", "n", 100000, "Iterations per goroutine")
	flag.IntVarP(&flagCacheSize, "cache-size", "c", 64, "Entry capacity for the cache workload")
	flag.BoolVarP(&flagList, "list", "l", false, "List available workloads and exit")

	flag.BoolVarP(&flagHelp, "help", "h", false, "Print usage information and exit")
	flag.BoolVarP(&flagVersion, "version", "v", false, "Print version information and exit")
}

const helpString = `Exercise split reference counting under configurable workloads

Usage: grcbench [OPTION]... WORKLOAD

Workloads:
  clone      Intra-goroutine clone/drop storm; the atomic count never moves
  share      Fan a value out to goroutines through Sendable couriers
  weak       Weak upgrades racing strong drops
  cache      LRU cache of refcounted snapshots, evictions release entries

Options:
  -g, --goroutines=NUM   Number of worker goroutines (default: 4)
  -n, --iterations=NUM   Iterations per goroutine (default: 100000)
  -c, --cache-size=NUM   Entry capacity for the cache workload (default: 64)
  -l, --list             List available workloads and exit

Miscellaneous:
  -h, --help             Prints this help message and exits
  -v, --version          Prints version information and exits

Logging is controlled by the LOGLEVEL environment variable, e.g.
LOGLEVEL=grcbench=debug`

// Help information is printed; the caller exits
func help() {
	g := color.New(color.FgGreen)
	c := color.New(color.FgCyan)

	//   __ _  _ __  ___
	//  / _` || '__|/ __|
	// | (_| || |  | (__
	//  \__, ||_|   \___|
	//  |___/

	g.Printf("   __ _ ")
	c.Println(" _ __  ___ ")
	g.Printf("  / _` |")
	c.Println("| '__|/ __|")
	g.Printf(" | (_| |")
	c.Println("| |  | (__ ")
	g.Printf("  \\__, |")
	c.Println("|_|   \\___|")
	g.Println("  |___/")

	fmt.Println(helpString)
}
