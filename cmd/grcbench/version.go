package main

import "fmt"

// Overridden at build time via -ldflags "-X main.buildVersion=...".
var buildVersion = "development"

func version() {
	fmt.Println("grcbench", buildVersion)
}
