//go:build race

package grc

const raceEnabled = true
