// Package main provides the CLI for the arrange layout engine.
//
// Usage:
//
//	arrange fit [options] <path-data>   Print how a vector path fits a space
//	arrange show [options]              Open a window laying out a path
//	arrange help                        Show help
//
// Examples:
//
//	arrange fit -width 200 -height 200 -stretch uniform "M 0 0 L 100 50"
//	arrange show -stretch uniformtofill -animate
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-arrange/internal/debug"
)

const version = "0.1.0"

const usage = `arrange - measure/arrange layout engine

Usage:
  arrange <command> [options] [args...]

Commands:
  fit         Measure an SVG path under a stretch policy and print the fit
  show        Open a window hosting a laid out path
  version     Print version information
  help        Show this help message

Examples:
  arrange fit -width 200 -height 200 -stretch uniform "M 0 0 L 100 50"
  arrange fit -stroke 4 -preserve-origin "M 10 10 L 50 30"
  arrange show -stretch fill
  arrange show -animate

Set ARRANGE_DEBUG=/path/to/log to write layout debug logs.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}
	defer debug.Close()

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "fit":
		if err := runFit(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "show":
		if err := runShow(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("arrange version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
