package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/sectioned/cmd/sectioned/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "generate":
		err = commands.Generate(args)
	case "inspect":
		err = commands.Inspect(args)
	case "dev":
		err = commands.Dev(args)
	case "version":
		fmt.Println("sectioned version", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sectioned - block style/effect engine tooling

Usage:
  sectioned <command> [flags]

Commands:
  generate     Generate Go catalog/preset tables from sectioned.toml
  inspect      Resolve and print a block document's effective styles
  dev          Watch sectioned.toml and regenerate on change
  version      Print version
  help         Show this help`)
}
