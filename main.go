package main

import (
	"fmt"
	"os"
	"strings"

	"pressroom/cli"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("pressroom version %s\n", cliVersion)
	default:
		cli.HandleCommand(os.Args[1:])
	}
}

func printHelp() {
	helpText := `Usage: pressroom <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the editorial workflow service.
  init                           Initialize a new empty database.
  clean                          Clean the database.
  backup                         Create a backup of the database.
  restore [file]                 Restore database from backup.
`
	fmt.Println(helpText)
}
