package main

import (
	"fmt"
	"os"

	"github.com/idilsaglam/homelists/internal/cli"
)

func main() {
	closeLog, err := cli.SetupLogging("checklist")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	code := cli.Execute(cli.NewChecklistCommand(), os.Args[1:])
	closeLog()
	os.Exit(code)
}
