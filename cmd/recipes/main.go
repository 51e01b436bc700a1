package main

import (
	"fmt"
	"os"

	"github.com/idilsaglam/homelists/internal/cli"
)

func main() {
	closeLog, err := cli.SetupLogging("recipes")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	code := cli.Execute(cli.NewRecipesCommand(), os.Args[1:])
	closeLog()
	os.Exit(code)
}
