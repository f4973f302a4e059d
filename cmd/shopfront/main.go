package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"shopfront/cli"
)

func main() {
	godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
