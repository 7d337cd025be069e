package main

import (
	"os"

	"github.com/charliek/mailgrep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
