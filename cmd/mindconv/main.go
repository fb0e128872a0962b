package main

import "github.com/dgallion1/mindconv/internal/cli"

func main() {
	cli.Execute()
}
