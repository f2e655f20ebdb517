package main

import "github.com/amterp/colorbox/internal/cli"

func main() {
	cli.Run()
}
