package main

import "pagegrid/internal/cli"

func main() {
	cli.Execute()
}
