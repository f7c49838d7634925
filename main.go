package main

import "github.com/veldt/browse/internal/cli"

func main() {
	cli.Execute()
}
