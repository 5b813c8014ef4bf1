package main

import "github.com/aalvaropc/conversor/internal/cli"

func main() {
	cli.Execute()
}
