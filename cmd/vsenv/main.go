package main

import "github.com/devshell-tools/vsenv/internal/cli"

func main() {
	cli.Execute()
}
