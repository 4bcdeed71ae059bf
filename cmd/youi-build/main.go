package main

import "youi-build/internal/cli"

func main() {
	cli.Execute()
}
