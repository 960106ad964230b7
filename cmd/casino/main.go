package main

import "github.com/mcoot/pocketcasino/internal/cli"

func main() {
	cli.Execute()
}
