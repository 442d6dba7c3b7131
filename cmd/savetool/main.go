package main

import "github.com/cbodonnell/playerdata/internal/cli"

func main() {
	cli.Execute()
}
