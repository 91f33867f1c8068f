package main

import (
	"github.com/KeatonRowley/PlastomeBurstAndAlign/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
