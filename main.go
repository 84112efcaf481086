package main

import (
	"github.com/moiseyalaev/Genome-Matcher/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
