package main

import (
	"github.com/go-imsto/imprep/cmd"
)

func main() {
	cmd.Main()
}
