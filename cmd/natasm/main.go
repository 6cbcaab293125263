package main

import "github.com/nature-lang/natasm/cmd/natasm/cmd"

func main() {
	cmd.Execute()
}
