package main

import "github.com/gaurav-prasanna/photominutes/cmd"

const version = "0.1.0"

func main() {
	cmd.Execute(version)
}
