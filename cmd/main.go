package main

import (
	cmd "github.com/benckx/coinfolio/cmd/coinfolio"
)

func main() {
	cmd.Execute()
}
