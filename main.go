package main

import "github.com/nickng/fac/cmd"

func main() {
	cmd.Execute()
}
