package main

import "simcl/cmd"

func main() {
	cmd.Execute()
}
