package main

import "jazal/cmd"

func main() {
	cmd.Execute()
}
