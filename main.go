package main

import "ghactivity/cmd"

func main() {
	cmd.Execute()
}
