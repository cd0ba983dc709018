package main

import "github.com/alde/asciify/cmd"

func main() {
	cmd.Execute()
}
