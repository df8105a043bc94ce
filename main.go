package main

import "github.com/thenoetrevino/kboard/cmd"

func main() {
	cmd.Execute()
}
