package main

import "github.com/mouse-blink/flashqual/cmd"

func main() {
	cmd.Execute()
}
