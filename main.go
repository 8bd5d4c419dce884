package main

import "SketchBoard/cmd"

func main() {
	cmd.Execute()
}
