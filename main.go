package main

import "DistroFM/cmd"

func main() {
	cmd.Execute()
}
