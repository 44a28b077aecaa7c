package main

import "metabuild/cmd"

func main() {
	cmd.Execute()
}
