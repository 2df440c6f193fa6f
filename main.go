package main

import "github.com/rmg-x/consolectl/cmd"

func main() {
	cmd.Execute()
}
