package main

import "github.com/sawantshivaji1997/vaultsync/cmd"

func main() {
	cmd.Execute()
}
