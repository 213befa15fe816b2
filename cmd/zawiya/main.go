package main

import "github.com/nfrund/zawiya/cmd/zawiya/cmd"

func main() {
	cmd.Execute()
}
