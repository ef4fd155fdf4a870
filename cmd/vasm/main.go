package main

import "github.com/keurnel/vasm/cmd/vasm/cmd"

func main() {
	cmd.Execute()
}
