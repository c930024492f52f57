package main

import "github.com/leandrodaf/midirec/cmd"

func main() {
	cmd.Execute()
}
