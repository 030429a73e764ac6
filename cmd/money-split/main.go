package main

import "github.com/jannejalopeura/money-split/cmd/money-split/cmd"

func main() {
	cmd.Execute()
}
