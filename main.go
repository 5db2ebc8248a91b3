package main

import "github.com/josephlewis42/lowsh/cmd"

func main() {
	cmd.Execute()
}
