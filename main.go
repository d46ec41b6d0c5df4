package main

import "github.com/rybkr/entropy-sudoku/cmd"

func main() {
	cmd.Execute()
}
