/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/julionce/once-io/cmd/recdump/cmd"
)

func main() {
	cmd.Execute()
}
