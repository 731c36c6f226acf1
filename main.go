// Package main is the entry point for the hqxbrute CLI.
package main

import "hqxbrute.dev/pkg/hqxbrute/cmd"

func main() {
	cmd.Execute()
}
