package main

import "github.com/leakscan/leakscan/cmd/leakscan"

func main() { leakscan.Execute() }
