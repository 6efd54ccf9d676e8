package main

import "github.com/mcoot/recruitment-api/internal/cli"

func main() {
	cli.Execute()
}
