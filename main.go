package main

import "github.com/docfmt/docfmt/cmd"

func main() {
	cmd.Execute()
}
