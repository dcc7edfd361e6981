package main

import "github.com/LegacyCodeHQ/soundcook/cmd"

func main() {
	cmd.Execute()
}
