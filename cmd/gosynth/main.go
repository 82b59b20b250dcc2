package main

import "github.com/dbsmedya/gosynth/cmd/gosynth/cmd"

func main() {
	cmd.Execute()
}
