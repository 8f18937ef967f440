package main

import "github.com/oshokin/face-sentinel/cmd/face-sentinel-simulator/cmd"

func main() {
	cmd.Execute()
}
