package main

import "github.com/oshokin/face-sentinel/cmd/face-sentinel-listener/cmd"

func main() {
	cmd.Execute()
}
