package main

import "github.com/oshokin/face-sentinel/cmd/face-sentinel-server/cmd"

func main() {
	cmd.Execute()
}
