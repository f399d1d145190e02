package main

import "github.com/oshokin/release-server/cmd/release-publisher/cmd"

func main() {
	cmd.Execute()
}
