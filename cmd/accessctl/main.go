package main

import "admin-console/cmd/accessctl/cmd"

func main() {
	cmd.Execute()
}
