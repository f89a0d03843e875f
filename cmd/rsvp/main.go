package main

import "github.com/readpace/rsvp/internal/cli"

func main() {
	cli.Execute()
}
