// Package main is the entry point for the deco-bootstrap CLI.
//
// deco-bootstrap provisions a Debian-style host for the TP-Link Deco
// hosts poller: it installs the required system packages, downloads the
// poller files from GitHub, builds a Python virtual environment, writes
// the credentials template and registers the hourly cron job.
//
// Download the single binary and run it as root:
//
//	wget https://github.com/visvarb/tplink-deco-poller/releases/latest/download/deco-bootstrap
//	sudo ./deco-bootstrap
package main

import (
	"fmt"
	"os"

	"github.com/visvarb/tplink-deco-poller/cmd/deco-bootstrap/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
