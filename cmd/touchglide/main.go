// Package main starts the touchglide server.
package main

import "flag"

// main is the entrypoint for the touchglide server.
func main() {
	staticDir := flag.String("static", "", "Serve overlay assets from a directory instead of the embedded copy")
	flag.Parse()

	if err := run(*staticDir); err != nil {
		logFatal(err)
	}
}
