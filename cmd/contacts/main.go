// Command contacts is a terminal client for the contacts backend.
//
// Usage:
//
//	contacts login --email you@example.com
//	contacts list --route /blocked --search ann --sort name
//	contacts status <id> bin
//
// Configuration is read from CONTACTS_CONFIG (fallback ./contacts.yaml) and
// environment variables. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/contactbook/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
