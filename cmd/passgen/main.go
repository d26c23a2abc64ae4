package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-pass-gen/internal/cli"
	"github.com/MKhiriev/go-pass-gen/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// memguard wipes key buffers and exits once the handler returns
	memguard.CatchSignal(func(os.Signal) {
		cancel()
		fmt.Fprintln(os.Stderr)
	}, os.Interrupt, syscall.SIGTERM)
	defer memguard.Purge()

	cmd := cli.NewRootCommand(buildInfo(), cli.IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
