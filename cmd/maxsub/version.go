package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is set at build time:
//
//	go build -ldflags "-X main.version=v1.0.0" ./cmd/maxsub
var version = "dev"

func (a *app) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of maxsub",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.out, "maxsub %v (%v, %v/%v)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
