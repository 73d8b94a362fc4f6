// Command box3d solves 3D box layout scenes described in YAML.
//
// Usage:
//
//	box3d solve [path...]    Solve scenes and print the results
//	box3d watch [path...]    Solve scenes again whenever they change
//	box3d version            Print version information
//
// Examples:
//
//	box3d solve ./...                  Solve every scene below the current directory
//	box3d solve -f yaml board.yaml     Print YAML instead of JSON
//	box3d solve -o out ./scenes        Write one result file per scene into out
//	box3d watch --root-size 100,50,1 . Watch a directory with a fixed root size
//
// Every flag can also be set with a BOX3D_ environment variable
// (BOX3D_FORMAT, BOX3D_ROOT_SIZE, ...) or in the file named by --config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
