// Package main is the entrypoint for the chrono service, a stateless HTTP
// API for temporal queries: current time, date arithmetic, differences, and
// timezone conversion.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aelexs/temporal-query-service/internal/server"
)

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return server.Run(ctx, nil)
}
