// Command subdiag analyzes submarine diagnostic reports.
//
//	subdiag report input.txt
//	subdiag report - < input.txt
//	subdiag explain --rating co2 input.txt
//	subdiag batch --store s3 --bucket reports --prefix day3/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
