package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/signadot/bottom/lsp"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func bottomLSP(cfg *LSPConfig, cc *cli.Context, args []string) error {
	_, err := cfg.LSP.Parse(cc, args)
	if err != nil {
		return err
	}

	// stdout carries the protocol, so diagnostics go to stderr
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
		}
		defer agent.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return lsp.Serve(ctx, lsp.Stdio(cc.In, cc.Out), cfg.conf())
}
