package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/xrpl-gmp/bridge/cmd/bridge"
)

func main() {
	rootCmd := bridge.BuildBridgeCmd()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, bridge.ErrReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
