// SPDX-License-Identifier: MIT

// Command netim estimates and maximizes influence spread on generated
// networks.
//
//	netim estimate --graph random --nodes 500 --p 0.01 --weights wc --seeds 0,1
//	netim select --algo imm --k 10 --graph random --nodes 500 --p 0.01 -o yaml
//
// Every flag can also be set in a YAML config file (--config), in the
// environment with the NETIM_ prefix (NETIM_ALGORITHM_SEED=7) or in a
// dotenv file (--env-file).
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd(ctx, version).Execute(); err != nil {
		cancel()
		os.Exit(1)
	}
}
