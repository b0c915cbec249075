package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/tiendita/cart-ledger/config"
)

func main() {
	_ = godotenv.Load() // .env is optional

	cfg := config.LoadEnv()

	logger := newLogger(cfg)
	defer logger.Sync()

	root := newRootCmd(cfg, logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
