// main is the entry point of the maturity CLI.
package main

import (
	"github.com/huangsam/maturity/cmd"
	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/internal/history"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment and flags still apply.
	_ = godotenv.Load(".env")

	err := cmd.Execute()
	history.CloseHistory()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
