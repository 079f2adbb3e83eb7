package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/yuchen/hanzideck/cmd"
)

func main() {
	// Best-effort: a .env in the working directory may carry HANZIDECK_* vars.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
