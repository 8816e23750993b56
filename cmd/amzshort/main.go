package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tsc11539/amazon-shortener/internal/cli"
	"github.com/tsc11539/amazon-shortener/internal/config"
)

func main() {
	_ = godotenv.Load()
	if err := cli.Run(os.Args[1:], config.NewEnv(viper.New())); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
