package main

import (
	"github.com/joho/godotenv"

	"github.com/mcoot/wordtiles-go/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
