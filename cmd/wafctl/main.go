package main

import (
	"github.com/wafdocs/wafctl/internal/cli"
	"github.com/wafdocs/wafctl/internal/log"
)

func main() {
	log.InitLogger()
	cli.Execute()
}
