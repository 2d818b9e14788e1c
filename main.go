package main

import (
	cmd "github.com/robohr/ai-service/cmd/hrai"
	"github.com/robohr/ai-service/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting hrai")
	cmd.Execute()
}
