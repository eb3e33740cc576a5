package main

import (
	"os"

	"github.com/thomas-lane/go-raytracer/cmd"
	"github.com/thomas-lane/go-raytracer/pkg/log"
)

var logger = log.New("raytracer")

func run(args []string) error {
	return cmd.NewApp().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		logger.Errorf("error: %s", err.Error())
		os.Exit(1)
	}
}
