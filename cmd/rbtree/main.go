// Command rbtree runs a command script against an ordered set:
//
//	rbtree [-debug] <input> <output>
//
// See package driver for the script format.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"rbset/driver"
)

func main() {
	debug := flag.Bool("debug", false, "log malformed lines to stderr")
	flag.Parse()

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	os.Exit(run(flag.Args()))
}

func run(args []string) int {
	if len(args) < 2 {
		fmt.Println("Missing command line arguments.")
		return 0
	}

	in, err := os.Open(args[0])
	if err != nil {
		logrus.WithError(err).Debug("unable to open input")
		fmt.Println("File not found.")
		return 0
	}
	defer in.Close()

	out, err := os.Create(args[1])
	if err != nil {
		logrus.WithError(err).Debug("unable to create output")
		fmt.Println("File not found.")
		return 0
	}

	if err := driver.Run(in, out); err != nil {
		out.Close()
		logrus.WithError(err).Error("run failed")
		return 1
	}
	if err := out.Close(); err != nil {
		logrus.WithError(err).Error("unable to close output")
		return 1
	}
	return 0
}
