package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/phbuechner/Root-Tournament/internal/roottm/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := roottm(); err != nil {
		logrus.Fatal(err)
	}
}

func roottm() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
