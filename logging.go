package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger writes structured progress to stderr so stdout stays clean for
// plan and tuner output.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "ecodiet",
})
