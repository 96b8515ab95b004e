package main

import (
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// initKlog sends klog output to w. The terminal belongs to the dashboard,
// so nothing may reach stderr below FATAL.
func initKlog(w io.Writer, verbosity int) error {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	klog.InitFlags(fs)
	klog.SetOutput(w)

	args := []string{
		"--stderrthreshold=FATAL",
		"--logtostderr=false",
		"--alsologtostderr=false",
	}
	if verbosity > 0 {
		args = append(args, "-v", strconv.Itoa(verbosity))
	}
	return errors.Wrap(fs.Parse(args), "configuring logging")
}
