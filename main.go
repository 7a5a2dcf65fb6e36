package main

import (
	"os"

	"github.com/zhengshuai-xiao/crosscorrelate/cmd"
	"github.com/zhengshuai-xiao/crosscorrelate/internal"
)

var logger = internal.GetLogger("crosscorrelate_main")

func main() {
	err := cmd.Main(os.Args)
	if err != nil {
		logger.Fatal(err)
	}
}
