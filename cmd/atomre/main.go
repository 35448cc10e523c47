// Command atomre runs patterns through both matching engines and reports
// their answers and timings.
package main

import (
	"v.io/x/lib/cmdline"
	"v.io/x/lib/vlog"
)

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newRoot(vlog.NewLogger("atomre")))
}
