// vatcheck CLI - validate EU VAT numbers from the command line.
package main

import (
	"github.com/getmockd/vatcheck/pkg/cli"
)

func main() {
	cli.Execute()
}
