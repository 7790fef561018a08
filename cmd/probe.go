package cmd

import (
	"context"
	"fmt"

	cimg "github.com/go-imsto/imprep/image"
)

var cmdProbe = &Command{
	UsageLine: "probe file ...",
	Short:     "show how files would be read",
	Long: `
probe prints the sniffed type and decoded attributes of each file, or why it
would be skipped.
`,
}

func init() {
	cmdProbe.Run = runProbe
}

func runProbe(ctx context.Context, args []string) bool {
	if len(args) == 0 {
		return false
	}
	for _, fn := range args {
		it, err := cimg.GuessFile(fn)
		if err != nil {
			fmt.Printf("%s: %s\n", fn, err)
			continue
		}
		ia, err := cimg.ReadAttr(fn)
		if err != nil {
			fmt.Printf("%s: type %s, skip: %s\n", fn, it, err)
			continue
		}
		fmt.Printf("%s: type %s, %s, %s\n", fn, it, ia, ia.Mime)
	}
	return true
}
