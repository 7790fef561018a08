package cmd

import (
	"context"

	"github.com/go-imsto/imprep/resizer"
)

var cmdWatch = &Command{
	UsageLine: "watch -src DIR -out DIR [-size s32] [-r]",
	Short:     "resize a directory, then keep resizing new arrivals",
	Long: `
watch runs like resize and then keeps watching the source directory. Images
saved there later are resized once they stop changing, numbered after the
existing outputs. Stop with Ctrl-C.
`,
}

var wflags = bindResizeFlags(&cmdWatch.Flag)

func init() {
	cmdWatch.Run = runWatch
}

func runWatch(ctx context.Context, args []string) bool {
	cfg, ok := wflags.config()
	if !ok {
		return false
	}
	r, err := resizer.New(cfg, resizer.WithObserver(func(res resizer.Result) {
		if res.Status == resizer.StatusResized {
			logger().Infow("resized", "src", res.Source, "out", res.Output)
		}
	}))
	if err != nil {
		errorf("%s", err)
		return false
	}
	defer r.Close()

	rep, err := r.Run(ctx)
	if err != nil {
		logger().Errorw("run fail", "cfg", cfg.String(), "err", err)
		setExitStatus(1)
		return true
	}
	printReport(rep)

	if err = r.Watch(ctx); err != nil {
		logger().Errorw("watch fail", "err", err)
		setExitStatus(1)
	}
	return true
}
