package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/go-imsto/imprep/config"
	"github.com/go-imsto/imprep/resizer"
)

var cmdResize = &Command{
	UsageLine: "resize -src DIR -out DIR [-size s32] [-r]",
	Short:     "resize every image of a directory to fixed size PNGs",
	Long: `
resize walks DIR, resamples each decodable image to the target size, and writes
it as <n>.png into the output directory. n counts up from 0 in each output
directory. Files that fail are logged and skipped, the run always completes.

Sizes: s64 stretches to 64x64, c64 scales to cover and crops the centre,
s64x48 sets width and height separately.
`,
}

// resizeFlags are shared by resize and watch
type resizeFlags struct {
	src, out, size, filter, compression, manifest *string
	recursive, dedup                              *bool
	workers                                       *int
}

func bindResizeFlags(fs *flag.FlagSet) *resizeFlags {
	s := config.Current()
	return &resizeFlags{
		src:         fs.String("src", "", "source directory"),
		out:         fs.String("out", "", "output directory"),
		size:        fs.String("size", "s32", "target size: s32, c64, s64x48"),
		filter:      fs.String("filter", s.Filter, "nearest, bilinear, bicubic, mitchell, lanczos2, lanczos3"),
		compression: fs.String("compression", s.Compression, "png compression: default, none, speed, best"),
		manifest:    fs.String("manifest", "", "write a JSON lines manifest to this file"),
		recursive:   fs.Bool("r", false, "mirror subdirectories of the source"),
		dedup:       fs.Bool("dedup", false, "skip sources identical to one already written"),
		workers:     fs.Int("workers", s.Workers, "parallel decoders per directory"),
	}
}

func (f *resizeFlags) config() (cfg resizer.Config, ok bool) {
	if *f.src == "" || *f.out == "" {
		return cfg, false
	}
	cfg = resizer.Config{
		Source:      *f.src,
		Output:      *f.out,
		Filter:      *f.filter,
		Compression: *f.compression,
		Manifest:    *f.manifest,
		Recursive:   *f.recursive,
		Dedup:       *f.dedup,
		Workers:     *f.workers,
	}
	if err := cfg.SetSize(*f.size); err != nil {
		errorf("%s", err)
		return cfg, false
	}
	return cfg, true
}

var rflags = bindResizeFlags(&cmdResize.Flag)

func init() {
	cmdResize.Run = runResize
}

func runResize(ctx context.Context, args []string) bool {
	cfg, ok := rflags.config()
	if !ok {
		return false
	}
	r, err := resizer.New(cfg)
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
	return true
}

func printReport(rep *resizer.Report) {
	fmt.Printf("resized %d, skipped %d, %d bytes in %d dirs, %s\n",
		rep.Resized, rep.Skipped, rep.Bytes, len(rep.Dirs), rep.Elapsed)
	for _, res := range rep.Failures() {
		fmt.Printf("  missed %s: %s\n", res.Source, res.Err)
	}
}
