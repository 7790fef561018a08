package cmd

import (
	"context"
	"fmt"

	"github.com/go-imsto/imprep/config"
	"github.com/go-imsto/imprep/resizer"
)

var cmdJobs = &Command{
	UsageLine: "jobs -f jobs.yaml [name ...]",
	Short:     "run presets from a jobs file",
	Long: `
jobs runs the named presets of a YAML jobs file in order, or all of them
when no name is given. See jobs.example.yaml.
`,
}

var (
	jobsFile    = cmdJobs.Flag.String("f", "jobs.yaml", "jobs file")
	jobsWorkers = cmdJobs.Flag.Int("workers", config.Current().Workers, "parallel decoders per directory")
)

func init() {
	cmdJobs.Run = runJobs
}

func runJobs(ctx context.Context, args []string) bool {
	all, err := config.LoadJobs(*jobsFile)
	if err != nil {
		errorf("%s", err)
		return false
	}
	jobs, err := config.SelectJobs(all, args...)
	if err != nil {
		errorf("%s", err)
		return false
	}

	settings := config.Current()
	for _, job := range jobs {
		cfg := jobConfig(job, settings)
		cfg.Workers = *jobsWorkers
		if err = cfg.SetSize(job.Size); err != nil {
			logger().Errorw("bad job", "job", job.Name, "err", err)
			setExitStatus(1)
			continue
		}
		fmt.Printf("job %s: %s\n", job.Name, cfg)
		if !runJob(ctx, cfg) {
			setExitStatus(1)
		}
		if ctx.Err() != nil {
			break
		}
	}
	return true
}

func jobConfig(job config.Job, s config.Settings) resizer.Config {
	cfg := resizer.Config{
		Source:      job.Src,
		Output:      job.Out,
		Filter:      job.Filter,
		Recursive:   job.Recursive,
		Dedup:       job.Dedup,
		Manifest:    job.Manifest,
		Compression: s.Compression,
	}
	if cfg.Filter == "" {
		cfg.Filter = s.Filter
	}
	return cfg
}

func runJob(ctx context.Context, cfg resizer.Config) bool {
	r, err := resizer.New(cfg)
	if err != nil {
		logger().Errorw("bad job", "cfg", cfg.String(), "err", err)
		return false
	}
	defer r.Close()
	rep, err := r.Run(ctx)
	if err != nil {
		logger().Errorw("run fail", "cfg", cfg.String(), "err", err)
		return false
	}
	printReport(rep)
	return true
}
