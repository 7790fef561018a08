package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Version of imprep
var Version = "0.3.0"

const envPrefix = "imprep"

// Settings are read from IMPREP_* environment variables and serve as flag
// defaults.
type Settings struct {
	Dev         bool   `envconfig:"DEV"`
	LogLevel    string `envconfig:"LOG_LEVEL"`
	LogFile     string `envconfig:"LOG_FILE"`
	Workers     int    `envconfig:"WORKERS" default:"1"`
	Filter      string `envconfig:"FILTER" default:"bilinear"`
	Compression string `envconfig:"COMPRESSION" default:"default"` // default, none, speed, best
}

var current Settings

func init() {
	if err := Load(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %s\n", err)
	}
}

// Load re-reads the environment into the current settings
func Load() error {
	var s Settings
	if err := envconfig.Process(envPrefix, &s); err != nil {
		return err
	}
	current = s
	return nil
}

// Current returns a copy of the loaded settings
func Current() Settings {
	return current
}

// InDevelop ...
func InDevelop() bool {
	return current.Dev
}

// Job is one preset in a jobs file
type Job struct {
	Name      string `yaml:"name"`
	Src       string `yaml:"src"`
	Out       string `yaml:"out"`
	Size      string `yaml:"size"`
	Filter    string `yaml:"filter,omitempty"`
	Recursive bool   `yaml:"recursive,omitempty"`
	Dedup     bool   `yaml:"dedup,omitempty"`
	Manifest  string `yaml:"manifest,omitempty"`
}

type jobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// LoadJobs reads a YAML jobs file
func LoadJobs(filename string) ([]Job, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseJobs(data)
}

// ParseJobs decodes and validates jobs
func ParseJobs(data []byte) ([]Job, error) {
	var jf jobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parse jobs: %w", err)
	}
	seen := make(map[string]bool, len(jf.Jobs))
	for i, job := range jf.Jobs {
		if job.Name == "" {
			return nil, fmt.Errorf("job #%d: missing name", i)
		}
		if seen[job.Name] {
			return nil, fmt.Errorf("job %q: duplicate name", job.Name)
		}
		seen[job.Name] = true
		if job.Src == "" || job.Out == "" {
			return nil, fmt.Errorf("job %q: src and out are required", job.Name)
		}
		if job.Size == "" {
			jf.Jobs[i].Size = "s32"
		}
	}
	return jf.Jobs, nil
}

// SelectJobs returns the named jobs in the given order, or all jobs if no
// names are given.
func SelectJobs(jobs []Job, names ...string) ([]Job, error) {
	if len(names) == 0 {
		return jobs, nil
	}
	byName := make(map[string]Job, len(jobs))
	for _, job := range jobs {
		byName[job.Name] = job
	}
	out := make([]Job, 0, len(names))
	for _, n := range names {
		job, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("job %q not found", n)
		}
		out = append(out, job)
	}
	return out, nil
}
