// Package cmd The command line tool for running imprep.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"text/template"

	"github.com/go-imsto/imprep/config"
	zlog "github.com/go-imsto/imprep/log"
)

// Command Cribbed from the genius organization of the "go" command.
type Command struct {
	Run                    func(ctx context.Context, args []string) bool
	UsageLine, Short, Long string
	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet
}

func (cmd *Command) Name() string {
	name := cmd.UsageLine
	i := strings.Index(name, " ")
	if i >= 0 {
		name = name[:i]
	}
	return name
}

func (cmd *Command) Usage() {
	fmt.Fprintf(os.Stderr, "Usage: imprep %s\n", cmd.UsageLine)
	fmt.Fprintf(os.Stderr, "Default Usage:\n")
	cmd.Flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "Description:\n")
	fmt.Fprintf(os.Stderr, "  %s\n", strings.TrimSpace(cmd.Long))
	os.Exit(2)
}

// main
var (
	exitStatus = 0
	exitMu     sync.Mutex
)

var commands = []*Command{
	cmdResize,
	cmdWatch,
	cmdJobs,
	cmdProbe,
}

func setExitStatus(n int) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

func logger() zlog.Logger {
	return zlog.Get()
}

func Main() {
	flag.Usage = func() { usage(1) }
	flag.Parse()
	args := flag.Args()

	if len(args) < 1 || args[0] == "help" {
		if len(args) == 1 {
			usage(0)
		}
		if len(args) > 1 {
			for _, cmd := range commands {
				if cmd.Name() == args[1] {
					tmpl(os.Stdout, helpTemplate, cmd)
					return
				}
			}
		}
		usage(2)
	}

	settings := config.Current()
	zl, err := zlog.NewZap(zlog.Option{
		Develop:  settings.Dev,
		Level:    settings.LogLevel,
		Filename: settings.LogFile,
	})
	if err != nil {
		errorf("logger: %s", err)
		os.Exit(2)
	}
	defer zl.Sync() // flushes buffer, if any
	zlog.Set(zl.Sugar())
	logger().Debugw("logger start", "version", config.Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, cmd := range commands {
		name := cmd.Name()
		if name == args[0] && cmd.Run != nil {
			cmd.Flag.Usage = func() { cmd.Usage() }
			cmd.Flag.Parse(args[1:])
			args = cmd.Flag.Args()

			if !cmd.Run(ctx, args) {
				fmt.Fprintf(os.Stderr, "\n")
				cmd.Flag.Usage()
			}
			stop()
			zl.Sync()
			exit()
		}
	}

	errorf("unknown command %q\nRun 'imprep help' for usage.\n", args[0])
	os.Exit(2)
}

func errorf(format string, args ...interface{}) {
	// Ensure the user's command prompt starts on the next line.
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

const usageTemplate = `usage: imprep command [arguments]

The commands are:
{{range .}}
    {{.Name | printf "%-11s"}} {{.Short}}{{end}}

Use "imprep help [command]" for more information.
`

var helpTemplate = `usage: imprep {{.UsageLine}}
{{.Long}}
`

func usage(exitCode int) {
	fmt.Fprintln(os.Stderr, "version ", config.Version)
	tmpl(os.Stderr, usageTemplate, commands)
	os.Exit(exitCode)
}

func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("top")
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}

func exit() {
	os.Exit(exitStatus)
}
