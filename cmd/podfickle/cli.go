package main

import (
	"flag"
	"fmt"
	"io"
)

const (
	commandDescribe = "describe"
	commandPost     = "post"

	defaultBaseURL = "https://archiveofourown.org"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigFile  string
	BaseURL     string
	EnvFile     string
	Headless    bool
	ShowVersion bool

	Command  string
	Describe DescribeOptions
	Post     PostOptions
}

// DescribeOptions are the flags of the describe command
type DescribeOptions struct {
	Template string
	WorkHTML string
	Copy     bool
}

// PostOptions are the flags of the post command
type PostOptions struct {
	TemplatePost  string
	TemplateNotes string
}

// parseArgs parses the global flags, the subcommand and its flags.
func parseArgs(args []string, output io.Writer) (*CLIConfig, error) {
	cli := &CLIConfig{}

	global := flag.NewFlagSet("podfickle", flag.ContinueOnError)
	global.SetOutput(output)
	global.StringVar(&cli.ConfigFile, "config", "", "Config file path (YAML or JSON)")
	global.StringVar(&cli.BaseURL, "base-url", defaultBaseURL, "Base url of the AO3 instance")
	global.StringVar(&cli.EnvFile, "env", ".env", "File to load AO3_PASSWORD from, if present")
	global.BoolVar(&cli.Headless, "headless", false, "Run the browser without a window (describe only)")
	global.BoolVar(&cli.ShowVersion, "version", false, "Show version and exit")
	global.Usage = func() {
		fmt.Fprintf(output, "podfickle - podfic creation toolkit\n\n")
		fmt.Fprintf(output, "Usage: podfickle [options] <describe|post> [command options]\n\n")
		fmt.Fprintf(output, "Options:\n")
		global.PrintDefaults()
		fmt.Fprintf(output, "\nExamples:\n")
		fmt.Fprintf(output, "  # Print a podcast episode description\n")
		fmt.Fprintf(output, "  podfickle -config podfic.yaml describe -template describe.tmpl\n\n")
		fmt.Fprintf(output, "  # Fill in the new work form for review\n")
		fmt.Fprintf(output, "  podfickle -config podfic.yaml post\n\n")
	}

	if err := global.Parse(args); err != nil {
		return nil, err
	}
	if cli.ShowVersion {
		return cli, nil
	}
	if cli.ConfigFile == "" {
		global.Usage()
		return nil, fmt.Errorf("-config is required")
	}

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return nil, fmt.Errorf("a command is required: %s or %s", commandDescribe, commandPost)
	}

	cli.Command = rest[0]
	switch cli.Command {
	case commandDescribe:
		fs := flag.NewFlagSet(commandDescribe, flag.ContinueOnError)
		fs.SetOutput(output)
		fs.StringVar(&cli.Describe.Template, "template", "./describe.tmpl", "Template file for the episode description")
		fs.StringVar(&cli.Describe.WorkHTML, "work-html", "", "Read the parent work from a saved work page instead of the archive")
		fs.BoolVar(&cli.Describe.Copy, "copy", false, "Also copy the description to the clipboard")
		if err := fs.Parse(rest[1:]); err != nil {
			return nil, err
		}
		if fs.NArg() > 0 {
			return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
		}
	case commandPost:
		fs := flag.NewFlagSet(commandPost, flag.ContinueOnError)
		fs.SetOutput(output)
		fs.StringVar(&cli.Post.TemplatePost, "template-post", "./post.tmpl", "Template file for the work content")
		fs.StringVar(&cli.Post.TemplateNotes, "template-notes", "./notes.tmpl", "Template file for the work end notes")
		if err := fs.Parse(rest[1:]); err != nil {
			return nil, err
		}
		if fs.NArg() > 0 {
			return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
		}
	default:
		global.Usage()
		return nil, fmt.Errorf("unknown command %q", cli.Command)
	}

	return cli, nil
}
