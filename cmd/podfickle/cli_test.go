package main

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_Describe(t *testing.T) {
	var out bytes.Buffer
	cli, err := parseArgs([]string{
		"-config", "podfic.yaml", "-headless",
		"describe", "-template", "episode.tmpl", "-work-html", "saved.html", "-copy",
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "podfic.yaml", cli.ConfigFile)
	assert.Equal(t, defaultBaseURL, cli.BaseURL)
	assert.True(t, cli.Headless)
	assert.Equal(t, commandDescribe, cli.Command)
	assert.Equal(t, DescribeOptions{Template: "episode.tmpl", WorkHTML: "saved.html", Copy: true}, cli.Describe)
}

func TestParseArgs_PostDefaults(t *testing.T) {
	var out bytes.Buffer
	cli, err := parseArgs([]string{"--config", "podfic.json", "--base-url", "http://localhost:3000", "post"}, &out)
	require.NoError(t, err)

	assert.Equal(t, commandPost, cli.Command)
	assert.Equal(t, "http://localhost:3000", cli.BaseURL)
	assert.Equal(t, PostOptions{TemplatePost: "./post.tmpl", TemplateNotes: "./notes.tmpl"}, cli.Post)
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{name: "no config", args: []string{"describe"}, errMsg: "-config is required"},
		{name: "no command", args: []string{"-config", "c.yaml"}, errMsg: "a command is required"},
		{name: "unknown command", args: []string{"-config", "c.yaml", "publish"}, errMsg: `unknown command "publish"`},
		{name: "unknown flag", args: []string{"-config", "c.yaml", "post", "-template", "x"}, errMsg: "flag provided but not defined"},
		{name: "extra args", args: []string{"-config", "c.yaml", "describe", "extra"}, errMsg: "unexpected arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := parseArgs(tt.args, &out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseArgs_Help(t *testing.T) {
	var out bytes.Buffer
	_, err := parseArgs([]string{"-h"}, &out)

	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "Usage: podfickle")
}

func TestParseArgs_Version(t *testing.T) {
	var out bytes.Buffer
	cli, err := parseArgs([]string{"-version"}, &out)
	require.NoError(t, err)
	assert.True(t, cli.ShowVersion)
}
