// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

// schematree renders JSON Schema documents as plain-text documentation outlines.
package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/docnode/schematree"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/docnode/schematree"
	_buildTime string
)

// cliOptions describes schematree CLI flags and subcommands.
type cliOptions struct {
	Version versionCommand `command:"version" description:"Print version information"`
	Render  renderCommand  `command:"render" description:"Render JSON Schema as a documentation outline"`
	Assets  assetsCommand  `command:"assets" description:"Write bundled presentation assets"`
}

// schemaSelectFlags groups schema narrowing and visibility flags.
type schemaSelectFlags struct {
	Pointer string `short:"p" long:"pointer" description:"Pointer path narrowing the schema before rendering (for example: /definitions/Config)"`
	Hide    string `short:"H" long:"hide" description:"Whitespace-separated pointer paths to hide"`
	Show    string `short:"S" long:"show" description:"Whitespace-separated pointer paths to restore from the pre-hide snapshot"`
}

// renderFormatFlags groups output format flags.
type renderFormatFlags struct {
	Format     string `short:"f" long:"format" default:"outline" choice:"outline" choice:"markdown" description:"Output format"`
	Wrap       int    `short:"w" long:"wrap" default:"80" description:"Wrap width for markdown paragraphs"`
	ListMarker string `short:"m" long:"list-marker" default:"-" choice:"-" choice:"*" description:"Markdown unordered list marker"`
}

// renderCommand converts one schema document into outline or markdown text.
type renderCommand struct {
	runner *cliRunner

	SchemaFlags schemaSelectFlags `group:"Schema Select"`
	FormatFlags renderFormatFlags `group:"Output Format"`
	Args        struct {
		Input  string `positional-arg-name:"input" description:"Input schema file path or http(s) url (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs the render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(
		command.Args.Input,
		command.Args.Output,
		command.SchemaFlags,
		command.FormatFlags,
	)
}

// assetsCommand exports the embedded stylesheet and script.
type assetsCommand struct {
	runner *cliRunner
	Args   struct {
		Dir string `positional-arg-name:"dir" description:"Target directory (optional; current directory when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs the assets subcommand.
func (command *assetsCommand) Execute(_ []string) error {
	return command.runner.runAssets(command.Args.Dir)
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs the version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "schematree"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runRender renders one schema source into outline or markdown text.
func (runner *cliRunner) runRender(inputPath, outputPath string, selectFlags schemaSelectFlags, formatFlags renderFormatFlags) error {
	directive := &schematree.Directive{
		Hide:     selectFlags.Hide,
		Show:     selectFlags.Show,
		Location: schematree.Location{Doc: "(cli)", Line: 1},
	}

	inputPath = strings.TrimSpace(inputPath)
	switch {
	case inputPath == "":
		content, err := readStdinSchema(runner.stdin)
		if err != nil {
			return err
		}

		directive.Content = content
		directive.Argument = pointerArgument("", selectFlags.Pointer)
	default:
		directive.Argument = pointerArgument(inputPath, selectFlags.Pointer)
		directive.BaseDir, _ = os.Getwd()
	}

	loader := &schematree.Loader{HTTPClient: http.DefaultClient}
	nodes, err := directive.Run(loader, schematree.TreeBuilder{}, schematree.NewLabelRegistry())
	if err != nil {
		return fmt.Errorf("render schema: %w", err)
	}

	rendered := ""
	switch formatFlags.Format {
	case "markdown":
		rendered = schematree.Markdown(nodes, schematree.MarkdownOptions{
			WrapWidth:  formatFlags.Wrap,
			ListMarker: formatFlags.ListMarker,
		})
	default:
		rendered = schematree.Outline(nodes)
	}

	return runner.writeOutput(outputPath, rendered)
}

// runAssets writes the embedded presentation assets into a directory.
func (runner *cliRunner) runAssets(dir string) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "."
	}

	for _, asset := range schematree.Assets() {
		path := filepath.Join(dir, asset.Name)
		if err := os.WriteFile(path, asset.Data, 0o600); err != nil {
			return fmt.Errorf("write asset %q: %w", path, err)
		}

		if _, err := fmt.Fprintln(runner.stdout, path); err != nil {
			return fmt.Errorf("write asset list to stdout: %w", err)
		}
	}

	return nil
}

// writeOutput writes rendered text to stdout or a file.
func (runner *cliRunner) writeOutput(outputPath, rendered string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, rendered); err != nil {
			return fmt.Errorf("write outline to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(rendered), 0o600); err != nil {
		return fmt.Errorf("write outline file %q: %w", outputPath, err)
	}

	return nil
}

// readStdinSchema reads inline schema text from stdin.
func readStdinSchema(stdin io.Reader) (string, error) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read schema from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return "", errors.New("read schema from stdin: empty input")
	}

	return string(data), nil
}

// pointerArgument joins a location and pointer into one directive argument.
func pointerArgument(location, pointer string) string {
	pointer = strings.TrimSpace(pointer)
	if pointer == "" {
		return location
	}

	return location + "#" + pointer
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Render.runner = runner
	options.Assets.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"render": strings.TrimSpace(fmt.Sprintf(`
Render JSON Schema as a documentation outline or markdown document.
Reads schema from file, http(s) url or stdin; writes the result to file or stdout.

Examples:
> $ %s render schema.json > schema.txt
> $ cat schema.yaml | %s render -p /definitions/Config
> $ %s render -H "/properties/secret" schema.json
> $ %s render -f markdown schema.json schema.md
`, programName, programName, programName, programName)),
		"assets": strings.TrimSpace(fmt.Sprintf(`
Write the bundled stylesheet and script used by rendered schema output.

Examples:
> $ %s assets _static/
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
