package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"gopkg.in/urfave/cli.v1"

	"skibidi/interpreter-go/pkg/ast"
	"skibidi/interpreter-go/pkg/driver"
	"skibidi/interpreter-go/pkg/interpreter"
	"skibidi/interpreter-go/pkg/runtime"
)

const cliToolVersion = "skibidi-cli 0.0.0-dev"

// exitStatus ends the process quietly; whatever needed saying was already
// written.
type exitStatus int

func (e exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "YAML or TOML configuration file (default: $" + driver.ConfigEnv + " or the nearest skibidi.yml)",
	}
	capacityFlag = cli.IntFlag{
		Name:  "capacity",
		Usage: "maximum number of distinct variables, 0 for unbounded",
		Value: runtime.DefaultCapacity,
	}
	strictFlag = cli.BoolFlag{
		Name:  "strict",
		Usage: "abort on recoverable evaluation errors instead of continuing with 0",
	}
	switchFlag = cli.StringFlag{
		Name:  "switch",
		Usage: "switch semantics: faithful or conventional",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "interpreter log level: debug, verbose, info, warning, error",
	}
	colorFlag = cli.StringFlag{
		Name:  "color",
		Usage: "colorize diagnostics: auto, always or never",
	}
	dumpSymbolsFlag = cli.BoolFlag{
		Name:  "dump-symbols",
		Usage: "print the final symbol table to stderr",
	}

	runCommand = cli.Command{
		Name:      "run",
		Usage:     "Execute a program document",
		ArgsUsage: "<program.json|program.yml>",
		Flags: []cli.Flag{
			configFileFlag,
			capacityFlag,
			strictFlag,
			switchFlag,
			logLevelFlag,
			colorFlag,
			dumpSymbolsFlag,
		},
		Action: runProgram,
	}
	checkCommand = cli.Command{
		Name:      "check",
		Usage:     "Decode and validate a program document without running it",
		ArgsUsage: "<program.json|program.yml>",
		Action:    checkProgram,
	}
	dumpCommand = cli.Command{
		Name:      "dump",
		Usage:     "Print the decoded syntax tree",
		ArgsUsage: "<program.json|program.yml>",
		Action:    dumpProgram,
	}
	versionCommand = cli.Command{
		Name:  "version",
		Usage: "Print the CLI version",
		Action: func(c *cli.Context) error {
			fmt.Fprintln(os.Stdout, cliToolVersion)
			return nil
		},
	}
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return 1
	}
	switch args[0] {
	case "--version", "-V":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run", "check", "dump", "version", "help", "h", "--help", "-h":
	default:
		args = append([]string{"run"}, args...)
	}

	app := newApp()
	err := app.Run(append([]string{app.Name}, args...))
	if err == nil {
		return 0
	}
	var status exitStatus
	if errors.As(err, &status) {
		return int(status)
	}
	fmt.Fprintf(os.Stderr, "skibidi: %v\n", err)
	return 1
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "skibidi"
	app.Usage = "run skibidi programs from serialized syntax trees"
	app.Version = cliToolVersion
	app.HideVersion = true
	app.Writer = os.Stdout
	app.Commands = []cli.Command{
		runCommand,
		checkCommand,
		dumpCommand,
		versionCommand,
	}
	return app
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  skibidi [run] [flags] <program.json|program.yml>")
	fmt.Fprintln(w, "  skibidi check <program>")
	fmt.Fprintln(w, "  skibidi dump <program>")
	fmt.Fprintln(w, "  skibidi version")
}

func programArg(c *cli.Context) (string, error) {
	args := c.Args()
	if len(args) == 0 {
		return "", fmt.Errorf("%s requires a program document", c.Command.Name)
	}
	if len(args) > 1 {
		return "", fmt.Errorf("unexpected arguments: %s", strings.Join(args[1:], " "))
	}
	return args.First(), nil
}

func runProgram(c *cli.Context) error {
	path, err := programArg(c)
	if err != nil {
		return err
	}
	cfg, err := loadRunConfig(c, path)
	if err != nil {
		return err
	}
	if err := configureLogging(cfg.LogLevel); err != nil {
		return err
	}
	node, err := driver.LoadProgram(path)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	opts.Stdout = os.Stdout
	opts.Stderr = os.Stderr
	opts.Reporter = newReporter(os.Stderr, cfg.Color)
	interp := interpreter.New(opts)
	runErr := interp.Run(node)
	if cfg.DumpSymbols {
		renderSymbols(os.Stderr, interp.Symbols())
	}
	if code := interpreter.ExitCodeFromError(runErr); code != 0 {
		return exitStatus(code)
	}
	return nil
}

// loadRunConfig layers command-line flags over the resolved config file.
func loadRunConfig(c *cli.Context, programPath string) (*driver.Config, error) {
	cfg, err := driver.ResolveConfig(c.String(configFileFlag.Name), filepath.Dir(programPath))
	if err != nil {
		return nil, err
	}
	if c.IsSet(capacityFlag.Name) {
		cfg.SymbolCapacity = c.Int(capacityFlag.Name)
	}
	if c.Bool(strictFlag.Name) {
		cfg.Recovery = interpreter.Escalate.String()
	}
	if c.IsSet(switchFlag.Name) {
		cfg.Switch = c.String(switchFlag.Name)
	}
	if c.IsSet(logLevelFlag.Name) {
		cfg.LogLevel = c.String(logLevelFlag.Name)
	}
	if c.IsSet(colorFlag.Name) {
		cfg.Color = c.String(colorFlag.Name)
	}
	if c.Bool(dumpSymbolsFlag.Name) {
		cfg.DumpSymbols = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configureLogging(level string) error {
	lvl, err := log.ValidateLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	log.SetOutput(os.Stderr)
	log.SetLogLevelQuiet(lvl)
	return nil
}

func checkProgram(c *cli.Context) error {
	path, err := programArg(c)
	if err != nil {
		return err
	}
	node, err := driver.LoadProgram(path)
	if err != nil {
		return err
	}
	if err := ast.Validate(node); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return exitStatus(1)
	}
	fmt.Fprintf(os.Stdout, "%s: ok\n", path)
	return nil
}

func dumpProgram(c *cli.Context) error {
	path, err := programArg(c)
	if err != nil {
		return err
	}
	node, err := driver.LoadProgram(path)
	if err != nil {
		return err
	}
	dumpTree(os.Stdout, node)
	return nil
}
