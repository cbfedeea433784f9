// Copyright 2025 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command cppe is a command-line front end for the preprocessor package: it
// reads a translation unit, runs it through preprocessor.Driver, and writes
// the result (or a formatted error) to stdout/stderr.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/walker84837/includium/internal/cc/preprocessor"
	"github.com/walker84837/includium/internal/fsresolver"
)

const (
	exitSuccess   = 0
	exitInternal  = 1
	exitIOError   = 2
	exitPreproc   = 3
	exitArgsError = 4
)

var (
	includeDirs    []string
	systemDirs     []string
	defineFlags    []string
	undefineFlags  []string
	targetFlag     string
	compilerFlag   string
	recursionLimit int
	outputPath     string
	configPath     string
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return exitSuccess
}

// cliError carries the exit code a cobra.Command error should map to,
// since cobra's own Execute only reports success or failure.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	var ce *cliError
	if asCliError(err, &ce) {
		return ce.code
	}
	return exitInternal
}

func asCliError(err error, target **cliError) bool {
	for err != nil {
		if ce, ok := err.(*cliError); ok {
			*target = ce
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cppe [file]",
		Short:         "cppe is a standalone C/C++ preprocessor",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "-"
			if len(args) == 1 {
				filename = args[0]
			}
			return runPreprocess(filename, out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cliError{code: exitArgsError, err: err}
	})

	rootCmd.Flags().StringArrayVarP(&defineFlags, "define", "D", nil, "Define macro (NAME, NAME=VALUE, or 'NAME(params)=body')")
	rootCmd.Flags().StringArrayVarP(&undefineFlags, "undefine", "U", nil, "Undefine macro")
	rootCmd.Flags().StringArrayVarP(&includeDirs, "include-dir", "I", nil, "Add user include search directory")
	rootCmd.Flags().StringArrayVar(&systemDirs, "isystem", nil, "Add system include search directory")
	rootCmd.Flags().StringVar(&targetFlag, "target", "", "Target platform: linux, windows, or macos (defaults to linux)")
	rootCmd.Flags().StringVar(&compilerFlag, "compiler", "", "Compiler to emulate: gcc, clang, or msvc (defaults to the target's native compiler)")
	rootCmd.Flags().IntVar(&recursionLimit, "recursion-limit", 0, "Macro expansion recursion limit (0 uses the engine default)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (defaults to stdout)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Load defaults from a YAML config file; command-line flags override it")

	return rootCmd
}

func runPreprocess(filename string, out, errOut io.Writer) error {
	var fc fileConfig
	if configPath != "" {
		loaded, err := loadFileConfig(configPath)
		if err != nil {
			return &cliError{code: exitIOError, err: fmt.Errorf("reading config %s: %w", configPath, err)}
		}
		fc = loaded
	}

	target, err := resolveTarget(fc)
	if err != nil {
		return &cliError{code: exitArgsError, err: err}
	}
	config := defaultConfigForTarget(target)
	config.Target = target

	compiler, err := resolveCompiler(fc, config.Compiler)
	if err != nil {
		return &cliError{code: exitArgsError, err: err}
	}
	config.Compiler = compiler

	if recursionLimit > 0 {
		config.RecursionLimit = recursionLimit
	} else if fc.RecursionLimit > 0 {
		config.RecursionLimit = fc.RecursionLimit
	}

	config.WarningHandler = func(message string) {
		log.Printf("level=warning component=cppe msg=%q", message)
	}

	userDirs := mergeStrings(fc.IncludeDirs, includeDirs)
	sysDirs := mergeStrings(fc.SystemDirs, systemDirs)
	resolver := &fsresolver.DirResolver{UserDirs: userDirs, SystemDirs: sysDirs, BaseDir: baseDirOf(filename)}
	config.IncludeResolver = resolver.Resolve

	driver := preprocessor.NewDriver(config)
	driver.SetCurrentFile(filename)

	for _, flag := range mergeStrings(fc.Defines, defineFlags) {
		mf, err := parseDefineFlag(flag)
		if err != nil {
			return &cliError{code: exitArgsError, err: err}
		}
		driver.Define(mf.Name, mf.Params, mf.Body, mf.IsVariadic)
	}
	for _, name := range mergeStrings(fc.Undefines, undefineFlags) {
		driver.Undef(name)
	}

	input, err := readInput(filename)
	if err != nil {
		log.Printf("level=error component=cppe msg=%q file=%q", "failed to read input", filename)
		return &cliError{code: exitIOError, err: err}
	}

	output, err := driver.Process(input)
	if err != nil {
		log.Printf("level=error component=cppe msg=%q", err.Error())
		return &cliError{code: exitPreproc, err: err}
	}

	outPath := outputPath
	if outPath == "" {
		outPath = fc.Output
	}
	if err := writeOutput(out, outPath, output); err != nil {
		return &cliError{code: exitIOError, err: err}
	}
	return nil
}

func resolveTarget(fc fileConfig) (preprocessor.Target, error) {
	spelling := targetFlag
	if spelling == "" {
		spelling = fc.Target
	}
	if spelling == "" {
		spelling = "linux"
	}
	target, ok := parseTarget(spelling)
	if !ok {
		return 0, fmt.Errorf("unknown --target %q", spelling)
	}
	return target, nil
}

func resolveCompiler(fc fileConfig, fallback preprocessor.Compiler) (preprocessor.Compiler, error) {
	spelling := compilerFlag
	if spelling == "" {
		spelling = fc.Compiler
	}
	if spelling == "" {
		return fallback, nil
	}
	compiler, ok := parseCompiler(spelling)
	if !ok {
		return 0, fmt.Errorf("unknown --compiler %q", spelling)
	}
	return compiler, nil
}

func mergeStrings(base, overrides []string) []string {
	if len(overrides) == 0 {
		return base
	}
	return append(append([]string{}, base...), overrides...)
}

func baseDirOf(filename string) string {
	if filename == "-" {
		return "."
	}
	return filepath.Dir(filename)
}

func readInput(filename string) (string, error) {
	if filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(filename)
	return string(data), err
}

func writeOutput(stdout io.Writer, path, content string) error {
	if path == "" {
		_, err := io.WriteString(stdout, content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
