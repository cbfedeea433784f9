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

package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/walker84837/includium/internal/cc/preprocessor"
)

// fileConfig is the shape of a --config YAML document, for batch/CI use
// where repeating -D/-I flags on every invocation is unwieldy. Flags passed
// on the command line win over anything set here.
type fileConfig struct {
	Target         string   `yaml:"target"`
	Compiler       string   `yaml:"compiler"`
	RecursionLimit int      `yaml:"recursion_limit"`
	Defines        []string `yaml:"defines"`
	Undefines      []string `yaml:"undefines"`
	IncludeDirs    []string `yaml:"include_dirs"`
	SystemDirs     []string `yaml:"system_dirs"`
	Output         string   `yaml:"output"`
}

func loadFileConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, err
	}
	return fc, nil
}

func parseTarget(s string) (preprocessor.Target, bool) {
	switch s {
	case "linux":
		return preprocessor.Linux, true
	case "windows":
		return preprocessor.Windows, true
	case "macos":
		return preprocessor.MacOS, true
	default:
		return 0, false
	}
}

func parseCompiler(s string) (preprocessor.Compiler, bool) {
	switch s {
	case "gcc":
		return preprocessor.GCC, true
	case "clang":
		return preprocessor.Clang, true
	case "msvc":
		return preprocessor.MSVC, true
	default:
		return 0, false
	}
}

func defaultConfigForTarget(target preprocessor.Target) preprocessor.Config {
	switch target {
	case preprocessor.Windows:
		return preprocessor.ForWindows()
	case preprocessor.MacOS:
		return preprocessor.ForMacOS()
	default:
		return preprocessor.ForLinux()
	}
}
