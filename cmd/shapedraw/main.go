/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"shapedraw/internal/config"
	applog "shapedraw/internal/log"
	"shapedraw/internal/ui"
	"shapedraw/internal/version"
)

func usage() {
	fmt.Println("Shapedraw — shape editor")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shapedraw version|-v|--version     Show version")
	fmt.Println("  shapedraw config                   Print the effective configuration as YAML")
	fmt.Println("  shapedraw config path              Print the configuration file path")
	fmt.Println("  shapedraw ui                       Launch desktop UI (build with -tags fyne for full UI)")
}

func main() {
	cfg, cfgErr := config.Load()
	applog.Init(applog.FromEnv(cfg.Logging.LogOptions()))
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", cfgErr))
	}

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("Shapedraw")
			fmt.Println(version.String())
			return
		case "config":
			if len(args) > 2 && args[2] == "path" {
				p, err := config.ConfigPath()
				if err != nil {
					fmt.Println("Error:", err)
					os.Exit(1)
				}
				fmt.Println(p)
				return
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				l.Error("marshal config failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Print(string(out))
			return
		case "ui":
			if err := ui.Run(cfg); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}
