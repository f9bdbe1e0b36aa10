//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Command corvid is the engine's entry point: a UCI loop over stdin/
// stdout, plus -perft and -version utility modes for use outside a
// UCI-speaking GUI.
package main

import (
	"flag"
	"fmt"

	"github.com/pkg/profile"

	"github.com/avhar/corvid/internal/config"
	"github.com/avhar/corvid/internal/logging"
	"github.com/avhar/corvid/internal/movegen"
	"github.com/avhar/corvid/internal/position"
	"github.com/avhar/corvid/internal/uci"
	"github.com/avhar/corvid/internal/version"
)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "log level (critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "", "path where to write log files to")
	perftDepth := flag.Int("perft", 0, "runs perft to the given depth on -fen (or the start position) and exits")
	fen := flag.String("fen", position.StartFen, "fen used by -perft")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile (cpu.pprof) for the process lifetime")
	flag.Parse()

	if *versionInfo {
		fmt.Println(version.Name())
		fmt.Println(version.Author())
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if *logLvl != "" {
		logging.SetLevel(logging.LevelFromString(*logLvl))
	} else {
		logging.SetLevel(logging.LevelFromString(config.LogLevel))
	}

	if *perftDepth > 0 {
		var p movegen.Perft
		p.Run(*fen, *perftDepth)
		return
	}

	uci.NewUciHandler().Loop()
}
