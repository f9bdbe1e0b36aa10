/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging configures a single process-wide go-logging backend
// and hands out per-package loggers from it.
package logging

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

// Logger is the handle every package logs through.
type Logger = logging.Logger

var (
	once        sync.Once
	backendLvl  logging.Level = logging.DEBUG
	backendLock sync.Mutex
)

func setupBackend() {
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(backendLvl, "")
	logging.SetBackend(leveled)
}

// SetLevel changes the backend log level for all loggers obtained via
// GetLog, before or after they were created. Mirrors FrankyGo's
// command-line -loglvl override of the configured default.
func SetLevel(lvl logging.Level) {
	backendLock.Lock()
	defer backendLock.Unlock()
	backendLvl = lvl
	setupBackend()
}

// GetLog returns a named logger backed by the shared process-wide
// backend, initializing the backend on first use.
func GetLog(name string) *Logger {
	once.Do(setupBackend)
	return logging.MustGetLogger(name)
}

// LevelFromString parses a go-logging level name ("critical", "error",
// "warning", "notice", "info", "debug"), defaulting to INFO.
func LevelFromString(s string) logging.Level {
	lvl, err := logging.LogLevel(s)
	if err != nil {
		return logging.INFO
	}
	return lvl
}
