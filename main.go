/*
 * Emotion Engine core - Main process.
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	getopt "github.com/pborman/getopt/v2"

	"github.com/ps2emu/eecore/command/command"
	"github.com/ps2emu/eecore/command/reader"
	"github.com/ps2emu/eecore/config"
	"github.com/ps2emu/eecore/emu/core"
	"github.com/ps2emu/eecore/emu/cpu"
	"github.com/ps2emu/eecore/remote"
	"github.com/ps2emu/eecore/util/logger"
)

var Logger *slog.Logger

func main() {
	optROM := getopt.StringLong("rom", 'r', "", "Boot ROM image")
	optConfig := getopt.StringLong("config", 'c', "", "Boot config file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optSteps := getopt.Uint64Long("steps", 's', 0, "Instruction step budget (0 = unlimited)")
	optConsole := getopt.BoolLong("console", 'i', "Start the interactive debugger console")
	optRemote := getopt.StringLong("remote", 'p', "", "Serve the debugger command language on this TCP port")
	optTrace := getopt.BoolLong("trace", 't', "Trace every retired instruction")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var logFile *os.File
	if *optLogFile != "" {
		var err error
		logFile, err = os.Create(*optLogFile)
		if err != nil {
			slog.Error("main: cannot create log file", "error", err)
			os.Exit(1)
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	debug := false
	Logger = slog.New(logger.NewHandler(logFile, &slog.HandlerOptions{Level: programLevel}, &debug))
	slog.SetDefault(Logger)

	Logger.Info("eecore started")

	if *optConfig != "" {
		if err := config.LoadFile(*optConfig); err != nil {
			Logger.Error("main: loading config", "error", err)
			os.Exit(1)
		}
	}

	romPath := *optROM
	if romPath == "" {
		romPath = config.Settings.ROMPath
	}
	if romPath == "" {
		Logger.Error("main: no boot ROM specified, use --rom or a ROM directive")
		os.Exit(1)
	}

	romImage, err := os.ReadFile(romPath)
	if err != nil {
		Logger.Error("main: reading ROM image", "error", err)
		os.Exit(1)
	}

	mach, err := cpu.New(romImage)
	if err != nil {
		Logger.Error("main: building machine", "error", err)
		os.Exit(1)
	}

	if *optTrace {
		mach.Trace = cpu.SlogSink{}
	}

	steps := *optSteps
	if steps == 0 {
		steps = config.Settings.StepBudget
	}
	runner := core.New(mach, steps)

	ctx := &command.Context{Mach: mach, Run: runner, Trace: *optTrace}

	var remoteServer *remote.Server
	if *optRemote != "" {
		remoteServer = remote.New(*optRemote, ctx)
		if err := remoteServer.Start(); err != nil {
			Logger.Error("main: starting remote listener", "error", err)
			os.Exit(1)
		}
	}

	if *optConsole {
		reader.ConsoleReader(ctx)
		runner.Stop()
		if remoteServer != nil {
			remoteServer.Stop()
		}
		return
	}

	runner.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	Logger.Info("main: shutting down")
	runner.Stop()
	if remoteServer != nil {
		remoteServer.Stop()
	}
	Logger.Info("main: stopped", "retired", runner.Retired())
}
