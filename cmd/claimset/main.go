// Copyright (c) 2026 by Richard A. Wilkes. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with
// this file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// This Source Code Form is "Incompatible With Secondary Licenses", as
// defined by the Mozilla Public License, version 2.0.

package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/richardwilkes/claimset/claim"
	"github.com/richardwilkes/toolbox/cmdline"
	"github.com/richardwilkes/toolbox/errs"
	"github.com/richardwilkes/toolbox/fatal"
	"github.com/richardwilkes/toolbox/log/tracelog"
)

func main() {
	cmdline.AppName = "Claim Set"
	cmdline.AppCmdName = "claimset"
	cmdline.License = "Mozilla Public License, version 2.0"
	cmdline.CopyrightStartYear = "2026"
	cmdline.CopyrightHolder = "Richard A. Wilkes"
	cmdline.AppIdentifier = "com.trollworks.claimset"

	var loadPath, savePath string
	traverseSize := 0
	chunk := 64
	workers := 4
	var debug bool

	var logLevel slog.LevelVar
	slog.SetDefault(slog.New(tracelog.New(&tracelog.Config{
		Level: &logLevel,
		Sink:  log.Default().Writer(),
	})))

	cl := cmdline.New(true)
	cl.NewGeneralOption(&loadPath).SetName("load").SetSingle('l').SetUsage("Load previously saved claims before processing")
	cl.NewGeneralOption(&savePath).SetName("save").SetSingle('s').SetUsage("Save the resulting claims")
	cl.NewGeneralOption(&traverseSize).SetName("traverse").SetSingle('t').SetUsage("Run a partitioned traversal over this many indexes")
	cl.NewGeneralOption(&chunk).SetName("chunk").SetSingle('c').SetUsage("Number of indexes per traversal range")
	cl.NewGeneralOption(&workers).SetName("workers").SetSingle('w').SetUsage("Number of traversal workers")
	cl.NewGeneralOption(&debug).SetName("debug").SetUsage("Enable debug logging")

	args := cl.Parse(os.Args[1:])
	if len(args) == 0 && loadPath == "" && traverseSize == 0 {
		fatal.WithErr(errs.New("Nothing to do; specify ranges, --load or --traverse"))
	}

	if debug {
		logLevel.Set(slog.LevelDebug)
	}

	r, err := claim.New(claim.LogTo(slog.Default()))
	fatal.IfErr(err)

	if loadPath != "" {
		fatal.IfErr(r.LoadFile(loadPath))
		slog.Info("loaded", "file", loadPath, "ranges", len(r.Claimed()))
	}

	for _, arg := range args {
		iv, parseErr := claim.ParseInterval(arg)
		fatal.IfErr(parseErr)
		var added bool
		added, err = r.Claim(iv.Lo, iv.Hi)
		fatal.IfErr(err)
		if added {
			slog.Info("claimed", "range", iv.String())
		} else {
			slog.Warn("already claimed", "range", iv.String())
		}
	}

	if traverseSize > 0 {
		_, err = claim.Traverse(context.Background(), r, traverseSize, chunk, workers, nil)
		fatal.IfErr(err)
	}

	for _, iv := range r.Claimed() {
		slog.Info("holding", "range", iv.String(), "indexes", iv.Len())
	}
	slog.Info(r.Status().String())

	if savePath != "" {
		fatal.IfErr(r.SaveFile(savePath))
		slog.Info("saved", "file", savePath)
	}
}
