// SPDX-License-Identifier: EPL-2.0

// Command audscore reports which frequency bands dominate a set of audio
// files.
//
//	audscore analyze [--per-file] [--json] song.mp3 intro.wav
//	audscore bands
//	audscore convert song.mp3 song-16k.wav
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
