// Command eq-stream filters raw interleaved little-endian float32 audio from
// stdin to stdout, block by block, the way a plugin host would drive the EQ.
//
// Usage:
//
//	eq-stream [flags] < in.f32 > out.f32
//
// With -preset the file is watched and reloaded while streaming; changes
// take effect at the next block.
//
// Examples:
//
//	sox in.wav -t f32 - | eq-stream -rate 44100 -peak-gain 6 | sox -t f32 -r 44100 -c 2 - out.wav
//	eq-stream -preset live.json < in.f32 > out.f32
package main

import (
	"context"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"

	"github.com/cwbudde/simple-eq/dsp/eq"
	"github.com/cwbudde/simple-eq/internal/eqflags"
	"github.com/cwbudde/simple-eq/param"
	"github.com/cwbudde/simple-eq/preset"
)

const (
	defaultSampleRate = 48000.0
	defaultBlockSize  = 512
	defaultChannels   = 2
	bytesPerSample    = 4
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := log.New(os.Stderr, "eq-stream: ", log.LstdFlags)
	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("eq-stream", flag.ContinueOnError)
	controls := eqflags.Register(fs)
	rate := fs.Float64("rate", defaultSampleRate, "sample rate in Hz")
	channels := fs.Int("channels", defaultChannels, "interleaved channel count; channels beyond 2 pass through")
	block := fs.Int("block", defaultBlockSize, "block size in frames")
	verbose := fs.Bool("v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *channels <= 0 {
		return fmt.Errorf("channel count must be positive, got %d", *channels)
	}

	if *block <= 0 {
		return fmt.Errorf("block size must be positive, got %d", *block)
	}

	if !(*rate > 0) || math.IsInf(*rate, 0) {
		return fmt.Errorf("sample rate must be positive, got %v", *rate)
	}

	store, err := controls.Store()
	if err != nil {
		return err
	}

	engine := eq.NewEngine(store)
	engine.Prepare(*rate, *block)

	ctx, cancel := context.WithCancel(ctx)
	watchDone := make(chan struct{})

	if controls.Preset != "" {
		go func() {
			defer close(watchDone)

			if err := watchPreset(ctx, controls, store, logger); err != nil {
				logger.Printf("preset watch stopped: %v", err)
			}
		}()
	} else {
		close(watchDone)
	}

	defer func() {
		cancel()
		<-watchDone
	}()

	frames, err := stream(ctx, engine, stdin, stdout, *channels, *block)

	if *verbose {
		logger.Printf("processed %d frames, %d clamp events, %d rejected designs",
			frames, engine.ClampEvents(), engine.RejectedUpdates())
	}

	return err
}

// watchPreset re-reads the preset on every change and reapplies the
// explicitly given flags on top, the same way the startup settings are
// built.
func watchPreset(ctx context.Context, controls *eqflags.Values, store *param.Store, logger *log.Logger) error {
	return preset.WatchFunc(ctx, controls.Preset, func() error {
		return reloadSettings(controls, store)
	}, logger)
}

func reloadSettings(controls *eqflags.Values, store *param.Store) error {
	s, err := controls.Settings()
	if err != nil {
		return err
	}

	store.Apply(s)

	return nil
}

// stream runs until stdin is exhausted or ctx is cancelled and returns the
// number of frames written. A trailing partial frame is dropped.
func stream(ctx context.Context, engine *eq.Engine, r io.Reader, w io.Writer, channels, blockSize int) (int64, error) {
	frameBytes := channels * bytesPerSample
	raw := make([]byte, blockSize*frameBytes)
	samples := make([]float32, blockSize*channels)

	var total int64

	for {
		if err := ctx.Err(); err != nil {
			return total, nil
		}

		n, readErr := io.ReadFull(r, raw)
		if readErr != nil && !errors.Is(readErr, io.ErrUnexpectedEOF) && !errors.Is(readErr, io.EOF) {
			return total, fmt.Errorf("read input: %w", readErr)
		}

		frames := n / frameBytes
		if frames > 0 {
			buf := samples[:frames*channels]
			decodeFloat32LE(buf, raw)
			engine.ProcessInterleaved(buf, channels)
			encodeFloat32LE(raw, buf)

			if _, err := w.Write(raw[:frames*frameBytes]); err != nil {
				return total, fmt.Errorf("write output: %w", err)
			}

			total += int64(frames)
		}

		if readErr != nil {
			return total, nil
		}
	}
}

func decodeFloat32LE(dst []float32, src []byte) {
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*bytesPerSample:]))
	}
}

func encodeFloat32LE(dst []byte, src []float32) {
	for i, v := range src {
		binary.LittleEndian.PutUint32(dst[i*bytesPerSample:], math.Float32bits(v))
	}
}
