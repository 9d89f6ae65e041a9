package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/simple-eq/dsp/core"
	"github.com/cwbudde/simple-eq/dsp/eq"
	"github.com/cwbudde/simple-eq/measure/response"
	"github.com/cwbudde/simple-eq/param"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavFormatPCM = 1

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

type renderOptions struct {
	blockSize int
	trimDB    float64
	verbose   bool
}

type renderStats struct {
	sampleRate  int
	channels    int
	bitDepth    int
	frames      int64
	input       response.Meter
	output      response.Meter
	clampEvents uint64
	rejected    uint64
}

// render streams inputPath through a fresh engine reading store once per
// block and writes the result with the input's format.
func render(inputPath, outputPath string, store *param.Store, opts renderOptions) (*renderStats, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = in.Close() }()

	return renderFrom(in, inputPath, outputPath, store, opts)
}

// renderFrom is render reading from an open stream. The output file is
// removed again if rendering fails after it was created.
func renderFrom(in io.ReadSeeker, inputName, outputPath string, store *param.Store, opts renderOptions) (stats *renderStats, err error) {
	dec := wav.NewDecoder(in)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", inputName)
	}

	format := dec.Format()
	bitDepth := int(dec.BitDepth)

	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("unsupported WAV encoding %d: only integer PCM is supported", dec.WavAudioFormat)
	}

	fullScale, err := pcmFullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	if format.NumChannels <= 0 {
		return nil, fmt.Errorf("invalid channel count %d", format.NumChannels)
	}

	if opts.verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(out, format.SampleRate, bitDepth, format.NumChannels, wavFormatPCM)

	defer func() {
		if closeErr := enc.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to finalize WAV: %w", closeErr)
		}

		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = closeErr
		}

		if err != nil {
			stats = nil
			_ = os.Remove(outputPath)
		}
	}()

	engine := eq.NewEngine(store)
	engine.Prepare(float64(format.SampleRate), opts.blockSize)

	stats = &renderStats{
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   bitDepth,
	}

	channels := format.NumChannels
	trim := core.DBToLinear(opts.trimDB)

	buf := &audio.IntBuffer{
		Format:         format,
		Data:           make([]int, opts.blockSize*channels),
		SourceBitDepth: bitDepth,
	}

	planar := make([][]float64, channels)
	for ch := range planar {
		planar[ch] = make([]float64, opts.blockSize)
	}

	block := make([][]float64, channels)

	for {
		buf.Data = buf.Data[:cap(buf.Data)]

		n, readErr := dec.PCMBuffer(buf)
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", readErr)
		}

		frames := n / channels
		if frames == 0 {
			break
		}

		data := buf.Data[:frames*channels]
		for ch := range block {
			block[ch] = planar[ch][:frames]
			deinterleavePCM(block[ch], data, channels, ch, fullScale)
			stats.input.Add(block[ch])
		}

		var right []float64
		if channels > 1 {
			right = block[1]
		}

		engine.ProcessBlock(block[0], right)

		for ch := range block {
			if trim != 1 {
				vecmath.ScaleBlock(block[ch], block[ch], trim)
			}

			stats.output.Add(block[ch])
			interleavePCM(data, block[ch], channels, ch, fullScale)
		}

		buf.Data = data
		if err := enc.Write(buf); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}

		stats.frames += int64(frames)

		if errors.Is(readErr, io.EOF) {
			break
		}
	}

	stats.clampEvents = engine.ClampEvents()
	stats.rejected = engine.RejectedUpdates()

	return stats, nil
}

// pcmFullScale returns the magnitude that maps to 1.0 for bitDepth.
func pcmFullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return math.Exp2(float64(bitDepth - 1)), nil
	default:
		return 0, fmt.Errorf("unsupported bit depth %d (want 16, 24 or 32)", bitDepth)
	}
}

func deinterleavePCM(dst []float64, src []int, channels, ch int, fullScale float64) {
	for i := range dst {
		dst[i] = float64(src[i*channels+ch]) / fullScale
	}
}

// interleavePCM writes src back as integers, clipping to the PCM range.
func interleavePCM(dst []int, src []float64, channels, ch int, fullScale float64) {
	for i, v := range src {
		s := math.Round(v * fullScale)
		s = core.Clamp(s, -fullScale, fullScale-1)
		dst[i*channels+ch] = int(s)
	}
}

func formatLevel(l response.Level) string {
	return fmt.Sprintf("RMS %6.1f dBFS, peak %6.1f dBFS", l.RMSDB, l.PeakDB)
}
