// Copyright 2026 The Azpack Authors
// SPDX-License-Identifier: Apache-2.0

package azalea

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DefaultBinaryName is looked up on PATH when no explicit binary path
// is configured.
const DefaultBinaryName = "azalea"

// Encoder serializes a model file into a RawArtifact at outputPath.
type Encoder interface {
	Encode(ctx context.Context, assetPath, outputPath string) error
}

// DecoderGenerator writes the runtime-side decoder source to outputPath.
type DecoderGenerator interface {
	Generate(ctx context.Context, outputPath string) error
}

// OutputStyle selects how azalea post-processes generated Luau source.
// Format and Minify are mutually exclusive.
type OutputStyle struct {
	// Format runs the source through azalea's formatter.
	Format bool

	// Minify runs the source through azalea's minifier.
	Minify bool

	// Compat emits Lua 5.1 compatible source instead of Luau.
	Compat bool
}

// Validate rejects contradictory style combinations.
func (s OutputStyle) Validate() error {
	if s.Format && s.Minify {
		return errors.New("formatting and minifying at the same time is not supported")
	}
	return nil
}

func (s OutputStyle) flags() []string {
	var flags []string
	if s.Format {
		flags = append(flags, "--format")
	}
	if s.Minify {
		flags = append(flags, "--minify")
	}
	if s.Compat {
		flags = append(flags, "--compat")
	}
	return flags
}

// FindBinary resolves the azalea executable. A non-empty configured
// path must exist; otherwise [DefaultBinaryName] is looked up on PATH.
func FindBinary(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", fmt.Errorf("azalea binary %s: %w", configured, err)
		}
		return configured, nil
	}

	path, err := exec.LookPath(DefaultBinaryName)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH; build it (cargo build) or set azalea.binary in the config", DefaultBinaryName)
	}
	return path, nil
}

// Binary runs an azalea executable. It implements [Encoder] and
// [DecoderGenerator] and is safe for concurrent use: every call starts
// its own process.
type Binary struct {
	// Path is the resolved executable path.
	Path string

	// Style applies to decoder generation.
	Style OutputStyle
}

// New resolves the executable via [FindBinary] and validates style.
func New(configured string, style OutputStyle) (*Binary, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	path, err := FindBinary(configured)
	if err != nil {
		return nil, err
	}
	return &Binary{Path: path, Style: style}, nil
}

// Encode runs "azalea encode --input <asset> --output <output>".
func (b *Binary) Encode(ctx context.Context, assetPath, outputPath string) error {
	return b.run(ctx, "encode", "--input", assetPath, "--output", outputPath)
}

// Generate runs "azalea generate-full-decoder <output>" with the
// configured style flags.
func (b *Binary) Generate(ctx context.Context, outputPath string) error {
	args := append([]string{"generate-full-decoder", outputPath}, b.Style.flags()...)
	return b.run(ctx, args...)
}

// run executes the binary and discards stdout. Stderr is captured for
// error reporting.
func (b *Binary) run(ctx context.Context, args ...string) error {
	var stderr bytes.Buffer
	command := exec.CommandContext(ctx, b.Path, args...)
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		processError := &ProcessError{
			Command:  b.Path + " " + strings.Join(args, " "),
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			processError.ExitCode = exitError.ExitCode()
		}
		return processError
	}
	return nil
}

// ProcessError reports an azalea invocation that failed to start or
// exited non-zero.
type ProcessError struct {
	// Command is the full command line.
	Command string

	// ExitCode is the process exit code, or -1 if the process did not
	// run to completion (failed to start, killed by a signal, or
	// cancelled).
	ExitCode int

	// Stderr is the trimmed stderr output.
	Stderr string

	// Err is the underlying exec error.
	Err error
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %s", e.Command, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }
