// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/explode

package explode

import "github.com/sirupsen/logrus"

// Options configures the Decode and Decompress family.
type Options struct {
	// Logger receives debug records for each decoded sector. Nil uses the logrus standard logger.
	Logger logrus.FieldLogger
	// RequireFullOutput: if true, an end-of-stream marker decoded before the output buffer
	// is full fails with ErrShortOutput. If false, decoding stops there and reports the
	// number of bytes produced.
	RequireFullOutput bool
}

// DefaultOptions returns options for default behavior: standard logger, early end marker accepted.
func DefaultOptions() *Options {
	return &Options{}
}

// StrictOptions returns options that require the stream to fill the whole output buffer.
func StrictOptions() *Options {
	return &Options{
		RequireFullOutput: true,
	}
}

func (o *Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}

	return logrus.WithField("pkg", "explode")
}
