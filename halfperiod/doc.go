// SPDX-License-Identifier: EPL-2.0

// Package halfperiod turns a sample stream into half period frequencies.
//
// A half period is the run of samples between two zero crossings. Its
// frequency is sampleRate / (2 * runLength): a 1000 Hz square wave yields a
// stream of 1000 Hz half periods. All tape decoders work on this stream
// through the Provider interface, which supports undoing exactly one read.
package halfperiod
