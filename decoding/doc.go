// SPDX-License-Identifier: EPL-2.0

// Package decoding holds the machine independent parts of the tape
// decoders: frequency bands, pilot tone detection, byte framing, block and
// file results, and the grouping of blocks into files under an error
// policy.
//
// The machine decoders live in the subpackages. They pull half periods
// from a halfperiod.Provider and produce Blocks; a Grouper collects them
// into Files:
//
//	blocks := kc.NewBlockReader(provider, kc.DefaultParams(), settings)
//	files := decoding.NewGrouper(blocks, kc.NewFileBoundary(kc.DefaultParams(), settings), settings)
//	for {
//	    f, err := files.NextFile()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
package decoding
