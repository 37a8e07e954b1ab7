// SPDX-License-Identifier: EPL-2.0

package decoding

import "github.com/ik5/retrotape/halfperiod"

type BlockStatus int

const (
	Complete BlockStatus = iota
	InvalidChecksum
	Partial
)

func (s BlockStatus) String() string {
	switch s {
	case Complete:
		return "complete"
	case InvalidChecksum:
		return "invalid_checksum"
	case Partial:
		return "partial"
	default:
		return "unknown"
	}
}

type FileStatus int

const (
	Success FileStatus = iota
	Error
)

func (s FileStatus) String() string {
	switch s {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Block is one decoded tape block.
type Block struct {
	Data   []byte
	Status BlockStatus
	Begin  halfperiod.Position
	End    halfperiod.Position
	// AfterSync marks a block that directly follows a pilot tone.
	AfterSync bool
}

// File is a group of blocks that belong together.
type File struct {
	Blocks []Block
	Status FileStatus
	Begin  halfperiod.Position
	End    halfperiod.Position
}

// NewFile groups blocks. blocks must not be empty.
func NewFile(blocks []Block) File {
	return File{
		Blocks: blocks,
		Status: StatusOf(blocks),
		Begin:  blocks[0].Begin,
		End:    blocks[len(blocks)-1].End,
	}
}

// StatusOf is Success when every block is Complete.
func StatusOf(blocks []Block) FileStatus {
	for _, b := range blocks {
		if b.Status != Complete {
			return Error
		}
	}

	return Success
}

// OutputFile is a decoded file ready to be written. An empty ProposedName
// means the tape did not carry a usable name.
type OutputFile struct {
	Data              []byte
	ProposedName      string
	ProposedExtension string
	Status            FileStatus
	Begin             halfperiod.Position
	End               halfperiod.Position
}

// BlockReader yields blocks until io.EOF.
type BlockReader interface {
	NextBlock() (Block, error)
}

// FileReader yields files until io.EOF.
type FileReader interface {
	NextFile() (File, error)
}

// FileDecoder yields output files until io.EOF.
type FileDecoder interface {
	Next() (OutputFile, error)
}

// BlockObserver is told about every decoded block, whatever the error
// policy does with it.
type BlockObserver interface {
	ObserveBlock(Block)
}
