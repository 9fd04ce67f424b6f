package record

import (
	"fmt"
	"io"
)

// Reader iterates over BIFF12 records from an io.ReadSeeker.  Each call to
// Next returns the record type ID, the raw payload bytes, and any error.
//
// Record IDs and lengths are both variable-length encoded:
//   - ID:  up to 4 continuation bytes; the MSB of each byte signals more bytes.
//   - Len: up to 4 bytes of 7-bit little-endian chunks (standard LEB-128).
// DefaultMaxRecordLen is the payload-length guard used when a Reader is not
// given an explicit maximum (see NewReaderWithMaxLen). No legitimate BIFF12
// record exceeds this.
const DefaultMaxRecordLen = 10 * 1024 * 1024 // 10 MiB

type Reader struct {
	r      io.ReadSeeker
	maxLen int
}

// NewReader wraps an io.ReadSeeker for BIFF12 record iteration, using
// DefaultMaxRecordLen as the payload-length guard.
func NewReader(r io.ReadSeeker) *Reader {
	return &Reader{r: r, maxLen: DefaultMaxRecordLen}
}

// NewReaderWithMaxLen is like NewReader but rejects any record whose payload
// length exceeds maxLen. A maxLen <= 0 falls back to DefaultMaxRecordLen.
func NewReaderWithMaxLen(r io.ReadSeeker, maxLen int) *Reader {
	if maxLen <= 0 {
		maxLen = DefaultMaxRecordLen
	}
	return &Reader{r: r, maxLen: maxLen}
}

// Tell returns the current byte offset within the underlying stream.
func (r *Reader) Tell() (int64, error) {
	return r.r.Seek(0, io.SeekCurrent)
}

// Seek repositions the stream.  whence follows the io.Seek* constants.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	return r.r.Seek(offset, whence)
}

// readVarUint reads a variable-length (1-4 byte) integer encoded as 7-bit
// little-endian chunks: the continuation bit is the MSB (bit 7) of each
// byte, and the remaining 7 bits of each byte accumulate at increasing
// 7-bit shifts. Both the record type ID and the record length fields share
// this encoding; what names the field in error messages.
// Returns an error if the 4th byte still has the continuation bit set (the
// stream would otherwise become misaligned).
//
// Accumulation is done into uint32 to prevent signed-integer overflow on
// 32-bit platforms (where int is 32 bits).
func (r *Reader) readVarUint(what string) (int, error) {
	buf := [1]byte{}
	var v uint32
	for i := range 4 {
		_, err := io.ReadFull(r.r, buf[:])
		if err != nil {
			return 0, err
		}
		b := uint32(buf[0])
		v += (b & 0x7F) << (7 * uint32(i))
		if b&0x80 == 0 {
			return int(v), nil
		}
		if i == 3 {
			return 0, fmt.Errorf("record: %s continuation bit set on 4th byte (stream corrupt)", what)
		}
	}
	// Unreachable: the loop always returns inside the body for i==3.
	panic("record: readVarUint: unreachable")
}

// readID reads a variable-length record type ID (1–4 bytes).
func (r *Reader) readID() (int, error) {
	return r.readVarUint("ID")
}

// readLen reads a variable-length record length (1–4 bytes).
func (r *Reader) readLen() (int, error) {
	return r.readVarUint("length")
}

// Next reads the next record from the stream.
// Returns (recID, data, nil) on success, or (0, nil, io.EOF) at end of stream.
// A truncated stream (record ID found but length or payload missing) returns a
// non-EOF error rather than silently masking data corruption as end-of-file.
func (r *Reader) Next() (recID int, data []byte, err error) {
	recID, err = r.readID()
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, nil, io.EOF
		}
		return 0, nil, fmt.Errorf("record: reading ID: %w", err)
	}

	recLen, err := r.readLen()
	if err != nil {
		// EOF here means the stream was truncated after the record ID — that is
		// always a corruption, not a clean end-of-file.
		return 0, nil, fmt.Errorf("record: reading length after ID 0x%X: %w", recID, err)
	}

	// Guard against corrupt length fields that would cause multi-hundred-MB
	// allocations.
	if recLen > r.maxLen {
		return 0, nil, fmt.Errorf("record: payload length %d for ID 0x%X exceeds %d byte limit (stream corrupt)", recLen, recID, r.maxLen)
	}

	if recLen == 0 {
		return recID, nil, nil
	}

	data = make([]byte, recLen)
	if _, err = io.ReadFull(r.r, data); err != nil {
		return 0, nil, fmt.Errorf("record: reading %d payload bytes for ID 0x%X: %w", recLen, recID, err)
	}
	return recID, data, nil
}
