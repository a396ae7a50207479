// Package resultlog persists search.Entry results across runs, so a long
// search doesn't lose its leaderboard between invocations (spec.md leaves
// persistence unspecified; this supplements it). The on-disk format is
// adapted from opencoff-go-chd's DBWriter/DBReader: a fixed header, a
// sequence of checksummed records, and a trailing strong checksum over the
// whole file — scaled down for a leaderboard-sized record count (<=16 in
// practice) rather than a multi-million-key constant DB, so records are
// read and written whole rather than mmap'd.
package resultlog

import (
	"bytes"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/dchest/siphash"

	"github.com/opencoff/go-owenhash/internal/seed"
	"github.com/opencoff/go-owenhash/scramble"
	"github.com/opencoff/go-owenhash/search"
	"github.com/opencoff/go-owenhash/stats"
)

// magic identifies an owenhash result log, mirroring chd's "CHDB" tag.
var magic = [4]byte{'O', 'W', 'L', 'G'}

const headerSize = 4 + 4 + 8 + 8 // magic + flags + salt + count
const checksumSize = sha512.Size256
const recordChecksumSize = 8

// ErrBadMagic is returned by Open when the file doesn't start with the
// resultlog magic tag.
var ErrBadMagic = errors.New("resultlog: bad magic")

// ErrChecksum is returned by Open when the trailing file checksum doesn't
// match the computed one — the file is truncated or corrupt.
var ErrChecksum = errors.New("resultlog: checksum mismatch")

// ErrRecordChecksum is returned by Open when an individual record's siphash
// doesn't match, same failure mode as chd's per-value checksum.
var ErrRecordChecksum = errors.New("resultlog: record checksum mismatch")

// Write serializes entries to path as a new result log, overwriting any
// existing file. Mirrors DBWriter.Freeze: build the whole record stream in
// memory, checksum it, write once.
func Write(path string, entries []search.Entry) error {
	var salt [8]byte
	binary.BigEndian.PutUint64(salt[:], seed.Uint64())
	saltKey := binary.BigEndian.Uint64(salt[:])

	var body bytes.Buffer
	for _, e := range entries {
		rec, err := encodeRecord(saltKey, e)
		if err != nil {
			return err
		}
		body.Write(rec)
	}

	var hdr bytes.Buffer
	hdr.Write(magic[:])
	binary.Write(&hdr, binary.BigEndian, uint32(0)) // flags, reserved
	hdr.Write(salt[:])
	binary.Write(&hdr, binary.BigEndian, uint64(len(entries)))

	h := sha512.New512_256()
	h.Write(hdr.Bytes())
	h.Write(body.Bytes())
	sum := h.Sum(nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("resultlog: create %s: %w", path, err)
	}
	defer f.Close()

	for _, chunk := range [][]byte{hdr.Bytes(), body.Bytes(), sum} {
		if _, err := f.Write(chunk); err != nil {
			return fmt.Errorf("resultlog: write %s: %w", path, err)
		}
	}
	return nil
}

// Open reads and validates a result log written by Write, returning its
// entries in file order (ascending score, since Write is always fed a
// Leaderboard's Entries()).
func Open(path string) ([]search.Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resultlog: read %s: %w", path, err)
	}
	if len(raw) < headerSize+checksumSize {
		return nil, ErrChecksum
	}

	body := raw[:len(raw)-checksumSize]
	wantSum := raw[len(raw)-checksumSize:]

	h := sha512.New512_256()
	h.Write(body)
	if !bytes.Equal(h.Sum(nil), wantSum) {
		return nil, ErrChecksum
	}

	if !bytes.Equal(body[:4], magic[:]) {
		return nil, ErrBadMagic
	}
	saltKey := binary.BigEndian.Uint64(body[8:16])
	count := binary.BigEndian.Uint64(body[16:24])

	rest := body[headerSize:]
	entries := make([]search.Entry, 0, count)
	for i := uint64(0); i < count; i++ {
		e, consumed, err := decodeRecord(rest, saltKey)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		rest = rest[consumed:]
	}
	return entries, nil
}

// encodeRecord lays out one Entry as: siphash checksum of the payload (8
// bytes), then the payload itself: score bits (8), a lossy Stats summary (3
// float64), op count (4), then op count * (tag byte + 3 pad bytes + const
// uint32).
func encodeRecord(saltKey uint64, e search.Entry) ([]byte, error) {
	var payload bytes.Buffer
	binary.Write(&payload, binary.BigEndian, math.Float64bits(e.Score))
	binary.Write(&payload, binary.BigEndian, summarize(e.Stats))
	binary.Write(&payload, binary.BigEndian, uint32(len(e.Program)))
	for _, op := range e.Program {
		if !op.Valid() {
			return nil, fmt.Errorf("resultlog: refusing to persist invalid op %+v", op)
		}
		payload.WriteByte(byte(op.Tag))
		payload.Write([]byte{0, 0, 0})
		binary.Write(&payload, binary.BigEndian, op.Const)
	}

	cksum := siphash.Hash(saltKey, 0, payload.Bytes())

	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, cksum)
	out.Write(payload.Bytes())
	return out.Bytes(), nil
}

// decodeRecord parses one record from the front of buf, verifying its
// siphash checksum, and returns the entry plus how many bytes it consumed.
func decodeRecord(buf []byte, saltKey uint64) (search.Entry, int, error) {
	if len(buf) < recordChecksumSize+8+3*8+4 {
		return search.Entry{}, 0, fmt.Errorf("resultlog: truncated record")
	}
	wantCksum := binary.BigEndian.Uint64(buf[:recordChecksumSize])
	payloadStart := recordChecksumSize

	scoreBits := binary.BigEndian.Uint64(buf[payloadStart : payloadStart+8])
	off := payloadStart + 8 + 3*8 // score, then the 3-float64 summary (not reconstructed)
	opCount := binary.BigEndian.Uint32(buf[off : off+4])
	off += 4

	opBytes := int(opCount) * 8
	if len(buf) < off+opBytes {
		return search.Entry{}, 0, fmt.Errorf("resultlog: truncated program")
	}

	payload := buf[payloadStart : off+opBytes]
	if siphash.Hash(saltKey, 0, payload) != wantCksum {
		return search.Entry{}, 0, ErrRecordChecksum
	}

	prog := make(scramble.Program, opCount)
	for i := range prog {
		base := off + i*8
		tag := scramble.OpTag(buf[base])
		c := binary.BigEndian.Uint32(buf[base+4 : base+8])
		prog[i] = scramble.HashOp{Tag: tag, Const: c}
		if !prog[i].Valid() {
			return search.Entry{}, 0, fmt.Errorf("resultlog: decoded invalid op %+v", prog[i])
		}
	}

	return search.Entry{
		Program: prog,
		Score:   math.Float64frombits(scoreBits),
		Stats:   stats.Stats{}, // full matrices are not persisted; see summarize
	}, off + opBytes, nil
}

// summarize reduces a Stats record to three scalars worth persisting
// alongside a leaderboard entry: mean diagonal avalanche, mean tree-bias
// deviation from 0.5, and a reserved slot for future use. This is a
// deliberate lossy reduction — the full matrices are cheap to regenerate
// with stats.Measure and expensive to store for every persisted candidate.
func summarize(s stats.Stats) [3]float64 {
	var diag, treeDev float64
	for i := 0; i < 32; i++ {
		diag += s.Avalanche[i][i]
		for j := 0; j < 32; j++ {
			d := s.TreeBias[i][j] - 0.5
			if d < 0 {
				d = -d
			}
			treeDev += d
		}
	}
	return [3]float64{diag / 32.0, treeDev / (32.0 * 32.0), 0}
}
