package anvil

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zlib"

	"github.com/go-theft-craft/anvil/pkg/world"
)

const (
	sectorSize      = 4096
	headerSectors   = 2 // location table + timestamp table
	compressionZlib = 2
)

// Encode assembles the complete region file image for r: the 4096-byte
// location table, a zeroed 4096-byte timestamp table, then one sector-padded
// record per present chunk in scan order (index = localZ*32 + localX).
// The buffer is always returned in full; writing it to disk is Save's job.
func Encode(r *world.Region) ([]byte, error) {
	locations := make([]byte, sectorSize)

	var dataBuf bytes.Buffer
	currentSector := uint32(headerSectors)

	for idx, c := range r.Chunks() {
		if c == nil {
			continue
		}

		nbtData, err := EncodeChunk(c)
		if err != nil {
			return nil, err
		}
		compressed, err := deflate(nbtData)
		if err != nil {
			return nil, fmt.Errorf("compress chunk (%d,%d): %w", c.X, c.Z, err)
		}

		// Record: length (4 bytes) + compression (1 byte) + compressed NBT,
		// padded to a sector boundary.
		payloadLen := uint32(len(compressed)) + 1 // +1 for compression byte
		totalLen := 4 + payloadLen                // 4 for the length field itself
		sectorCount := (totalLen + sectorSize - 1) / sectorSize

		// Location entry: (offset << 8) | sectorCount, offset counted from
		// the file start so the first record lands at sector 2.
		off := idx * 4
		binary.BigEndian.PutUint32(locations[off:off+4],
			(currentSector<<8)|(sectorCount&0xFF))

		var header [5]byte
		binary.BigEndian.PutUint32(header[0:4], payloadLen)
		header[4] = compressionZlib
		dataBuf.Write(header[:])
		dataBuf.Write(compressed)

		paddedSize := int(sectorCount) * sectorSize
		if pad := paddedSize - int(totalLen); pad > 0 {
			dataBuf.Write(make([]byte, pad))
		}

		currentSector += sectorCount
	}

	// Timestamps are not tracked; the table stays zero.
	out := make([]byte, 0, headerSectors*sectorSize+dataBuf.Len())
	out = append(out, locations...)
	out = append(out, make([]byte, sectorSize)...)
	out = append(out, dataBuf.Bytes()...)
	return out, nil
}

// Save encodes r and writes it to dir as r.<x>.<z>.mca, atomically via a
// temp file and rename.
func Save(dir string, r *world.Region) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create region dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("r.%d.%d.mca", r.X, r.Z))
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp region file: %w", err)
	}
	defer func() {
		f.Close()
		os.Remove(tmp)
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write region file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close region file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename region file: %w", err)
	}

	return nil
}

// deflate compresses data with zlib at the default level, one-shot.
func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("create zlib writer: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("write zlib data: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zlib writer: %w", err)
	}
	return buf.Bytes(), nil
}
