package hashing

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
)

// Convention selects how list entries are fed into the digest.
type Convention string

const (
	ConventionLines  Convention = "lines"
	ConventionConcat Convention = "concat"
)

// Separator returns the bytes written after every entry for the convention.
func (c Convention) Separator() (string, error) {
	switch c {
	case ConventionLines, "":
		return "\n", nil
	case ConventionConcat:
		return "", nil
	default:
		return "", fmt.Errorf("unknown fingerprint convention %q", string(c))
	}
}

// ChecksumReaderProxy is a proxy that calculates the checksum of data as it's read.
type ChecksumReaderProxy struct {
	reader   io.Reader
	checksum hash.Hash
	size     int64
}

func NewReaderProxy(reader io.Reader) *ChecksumReaderProxy {
	return &ChecksumReaderProxy{
		reader:   reader,
		checksum: sha1.New(),
	}
}

func (p *ChecksumReaderProxy) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if n > 0 {
		p.size += int64(n)
		if _, checksumErr := p.checksum.Write(buf[:n]); checksumErr != nil {
			return n, checksumErr
		}
	}
	return n, err
}

// Size returns the number of bytes read so far.
func (p *ChecksumReaderProxy) Size() int64 {
	return p.size
}

func (p *ChecksumReaderProxy) GetChecksum() (string, error) {
	return hex.EncodeToString(p.checksum.Sum(nil)), nil
}

// ChecksumListProxy accumulates an ordered list of entries and its checksum.
// Unlike a set, duplicates and order are part of the digest.
type ChecksumListProxy struct {
	entries   []string
	separator string
	checksum  hash.Hash
}

func NewChecksumList(convention Convention) (*ChecksumListProxy, error) {
	separator, err := convention.Separator()
	if err != nil {
		return nil, err
	}
	return &ChecksumListProxy{
		separator: separator,
		checksum:  sha1.New(),
	}, nil
}

func (p *ChecksumListProxy) Put(entry string) error {
	if _, err := io.WriteString(p.checksum, entry+p.separator); err != nil {
		return err
	}
	p.entries = append(p.entries, entry)
	return nil
}

func (p *ChecksumListProxy) Size() int {
	return len(p.entries)
}

func (p *ChecksumListProxy) Entries() []string {
	return p.entries
}

func (p *ChecksumListProxy) GetChecksum() (string, error) {
	return hex.EncodeToString(p.checksum.Sum(nil)), nil
}

// Fingerprint returns the digest of entries under the given convention.
func Fingerprint(entries []string, convention Convention) (string, error) {
	list, err := NewChecksumList(convention)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if err := list.Put(entry); err != nil {
			return "", err
		}
	}
	return list.GetChecksum()
}
