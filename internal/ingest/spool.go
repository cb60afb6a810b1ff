package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"
)

// Encoding is the text encoding chosen for a spooled upload.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingLatin1
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingLatin1:
		return "iso-8859-1"
	default:
		return "unknown"
	}
}

// SpooledFile is an upload copied to local temp storage. Close removes it.
type SpooledFile struct {
	Encoding Encoding
	Size     int64

	file      *os.File
	closeOnce sync.Once
	closeErr  error
}

// Spool copies src into a temp file under dir ("" for the OS default) and
// decides the encoding on the way through: valid UTF-8 stays UTF-8, anything
// else falls back to Latin-1. NUL bytes mean binary content and fail the spool.
func Spool(src io.Reader, dir string) (*SpooledFile, error) {
	file, err := os.CreateTemp(dir, "fintrack-upload-*.csv")
	if err != nil {
		return nil, fmt.Errorf("spool: create temp file: %w", err)
	}
	spooled := &SpooledFile{file: file}

	sniffer := &encodingSniffer{valid: true}
	n, err := io.Copy(io.MultiWriter(file, sniffer), src)
	if err != nil {
		_ = spooled.Close()
		return nil, fmt.Errorf("spool: %w", err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		_ = spooled.Close()
		return nil, fmt.Errorf("spool: rewind: %w", err)
	}

	spooled.Size = n
	if !sniffer.finish() {
		spooled.Encoding = EncodingLatin1
	}
	return spooled, nil
}

// Read reads the raw spooled bytes.
func (s *SpooledFile) Read(p []byte) (int, error) {
	return s.file.Read(p)
}

// Path is only meaningful until Close.
func (s *SpooledFile) Path() string {
	return s.file.Name()
}

// Close closes and deletes the temp file. It is safe to call more than once.
func (s *SpooledFile) Close() error {
	s.closeOnce.Do(func() {
		closeErr := s.file.Close()
		removeErr := os.Remove(s.file.Name())
		if errors.Is(removeErr, os.ErrNotExist) {
			removeErr = nil
		}
		s.closeErr = errors.Join(closeErr, removeErr)
	})
	return s.closeErr
}

// encodingSniffer validates UTF-8 across write boundaries. It keeps at most
// utf8.UTFMax-1 bytes of a rune split between two writes.
// A NUL byte in the header line marks the upload as binary. NUL bytes in
// data rows are left to the row normalizer.
type encodingSniffer struct {
	valid      bool
	pending    []byte
	headerDone bool
}

func (s *encodingSniffer) Write(p []byte) (int, error) {
	if !s.headerDone {
		head := p
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			head = p[:i]
			s.headerDone = true
		}
		if bytes.IndexByte(head, 0) >= 0 {
			return 0, ErrBinaryContent
		}
	}
	if !s.valid {
		return len(p), nil
	}

	data := p
	if len(s.pending) > 0 {
		data = append(s.pending, p...)
		s.pending = nil
	}

	for i := 0; i < len(data); {
		if data[i] < utf8.RuneSelf {
			i++
			continue
		}
		if !utf8.FullRune(data[i:]) {
			s.pending = append([]byte(nil), data[i:]...)
			break
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			s.valid = false
			s.pending = nil
			break
		}
		i += size
	}

	return len(p), nil
}

// finish reports whether the whole stream was valid UTF-8. A rune cut off at EOF is not.
func (s *encodingSniffer) finish() bool {
	if len(s.pending) > 0 {
		s.valid = false
		s.pending = nil
	}
	return s.valid
}
