// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package transport supplies concrete escpos.Sink implementations: a
// plain file/character-device sink for serial or USB printers, a TCP
// sink for network receipt printers, and an in-memory sink for tests.
package transport

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"time"
)

// FileSink writes to an already-open file or character device (a serial
// port, a USB printer node under /dev, or a plain file for offline
// inspection).
type FileSink struct {
	f *os.File
}

// OpenFile opens path for writing and returns a FileSink backed by it.
// The file is created if it doesn't exist; existing content is not
// truncated, since a character device can't be truncated and a caller
// writing to a real file can open it with os.O_TRUNC themselves via
// NewFileSink if that's what they want.
func OpenFile(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", path, err)
	}
	return &FileSink{f: f}, nil
}

// NewFileSink wraps an already-open file.
func NewFileSink(f *os.File) *FileSink {
	return &FileSink{f: f}
}

func (s *FileSink) Write(p []byte) (int, error) {
	n, err := s.f.Write(p)
	if err != nil {
		return n, fmt.Errorf("transport: file write: %w", err)
	}
	return n, nil
}

// Close closes the underlying file.
func (s *FileSink) Close() error {
	return s.f.Close()
}

// TCPSink dials a network receipt printer, most of which listen on port
// 9100 (the de facto "raw" printing port for ESC/POS over Ethernet/WiFi).
type TCPSink struct {
	conn net.Conn
}

const defaultPort = 9100

// DialTCP connects to addr (host, or host:port if addr already carries a
// port) with a connection timeout.
func DialTCP(addr string) (*TCPSink, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = fmt.Sprintf("%s:%d", addr, defaultPort)
	}
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", addr, err)
	}
	return &TCPSink{conn: conn}, nil
}

func (s *TCPSink) Write(p []byte) (int, error) {
	n, err := s.conn.Write(p)
	if err != nil {
		return n, fmt.Errorf("transport: tcp write: %w", err)
	}
	return n, nil
}

// Close closes the underlying connection.
func (s *TCPSink) Close() error {
	return s.conn.Close()
}

// BufSink is an in-memory Sink, for tests that need to inspect the
// bytes a Printer emitted.
type BufSink struct {
	buf bytes.Buffer
}

// NewBufSink returns an empty BufSink.
func NewBufSink() *BufSink {
	return &BufSink{}
}

func (s *BufSink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Bytes returns the accumulated byte stream.
func (s *BufSink) Bytes() []byte {
	return s.buf.Bytes()
}

// Close is a no-op; BufSink owns no external resource.
func (s *BufSink) Close() error {
	return nil
}
