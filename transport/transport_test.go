package transport_test

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/kofi-q/escpos-md/transport"
	"github.com/stretchr/testify/require"
)

func TestBufSinkAccumulatesWrites(t *testing.T) {
	sink := transport.NewBufSink()

	n, err := sink.Write([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = sink.Write([]byte("def"))
	require.NoError(t, err)

	require.Equal(t, []byte("abcdef"), sink.Bytes())
	require.NoError(t, sink.Close())
}

func TestFileSinkWritesToDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipt.bin")

	sink, err := transport.OpenFile(path)
	require.NoError(t, err)

	_, err = sink.Write([]byte{0x1d, 0x40})
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0x1d, 0x40}, got)
}

func TestDialTCPWritesToListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 4)
		n, _ := conn.Read(buf)
		received <- buf[:n]
	}()

	sink, err := transport.DialTCP(ln.Addr().String())
	require.NoError(t, err)
	defer sink.Close()

	_, err = sink.Write([]byte{0x1b, 0x40, 0x01, 0x02})
	require.NoError(t, err)

	require.Equal(t, []byte{0x1b, 0x40, 0x01, 0x02}, <-received)
}
