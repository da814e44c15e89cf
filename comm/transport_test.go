package comm_test

import (
	"net"
	"testing"
	"time"

	"github.com/hcavr/avrd/comm"
)

// lineServer accepts one connection and echoes back whatever it is sent,
// line for line, prefixed with "ECHO:".
func lineServer(t *testing.T, ln net.Listener) {
	conn, err := ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()
	buf := make([]byte, 0, 64)
	one := make([]byte, 1)
	for {
		n, err := conn.Read(one)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		if one[0] == comm.Terminator {
			conn.Write(append([]byte("ECHO:"), append(buf, comm.Terminator)...))
			buf = buf[:0]
			continue
		}
		buf = append(buf, one[0])
	}
}

func TestDialTimeout(t *testing.T) {
	// 10.255.255.1 is a non-routable address commonly used to force a
	// dial timeout in tests without depending on external network state.
	_, err := comm.Dial("10.255.255.1:23", 50*time.Millisecond)
	if err == nil {
		t.Fatal("expected an error dialing an unroutable address")
	}
}

func TestWriteLineReadLine(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("could not start loopback listener: %v", err)
	}
	defer ln.Close()
	go lineServer(t, ln)

	c, err := comm.Dial(ln.Addr().String(), time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()

	if err := c.WriteLine("PW?"); err != nil {
		t.Fatalf("write: %v", err)
	}
	line, err := c.ReadLine()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if line != "ECHO:PW?" {
		t.Fatalf("got %q, want %q", line, "ECHO:PW?")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("could not start loopback listener: %v", err)
	}
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			conn.Close()
		}
	}()

	c, err := comm.Dial(ln.Addr().String(), time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close should be a no-op, got: %v", err)
	}
}

func TestReadLineAfterCloseErrors(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("could not start loopback listener: %v", err)
	}
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			conn.Close()
		}
	}()

	c, err := comm.Dial(ln.Addr().String(), time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	c.Close()
	if _, err := c.ReadLine(); err != comm.ErrNotConnected {
		t.Fatalf("got %v, want ErrNotConnected", err)
	}
}
