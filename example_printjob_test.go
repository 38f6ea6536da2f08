// SPDX-License-Identifier: GPL-3.0-or-later

package rawprint_test

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/bassosimone/rawprint"
	"github.com/bassosimone/runtimex"
)

// startFakePrinter listens on loopback and runs handler for a single client.
func startFakePrinter(handler func(conn net.Conn)) (string, int) {
	ln := runtimex.PanicOnError1(net.Listen("tcp", "127.0.0.1:0"))
	go func() {
		defer ln.Close()
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		handler(conn)
	}()
	addr := ln.Addr().(*net.TCPAddr)
	return addr.IP.String(), addr.Port
}

// This example prints a line of text and shows the bytes the printer received.
func Example_printJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	received := make(chan []byte, 1)
	host, port := startFakePrinter(func(conn net.Conn) {
		data, _ := io.ReadAll(conn)
		received <- data
	})

	printer := rawprint.NewPrinter(rawprint.NewConfig(), host, port, rawprint.DefaultSLogger())
	if err := printer.Connect(ctx); err != nil {
		panic(err)
	}
	if err := printer.PrintJob(ctx, "Hello", 12, false); err != nil {
		panic(err)
	}
	printer.Close()

	fmt.Printf("%q\n", <-received)

	// Output:
	// "\x1b%-12345X@PJL JOB NAME=\"rawprint\"\r\n\x1b(E\x1b(s12H\x1b(s6W\x1b&d0BHello\r\n\r\n\r\n\x1b%-12345X"
}

// This example queries the printer status.
func Example_queryStatus() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host, port := startFakePrinter(func(conn net.Conn) {
		request, err := bufio.NewReader(conn).ReadString('\n')
		if err != nil || request != "\x1b%-12345X@PJL INFO STATUS\r\n" {
			return
		}
		conn.Write([]byte("@PJL INFO STATUS\r\nCODE=10001\r\nDISPLAY=\"Ready\"\r\nONLINE=TRUE\r\n"))
	})

	printer := rawprint.NewPrinter(rawprint.NewConfig(), host, port, rawprint.DefaultSLogger())
	if err := printer.Connect(ctx); err != nil {
		panic(err)
	}
	defer printer.Close()

	status := runtimex.PanicOnError1(printer.QueryStatus(ctx))
	for _, line := range strings.Split(strings.TrimSpace(status), "\r\n") {
		fmt.Println(line)
	}

	// Output:
	// @PJL INFO STATUS
	// CODE=10001
	// DISPLAY="Ready"
	// ONLINE=TRUE
}
