// FILE: example/gnet/main.go
package main

import (
	"github.com/lixenwraith/sinklog"
	"github.com/lixenwraith/sinklog/compat"
	"github.com/panjf2000/gnet/v2"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	logger := sinklog.NewLogger()
	err := logger.ApplyOverride(
		"file=/var/log/gnet/echo.log",
		"policy=size",
		"max_files=4",
		"max_size_bytes=1048576",
		"level=debug",
	)
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	gnetAdapter := compat.NewGnetAdapter(logger)

	// Configure gnet server with the logger
	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
