// FILE: example/fasthttp/main.go
package main

import (
	"github.com/lixenwraith/sinklog"
	"github.com/lixenwraith/sinklog/compat"
	"github.com/valyala/fasthttp"
)

func requestHandler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/":
		ctx.WriteString("hello")
	case "/health":
		ctx.WriteString("ok")
	default:
		ctx.Error("not found", fasthttp.StatusNotFound)
	}
}

func main() {
	adapter, err := compat.NewBuilder().
		WithConfig(&sinklog.Config{
			Level:        "info",
			File:         "/var/log/fasthttp/server.log",
			Policy:       "daily",
			MaxFiles:     8,
			MaxSizeBytes: 0,
		}).
		BuildFastHTTP(compat.WithDefaultLevel(sinklog.LevelInfo))
	if err != nil {
		panic(err)
	}

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  adapter,
		Name:    "sinklog-example",
	}

	if err := server.ListenAndServe("127.0.0.1:8080"); err != nil {
		panic(err)
	}
}
