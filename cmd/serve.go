package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/web/server"
)

// Serve starts the web render server
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	srv := server.NewServer(ctx.Int("port"))
	return srv.Start()
}
