package main

import (
	"context"

	uuid "github.com/satori/go.uuid"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/sortkit/internal/sortcli"
)

func main() {
	ctx := logging.ContextWith(context.Background(),
		logging.Field("app", "sortkit"),
		logging.Field("run_id", uuid.NewV4().String()))
	cli.Main(ctx, sortcli.NewMux())
}
