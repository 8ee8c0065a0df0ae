package main

import (
	"context"
	"vistos-backend/cmd/vistos/commands"
	"vistos-backend/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "vistos-cli")
	telemetry.InitSlog(false)
	commands.ExecuteContext(context.Background())
}
