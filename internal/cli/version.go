package cli

// Version is the application version, set at build time:
//
//	go build -ldflags "-X github.com/katalvlaran/knightpaths/internal/cli.Version=1.0.0"
var Version = "dev"
