package internal

// version is overridden at build time with
// -ldflags "-X github.com/zhengshuai-xiao/crosscorrelate/internal.version=..."
var version = "0.1.0-dev"

func Version() string {
	return version
}
