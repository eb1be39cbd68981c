package netfile

import (
	"context"
	"io"

	"github.com/jt05610/nelson"
)

// Service reads and writes net files.
type Service interface {
	Load(ctx context.Context, r io.Reader, w *nelson.World) error
	Save(ctx context.Context, out io.Writer, w *nelson.World) error
	Version() Version
}

type Version string

const (
	V1 Version = "v1"
)
