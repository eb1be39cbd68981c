package yaml

import (
	"context"
	"io"

	"github.com/jt05610/nelson"
	pf "github.com/jt05610/nelson/netfile"
	"github.com/jt05610/nelson/netfile/v1"
	"gopkg.in/yaml.v3"
)

var _ pf.Service = (*Service)(nil)

type Service struct {
	// Name is written to saved files.
	Name string
}

func (s *Service) Load(_ context.Context, r io.Reader, w *nelson.World) error {
	var f netfile.Netfile
	err := yaml.NewDecoder(r).Decode(&f)
	if err != nil {
		return err
	}
	if s.Name == "" {
		s.Name = f.Name
	}
	return f.Build(w)
}

func (s *Service) Save(_ context.Context, out io.Writer, w *nelson.World) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(netfile.FromWorld(s.Name, w)); err != nil {
		return err
	}
	return enc.Close()
}

func (s *Service) Version() pf.Version {
	return pf.V1
}
