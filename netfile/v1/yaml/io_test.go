package yaml_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/jt05610/nelson"
	pf "github.com/jt05610/nelson/netfile"
	"github.com/jt05610/nelson/netfile/v1"
	"github.com/jt05610/nelson/netfile/v1/yaml"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, s *yaml.Service) *nelson.World {
	t.Helper()
	in, err := os.Open("testdata/sheet.yaml")
	require.NoError(t, err)
	defer func() {
		_ = in.Close()
	}()
	w, err := nelson.NewWorld()
	require.NoError(t, err)
	require.NoError(t, s.Load(context.Background(), in, w))
	return w
}

func TestService_Load(t *testing.T) {
	s := &yaml.Service{}
	w := load(t, s)
	require.Equal(t, "sheet", s.Name)
	require.Len(t, w.Places(), 4)
	require.Len(t, w.Transitions(), 1)

	total := w.Place("total")
	require.Equal(t, nelson.Computed{Transition: w.Transition("=total")}, total.Default)
	require.Equal(t, nelson.Constant{Value: "hello"}, w.Place("note").Default)
	require.Equal(t, 3.2, w.Place("A").Marking)
	require.Equal(t, 5, w.Place("B").Marking)

	require.Equal(t, nelson.Node(w.Place("B")), w.Place("A").Posward(w.MustDimension(nelson.Row)))
	require.Equal(t, nelson.Node(total), w.Place("B").Posward(w.MustDimension(nelson.Column)))
	require.Equal(t, nelson.Node(w.Place("note")), total.Posward(w.MustDimension(nelson.Sheet, 2)))
	require.Equal(t, nelson.Node(total), w.Transition("=total").Posward(w.MustDimension(nelson.Codomain, 0)))
}

func TestService_Save(t *testing.T) {
	s := &yaml.Service{}
	w := load(t, s)
	buf := new(bytes.Buffer)
	require.NoError(t, s.Save(context.Background(), buf, w))
	require.Contains(t, buf.String(), "nelson: v1")

	again, err := nelson.NewWorld()
	require.NoError(t, err)
	require.NoError(t, s.Load(context.Background(), buf, again))
	want := netfile.FromWorld("sheet", w)
	require.Len(t, want.Links, 3)
	require.Equal(t, want, netfile.FromWorld("sheet", again))
}

func TestService_UnknownPlace(t *testing.T) {
	in := strings.NewReader(`nelson: v1
transitions:
  - name: T
    domain: [missing]
`)
	w, err := nelson.NewWorld()
	require.NoError(t, err)
	err = (&yaml.Service{}).Load(context.Background(), in, w)
	require.ErrorIs(t, err, netfile.ErrUnknownNode)
}

func TestService_Version(t *testing.T) {
	var s pf.Service = &yaml.Service{}
	require.Equal(t, pf.V1, s.Version())
}
