package graphviz_test

import (
	"bytes"
	"testing"

	"github.com/jt05610/nelson"
	"github.com/jt05610/nelson/graphviz"
	"github.com/stretchr/testify/require"
)

func net(t *testing.T) *nelson.World {
	t.Helper()
	w, err := nelson.NewWorld()
	require.NoError(t, err)
	a, err := w.NewPlace("A", nelson.WithMarking(3.2))
	require.NoError(t, err)
	b, err := w.NewPlace("B", nelson.WithMarking(5))
	require.NoError(t, err)
	c, err := w.NewPlace("C")
	require.NoError(t, err)
	_, err = w.NewTransition("T", []*nelson.Place{b, a}, []*nelson.Place{c})
	require.NoError(t, err)
	a.SetPosward(w.MustDimension(nelson.Row), b)
	b.SetPosward(w.MustDimension(nelson.Column), c)
	return w
}

func TestWriter_Flush(t *testing.T) {
	buf := new(bytes.Buffer)
	w := graphviz.New(&graphviz.Config{
		Font:    graphviz.Helvetica,
		RankDir: graphviz.LeftToRight,
	})
	require.NoError(t, w.Flush(buf, net(t)))
	out := buf.String()
	require.Contains(t, out, "circle")
	require.Contains(t, out, "box")
	require.Contains(t, out, "Helvetica")
}

func TestWriter_ZzMode(t *testing.T) {
	buf := new(bytes.Buffer)
	w := graphviz.New(&graphviz.Config{Mode: graphviz.ZzMode})
	require.NoError(t, w.Flush(buf, net(t)))
	out := buf.String()
	require.Contains(t, out, graphviz.Colors[0])
	require.Contains(t, out, graphviz.Colors[1])
	require.Contains(t, out, "[row]")
	require.Contains(t, out, "[column]")
	require.NotContains(t, out, "[domain, 0]")
}

func TestWriter_Font(t *testing.T) {
	buf := new(bytes.Buffer)
	w := graphviz.New(&graphviz.Config{Font: graphviz.Times})
	require.NoError(t, w.Flush(buf, net(t)))
	require.Contains(t, buf.String(), "fontname=Times")
	require.NotContains(t, buf.String(), string(graphviz.Helvetica))
}
