package graphviz

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/jt05610/nelson"
)

type Writer struct {
	*Config
	g       *cgraph.Graph
	mapping map[nelson.Node]*cgraph.Node
}

func (w *Writer) writePlace(i int, p *nelson.Place) error {
	name := fmt.Sprintf("p%d", i)
	node, err := w.g.CreateNode(name)
	if err != nil {
		return err
	}
	node.SetShape(cgraph.CircleShape)
	node.SetLabel(p.Name)
	if err := node.SafeSet("fontname", string(w.Font), ""); err != nil {
		return err
	}
	w.mapping[p] = node
	return nil
}

func (w *Writer) writeTransition(i int, t *nelson.Transition) error {
	name := fmt.Sprintf("t%d", i)
	node, err := w.g.CreateNode(name)
	if err != nil {
		return err
	}
	w.mapping[t] = node
	node.SetShape(cgraph.BoxShape)
	node.SetLabel(t.Name)
	return node.SafeSet("fontname", string(w.Font), "")
}

func (w *Writer) writeEdge(name string, src, dst nelson.Node) (*cgraph.Edge, error) {
	return w.g.CreateEdge(name, w.mapping[src], w.mapping[dst])
}

// writeArcs draws domain arcs into t and codomain arcs out of it. The edge label is the
// arc ordinal.
func (w *Writer) writeArcs(i int, t *nelson.Transition) error {
	for j, p := range t.Domain() {
		e, err := w.writeEdge(fmt.Sprintf("d%d_%d", i, j), p, t)
		if err != nil {
			return err
		}
		e.SetLabel(strconv.Itoa(j))
	}
	for j, p := range t.Codomain() {
		e, err := w.writeEdge(fmt.Sprintf("c%d_%d", i, j), t, p)
		if err != nil {
			return err
		}
		e.SetLabel(strconv.Itoa(j))
	}
	return nil
}

// writeLinks draws one edge from each node's negward neighbor to the node along every
// configured dimension.
func (w *Writer) writeLinks(world *nelson.World) error {
	dims := w.Dimensions
	if len(dims) == 0 {
		dims = []*nelson.Dimension{
			world.PrimaryDimension().Dimension(),
			world.SecondaryDimension().Dimension(),
		}
	}
	for k, d := range dims {
		color := Colors[k%len(Colors)]
		for i, n := range world.Nodes() {
			prev := n.Negward(d)
			if prev == nil {
				continue
			}
			e, err := w.writeEdge(fmt.Sprintf("z%d_%d", k, i), prev, n)
			if err != nil {
				return err
			}
			e.SetColor(color)
			e.SetLabel(d.String())
		}
	}
	return nil
}

func (w *Writer) Flush(out io.Writer, world *nelson.World) error {
	graph := graphviz.New()
	defer func() {
		_ = graph.Close()
	}()
	g, err := graph.Graph()
	if err != nil {
		return err
	}
	g.SetRankDir(cgraph.RankDir(w.RankDir))
	w.g = g
	w.mapping = make(map[nelson.Node]*cgraph.Node)
	for i, p := range world.Places() {
		if err := w.writePlace(i, p); err != nil {
			return err
		}
	}
	for i, t := range world.Transitions() {
		if err := w.writeTransition(i, t); err != nil {
			return err
		}
	}
	switch w.Mode {
	case ZzMode:
		err = w.writeLinks(world)
	default:
		for i, t := range world.Transitions() {
			if err = w.writeArcs(i, t); err != nil {
				break
			}
		}
	}
	if err != nil {
		return err
	}
	return graph.Render(w.g, w.Format, out)
}

type Font string

func (f Font) Or(other Font) Font {
	return f + "," + other
}

const (
	Helvetica  Font = "Helvetica"
	Arial      Font = "Arial"
	Roboto     Font = "Roboto"
	Montserrat Font = "Montserrat"
	SansSerif  Font = "sans-serif"
	Serif      Font = "Serif"
	Times      Font = "Times"
)

type RankDir string

const (
	LeftToRight RankDir = "LR"
	RightToLeft RankDir = "RL"
	TopToBottom RankDir = "TB"
	BottomToTop RankDir = "BT"
)

// Mode selects what the edges of the graph show.
type Mode int

const (
	// ArcMode draws the arcs of every transition.
	ArcMode Mode = iota
	// ZzMode draws the zz links along the configured dimensions.
	ZzMode
)

// Colors are used in turn for the dimensions drawn in ZzMode.
var Colors = []string{"red", "blue", "darkgreen", "orange"}

type Config struct {
	Name string
	Font
	RankDir
	Format     graphviz.Format
	Mode       Mode
	Dimensions []*nelson.Dimension
}

func New(config *Config) *Writer {
	if config.Name == "" {
		config.Name = "nelson"
	}
	if config.Font == "" {
		config.Font = Helvetica
	}
	if config.RankDir == "" {
		config.RankDir = LeftToRight
	}
	if config.Format == "" {
		config.Format = graphviz.XDOT
	}
	return &Writer{
		Config:  config,
		mapping: make(map[nelson.Node]*cgraph.Node),
	}
}
