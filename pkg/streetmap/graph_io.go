package streetmap

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	da "github.com/HazelJiang/BearMap/pkg/datastructure"
	"github.com/HazelJiang/BearMap/pkg/util"
	"github.com/dsnet/compress/bzip2"
)

var ErrMalformedGraphFile = errors.New("streetmap: malformed graph file")

// WriteGraph stores a bzip2-compressed snapshot of g:
//
//	<nodes> <edges>
//	<id> <lat> <lon> <quoted name>   (one line per node)
//	<from> <to> <weight>             (one line per edge)
func (g *Graph) WriteGraph(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := bz.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d %d\n", g.NumberOfVertices(), g.NumberOfEdges())

	for _, n := range g.Nodes() {
		latF := strconv.FormatFloat(n.Lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(n.Lon, 'f', -1, 64)
		fmt.Fprintf(w, "%d %s %s %s\n", n.ID, latF, lonF, strconv.Quote(n.Name))
	}

	g.ForOutEdges(func(e da.WeightedEdge[int64]) {
		weightF := strconv.FormatFloat(e.Weight(), 'f', -1, 64)
		fmt.Fprintf(w, "%d %d %s\n", e.From(), e.To(), weightF)
	})

	return w.Flush()
}

func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	br := bufio.NewReader(bz)

	line, err := util.ReadLine(br)
	if err != nil {
		return nil, fmt.Errorf("%w: missing header: %v", ErrMalformedGraphFile, err)
	}
	header := util.Fields(line)
	if len(header) != 2 {
		return nil, fmt.Errorf("%w: header %q", ErrMalformedGraphFile, line)
	}
	numNodes, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGraphFile, err)
	}
	numEdges, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGraphFile, err)
	}

	g := NewGraph()
	for i := 0; i < numNodes; i++ {
		line, err = util.ReadLine(br)
		if err != nil {
			return nil, fmt.Errorf("%w: node %d: %v", ErrMalformedGraphFile, i, err)
		}
		if err := parseNode(g, line); err != nil {
			return nil, err
		}
	}

	for i := 0; i < numEdges; i++ {
		line, err = util.ReadLine(br)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrMalformedGraphFile, i, err)
		}
		ff := util.Fields(line)
		if len(ff) != 3 {
			return nil, fmt.Errorf("%w: edge line %q", ErrMalformedGraphFile, line)
		}
		from, err := strconv.ParseInt(ff[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedGraphFile, err)
		}
		to, err := strconv.ParseInt(ff[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedGraphFile, err)
		}
		weight, err := strconv.ParseFloat(ff[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedGraphFile, err)
		}
		if err := g.AddEdge(from, to, weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func parseNode(g *Graph, line string) error {
	ff := strings.SplitN(line, " ", 4)
	if len(ff) != 4 {
		return fmt.Errorf("%w: node line %q", ErrMalformedGraphFile, line)
	}
	id, err := strconv.ParseInt(ff[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedGraphFile, err)
	}
	lat, err := strconv.ParseFloat(ff[1], 64)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedGraphFile, err)
	}
	lon, err := strconv.ParseFloat(ff[2], 64)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedGraphFile, err)
	}
	name, err := strconv.Unquote(ff[3])
	if err != nil {
		return fmt.Errorf("%w: name %s: %v", ErrMalformedGraphFile, ff[3], err)
	}
	g.AddNode(id, lat, lon, name)
	return nil
}
