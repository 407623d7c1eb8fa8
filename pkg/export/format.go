package export

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/matzehuels/targetgraph/pkg/document"
	"github.com/matzehuels/targetgraph/pkg/errors"
	"github.com/matzehuels/targetgraph/pkg/filter"
	"github.com/matzehuels/targetgraph/pkg/model"
	"github.com/matzehuels/targetgraph/pkg/render/nodelink"
	"github.com/matzehuels/targetgraph/pkg/settings"
	"github.com/matzehuels/targetgraph/pkg/traverse"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
)

// Formats lists the supported formats in the order they are documented.
var Formats = []string{FormatJSON, FormatDOT, FormatSVG, FormatPDF, FormatPNG}

// DefaultPNGScale is the PNG resolution multiplier.
const DefaultPNGScale = 2.0

// ValidateFormat returns an INVALID_FORMAT error for unknown formats.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, Formats)
}

// FormatFromPath guesses the format from a file extension, falling back to
// JSON.
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range Formats {
		if f == ext {
			return f
		}
	}
	return FormatJSON
}

// OutputPath derives an output file name from a model path or project name.
func OutputPath(base, format string) string {
	name := strings.TrimSuffix(filepath.Base(base), filepath.Ext(base))
	if safe := model.PathSafe(name); safe != "" {
		name = safe
	} else {
		name = "targets"
	}
	return name + "." + format
}

// Emitter is an observer that can serialize what it collected.
type Emitter interface {
	traverse.Observer
	Counts() (nodes, edges int)
	Encode(w io.Writer) error
}

func newEmitter(format string, p *model.Project, f *filter.Filter, s settings.Settings, scale float64) Emitter {
	switch format {
	case FormatDOT:
		return nodelink.NewBuilder(p, f, s)
	case FormatSVG:
		return rendered{Builder: nodelink.NewBuilder(p, f, s), render: nodelink.RenderSVG}
	case FormatPDF:
		return rendered{Builder: nodelink.NewBuilder(p, f, s), render: nodelink.RenderPDF}
	case FormatPNG:
		return rendered{Builder: nodelink.NewBuilder(p, f, s), render: func(dot string) ([]byte, error) {
			return nodelink.RenderPNG(dot, scale)
		}}
	default:
		return document.NewBuilder(p, f, s)
	}
}

// rendered emits a diagram produced from the DOT source.
type rendered struct {
	*nodelink.Builder
	render func(dot string) ([]byte, error)
}

func (r rendered) Encode(w io.Writer) error {
	data, err := r.render(r.DOT())
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}
