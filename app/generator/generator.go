// Package generator serializes a city dataset as a static source file.
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"regexp"
	"strconv"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/findabatherapy/citygen/app/places"
	"github.com/findabatherapy/citygen/app/states"
)

const (
	FormatTypeScript = "ts"
	FormatGo         = "go"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"quote": strconv.Quote,
	"tsKey": tsKey,
}).ParseFS(templateFS, "templates/*.tmpl"))

type Generator struct {
	format        string
	goPackage     string
	states        []states.State
	minPopulation int
}

type stateBlock struct {
	Abbrev string
	Cities []places.City
}

type slugEntry struct {
	Slug   string
	Abbrev string
}

type templateData struct {
	Package       string
	MinPopulation string
	States        []stateBlock
	StateNames    []states.State
	StateSlugs    []slugEntry
	Total         int
}

// NewGenerator returns a generator for the given target format. The states
// are the ones the artifact's lookup tables cover.
func NewGenerator(target, goPackage string, tables []states.State, minPopulation int) (*Generator, error) {
	switch target {
	case FormatTypeScript:
	case FormatGo:
		if goPackage == "" {
			return nil, fmt.Errorf("go package name is required for the go format")
		}
	default:
		return nil, fmt.Errorf("unsupported output format: %s", target)
	}

	return &Generator{
		format:        target,
		goPackage:     goPackage,
		states:        tables,
		minPopulation: minPopulation,
	}, nil
}

// Run renders the dataset. The dataset must already be sorted.
func (g *Generator) Run(dataset places.Dataset) ([]byte, error) {
	data := g.templateData(dataset)

	var buf bytes.Buffer
	name := "cities." + g.format + ".tmpl"
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s output: %w", g.format, err)
	}

	if g.format != FormatGo {
		return buf.Bytes(), nil
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated go source: %w", err)
	}
	return src, nil
}

func (g *Generator) templateData(dataset places.Dataset) templateData {
	data := templateData{
		Package:       g.goPackage,
		MinPopulation: message.NewPrinter(language.English).Sprintf("%d", g.minPopulation),
		StateNames:    g.states,
		Total:         dataset.Total(),
	}

	for _, abbrev := range dataset.States() {
		data.States = append(data.States, stateBlock{Abbrev: abbrev, Cities: dataset[abbrev]})
	}

	for _, s := range g.states {
		data.StateSlugs = append(data.StateSlugs, slugEntry{Slug: s.Slug(), Abbrev: s.Abbrev})
	}
	for _, s := range g.states {
		for _, alias := range s.Aliases {
			data.StateSlugs = append(data.StateSlugs, slugEntry{Slug: alias, Abbrev: s.Abbrev})
		}
	}

	return data
}

// tsKey renders an object literal key, quoting it unless it is a plain
// identifier.
func tsKey(key string) string {
	if identifier.MatchString(key) {
		return key
	}
	return strconv.Quote(key)
}
