package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/report-atlas/pkg/models/api"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type TableConfig struct {
	NameWidth    int
	TypeWidth    int
	DefaultWidth int
	FlagWidth    int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:    12,
		TypeWidth:    18,
		DefaultWidth: 12,
		FlagWidth:    8,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
	format Format
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
		format: FormatText,
	}
}

func (c *Reporter) SetFormat(format string) error {
	switch f := Format(strings.ToLower(format)); f {
	case FormatText, FormatJSON, FormatYAML:
		c.format = f
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (expected text, json or yaml)", format)
	}
}

func (c *Reporter) funcMap() template.FuncMap {
	return template.FuncMap{
		"formatRow": func(name, fieldType, def, required string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s |",
				c.config.NameWidth, name,
				c.config.TypeWidth, fieldType,
				c.config.DefaultWidth, def,
				c.config.FlagWidth, required)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.TypeWidth+2),
				strings.Repeat("-", c.config.DefaultWidth+2),
				strings.Repeat("-", c.config.FlagWidth+2))
		},
		"fieldType": func(f api.FilterField) string {
			if f.Options != "" {
				return f.FieldType + " -> " + f.Options
			}
			return f.FieldType
		},
		"yesNo": func(b bool) string {
			if b {
				return "yes"
			}
			return "no"
		},
	}
}

const reportTmpl = `{{.Name}} ({{.RefDocType}})
Defaults evaluated on: {{.EvaluatedOn}}

{{separator}}
{{formatRow "Field" "Type" "Default" "Required"}}
{{separator}}
{{range .Filters}}{{formatRow .FieldName (fieldType .) .Default (yesNo .Required)}}
{{end}}{{separator}}
`

const listTmpl = `{{range .}}{{.Name}}	{{.RefDocType}}	{{.FilterCount}} filters
{{end}}`

const conditionsTmpl = `{{.Report}}
{{range $key, $value := .Filters}}{{$key}}: {{$value}}
{{end}}{{if .Period}}Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}} ({{.Period.Duration}} days)
{{end}}
{{range .Conditions}}- {{.Field}} {{.Op}} {{join .Values " and "}}
{{end}}
{{.Query}}
`

func (c *Reporter) HandleReport(report api.Report) error {
	return c.render("report", reportTmpl, report)
}

func (c *Reporter) HandleList(reports []api.ReportSummary) error {
	return c.render("list", listTmpl, reports)
}

func (c *Reporter) HandleConditions(conds api.Conditions) error {
	return c.render("conditions", conditionsTmpl, conds)
}

func (c *Reporter) render(name, tmpl string, data any) error {
	switch c.format {
	case FormatJSON:
		enc := json.NewEncoder(c.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(c.writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	funcs := c.funcMap()
	funcs["join"] = strings.Join
	t, err := template.New(name).Funcs(funcs).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, data)
}
