package api

import "time"

type FilterField struct {
	FieldName string `json:"fieldname" yaml:"fieldname"`
	Label     string `json:"label" yaml:"label"`
	FieldType string `json:"fieldtype" yaml:"fieldtype"`
	Options   string `json:"options,omitempty" yaml:"options,omitempty"`
	Default   string `json:"default,omitempty" yaml:"default,omitempty"`
	Required  bool   `json:"required" yaml:"required"`
	Width     int    `json:"width,omitempty" yaml:"width,omitempty"`
}

type Report struct {
	Name        string        `json:"name" yaml:"name"`
	RefDocType  string        `json:"ref_doctype" yaml:"ref_doctype"`
	EvaluatedOn string        `json:"evaluated_on" yaml:"evaluated_on"`
	Filters     []FilterField `json:"filters" yaml:"filters"`
}

type ReportSummary struct {
	Name        string `json:"name" yaml:"name"`
	RefDocType  string `json:"ref_doctype" yaml:"ref_doctype"`
	FilterCount int    `json:"filter_count" yaml:"filter_count"`
}

type TimePeriod struct {
	Start    time.Time `json:"start" yaml:"start"`
	End      time.Time `json:"end" yaml:"end"`
	Duration int       `json:"duration_days" yaml:"duration_days"`
}

type Condition struct {
	Field  string   `json:"field" yaml:"field"`
	Op     string   `json:"op" yaml:"op"`
	Values []string `json:"values" yaml:"values"`
}

type ConditionsRequest struct {
	Date    string            `json:"date,omitempty"`
	Filters map[string]string `json:"filters"`
}

type Conditions struct {
	Report     string            `json:"report" yaml:"report"`
	Filters    map[string]string `json:"filters" yaml:"filters"`
	Period     *TimePeriod       `json:"period,omitempty" yaml:"period,omitempty"`
	Conditions []Condition       `json:"conditions" yaml:"conditions"`
	Query      string            `json:"query" yaml:"query"`
	Args       []any             `json:"args" yaml:"args"`
}
