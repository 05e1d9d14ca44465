package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	htmpl "html/template"
	"reflect"
	"strings"
	texttpl "text/template"
	"time"
)

// EmailData defines standard fields for email templates.
type EmailData struct {
	Name           string `json:"Name"`
	Email          string `json:"Email"`
	RecipientEmail string `json:"RecipientEmail"`
	Type           string `json:"Type"`
	AppName        string `json:"AppName"`

	UserID      int       `json:"UserID"`
	DisplayName string    `json:"DisplayName"`
	Time        string    `json:"Time"`
	TimeAt      time.Time `json:"TimeAt"`
}

// ToMap converts EmailData to a map[string]any for EmailJob.Data
func ToMap(d EmailData) map[string]any {
	b, _ := json.Marshal(d)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

// defaultFn supports pipe usage: {{ .Value | default "Fallback" }}
func defaultFn(fallback any, value any) any {
	switch x := value.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return fallback
		}
		return x
	case nil:
		return fallback
	default:
		rv := reflect.ValueOf(value)
		if !rv.IsValid() {
			return fallback
		}
		zero := reflect.Zero(rv.Type()).Interface()
		if reflect.DeepEqual(value, zero) {
			return fallback
		}
		return value
	}
}

func baseFuncs() map[string]any {
	return map[string]any{
		"now":     func() time.Time { return time.Now().UTC() },
		"upper":   strings.ToUpper,
		"default": defaultFn,
	}
}

var (
	htmlFuncMap = htmpl.FuncMap(baseFuncs())
	textFuncMap = texttpl.FuncMap(baseFuncs())
)

// ---- Template names ----

const (
	Welcome = "welcome"
)

// sources holds subject, text and html bodies keyed by "<name>.<part>".
var sources = map[string]string{
	Welcome + ".subject": `Welcome to {{ .AppName | default "the directory" }}, {{ .Name }}`,
	Welcome + ".text": `Hi {{ .Name }},

An account for {{ .Email }} was added to {{ .AppName | default "the directory" }} on {{ .Time }}.
Your profile is listed as "{{ .DisplayName }}".

If you did not expect this message you can ignore it.
`,
	Welcome + ".html": `<!doctype html>
<html>
<body style="font-family: sans-serif">
  <p>Hi {{ .Name }},</p>
  <p>An account for <strong>{{ .Email }}</strong> was added to {{ .AppName | default "the directory" }} on {{ .Time }}.</p>
  <p>Your profile is listed as &ldquo;{{ .DisplayName }}&rdquo;.</p>
  <p style="color:#888">If you did not expect this message you can ignore it.</p>
</body>
</html>
`,
}

// renderPart renders one named part with html/template (isHTML) or text/template.
func renderPart(key string, isHTML bool, data any) (string, error) {
	src, ok := sources[key]
	if !ok {
		return "", fmt.Errorf("template %q not found", key)
	}

	var (
		buf bytes.Buffer
		err error
	)
	if isHTML {
		tpl, e := htmpl.New(key).Funcs(htmlFuncMap).Option("missingkey=zero").Parse(src)
		if e != nil {
			return "", fmt.Errorf("parse html %q: %w", key, e)
		}
		err = tpl.Execute(&buf, data)
	} else {
		tpl, e := texttpl.New(key).Funcs(textFuncMap).Option("missingkey=zero").Parse(src)
		if e != nil {
			return "", fmt.Errorf("parse text %q: %w", key, e)
		}
		err = tpl.Execute(&buf, data)
	}
	if err != nil {
		return "", fmt.Errorf("exec %q: %w", key, err)
	}
	return buf.String(), nil
}

// Render renders subject, text, and html for the given template name.
func Render(name string, data any) (subject string, text string, html string, err error) {
	subject, err = renderPart(name+".subject", false, data)
	if err != nil {
		return "", "", "", err
	}
	text, err = renderPart(name+".text", false, data)
	if err != nil {
		return "", "", "", err
	}
	html, err = renderPart(name+".html", true, data)
	if err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(subject), text, html, nil
}
