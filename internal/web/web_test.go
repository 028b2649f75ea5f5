package web

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, page := range []string{PageES, PageEN} {
		t.Run(page, func(t *testing.T) {
			var buf bytes.Buffer
			err := tmpl.ExecuteTemplate(&buf, page, map[string]string{
				"Nombre":       "Dra. <Ana>",
				"Especialidad": "Terapia",
				"Lang":         "xx-YY",
			})
			require.NoError(t, err)

			out := buf.String()
			assert.Contains(t, out, "Dra. &lt;Ana&gt;")
			assert.Contains(t, out, "Terapia")
			assert.Contains(t, out, "/static/app.js")
			assert.Contains(t, out, `lang="xx-YY"`)
		})
	}
}

func TestStatic(t *testing.T) {
	f, err := Static().Open("app.js")
	require.NoError(t, err)
	defer f.Close()

	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(body), "/api/disponibilidad")
	assert.Contains(t, string(body), "/api/agendar")
}
