package sheetgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const themeSource = `variables:
  - name: primary_color
    value: "#007bff"
  - name: gap
    value: 8px
classes: [hidden]
keyframes:
  - name: fadeIn
    steps:
      - at: from
        declarations:
          - opacity: 0
      - at: to
        declarations:
          - opacity: 1
rules:
  - selector: body
    declarations:
      - margin: 0
      - "font-family: system-ui, sans-serif"
  - class: card
    pseudo: [hover]
    declarations:
      - color: var(--primary-color)
      - "padding: 8px 16px;"
`

const themeCSS = `@keyframes fadeIn {
  from { opacity: 0; }
  to { opacity: 1; }
}

:root {
    --primary-color: #007bff;
    --gap: 8px;
}

body {
    margin: 0;
    font-family: system-ui, sans-serif;
}

.card:hover {
    color: var(--primary-color);
    padding: 8px 16px;
}`

// writeFile creates path under dir with content and returns the full path.
func writeFile(t *testing.T, dir, path, content string) string {
	t.Helper()
	full := filepath.Join(dir, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	return full
}
