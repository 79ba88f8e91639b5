package generate

import (
	"fmt"
	"strings"
)

// Format renders a brace template. {name} is replaced by vars[name], and
// {{ and }} produce literal braces. An unknown name, a lone closing brace or
// an unterminated placeholder is an error. Format specs such as {i:03} are
// not supported and are reported as unknown names.
func Format(template string, vars map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated placeholder at offset %d", i)
			}
			name := template[i+1 : i+1+end]
			v, ok := vars[name]
			if !ok {
				return "", fmt.Errorf("unknown field {%s}", name)
			}
			b.WriteString(v)
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("single '}' at offset %d", i)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
