package docgen

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// ContentType do documento gerado.
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var (
	// O Word costuma quebrar "{{nome}}" em vários <w:r>; a expressão aceita marcações XML entre as chaves.
	tagSpan    = regexp.MustCompile(`\{(?:<[^>]*>)*\{((?:[^{}<]|<[^>]*>)*)\}(?:<[^>]*>)*\}`)
	xmlMarkup  = regexp.MustCompile(`<[^>]*>`)
	identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Render preenche as tags do .docx com os valores informados e devolve o arquivo em memória.
// Tags sem valor ficam em branco.
func Render(template []byte, values map[string]string) (*bytes.Buffer, error) {
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateUnavailable, err)
	}
	defer r.Close()

	doc := r.Editable()
	content, err := fillTags(doc.GetContent(), values)
	if err != nil {
		return nil, err
	}
	doc.SetContent(content)

	buf := new(bytes.Buffer)
	if err := doc.Write(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	return buf, nil
}

// Inspect abre o .docx e devolve as tags usadas, em ordem alfabética e sem repetição.
// Aplica as mesmas regras de Render, então um modelo aceito aqui também renderiza.
func Inspect(template []byte) ([]string, error) {
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateUnavailable, err)
	}
	defer r.Close()

	content := r.Editable().GetContent()
	if err := validate(content); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, span := range tagSpan.FindAllString(content, -1) {
		name, err := spanTag(span)
		if err != nil {
			return nil, err
		}
		seen[name] = true
	}

	tags := make([]string, 0, len(seen))
	for name := range seen {
		tags = append(tags, name)
	}
	sort.Strings(tags)
	return tags, nil
}

// UnknownTags filtra as tags que o contexto do cliente não preenche.
func UnknownTags(tags []string) []string {
	known := Context{}.Tags()
	var unknown []string
	for _, t := range tags {
		if _, ok := known[t]; !ok {
			unknown = append(unknown, t)
		}
	}
	return unknown
}

func fillTags(content string, values map[string]string) (string, error) {
	if err := validate(content); err != nil {
		return "", err
	}

	var renderErr error
	out := tagSpan.ReplaceAllStringFunc(content, func(span string) string {
		if renderErr != nil {
			return span
		}
		name, err := spanTag(span)
		if err != nil {
			renderErr = err
			return span
		}
		return escape(values[name])
	})
	if renderErr != nil {
		return "", renderErr
	}
	return out, nil
}

// validate rejeita blocos {% %} e chaves "{{" sem fechamento.
func validate(content string) error {
	text := xmlMarkup.ReplaceAllString(tagSpan.ReplaceAllString(content, ""), "")
	if strings.Contains(text, "{%") {
		return fmt.Errorf("%w: control blocks are not supported", ErrRenderFailure)
	}
	if strings.Contains(text, "{{") {
		return fmt.Errorf("%w: unclosed tag", ErrRenderFailure)
	}
	return nil
}

// spanTag devolve o nome da tag e confere se o trecho pode ser trocado sem quebrar o XML.
func spanTag(span string) (string, error) {
	name := tagName(span)
	if !identifier.MatchString(name) {
		return "", fmt.Errorf("%w: invalid tag {{%s}}", ErrRenderFailure, name)
	}
	if !balancedMarkup(span) {
		return "", fmt.Errorf("%w: tag {{%s}} crosses document structure", ErrRenderFailure, name)
	}
	return name, nil
}

// balancedMarkup diz se remover as marcações do trecho mantém a árvore XML.
// Um trecho como "</w:t></w:r><w:r><w:t>" fecha e reabre os mesmos elementos;
// o que sobra aberto precisa espelhar o que foi fechado antes.
func balancedMarkup(span string) bool {
	var closed, open []string
	for _, m := range xmlMarkup.FindAllString(span, -1) {
		switch {
		case strings.HasPrefix(m, "<?"), strings.HasPrefix(m, "<!"), strings.HasSuffix(m, "/>"):
		case strings.HasPrefix(m, "</"):
			name := elementName(m[2:])
			if n := len(open); n > 0 {
				if open[n-1] != name {
					return false
				}
				open = open[:n-1]
				continue
			}
			closed = append(closed, name)
		default:
			open = append(open, elementName(m[1:]))
		}
	}
	if len(closed) != len(open) {
		return false
	}
	for i, name := range closed {
		if open[len(open)-1-i] != name {
			return false
		}
	}
	return true
}

func elementName(tag string) string {
	tag = strings.TrimSuffix(tag, ">")
	if i := strings.IndexAny(tag, " \t\r\n"); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

func tagName(span string) string {
	m := tagSpan.FindStringSubmatch(span)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(xmlMarkup.ReplaceAllString(m[1], ""))
}

func escape(value string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(value))
	return b.String()
}
