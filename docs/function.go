package docs

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Function holds one callable's documentation, split into the pieces a
// bindings generator places separately: the body text, per-argument
// descriptions, and the return value description.
type Function struct {
	Description          string
	ArgumentDescriptions map[string]string
	ReturnDescription    string // empty when the comment has no Returns section
}

type parseStage int

const (
	stageDescription parseStage = iota
	stageArguments
	stageReturns
)

// ParseFunction splits a function doc comment along its markdown structure.
// A level-1 "Arguments" heading opens the argument section, where bullets
// pair a code-span name with the text after it; a level-1 "Returns" heading
// opens the return description. Either section may appear without the
// other. A comment without recognizable argument or return sections is kept
// verbatim as the description.
func ParseFunction(description string) Function {
	source := []byte(description)
	root := goldmark.New().Parser().Parse(text.NewReader(source))

	var (
		descBuf   strings.Builder
		retBuf    strings.Builder
		argKeys   []string
		argValues []string
		stage     = stageDescription
	)

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 {
				switch strings.ToLower(childText(node, source)) {
				case "arguments":
					stage = stageArguments
				case "returns":
					stage = stageReturns
				}
				return ast.WalkSkipChildren, nil
			}
		case *ast.CodeSpan:
			if stage == stageArguments {
				argKeys = append(argKeys, childText(node, source))
			}
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			chunk := string(node.Segment.Value(source))
			switch stage {
			case stageDescription:
				descBuf.WriteString(chunk)
				descBuf.WriteByte('\n')
			case stageArguments:
				argValues = append(argValues, chunk)
			case stageReturns:
				retBuf.WriteString(chunk)
				retBuf.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})

	var args map[string]string
	for i, key := range argKeys {
		if i >= len(argValues) {
			break
		}
		if args == nil {
			args = make(map[string]string, len(argKeys))
		}
		args[key] = trimArgumentValue(argValues[i])
	}

	if len(args) == 0 && retBuf.Len() == 0 {
		// the comment does not follow the sectioned layout; keep it whole
		return Function{Description: description}
	}

	return Function{
		Description:          descBuf.String(),
		ArgumentDescriptions: args,
		ReturnDescription:    retBuf.String(),
	}
}

// childText concatenates a node's direct text children, for inline nodes
// like headings and code spans.
func childText(node ast.Node, source []byte) string {
	var sb strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}
	return sb.String()
}

// trimArgumentValue strips the "- " separator a bullet leaves in front of
// the argument description.
func trimArgumentValue(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "-")
	return strings.TrimSpace(v)
}
