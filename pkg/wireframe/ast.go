package wireframe

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

var zeroPos = ast.Position{}

// ToNode converts a parsed Request into a shape-core AST ObjectNode:
//
//	{ "type": "request", "method": "POST", "uri": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// Method and version are rendered through their String methods, so an
// unrecognized (zero-value) Request produces an empty literal rather
// than panicking.
func ToNode(req *Request) (ast.SchemaNode, error) {
	if req == nil {
		return nil, fmt.Errorf("wireframe: ToNode(nil)")
	}

	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(req.Method.String(), zeroPos),
		"uri":     ast.NewLiteralNode(req.URI, zeroPos),
		"version": ast.NewLiteralNode(req.Version.String(), zeroPos),
		"headers": headersToNode(req.Headers),
	}
	if req.Body != nil {
		props["body"] = ast.NewLiteralNode(string(req.Body), zeroPos)
	}

	return ast.NewObjectNode(props, zeroPos), nil
}

func headersToNode(headers Headers) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(h.Name, zeroPos),
			"value": ast.NewLiteralNode(h.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// FromNode converts an AST ObjectNode produced by ToNode back into a
// Request. Method and version strings are resolved through ParseMethod
// and ParseVersion; an unrecognized value yields an error rather than a
// silently zero-valued enum member.
func FromNode(node ast.SchemaNode) (*Request, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("wireframe: FromNode: expected ObjectNode, got %T", node)
	}
	props := obj.Properties()

	req := &Request{}

	method, err := nodeLiteralString(props, "method")
	if err != nil {
		return nil, err
	}
	m, ok := ParseMethod([]byte(method))
	if !ok {
		return nil, &ParseError{Kind: ErrInvalidMethod, Token: method}
	}
	req.Method = m

	if v, ok := props["uri"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			req.URI, _ = lit.Value().(string)
		}
	}

	version, err := nodeLiteralString(props, "version")
	if err != nil {
		return nil, err
	}
	ver, ok := ParseVersion([]byte(version))
	if !ok {
		return nil, &ParseError{Kind: ErrInvalidVersion, Token: version}
	}
	req.Version = ver

	if v, ok := props["headers"]; ok {
		hdrs, err := nodeToHeaders(v)
		if err != nil {
			return nil, err
		}
		req.Headers = hdrs
	}
	if v, ok := props["body"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			if s, ok := lit.Value().(string); ok {
				req.Body = []byte(s)
			}
		}
	}

	return req, nil
}

func nodeLiteralString(props map[string]ast.SchemaNode, key string) (string, error) {
	v, ok := props[key]
	if !ok {
		return "", fmt.Errorf("wireframe: FromNode: missing %q", key)
	}
	lit, ok := v.(*ast.LiteralNode)
	if !ok {
		return "", fmt.Errorf("wireframe: FromNode: %q is not a literal", key)
	}
	s, _ := lit.Value().(string)
	return s, nil
}

func nodeToHeaders(node ast.SchemaNode) (Headers, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("wireframe: FromNode: expected ArrayDataNode for headers, got %T", node)
	}

	elements := arr.Elements()
	headers := make(Headers, 0, len(elements))
	for _, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		props := obj.Properties()
		var h Header
		if v, ok := props["key"]; ok {
			if lit, ok := v.(*ast.LiteralNode); ok {
				h.Name, _ = lit.Value().(string)
			}
		}
		if v, ok := props["value"]; ok {
			if lit, ok := v.(*ast.LiteralNode); ok {
				h.Value, _ = lit.Value().(string)
			}
		}
		headers = append(headers, h)
	}

	return headers, nil
}
