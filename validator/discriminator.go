package validator

import (
	"fmt"

	"github.com/erraggy/oascheck/document"
	"github.com/erraggy/oascheck/internal/pathutil"
)

// checkDiscriminators walks components.schemas and, at every mapping with a
// discriminator and a oneOf or anyOf, warns about each union member whose
// properties omit the discriminator's propertyName.
//
// Members without a properties mapping, such as bare $refs, are skipped.
// The walk descends through every mapping and sequence, including the
// members themselves, so nested unions are checked too.
func checkDiscriminators(root *document.Mapping) []Finding {
	schemas, ok := componentSchemas(root)
	if !ok {
		return nil
	}

	c := &discriminatorChecker{path: pathutil.Acquire("components", "schemas")}
	defer pathutil.Release(c.path)
	c.walk(schemas)
	return c.findings
}

type discriminatorChecker struct {
	path     *pathutil.PathBuilder
	findings []Finding
}

func (c *discriminatorChecker) walk(n document.Node) {
	document.Switch(n,
		func(m *document.Mapping) {
			c.checkUnion(m)
			for key, value := range m.All() {
				c.path.PushKey(key)
				c.walk(value)
				c.path.Pop()
			}
		},
		func(seq *document.Sequence) {
			for i, item := range seq.All() {
				c.path.PushIndex(i)
				c.walk(item)
				c.path.Pop()
			}
		},
		nil,
	)
}

func (c *discriminatorChecker) checkUnion(m *document.Mapping) {
	if !m.Has("discriminator") || !(m.Has("oneOf") || m.Has("anyOf")) {
		return
	}
	disc, ok := document.MappingAt(m, "discriminator")
	if !ok {
		return
	}
	propNode, _ := disc.Get("propertyName")
	propName, ok := document.StringValue(propNode)
	if !ok {
		return
	}

	// oneOf wins when present, even if it is not a list.
	unionKey := "oneOf"
	if !m.Has(unionKey) {
		unionKey = "anyOf"
	}
	members, ok := document.SequenceAt(m, unionKey)
	if !ok {
		return
	}

	here := c.path.String()
	for i, member := range members.All() {
		mm, ok := document.AsMapping(member)
		if !ok {
			continue
		}
		props, ok := document.MappingAt(mm, "properties")
		if !ok || props.Has(propName) {
			continue
		}
		pos := member.Pos()
		c.findings = append(c.findings, Finding{
			Path: here,
			Message: fmt.Sprintf("discriminator property %q is not defined in %s properties",
				propName, pathutil.Index(unionKey, i)),
			Severity: SeverityWarning,
			Kind:     KindDiscriminator,
			Field:    "propertyName",
			Value:    propName,
			Line:     pos.Line,
			Column:   pos.Column,
		})
	}
}
