package schema

// Description is the serializable form of a Schema used by `fakegen schema`
type Description struct {
	Kind       string                `json:"kind" yaml:"kind"`
	Elements   []Description         `json:"elements,omitempty" yaml:"elements,omitempty"`
	Properties []PropertyDescription `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// PropertyDescription is one field of an object Description
type PropertyDescription struct {
	Name     string        `json:"name" yaml:"name"`
	Variants []Description `json:"variants" yaml:"variants"`
}

// Describe converts s for JSON or YAML output.
// Primitives use their kind name; arrays and objects use "array" and "object".
func Describe(s Schema) Description {
	switch n := s.(type) {
	case *Primitive:
		return Description{Kind: n.Kind.String()}
	case *Array:
		return Description{Kind: "array", Elements: describeAll(n.Elements)}
	case *Object:
		d := Description{Kind: "object", Properties: make([]PropertyDescription, len(n.Properties))}
		for i, p := range n.Properties {
			d.Properties[i] = PropertyDescription{Name: p.Name, Variants: describeAll(p.Variants)}
		}
		return d
	default:
		return Description{Kind: "invalid"}
	}
}

func describeAll(schemas []Schema) []Description {
	out := make([]Description, len(schemas))
	for i, s := range schemas {
		out[i] = Describe(s)
	}
	return out
}
