package ast

// TypeAliases returns the program's type alias declarations in source order
func (p *Program) TypeAliases() []*TypeAliasDeclaration {
	var out []*TypeAliasDeclaration
	for _, s := range p.Statements {
		if d, ok := s.(*TypeAliasDeclaration); ok {
			out = append(out, d)
		}
	}
	return out
}

// Interfaces returns the program's interface declarations in source order
func (p *Program) Interfaces() []*InterfaceDeclaration {
	var out []*InterfaceDeclaration
	for _, s := range p.Statements {
		if d, ok := s.(*InterfaceDeclaration); ok {
			out = append(out, d)
		}
	}
	return out
}

// Classes returns the program's class declarations in source order
func (p *Program) Classes() []*ClassDeclaration {
	var out []*ClassDeclaration
	for _, s := range p.Statements {
		if d, ok := s.(*ClassDeclaration); ok {
			out = append(out, d)
		}
	}
	return out
}

// FindClass returns the first class named name, or nil
func (p *Program) FindClass(name string) *ClassDeclaration {
	for _, c := range p.Classes() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindMethod returns the first method named name, or nil
func (d *ClassDeclaration) FindMethod(name string) *MethodDeclaration {
	for _, m := range d.Members {
		if md, ok := m.(*MethodDeclaration); ok && md.Name == name {
			return md
		}
	}
	return nil
}
