package parser

import (
	"go/token"
	"go/types"
	"path/filepath"
)

// RecordInfo describes one marked record type.
type RecordInfo struct {
	Name    string
	PkgPath string
	PkgName string
	// Dir is the directory holding the package's sources.
	Dir string
	// Named is the declared type; nil for aliases.
	Named *types.Named
	// TypeParams is nil for non-generic records.
	TypeParams *types.TypeParamList
	Fields     []FieldInfo
	// Pos is the declaration position, for messages.
	Pos string
	// Scope and Fset locate the package's other declarations.
	Scope *types.Scope
	Fset  *token.FileSet
	// Err is set when the declaration cannot be synthesized; Fields is
	// empty in that case.
	Err error
}

// QualifiedName returns pkgPath.Name.
func (r *RecordInfo) QualifiedName() string {
	return qualify(r.PkgPath, r.Name)
}

// DisplayName returns pkgName.Name.
func (r *RecordInfo) DisplayName() string {
	return r.PkgName + "." + r.Name
}

// PackageDecl returns the position of the package-level declaration of
// name, ignoring declarations in the file called skipFile.
func (r *RecordInfo) PackageDecl(name, skipFile string) (string, bool) {
	if r.Scope == nil {
		return "", false
	}
	obj := r.Scope.Lookup(name)
	if obj == nil {
		return "", false
	}
	return r.declaredOutside(obj, skipFile)
}

// MethodDecl returns the position of the record's method name, ignoring
// methods declared in the file called skipFile.
func (r *RecordInfo) MethodDecl(name, skipFile string) (string, bool) {
	if r.Named == nil {
		return "", false
	}
	for i := 0; i < r.Named.NumMethods(); i++ {
		if m := r.Named.Method(i); m.Name() == name {
			return r.declaredOutside(m, skipFile)
		}
	}
	return "", false
}

func (r *RecordInfo) declaredOutside(obj types.Object, skipFile string) (string, bool) {
	if r.Fset == nil || !obj.Pos().IsValid() {
		return obj.Name(), true
	}
	pos := r.Fset.Position(obj.Pos())
	if filepath.Base(pos.Filename) == skipFile {
		return "", false
	}
	return pos.String(), true
}

// FieldInfo stores one record field in declaration order.
type FieldInfo struct {
	Name string
	Type types.Type
	// Embedded is set for embedded fields; Name is then the implicit
	// field name.
	Embedded   bool
	IsExported bool
}

func qualify(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}
	return pkgPath + "." + name
}
