package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// Import paths referenced by generated files.
const (
	recordgenPkg = "github.com/syssam/recordgen"
	fieldPkg     = "github.com/syssam/recordgen/schema/field"
	uuidPkg      = "github.com/google/uuid"
)

// genRecord generates the record file ({class}.go) of t.
func genRecord(c *Config, t *Type) *jen.File {
	f := jen.NewFilePathName(c.Package, c.PackageName())
	f.HeaderComment(c.header())
	f.ImportName(recordgenPkg, "recordgen")
	f.ImportName(fieldPkg, "field")
	f.ImportName(uuidPkg, "uuid")

	genConstants(f, t)
	genDescriptor(c, f, t)
	genStruct(f, t)
	for _, fd := range t.Fields {
		genAccessors(f, t, fd)
	}
	genCopy(f, t)

	f.Var().Id("_").Qual("fmt", "Stringer").Op("=").Parens(jen.Op("*").Id(t.Name)).Parens(jen.Nil())
	return f
}

// genConstants generates the table and column name constants.
func genConstants(f *jen.File, t *Type) {
	f.Const().DefsFunc(func(g *jen.Group) {
		g.Commentf("%s is the name of the table backing %s.", t.TableConst(), t.Name)
		g.Id(t.TableConst()).Op("=").Lit(t.Table)
		for _, fd := range t.Fields {
			g.Commentf("%s holds the %q column name.", fd.Constant(), fd.Name)
			g.Id(fd.Constant()).Op("=").Lit(fd.Name)
		}
	})
	f.Commentf("%sColumns holds the column names of %s in declared order.", t.Name, t.Table)
	f.Var().Id(t.Name + "Columns").Op("=").Index().String().ValuesFunc(func(g *jen.Group) {
		for _, fd := range t.Fields {
			g.Id(fd.Constant())
		}
	})
}

// genDescriptor generates the shared descriptor of the class.
func genDescriptor(c *Config, f *jen.File, t *Type) {
	desc := jen.Dict{
		jen.Id("Name"):          jen.Lit(t.Name),
		jen.Id("Table"):         jen.Id(t.TableConst()),
		jen.Id("DefaultFormat"): jen.Lit(t.DefaultFormat),
		jen.Id("Columns"): jen.Index().Qual(recordgenPkg, "Column").ValuesFunc(func(g *jen.Group) {
			for _, fd := range t.Fields {
				g.Values(columnDict(fd))
			}
		}),
	}
	if ref := c.FormatsRef; ref != nil {
		desc[jen.Id("Formats")] = jen.Qual(ref.Path, ref.Name).Call()
	}
	f.Var().Id(t.DescriptorVar()).Op("=").Op("&").Qual(recordgenPkg, "Descriptor").Values(desc)
}

func columnDict(fd *Field) jen.Dict {
	d := jen.Dict{
		jen.Id("Name"):   jen.Lit(fd.ExportName),
		jen.Id("Column"): jen.Id(fd.Constant()),
		jen.Id("Type"):   jen.Qual(fieldPkg, fd.Type.ConstName()),
	}
	if fd.Nullable {
		d[jen.Id("Nullable")] = jen.True()
	}
	if fd.PrimaryKey {
		d[jen.Id("PrimaryKey")] = jen.True()
	}
	if def := fd.DefaultCode(); def != nil {
		d[jen.Id("Default")] = def
	}
	return d
}

// genStruct generates the class struct and its constructor.
func genStruct(f *jen.File, t *Type) {
	if t.Comment != "" {
		f.Comment(t.Comment)
		f.Comment("//")
	}
	f.Commentf("%s is the record of the %q table.", t.Name, t.Table)
	f.Type().Id(t.Name).Struct(
		jen.Qual(recordgenPkg, "Record"),
	)

	f.Commentf("%s returns a new %s with every column at its default value.", t.Constructor(), t.Name)
	f.Func().Id(t.Constructor()).Params().Op("*").Id(t.Name).Block(
		jen.Return(jen.Op("&").Id(t.Name).Values(
			jen.Id("Record").Op(":").Qual(recordgenPkg, "NewRecord").Call(jen.Id(t.DescriptorVar())),
		)),
	)
}

// genAccessors generates the getter, setter and clearer of a field.
func genAccessors(f *jen.File, t *Type, fd *Field) {
	recv := jen.Id(t.Receiver()).Op("*").Id(t.Name)
	idx := jen.Lit(fd.Index)

	if fd.Comment != "" {
		f.Commentf("%s returns the value of the %q column (%s) and whether it is set.", fd.Getter(), fd.Name, fd.Comment)
	} else {
		f.Commentf("%s returns the value of the %q column and whether it is set.", fd.Getter(), fd.Name)
	}
	f.Func().Params(recv.Clone()).Id(fd.Getter()).Params().Params(fd.GoType(), jen.Bool()).Block(
		jen.Id("v").Op(":=").Id(t.Receiver()).Dot("Value").Call(idx.Clone()),
		jen.Return(jen.Id("v").Dot(fd.ValueMethod()).Call(), jen.Op("!").Id("v").Dot("IsNull").Call()),
	)

	f.Commentf("%s sets the %q column and marks it modified.", fd.Setter(), fd.Name)
	f.Func().Params(recv.Clone()).Id(fd.Setter()).Params(jen.Id("v").Add(fd.GoType())).Op("*").Id(t.Name).Block(
		jen.Id(t.Receiver()).Dot("SetValue").Call(idx.Clone(), jen.Qual(fieldPkg, fd.ValueFunc()).Call(jen.Id("v"))),
		jen.Return(jen.Id(t.Receiver())),
	)

	if !fd.Nullable {
		return
	}
	f.Commentf("%s sets the %q column to null and marks it modified.", fd.Clearer(), fd.Name)
	f.Func().Params(recv.Clone()).Id(fd.Clearer()).Params().Op("*").Id(t.Name).Block(
		jen.Id(t.Receiver()).Dot("SetValue").Call(idx.Clone(), jen.Qual(fieldPkg, "Null").Call(jen.Qual(fieldPkg, fd.Type.ConstName()))),
		jen.Return(jen.Id(t.Receiver())),
	)
}

// genCopy generates the Copy method.
func genCopy(f *jen.File, t *Type) {
	pk := "primary key"
	if n := len(t.PrimaryKey()); n == 1 {
		pk = fmt.Sprintf("primary key %q", t.PrimaryKey()[0].Name)
	}
	f.Commentf("Copy returns a new %s holding the values of %s, except its %s.", t.Name, t.Receiver(), pk)
	f.Comment("The copied columns are marked modified.")
	f.Func().Params(jen.Id(t.Receiver()).Op("*").Id(t.Name)).Id("Copy").Params().Op("*").Id(t.Name).Block(
		jen.Id("c").Op(":=").Id(t.Constructor()).Call(),
		jen.Id(t.Receiver()).Dot("CopyInto").Call(jen.Op("&").Id("c").Dot("Record")),
		jen.Return(jen.Id("c")),
	)
}
