// Package recordgen is the runtime of classes generated by recordgen.
//
// Each generated class embeds [Record], which stores one [field.Value] per
// declared column, the persistence [State] and the class [Descriptor]
// emitted by the generator. The embedded Record provides:
//
//   - the state flags IsNew, IsModified and IsDeleted with SetNew and
//     SetDeleted, and Clear, which always restores the fresh state;
//   - column level dirty tracking (IsColumnModified, ModifiedColumns,
//     ResetModified);
//   - dynamic access (ValueOf, Assign, ToMap, Fields);
//   - export through the format registry of package export (ExportTo,
//     ExportWith, ToDefaultString and String).
//
// Typed getters and setters are generated per column:
//
//	a := bookstore.NewAuthor()
//	a.SetFirstName("John").SetLastName("Doe")
//	fmt.Print(a)
//	// Id: null
//	// FirstName: John
//	// LastName: Doe
//	// Email: null
//	// Age: null
//
// The generator lives in package compiler/gen.
package recordgen
