// Package docs extracts API documentation from Go source so binding
// generators can replay it onto the generated foreign-language code. Doc
// comments survive the trip across the boundary even though the code that
// carries them does not.
//
// Extraction walks a parsed source file and collects doc comments from
// functions, named types, struct fields, interface methods, and typed
// constant groups. Function comments are additionally parsed as markdown:
// an "# Arguments" section with `name` - description bullets and a
// "# Returns" section are split out so generators can place each piece on
// the matching generated parameter. Comments that do not follow that layout
// are kept whole.
package docs
