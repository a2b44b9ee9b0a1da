package docs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/uniffi-go/docs"
)

func TestParseFunction_SectionedComment(t *testing.T) {
	description := "This is the function description.\n" +
		"Here is a second line.\n" +
		"\n" +
		"# Arguments\n" +
		"\n" +
		"- `argument1` - this is argument description 1.\n" +
		"- `argument2` - this is argument description 2.\n" +
		"\n" +
		"# Returns\n" +
		"\n" +
		"This is return value description.\n" +
		"Here is a second line.\n"

	fn := docs.ParseFunction(description)

	assert.Equal(t, "This is the function description.\nHere is a second line.\n", fn.Description)
	assert.Equal(t, map[string]string{
		"argument1": "this is argument description 1.",
		"argument2": "this is argument description 2.",
	}, fn.ArgumentDescriptions)
	assert.Equal(t, "This is return value description.\nHere is a second line.\n", fn.ReturnDescription)
}

func TestParseFunction_PlainComment(t *testing.T) {
	// no markdown sections: the comment is kept whole, even though it
	// happens to contain the words Arguments and Returns
	description := "This is the function description.\n" +
		"\n" +
		"Arguments\n" +
		"\n" +
		"argument1 - this is argument description 1.\n" +
		"\n" +
		"Returns\n" +
		"\n" +
		"This is return value description.\n"

	fn := docs.ParseFunction(description)

	assert.Equal(t, description, fn.Description)
	assert.Nil(t, fn.ArgumentDescriptions)
	assert.Empty(t, fn.ReturnDescription)
}

func TestParseFunction_ArgumentsOnly(t *testing.T) {
	description := "Store a value under a key.\n" +
		"\n" +
		"# Arguments\n" +
		"\n" +
		"- `key` - where to store it.\n" +
		"- `value` - what to store.\n"

	fn := docs.ParseFunction(description)

	assert.Equal(t, "Store a value under a key.\n", fn.Description)
	assert.Equal(t, map[string]string{
		"key":   "where to store it.",
		"value": "what to store.",
	}, fn.ArgumentDescriptions)
	assert.Empty(t, fn.ReturnDescription)
}

func TestParseFunction_UnknownHeadingIgnored(t *testing.T) {
	// only Arguments and Returns headings open sections; anything else
	// stays part of the description
	description := "Does a thing.\n" +
		"\n" +
		"# Examples\n" +
		"\n" +
		"Example text.\n" +
		"\n" +
		"# Returns\n" +
		"\n" +
		"The thing.\n"

	fn := docs.ParseFunction(description)

	assert.Equal(t, "Does a thing.\nExample text.\n", fn.Description)
	assert.Nil(t, fn.ArgumentDescriptions)
	assert.Equal(t, "The thing.\n", fn.ReturnDescription)
}

func TestParseFunction_ReturnsOnly(t *testing.T) {
	description := "Fetch the current value.\n" +
		"\n" +
		"# Returns\n" +
		"\n" +
		"The value, never negative.\n"

	fn := docs.ParseFunction(description)

	require.Empty(t, fn.ArgumentDescriptions)
	assert.Equal(t, "Fetch the current value.\n", fn.Description)
	assert.Equal(t, "The value, never negative.\n", fn.ReturnDescription)
}

func TestParseFunction_Empty(t *testing.T) {
	fn := docs.ParseFunction("")
	assert.Empty(t, fn.Description)
	assert.Empty(t, fn.ArgumentDescriptions)
	assert.Empty(t, fn.ReturnDescription)
}
