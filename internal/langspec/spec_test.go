package langspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLetterIsDigit(t *testing.T) {
	assert.True(t, IsLetter('a'))
	assert.True(t, IsLetter('Z'))
	assert.False(t, IsLetter('_'))
	assert.False(t, IsLetter('9'))

	assert.True(t, IsDigit('0'))
	assert.True(t, IsDigit('9'))
	assert.False(t, IsDigit('a'))
}

func TestIsIdentifierBody(t *testing.T) {
	assert.True(t, IsIdentifierBody('a'))
	assert.True(t, IsIdentifierBody('9'))
	assert.True(t, IsIdentifierBody('_'))
	assert.False(t, IsIdentifierBody('.'))
}

func TestKeywordsExcludeDataTypes(t *testing.T) {
	for dt := range DataTypes {
		assert.False(t, Keywords[dt], "%q is a data type and must not also be a keyword", dt)
	}
}

func TestRelOpTables(t *testing.T) {
	assert.Equal(t, "LT", RelOpsSingle['<'])
	assert.Equal(t, "GT", RelOpsSingle['>'])
	assert.Equal(t, "LE", RelOpsDouble["<="])
	assert.Equal(t, "GE", RelOpsDouble[">="])
	assert.Equal(t, "EQ", RelOpsDouble["=="])
	assert.Equal(t, "NE", RelOpsDouble["!="])
}
