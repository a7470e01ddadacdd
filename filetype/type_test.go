package filetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_String(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "dir", Dir.String())
	assert.Equal(t, "other-writable", OtherWritable.String())
	assert.Equal(t, "unknown", Count.String())

	for ty := None; ty < Count; ty++ {
		assert.True(t, ty.Valid())
		assert.NotEqual(t, "", ty.String(), "type %d has no name", ty)
	}
	assert.False(t, Count.Valid())
}

func TestDisabled_NeverClassifies(t *testing.T) {
	c := New(false)
	assert.IsType(t, Disabled{}, c)
	assert.Equal(t, None, c.Classify("/"))
	assert.Equal(t, None, c.Classify("."))
}

func TestNew_Enabled(t *testing.T) {
	assert.IsType(t, Lstat{}, New(true))
}

func TestFunc_Classify(t *testing.T) {
	var seen []string
	c := Func(func(path string) Type {
		seen = append(seen, path)
		return Exec
	})
	assert.Equal(t, Exec, c.Classify("a/b"))
	assert.Equal(t, []string{"a/b"}, seen)
}
