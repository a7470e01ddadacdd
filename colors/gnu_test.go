package colors

import (
	"testing"

	"github.com/joshuapare/treef/filetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGNU(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want map[filetype.Type]string
	}{
		{
			name: "two records",
			spec: "di=01;34:ln=01;36",
			want: map[filetype.Type]string{
				filetype.Dir:  "\x1b[01;34m",
				filetype.Link: "\x1b[01;36m",
			},
		},
		{
			name: "unknown codes and patterns skipped",
			spec: "rs=0:di=01;34:*.tar=01;31:ex=01;32:mi=00",
			want: map[filetype.Type]string{
				filetype.Dir:  "\x1b[01;34m",
				filetype.Exec: "\x1b[01;32m",
			},
		},
		{
			name: "empty parameters",
			spec: "di=",
			want: map[filetype.Type]string{filetype.Dir: "\x1b[m"},
		},
		{
			name: "runs of separators",
			spec: "di=34:::ln=36:",
			want: map[filetype.Type]string{
				filetype.Dir:  "\x1b[34m",
				filetype.Link: "\x1b[36m",
			},
		},
		{
			name: "later record wins",
			spec: "di=34:di=35",
			want: map[filetype.Type]string{filetype.Dir: "\x1b[35m"},
		},
		{
			name: "trailing single character ignored",
			spec: "ex=32:x",
			want: map[filetype.Type]string{filetype.Exec: "\x1b[32m"},
		},
		{
			name: "every code",
			spec: "fi=1:di=2:ln=3:pi=4:so=5:bd=6:cd=7:or=8:ex=9:su=10:sg=11:st=12:tw=13:ow=14",
			want: map[filetype.Type]string{
				filetype.File:                "\x1b[1m",
				filetype.Dir:                 "\x1b[2m",
				filetype.Link:                "\x1b[3m",
				filetype.Pipe:                "\x1b[4m",
				filetype.Sock:                "\x1b[5m",
				filetype.Block:               "\x1b[6m",
				filetype.Char:                "\x1b[7m",
				filetype.Orphan:              "\x1b[8m",
				filetype.Exec:                "\x1b[9m",
				filetype.Setuid:              "\x1b[10m",
				filetype.Setgid:              "\x1b[11m",
				filetype.Sticky:              "\x1b[12m",
				filetype.OtherWritableSticky: "\x1b[13m",
				filetype.OtherWritable:       "\x1b[14m",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseGNU(tt.spec, newTestArena(t))
			require.NoError(t, err)
			assert.True(t, table.Enabled())
			assert.Equal(t, GrammarGNU, table.Grammar())

			for ty := filetype.None; ty < filetype.Count; ty++ {
				assert.Equal(t, tt.want[ty], table.SGR(ty).String(), "type %s", ty)
			}
			assert.Equal(t, "\x1b[m\n", table.ResetEOL().String())
		})
	}
}

func TestParseGNU_Malformed(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"missing equals", "di01;34"},
		{"code at end", "ln=36:di"},
		{"letter in parameters", "di=01;3x"},
		{"space in parameters", "di=01; 34"},
		{"bad record after good ones", "di=34:ln=36:ex=green"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseGNU(tt.spec, newTestArena(t))
			require.ErrorIs(t, err, ErrMalformedGNU)
			assert.Nil(t, table)
		})
	}
}
