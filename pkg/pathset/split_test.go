package pathset_test

import (
	"slices"
	"testing"

	"github.com/arthur-debert/envctl/pkg/pathset"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{"no values", nil, nil},
		{"single value without colon", []string{"/usr/bin"}, []string{"/usr/bin"}},
		{"empty value", []string{""}, []string{""}},
		{"two segments", []string{"/usr/bin:/bin"}, []string{"/usr/bin", "/bin"}},
		{"leading colon", []string{":/bin"}, []string{"", "/bin"}},
		{"trailing colon", []string{"/bin:"}, []string{"/bin", ""}},
		{"adjacent colons", []string{"/a::/b"}, []string{"/a", "", "/b"}},
		{"only a colon", []string{":"}, []string{"", ""}},
		{
			name:   "flattens several values in order",
			values: []string{"/a:/b", "/c", ":/d"},
			want:   []string{"/a", "/b", "/c", "", "/d"},
		},
		{"whitespace is kept", []string{" /a : "}, []string{" /a ", " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(pathset.Split(tt.values...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_StopsEarly(t *testing.T) {
	var got []string
	for s := range pathset.Split("/a:/b:/c", "/d") {
		got = append(got, s)
		if s == "/b" {
			break
		}
	}
	assert.Equal(t, []string{"/a", "/b"}, got)
}

func TestConcat(t *testing.T) {
	seq := pathset.Concat(
		pathset.Split("/a"),
		pathset.Split(),
		pathset.Split("/b:/c"),
	)
	assert.Equal(t, []string{"/a", "/b", "/c"}, slices.Collect(seq))

	var first []string
	for s := range seq {
		first = append(first, s)
		break
	}
	assert.Equal(t, []string{"/a"}, first)
}

func TestJoinInvertsSplit(t *testing.T) {
	values := []string{
		"/usr/bin",
		"/usr/local/bin:/usr/bin:/bin",
		"relative:./x:../y",
		"/with space/bin:/tab\tbin",
	}
	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			assert.Equal(t, v, pathset.Join(slices.Collect(pathset.Split(v))))
		})
	}
}
