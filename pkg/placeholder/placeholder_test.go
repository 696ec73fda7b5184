package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "project scope", in: "${#Project#username}", want: "${username}"},
		{name: "hash only", in: "${#token}", want: "${token}"},
		{name: "plain", in: "${plain}", want: "${plain}"},
		{name: "empty", in: "", want: ""},
		{name: "no tokens", in: "just some text", want: "just some text"},
		{name: "test suite scope", in: "${#TestSuite#api_key}", want: "${api_key}"},
		{name: "case kept", in: "${#Env#BaseURL}", want: "${BaseURL}"},
		{
			name: "every occurrence",
			in:   "https://${#Project#host}/users/${#TestCase#userId}?t=${token}",
			want: "https://${host}/users/${userId}?t=${token}",
		},
		{name: "dotted name untouched", in: "${#Project#project.property}", want: "${#Project#project.property}"},
		{name: "punctuation untouched", in: "${=new Date()}", want: "${=new Date()}"},
		{name: "unterminated untouched", in: "${#Project#user", want: "${#Project#user"},
		{name: "scope without leading hash", in: "${Project#user}", want: "${user}"},
		{name: "letters only name kept whole", in: "?t=${token}&u=${#user}", want: "?t=${token}&u=${user}"},
		{name: "dollar literal", in: "costs $5 ${#Project#price}", want: "costs $5 ${price}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.in))
		})
	}
}
