package listing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "object", body: `{"title": "Sunset Picnic"}`, want: `{"title":"Sunset Picnic"}`},
		{name: "nested", body: " {\"a\": [1, 2, {\"b\": null}]}\n", want: `{"a":[1,2,{"b":null}]}`},
		{name: "array", body: `[1, "two"]`, want: `[1,"two"]`},
		{name: "string", body: `"hello"`, want: `"hello"`},
		{name: "number", body: `12.50`, want: `12.50`},
		{name: "empty", body: ``, want: `null`},
		{name: "whitespace", body: "  \n", want: `null`},
		{name: "malformed", body: `{"title":`, want: `null`},
		{name: "trailing garbage", body: `{} {}`, want: `null`},
		{name: "invalid utf8 string", body: "\"\xff\"", want: `null`},
		{name: "invalid utf8 in object", body: "{\"title\":\"caf\xe9\"}", want: `null`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParsePayload([]byte(tc.body))
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestPayloadMarshalsVerbatim(t *testing.T) {
	t.Parallel()

	p := ParsePayload([]byte(`{"title":"Sunset Picnic","price":12.50}`))
	out, err := json.Marshal(map[string]any{"listing": p})
	require.NoError(t, err)
	require.Equal(t, `{"listing":{"title":"Sunset Picnic","price":12.50}}`, string(out))

	var empty Payload
	out, err = json.Marshal(empty)
	require.NoError(t, err)
	require.Equal(t, "null", string(out))
	require.Equal(t, "null", empty.String())
}

func TestPayloadClone(t *testing.T) {
	t.Parallel()

	p := ParsePayload([]byte(`{"a":1}`))
	c := p.Clone()
	c[1] = 'z'
	require.Equal(t, `{"a":1}`, p.String())

	var nilPayload Payload
	require.Nil(t, nilPayload.Clone())
}
