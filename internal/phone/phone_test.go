package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndValidate(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		region string
		want   bool
	}{
		{name: "spanish mobile international", raw: "+34612345678", region: "ES", want: true},
		{name: "spanish mobile national", raw: "612345678", region: "ES", want: true},
		{name: "lowercase region", raw: "612 34 56 78", region: "es", want: true},
		{name: "too short", raw: "123", region: "ES", want: false},
		{name: "empty", raw: "", region: "ES", want: false},
		{name: "blank", raw: "   ", region: "ES", want: false},
		{name: "letters", raw: "call me", region: "ES", want: false},
		{name: "other country", raw: "+4915123456789", region: "ES", want: false},
	}

	v := NewValidator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.ParseAndValidate(tc.raw, tc.region))
		})
	}
}

func TestParseFormatsE164(t *testing.T) {
	n, err := Parse("612 34 56 78", "ES")
	require.NoError(t, err)
	assert.Equal(t, "+34612345678", n.E164)
	assert.Equal(t, "612 34 56 78", n.Raw)
	assert.Equal(t, "ES", n.Region)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("", "ES")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse("123", "ES")
	assert.Error(t, err)
}
