package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelReplyPlainJSON(t *testing.T) {
	a, err := parseModelReply(`{"name":"Jane","email":"j@x.com","phone":"1","score":88.5,"summary":["a","b"]}`)
	require.NoError(t, err)
	assert.Equal(t, "Jane", a.Name)
	assert.InDelta(t, 88.5, a.Score, 0.001)
	assert.Equal(t, []string{"a", "b"}, a.Summary)
}

func TestParseModelReplyStripsFences(t *testing.T) {
	raw := "```json\n{\"name\":\"Jane\",\"email\":\"j@x.com\",\"score\":70,\"summary\":[]}\n```"
	a, err := parseModelReply(raw)
	require.NoError(t, err)
	assert.Equal(t, "Jane", a.Name)
}

func TestParseModelReplyExtractsEmbeddedObject(t *testing.T) {
	raw := "Sure! Here is the assessment:\n{\"name\":\"Jane\",\"email\":\"j@x.com\",\"score\":70,\"summary\":[\"ok\"]}\nHope that helps."
	a, err := parseModelReply(raw)
	require.NoError(t, err)
	assert.Equal(t, "Jane", a.Name)
}

func TestParseModelReplyCoercesTypes(t *testing.T) {
	// score as string, summary as single string
	a, err := parseModelReply(`{"name":"Jane","email":"j@x.com","score":"91","summary":"solid"}`)
	require.NoError(t, err)
	assert.InDelta(t, 91, a.Score, 0.001)
	assert.Equal(t, []string{"solid"}, a.Summary)
}

func TestParseModelReplyClampsScore(t *testing.T) {
	a, err := parseModelReply(`{"name":"Jane","email":"j@x.com","score":150,"summary":[]}`)
	require.NoError(t, err)
	assert.Equal(t, 100.0, a.Score)

	a, err = parseModelReply(`{"name":"Jane","email":"j@x.com","score":-5,"summary":[]}`)
	require.NoError(t, err)
	assert.Equal(t, 0.0, a.Score)
}

func TestParseModelReplyRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"I cannot assess this resume.",
		`{"score": "many"}`,
		`{"name":"","email":"","score":50,"summary":[]}`, // no identity at all
	}
	for _, raw := range cases {
		_, err := parseModelReply(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}
