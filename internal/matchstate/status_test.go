package matchstate_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svcErr "github.com/oggyb/matching-service/internal/errors"
	"github.com/oggyb/matching-service/internal/matchstate"
)

func TestTransitions(t *testing.T) {
	all := []matchstate.Status{matchstate.Requested, matchstate.Matched, matchstate.Declined}

	for _, from := range all {
		for _, to := range all {
			want := from == matchstate.Requested && to != matchstate.Requested
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.False(t, matchstate.Requested.Terminal())
	assert.True(t, matchstate.Matched.Terminal())
	assert.True(t, matchstate.Declined.Terminal())
}

func TestCheck(t *testing.T) {
	assert.NoError(t, matchstate.Requested.Check(matchstate.Matched))

	err := matchstate.Matched.Check(matchstate.Declined)
	require.ErrorIs(t, err, svcErr.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "MATCHED to DECLINED")
}

func TestParse(t *testing.T) {
	s, err := matchstate.Parse("matched")
	require.NoError(t, err)
	assert.Equal(t, matchstate.Matched, s)

	s, err = matchstate.Parse("2")
	require.NoError(t, err)
	assert.Equal(t, matchstate.Declined, s)

	_, err = matchstate.Parse("7")
	assert.ErrorIs(t, err, svcErr.ErrInvalidValue)
	_, err = matchstate.Parse("pending")
	assert.ErrorIs(t, err, svcErr.ErrInvalidValue)
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Status matchstate.Status `json:"match_status"`
	}{matchstate.Matched})
	require.NoError(t, err)
	assert.JSONEq(t, `{"match_status":"MATCHED"}`, string(b))

	var in struct {
		Status matchstate.Status `json:"match_status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"match_status":0}`), &in))
	assert.Equal(t, matchstate.Requested, in.Status)
	require.NoError(t, json.Unmarshal([]byte(`{"match_status":"DECLINED"}`), &in))
	assert.Equal(t, matchstate.Declined, in.Status)
	assert.Error(t, json.Unmarshal([]byte(`{"match_status":true}`), &in))
}

func TestScan(t *testing.T) {
	var s matchstate.Status
	require.NoError(t, s.Scan(int64(1)))
	assert.Equal(t, matchstate.Matched, s)
	require.NoError(t, s.Scan([]byte("2")))
	assert.Equal(t, matchstate.Declined, s)
	assert.Error(t, s.Scan("x"))

	v, err := matchstate.Declined.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}
