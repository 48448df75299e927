package syncstate

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// hexRef generates plausible commit hashes for property tests.
var hexRef = rapid.StringMatching(`[0-9a-f]{7,40}`)

func TestClassify_DecisionTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                string
		local, remote, base Ref
		want                State
	}{
		{"all_equal", "aaa1111", "aaa1111", "aaa1111", StateUpToDate},
		{"equal_heads_stale_base", "aaa1111", "aaa1111", "bbb2222", StateUpToDate},
		{"local_ahead", "aaa1111", "bbb2222", "bbb2222", StateLocalAhead},
		{"remote_ahead", "aaa1111", "bbb2222", "aaa1111", StateRemoteAhead},
		{"diverged", "aaa1111", "bbb2222", "ccc3333", StateDiverged},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Classify(tc.local, tc.remote, tc.base))
		})
	}
}

func TestClassify_UnresolvedRefs(t *testing.T) {
	t.Parallel()

	require.Equal(t, StateUnknown, Classify("", "bbb2222", "ccc3333"))
	require.Equal(t, StateUnknown, Classify("aaa1111", "", "ccc3333"))
	require.Equal(t, StateUnknown, Classify("aaa1111", "bbb2222", ""))
	require.Equal(t, StateUnknown, Classify("", "", ""))
}

func TestProperty_EqualHeadsAlwaysUpToDate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		head := Ref(hexRef.Draw(t, "head"))
		base := Ref(hexRef.Draw(t, "base"))

		require.Equal(t, StateUpToDate, Classify(head, head, base))
	})
}

func TestProperty_RemoteAheadWhenLocalAtBase(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := hexRef.Draw(t, "base")
		remote := hexRef.Filter(func(s string) bool { return s != base }).Draw(t, "remote")

		require.Equal(t, StateRemoteAhead, Classify(Ref(base), Ref(remote), Ref(base)))
	})
}

func TestProperty_LocalAheadWhenRemoteAtBase(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := hexRef.Draw(t, "base")
		local := hexRef.Filter(func(s string) bool { return s != base }).Draw(t, "local")

		require.Equal(t, StateLocalAhead, Classify(Ref(local), Ref(base), Ref(base)))
	})
}

func TestProperty_AllDistinctIsDiverged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		local := hexRef.Draw(t, "local")
		remote := hexRef.Filter(func(s string) bool { return s != local }).Draw(t, "remote")
		base := hexRef.Filter(func(s string) bool { return s != local && s != remote }).Draw(t, "base")

		require.Equal(t, StateDiverged, Classify(Ref(local), Ref(remote), Ref(base)))
	})
}

func TestState_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "up-to-date", StateUpToDate.String())
	require.Equal(t, "local-ahead", StateLocalAhead.String())
	require.Equal(t, "remote-ahead", StateRemoteAhead.String())
	require.Equal(t, "diverged", StateDiverged.String())
	require.Equal(t, "unknown", StateUnknown.String())
}
