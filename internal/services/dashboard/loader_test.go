package dashboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoader_Reconcile(t *testing.T) {
	l := NewLoader()

	require.Empty(t, l.Reconcile(Inputs{FailuresOnly: true}), "no test, nothing to load")
	require.Equal(t, []FetchKind{FetchDowntimes, FetchFeed},
		l.Reconcile(Inputs{Test: "LeanStorage", FailuresOnly: true}))
	require.Empty(t, l.Reconcile(Inputs{Test: "LeanStorage", FailuresOnly: true}))
	require.Equal(t, []FetchKind{FetchFeed},
		l.Reconcile(Inputs{Test: "LeanStorage", FailuresOnly: false}))
	require.Equal(t, []FetchKind{FetchDowntimes, FetchFeed},
		l.Reconcile(Inputs{Test: "LeanMessage", FailuresOnly: true}))
	require.Equal(t, Inputs{Test: "LeanMessage", FailuresOnly: true}, l.Inputs())
}

func TestLoader_Reset(t *testing.T) {
	l := NewLoader()
	in := Inputs{Test: "LeanStorage"}
	l.Reconcile(in)
	l.Reset()
	require.Len(t, l.Reconcile(in), 2)
}
