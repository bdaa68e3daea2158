package approval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAutoApproveAlwaysConfirms(t *testing.T) {
	t.Parallel()

	require.True(t, AutoApprove{}.Confirm("disable HADR on sql01"))
}

func TestPromptAcceptsYes(t *testing.T) {
	t.Parallel()

	for _, answer := range []string{"y\n", "Y\n", "yes\n", " Yes \n"} {
		var out bytes.Buffer
		p := &Prompt{In: strings.NewReader(answer), Out: &out}

		require.True(t, p.Confirm("remove SQL Agent job \"nightly-etl\""), "answer %q", answer)
		require.Contains(t, out.String(), "proceed? [y/N]")
	}
}

func TestPromptRejectsEverythingElse(t *testing.T) {
	t.Parallel()

	for _, answer := range []string{"n\n", "no\n", "\n", "maybe\n"} {
		var out bytes.Buffer
		p := &Prompt{In: strings.NewReader(answer), Out: &out}
		require.False(t, p.Confirm("disable HADR"), "answer %q", answer)
	}
}

func TestPromptRejectsOnClosedInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := &Prompt{In: strings.NewReader(""), Out: &out}
	require.False(t, p.Confirm("disable HADR"))
}
