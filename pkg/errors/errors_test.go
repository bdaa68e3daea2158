package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorIncludesLine(t *testing.T) {
	t.Parallel()

	base := stderrors.New("unexpected node")
	err := NewParseError("targets.yaml", 12, base)

	require.Contains(t, err.Error(), "targets.yaml:12")
	require.ErrorIs(t, err, base)
}

func TestValidationErrorFormatsField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("job", "job name is required", nil)
	require.Equal(t, "validation error: job: job name is required", err.Error())
}

func TestConnectionErrorUnwraps(t *testing.T) {
	t.Parallel()

	base := stderrors.New("login failed")
	err := NewConnectionError(`sql01\DEV1`, base)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	require.Equal(t, `sql01\DEV1`, connErr.Target)
	require.ErrorIs(t, err, base)
}

func TestMutationErrorNamesMutation(t *testing.T) {
	t.Parallel()

	base := stderrors.New("permission denied")
	err := NewMutationError("sql01", "disable-hadr", base)

	require.Contains(t, err.Error(), "disable-hadr")
	require.ErrorIs(t, err, base)
}

func TestCascadeErrorNamesService(t *testing.T) {
	t.Parallel()

	base := stderrors.New("timeout waiting for stop")
	err := NewCascadeError("sql01", "SQLAgent$DEV1", base)

	var casErr *CascadeError
	require.ErrorAs(t, err, &casErr)
	require.Equal(t, "SQLAgent$DEV1", casErr.Service)
}
