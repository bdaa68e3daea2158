package target

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		spec     string
		expected Target
		wantErr  bool
	}{
		{name: "bare host", spec: "sql01", expected: Target{Host: "sql01", Instance: "MSSQLSERVER"}},
		{name: "named instance", spec: `sql01\DEV1`, expected: Target{Host: "sql01", Instance: "DEV1"}},
		{name: "surrounding space", spec: "  sql01  ", expected: Target{Host: "sql01", Instance: "MSSQLSERVER"}},
		{name: "empty", spec: "", wantErr: true},
		{name: "missing host", spec: `\DEV1`, wantErr: true},
		{name: "trailing separator", spec: `sql01\`, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.spec)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestFullName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "sql01", New("sql01", "MSSQLSERVER").FullName())
	require.Equal(t, `sql01\DEV1`, New("sql01", "DEV1").FullName())
	require.Equal(t, "sql01", New("sql01", "").FullName())
}

func TestServiceNameDerivation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		instance string
		engine   string
		agent    string
	}{
		{instance: "MSSQLSERVER", engine: "MSSQLSERVER", agent: "SQLSERVERAGENT"},
		{instance: "mssqlserver", engine: "MSSQLSERVER", agent: "SQLSERVERAGENT"},
		{instance: "DEV1", engine: "MSSQL$DEV1", agent: "SQLAgent$DEV1"},
		{instance: "SHAREPOINT", engine: "MSSQL$SHAREPOINT", agent: "SQLAgent$SHAREPOINT"},
	}

	for _, tc := range cases {
		tgt := New("sql01", tc.instance)
		require.Equal(t, tc.engine, tgt.EngineServiceName())
		require.Equal(t, tc.agent, tgt.AgentServiceName())
	}
}

func TestCascadeServiceNamesOrdersAgentFirst(t *testing.T) {
	t.Parallel()

	tgt := New("sql01", "DEV1")
	require.Equal(t, []string{"SQLAgent$DEV1", "MSSQL$DEV1"}, tgt.CascadeServiceNames())

	def := New("sql01", "")
	require.Equal(t, []string{"SQLSERVERAGENT", "MSSQLSERVER"}, def.CascadeServiceNames())
}
