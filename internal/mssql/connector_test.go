package mssql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Prasad4455/dbatools/internal/mutator"
	"github.com/Prasad4455/dbatools/internal/target"
)

func TestDSNDefaultInstanceIntegratedAuth(t *testing.T) {
	t.Parallel()

	c := &Connector{DialTimeout: 30 * time.Second}
	dsn := c.dsn(target.New("sql01", ""), nil)

	require.Contains(t, dsn, "sqlserver://sql01")
	require.NotContains(t, dsn, "@")
	require.Contains(t, dsn, "dial+timeout=30")
	require.Contains(t, dsn, "app+name=dbatools")
}

func TestDSNNamedInstanceWithCredential(t *testing.T) {
	t.Parallel()

	c := NewConnector()
	cred := &mutator.Credential{User: "sa", Password: "p@ss/word"}
	dsn := c.dsn(target.New("sql01", "DEV1"), cred)

	require.Contains(t, dsn, "sqlserver://sa:")
	require.Contains(t, dsn, "@sql01/DEV1")
	// reserved characters in the password must be escaped
	require.NotContains(t, dsn, "p@ss/word")
}
