package mssql

import (
	"github.com/Prasad4455/dbatools/internal/mutation/agentjob"
	"github.com/Prasad4455/dbatools/internal/mutation/hadr"
)

// The session must satisfy every capability the shipped mutations assert.
var (
	_ hadr.Session     = (*session)(nil)
	_ agentjob.Session = (*session)(nil)
)
