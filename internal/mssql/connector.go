// Package mssql provides the SQL Server connection provider backed by the
// go-mssqldb driver. The returned session implements the HADR and SQL Agent
// job capability interfaces consumed by the mutation policies.
package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/microsoft/go-mssqldb" // registers the sqlserver driver

	"github.com/Prasad4455/dbatools/internal/mutator"
	"github.com/Prasad4455/dbatools/internal/target"
)

// Connector dials SQL Server instances over TDS.
type Connector struct {
	// DialTimeout bounds the initial connection handshake.
	DialTimeout time.Duration
}

// NewConnector creates a Connector with a 30 second dial timeout.
func NewConnector() *Connector {
	return &Connector{DialTimeout: 30 * time.Second}
}

var _ mutator.Connector = (*Connector)(nil)

// Connect opens and verifies a session against the target instance. A nil
// credential selects integrated authentication.
func (c *Connector) Connect(ctx context.Context, tgt target.Target, cred *mutator.Credential) (mutator.Session, error) {
	db, err := sql.Open("sqlserver", c.dsn(tgt, cred))
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if c.DialTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, c.DialTimeout)
		defer cancel()
	}

	if err := db.PingContext(pingCtx); err != nil {
		db.Close() //nolint:errcheck
		return nil, err
	}

	return &session{db: db}, nil
}

func (c *Connector) dsn(tgt target.Target, cred *mutator.Credential) string {
	u := &url.URL{
		Scheme: "sqlserver",
		Host:   tgt.Host,
	}
	if !tgt.IsDefault() {
		u.Path = tgt.Instance
	}
	if cred != nil {
		u.User = url.UserPassword(cred.User, cred.Password)
	}

	query := url.Values{}
	query.Set("app name", "dbatools")
	if c.DialTimeout > 0 {
		query.Set("dial timeout", fmt.Sprintf("%d", int(c.DialTimeout.Seconds())))
	}
	u.RawQuery = query.Encode()

	return u.String()
}

type session struct {
	db *sql.DB
}

func (s *session) Close() error {
	return s.db.Close()
}

// HadrEnabled reads the instance-level HADR flag.
func (s *session) HadrEnabled(ctx context.Context) (bool, error) {
	var enabled sql.NullInt64
	row := s.db.QueryRowContext(ctx, `SELECT CAST(SERVERPROPERTY('IsHadrEnabled') AS int)`)
	if err := row.Scan(&enabled); err != nil {
		return false, err
	}
	if !enabled.Valid {
		return false, fmt.Errorf("server does not expose the IsHadrEnabled property")
	}
	return enabled.Int64 == 1, nil
}

// SetHadrEnabled writes the instance-relative HADR registry value. The
// change is picked up on the next engine service start.
func (s *session) SetHadrEnabled(ctx context.Context, enabled bool) error {
	value := 0
	if enabled {
		value = 1
	}
	_, err := s.db.ExecContext(ctx,
		`EXEC master.dbo.xp_instance_regwrite
			N'HKEY_LOCAL_MACHINE',
			N'Software\Microsoft\MSSQLServer\MSSQLServer\HADR',
			N'HADR_Enabled',
			REG_DWORD,
			@value`,
		sql.Named("value", value))
	return err
}

// JobExists checks msdb for a job with the given name.
func (s *session) JobExists(ctx context.Context, name string) (bool, error) {
	var count int
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM msdb.dbo.sysjobs WHERE name = @name`,
		sql.Named("name", name))
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// PurgeJobHistory drops the job's execution history from msdb.
func (s *session) PurgeJobHistory(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx,
		`EXEC msdb.dbo.sp_purge_jobhistory @job_name = @name`,
		sql.Named("name", name))
	return err
}

// DeleteJob removes the job. Unless keepUnusedSchedule is set, schedules no
// remaining job references are deleted with it.
func (s *session) DeleteJob(ctx context.Context, name string, keepUnusedSchedule bool) error {
	deleteUnused := 1
	if keepUnusedSchedule {
		deleteUnused = 0
	}
	_, err := s.db.ExecContext(ctx,
		`EXEC msdb.dbo.sp_delete_job @job_name = @name, @delete_unused_schedule = @del`,
		sql.Named("name", name),
		sql.Named("del", deleteUnused))
	return err
}
