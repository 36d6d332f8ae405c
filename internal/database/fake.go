package database

import (
	"context"
	"fmt"
	"time"

	"contacts-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// FakeDB lets tests script each call. Calls without a scripted func panic,
// so a test fails loudly when a handler touches the database unexpectedly.
type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func()
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn == nil {
		panic(fmt.Sprintf("FakeDB: unscripted Exec %q", sql))
	}
	return f.ExecFn(ctx, sql, args...)
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn == nil {
		panic(fmt.Sprintf("FakeDB: unscripted Query %q", sql))
	}
	return f.QueryFn(ctx, sql, args...)
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn == nil {
		panic(fmt.Sprintf("FakeDB: unscripted QueryRow %q", sql))
	}
	return f.QueryRowFn(ctx, sql, args...)
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		panic("FakeDB: unscripted Ping")
	}
	return f.PingFn(ctx)
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}

// UsersByEmail scripts QueryRow as a users table keyed by email, the only
// lookup the credential store performs. Unknown emails scan pgx.ErrNoRows.
func UsersByEmail(users ...model.User) *FakeDB {
	byEmail := make(map[string]model.User, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}
	return &FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			if len(args) == 1 {
				if u, ok := byEmail[fmt.Sprint(args[0])]; ok {
					return UserRow(u)
				}
			}
			return ErrRow(pgx.ErrNoRows)
		},
	}
}

// ContactsTable scripts Query to list contacts in order and QueryRow to look
// one up by id.
func ContactsTable(contacts ...model.Contact) *FakeDB {
	return &FakeDB{
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &FakeRows{Contacts: contacts}, nil
		},
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			if len(args) == 1 {
				for _, c := range contacts {
					if c.ID == fmt.Sprint(args[0]) {
						return ContactRow(c)
					}
				}
			}
			return ErrRow(pgx.ErrNoRows)
		},
	}
}

// FakeRow scans Values into the destinations in order.
type FakeRow struct {
	Values  []any
	ScanErr error
}

func UserRow(u model.User) *FakeRow {
	return &FakeRow{Values: []any{u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt}}
}

func ContactRow(c model.Contact) *FakeRow {
	return &FakeRow{Values: []any{c.ID, c.Name, c.Email, c.Phone, c.CreatedAt, c.UpdatedAt}}
}

// TimestampsRow answers the RETURNING created_at, updated_at of an insert or update.
func TimestampsRow(created, updated time.Time) *FakeRow {
	return &FakeRow{Values: []any{created, updated}}
}

func ErrRow(err error) *FakeRow { return &FakeRow{ScanErr: err} }

func (r *FakeRow) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	if len(dest) != len(r.Values) {
		return fmt.Errorf("FakeRow: scan into %d columns, have %d", len(dest), len(r.Values))
	}
	for i, v := range r.Values {
		switch d := dest[i].(type) {
		case *string:
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("FakeRow: column %d is %T, want string", i, v)
			}
			*d = s
		case *time.Time:
			ts, ok := v.(time.Time)
			if !ok {
				return fmt.Errorf("FakeRow: column %d is %T, want time.Time", i, v)
			}
			*d = ts
		default:
			return fmt.Errorf("FakeRow: unsupported destination %T", dest[i])
		}
	}
	return nil
}

// FakeRows walks a fixed list of contacts. RowsErr is reported by Err after
// iteration ends.
type FakeRows struct {
	Contacts []model.Contact
	ScanErr  error
	RowsErr  error
	Closed   bool
	idx      int
}

func (r *FakeRows) Close()                                       { r.Closed = true }
func (r *FakeRows) Err() error                                   { return r.RowsErr }
func (r *FakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *FakeRows) Next() bool                                   { return r.idx < len(r.Contacts) }
func (r *FakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *FakeRows) RawValues() [][]byte                          { return nil }
func (r *FakeRows) Conn() *pgx.Conn                              { return nil }

func (r *FakeRows) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	row := ContactRow(r.Contacts[r.idx])
	r.idx++
	return row.Scan(dest...)
}
