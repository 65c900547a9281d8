package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/baechuer/event-rest-api/internal/application/event"
	"github.com/baechuer/event-rest-api/internal/domain"
)

type Repo struct {
	db *sql.DB
}

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// EnsureSchema creates the events table when it does not exist yet.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (r *Repo) Save(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	if e.ID == 0 {
		return r.insert(ctx, e)
	}
	return r.update(ctx, e)
}

func (r *Repo) insert(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, insertEventSQL,
		e.Name, e.Description,
		e.BeginEnrollmentDateTime, e.CloseEnrollmentDateTime,
		e.BeginEventDateTime, e.EndEventDateTime,
		e.Location, e.BasePrice, e.MaxPrice, e.LimitOfEnrollment,
		e.Offline, e.Free, string(e.Status),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	e.ID = id
	out := *e
	return &out, nil
}

func (r *Repo) update(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	res, err := r.db.ExecContext(ctx, updateEventSQL,
		e.ID,
		e.Name, e.Description,
		e.BeginEnrollmentDateTime, e.CloseEnrollmentDateTime,
		e.BeginEventDateTime, e.EndEventDateTime,
		e.Location, e.BasePrice, e.MaxPrice, e.LimitOfEnrollment,
		e.Offline, e.Free, string(e.Status),
	)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrNotFound("event not found")
	}
	out := *e
	return &out, nil
}

func (r *Repo) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx, getEventSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("event not found")
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Repo) FindPage(ctx context.Context, req event.PageRequest) (event.Page, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, countEventsSQL).Scan(&total); err != nil {
		return event.Page{}, fmt.Errorf("count events: %w", err)
	}

	orderBy, err := orderByClause(req.Sort)
	if err != nil {
		return event.Page{}, err
	}

	listSQL := `
SELECT ` + eventColumns + `
FROM events
ORDER BY ` + orderBy + `
LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, listSQL, req.Size, req.Offset())
	if err != nil {
		return event.Page{}, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	items := []*domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return event.Page{}, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return event.Page{}, err
	}

	return event.Page{Items: items, Request: req, TotalElements: total}, nil
}

// orderByClause always ends with id so that pages never overlap.
func orderByClause(orders []event.SortOrder) (string, error) {
	parts := make([]string, 0, len(orders)+1)
	for _, o := range orders {
		col, ok := sortColumns[o.Property]
		if !ok {
			return "", domain.ErrValidationMeta("invalid query param", map[string]string{
				"sort": "unknown property: " + o.Property,
			})
		}
		dir := "ASC"
		if o.Direction == event.Desc {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	parts = append(parts, "id ASC")
	return strings.Join(parts, ", "), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	var status string
	err := row.Scan(
		&e.ID, &e.Name, &e.Description,
		&e.BeginEnrollmentDateTime, &e.CloseEnrollmentDateTime,
		&e.BeginEventDateTime, &e.EndEventDateTime,
		&e.Location, &e.BasePrice, &e.MaxPrice, &e.LimitOfEnrollment,
		&e.Offline, &e.Free, &status,
	)
	if err != nil {
		return nil, err
	}
	e.Status = domain.EventStatus(status)
	if !e.Status.Valid() {
		return nil, domain.ErrInvalidState("invalid status in db")
	}
	e.BeginEnrollmentDateTime = e.BeginEnrollmentDateTime.UTC()
	e.CloseEnrollmentDateTime = e.CloseEnrollmentDateTime.UTC()
	e.BeginEventDateTime = e.BeginEventDateTime.UTC()
	e.EndEventDateTime = e.EndEventDateTime.UTC()
	return &e, nil
}
