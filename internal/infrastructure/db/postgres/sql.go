package postgres

const schemaSQL = `
CREATE TABLE IF NOT EXISTS events (
  id                          BIGSERIAL PRIMARY KEY,
  name                        TEXT        NOT NULL,
  description                 TEXT        NOT NULL,
  begin_enrollment_date_time  TIMESTAMPTZ NOT NULL,
  close_enrollment_date_time  TIMESTAMPTZ NOT NULL,
  begin_event_date_time       TIMESTAMPTZ NOT NULL,
  end_event_date_time         TIMESTAMPTZ NOT NULL,
  location                    TEXT        NOT NULL DEFAULT '',
  base_price                  INTEGER     NOT NULL,
  max_price                   INTEGER     NOT NULL,
  limit_of_enrollment         INTEGER     NOT NULL,
  offline                     BOOLEAN     NOT NULL,
  free                        BOOLEAN     NOT NULL,
  event_status                TEXT        NOT NULL
)
`

const eventColumns = `id, name, description,
       begin_enrollment_date_time, close_enrollment_date_time,
       begin_event_date_time, end_event_date_time,
       location, base_price, max_price, limit_of_enrollment,
       offline, free, event_status`

const insertEventSQL = `
INSERT INTO events (
  name, description,
  begin_enrollment_date_time, close_enrollment_date_time,
  begin_event_date_time, end_event_date_time,
  location, base_price, max_price, limit_of_enrollment,
  offline, free, event_status
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
RETURNING id
`

const getEventSQL = `
SELECT ` + eventColumns + `
FROM events WHERE id = $1
`

const updateEventSQL = `
UPDATE events SET
  name=$2, description=$3,
  begin_enrollment_date_time=$4, close_enrollment_date_time=$5,
  begin_event_date_time=$6, end_event_date_time=$7,
  location=$8, base_price=$9, max_price=$10, limit_of_enrollment=$11,
  offline=$12, free=$13, event_status=$14
WHERE id=$1
`

const countEventsSQL = `SELECT COUNT(*) FROM events`

// sortColumns maps API sort properties onto columns. Only these ever reach SQL.
var sortColumns = map[string]string{
	"id":                      "id",
	"name":                    "name",
	"basePrice":               "base_price",
	"maxPrice":                "max_price",
	"limitOfEnrollment":       "limit_of_enrollment",
	"beginEnrollmentDateTime": "begin_enrollment_date_time",
	"closeEnrollmentDateTime": "close_enrollment_date_time",
	"beginEventDateTime":      "begin_event_date_time",
	"endEventDateTime":        "end_event_date_time",
}
