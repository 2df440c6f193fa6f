package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/rmg-x/consolectl/pkg/model"
	"github.com/rmg-x/consolectl/pkg/storage"
)

func newConsoleStore(db *sqlx.DB) *consoleStore {
	return &consoleStore{
		db: db,
	}
}

type consoleStore struct {
	db *sqlx.DB
}

type sqlDataConsole struct {
	ID        int32     `db:"id"`
	Name      string    `db:"name"`
	Host      string    `db:"host"`
	Port      int       `db:"port"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var sqlParamsConsole = []string{
	"id",
	"name",
	"host",
	"port",
	"notes",
	"created_at",
	"updated_at",
}

func (d *sqlDataConsole) Scan(m *model.Console) error {
	var createdAt, updatedAt = m.CreatedAt, m.UpdatedAt

	if m.CreatedAt.IsZero() {
		createdAt = time.Now().Round(time.Second).UTC()
	}

	if m.UpdatedAt.IsZero() {
		updatedAt = time.Now().Round(time.Second).UTC()
	}

	d.ID = m.ID
	d.Name = m.Name
	d.Host = m.Host
	d.Port = m.Port
	d.Notes = m.Notes
	d.CreatedAt = createdAt
	d.UpdatedAt = updatedAt

	return nil
}

func (d *sqlDataConsole) Model() (*model.Console, error) {
	m := &model.Console{
		ID:        d.ID,
		Name:      d.Name,
		Host:      d.Host,
		Port:      d.Port,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}

	return m, nil
}

func (s *consoleStore) FetchAll() (map[int32]model.Console, error) {
	return fetchAllConsoles(s.db)
}

func (s *consoleStore) FindByID(id int32) (*model.Console, error) {
	return findConsoleByID(s.db, id)
}

func (s *consoleStore) FindByName(name string) (*model.Console, error) {
	return findConsoleByName(s.db, name)
}

func (s *consoleStore) Create(m *model.Console) error {
	return createConsole(s.db, m)
}

func (s *consoleStore) Update(m *model.Console) error {
	return updateConsole(s.db, m)
}

func (s *consoleStore) Delete(id int32) error {
	return deleteConsole(s.db, id)
}

func fetchAllConsoles(db *sqlx.DB) (map[int32]model.Console, error) {
	rows := make([]sqlDataConsole, 0)
	models := make(map[int32]model.Console)

	query := "SELECT * FROM consoles"
	if err := db.Select(&rows, query); err != nil {
		return nil, errors.Wrap(err, "failed to fetch all consoles")
	}

	for _, d := range rows {
		m, err := d.Model()
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert SQL data to console model")
		}

		models[d.ID] = *m
	}

	return models, nil
}

func findConsoleByID(db *sqlx.DB, id int32) (*model.Console, error) {
	d := sqlDataConsole{}
	query := "SELECT * FROM consoles WHERE id=$1"
	if err := db.Get(&d, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to find console")
	}

	return d.Model()
}

func findConsoleByName(db *sqlx.DB, name string) (*model.Console, error) {
	d := sqlDataConsole{}
	query := "SELECT * FROM consoles WHERE name=$1"
	if err := db.Get(&d, query, name); err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to find console")
	}

	return d.Model()
}

func createConsole(db *sqlx.DB, m *model.Console) error {
	if m.Port == 0 {
		m.Port = 6333
	}

	d := sqlDataConsole{}
	if err := d.Scan(m); err != nil {
		return errors.Wrap(err, "failed to convert console model to SQL data")
	}

	// Remove the id column because it's of SQL type serial
	sqlParamsWithoutID := make([]string, 0)
	for _, s := range sqlParamsConsole {
		if s != "id" {
			sqlParamsWithoutID = append(sqlParamsWithoutID, s)
		}
	}

	query := fmt.Sprintf(
		"INSERT INTO consoles (%s) VALUES (%s) RETURNING id",
		strings.Join(sqlParamsWithoutID, ", "),
		":"+strings.Join(sqlParamsWithoutID, ", :"),
	)
	rows, err := db.NamedQuery(query, d)
	if err != nil {
		return errors.Wrap(err, "failed to create console")
	}
	if rows.Next() {
		rows.Scan(&m.ID)
	}

	return nil
}

func updateConsole(db *sqlx.DB, m *model.Console) error {
	if _, err := findConsoleByID(db, m.ID); err != nil {
		return err
	}

	// Set the UpdateAt date to now
	m.UpdatedAt = time.Now().Round(time.Second).UTC()

	d := sqlDataConsole{}
	if err := d.Scan(m); err != nil {
		return errors.Wrap(err, "failed to convert console model to SQL data")
	}

	var queryParams []string
	for _, param := range sqlParamsConsole {
		queryParams = append(queryParams, fmt.Sprintf("%s=:%s", param, param))
	}
	query := fmt.Sprintf("UPDATE consoles SET %s WHERE id=:id", strings.Join(queryParams, ", "))
	if _, err := db.NamedExec(query, d); err != nil {
		return errors.Wrap(err, "failed to update console")
	}

	return nil
}

func deleteConsole(db *sqlx.DB, id int32) error {
	query := "DELETE FROM consoles WHERE id=$1"
	_, err := db.Exec(query, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete console")
	}

	return nil
}
