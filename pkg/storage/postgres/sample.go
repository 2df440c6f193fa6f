package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/rmg-x/consolectl/pkg/model"
)

func newSampleStore(db *sqlx.DB) *sampleStore {
	return &sampleStore{
		db: db,
	}
}

type sampleStore struct {
	db *sqlx.DB
}

type sqlDataSample struct {
	ID        int32     `db:"id"`
	ConsoleID int32     `db:"console_id"`
	Cell      int32     `db:"cell_temp"`
	RSX       int32     `db:"rsx_temp"`
	Timestamp time.Time `db:"timestamp"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var sqlParamsSample = []string{
	"id",
	"console_id",
	"cell_temp",
	"rsx_temp",
	"timestamp",
	"created_at",
	"updated_at",
}

func (d *sqlDataSample) Scan(m *model.Sample) error {
	var createdAt, updatedAt = m.CreatedAt, m.UpdatedAt

	if m.CreatedAt.IsZero() {
		createdAt = time.Now().Round(time.Second).UTC()
	}

	if m.UpdatedAt.IsZero() {
		updatedAt = time.Now().Round(time.Second).UTC()
	}

	d.ID = m.ID
	d.ConsoleID = m.ConsoleID
	d.Cell = m.Cell
	d.RSX = m.RSX
	d.Timestamp = m.Timestamp
	d.CreatedAt = createdAt
	d.UpdatedAt = updatedAt

	return nil
}

func (d *sqlDataSample) Model() (*model.Sample, error) {
	m := &model.Sample{
		ID:        d.ID,
		ConsoleID: d.ConsoleID,
		Cell:      d.Cell,
		RSX:       d.RSX,
		Timestamp: d.Timestamp,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}

	return m, nil
}

func (s *sampleStore) FetchAll() (map[int32]model.Sample, error) {
	rows := make([]sqlDataSample, 0)
	models := make(map[int32]model.Sample)

	query := "SELECT * FROM samples"
	if err := s.db.Select(&rows, query); err != nil {
		return nil, errors.Wrap(err, "failed to fetch all samples")
	}

	for _, d := range rows {
		m, err := d.Model()
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert SQL data to sample model")
		}

		models[d.ID] = *m
	}

	return models, nil
}

func (s *sampleStore) FetchByConsoleID(consoleID int32) ([]model.Sample, error) {
	rows := make([]sqlDataSample, 0)
	models := make([]model.Sample, 0)

	query := "SELECT * FROM samples WHERE console_id=$1 ORDER BY id"
	if err := s.db.Select(&rows, query, consoleID); err != nil {
		return nil, errors.Wrap(err, "failed to fetch samples")
	}

	for _, d := range rows {
		m, err := d.Model()
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert SQL data to sample model")
		}

		models = append(models, *m)
	}

	return models, nil
}

func (s *sampleStore) Create(m *model.Sample) error {
	d := sqlDataSample{}
	if err := d.Scan(m); err != nil {
		return errors.Wrap(err, "failed to convert sample model to SQL data")
	}

	// Remove the id column because it's of SQL type serial
	sqlParamsWithoutID := make([]string, 0)
	for _, p := range sqlParamsSample {
		if p != "id" {
			sqlParamsWithoutID = append(sqlParamsWithoutID, p)
		}
	}

	query := fmt.Sprintf(
		"INSERT INTO samples (%s) VALUES (%s) RETURNING id",
		strings.Join(sqlParamsWithoutID, ", "),
		":"+strings.Join(sqlParamsWithoutID, ", :"),
	)
	rows, err := s.db.NamedQuery(query, d)
	if err != nil {
		return errors.Wrap(err, "failed to create sample")
	}
	if rows.Next() {
		rows.Scan(&m.ID)
	}

	return nil
}
